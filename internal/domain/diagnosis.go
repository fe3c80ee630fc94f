package domain

type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// DiagnosisParams are the architecture dimensions under their Spanish keys.
type DiagnosisParams struct {
	Ritmo        Rhythm      `json:"ritmo"`
	Estructura   Structure   `json:"estructura"`
	Entorno      Environment `json:"entorno"`
	Sociabilidad Level       `json:"sociabilidad"`
}

type DiagnosisResult struct {
	Modality   Modality              `json:"modality"`
	ProfileID  ProfileID             `json:"profileId"`
	Scores     map[ProfileID]float64 `json:"scores"`
	Params     DiagnosisParams       `json:"params"`
	Guardrails []string              `json:"guardrails"`
	Confidence Confidence            `json:"confidence"`
}

type TieBreakerOption struct {
	Label     LocalizedText `json:"label"`
	ProfileID ProfileID     `json:"profileId"`
}

type TieBreakerQuestion struct {
	ID      string             `json:"id"`
	Text    LocalizedText      `json:"text"`
	Options []TieBreakerOption `json:"options"`
}

type ScoringStatus string

const (
	StatusOK              ScoringStatus = "OK"
	StatusNeedsTieBreaker ScoringStatus = "NEEDS_TIEBREAKER"
)

// ScoringResult carries either Profile+Diagnosis (OK) or Question (NEEDS_TIEBREAKER).
type ScoringResult struct {
	Status    ScoringStatus       `json:"status"`
	Profile   *EmotionalProfile   `json:"profile,omitempty"`
	Diagnosis *DiagnosisResult    `json:"diagnosis,omitempty"`
	Question  *TieBreakerQuestion `json:"question,omitempty"`
}

func (r *ScoringResult) NeedsTieBreaker() bool {
	return r != nil && r.Status == StatusNeedsTieBreaker
}

type ScoringMeta struct {
	HasSmallKids bool `json:"hasSmallKids"`
}
