package domain

// ProfileID identifies one of the sixteen emotional profiles, e.g. "COU_02".
type ProfileID string

type Rhythm string

const (
	RhythmBreathable Rhythm = "respirable"
	RhythmBalanced   Rhythm = "balanceado"
	RhythmIntense    Rhythm = "intenso"
)

type Structure string

const (
	StructureFullConcierge Structure = "concierge_total"
	StructureFramedBlocks  Structure = "marco_con_bloques"
	StructureCuratedFree   Structure = "libre_curado"
)

type Environment string

const (
	EnvironmentRefuge   Environment = "refugio"
	EnvironmentFrontier Environment = "frontera"
	EnvironmentHub      Environment = "hub"
)

// Level is shared by sociability and activity density.
type Level string

const (
	LevelLow    Level = "baja"
	LevelMedium Level = "media"
	LevelHigh   Level = "alta"
)

type GuideLevel string

const (
	GuideFullConcierge GuideLevel = "concierge_total"
	GuideMixed         GuideLevel = "mixto"
	GuideMinimal       GuideLevel = "minimo"
)

type Architecture struct {
	Rhythm      Rhythm      `json:"rhythm"`
	Structure   Structure   `json:"structure"`
	Environment Environment `json:"environment"`
	Sociability Level       `json:"sociability"`
}

type NightsRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type Recommendation struct {
	DestinationType []string   `json:"destinationType"`
	ItineraryStyle  []string   `json:"itineraryStyle"`
	GuideLevel      GuideLevel `json:"guideLevel"`
	ActivityDensity Level      `json:"activityDensity"`
}

// EmotionalProfile is an archetype of how a party wants a trip to feel.
type EmotionalProfile struct {
	ID             ProfileID       `json:"id"`
	Modality       Modality        `json:"modality"`
	Name           LocalizedText   `json:"name"`
	Tagline        LocalizedText   `json:"tagline"`
	Description    LocalizedText   `json:"description"`
	EvidenceChips  []LocalizedText `json:"evidenceChips"`
	Architecture   Architecture    `json:"architecture"`
	Peak           LocalizedText   `json:"peak"`
	End            LocalizedText   `json:"end"`
	Avoid          LocalizedText   `json:"avoid"`
	DurationNights NightsRange     `json:"durationNights"`
	Guardrails     []LocalizedText `json:"guardrails"`
	Recommendation Recommendation  `json:"recommendation"`
}
