package scoring

import "github.com/rocasalmo9ai/WEB-METATRAVELS/internal/domain"

const (
	highConfidenceRatio = 0.6
	lowConfidenceRatio  = 0.3
)

// fallbackWinner stands in for a winner id missing from the profile table.
const fallbackWinner domain.ProfileID = "IND_01"

// DefaultProfileID is the profile returned when nothing could be scored.
// Unknown modalities fall back to the group default.
func DefaultProfileID(m domain.Modality) domain.ProfileID {
	switch m {
	case domain.ModalitySolo:
		return "IND_01"
	case domain.ModalityCouple:
		return "COU_01"
	case domain.ModalityFamily:
		return "FAM_01"
	default:
		return "GRP_01"
	}
}

// Score resolves a questionnaire into an emotional profile, or asks for a
// tie-breaker when two or more profiles share the top score. It is pure: it
// never fails, never mutates its inputs and is safe for concurrent use.
func Score(m domain.Modality, respondents []domain.Respondent, meta domain.ScoringMeta) *domain.ScoringResult {
	if !HasTable(m) {
		return defaultResult(m)
	}

	agg := Accumulate(m, respondents, meta)

	if chosen, ok := leaderChoice(m, respondents); ok {
		return okResult(m, chosen, agg.Scores, domain.ConfidenceHigh)
	}

	if len(agg.Scores) == 0 {
		return defaultResult(m)
	}

	best, candidates := agg.Max()
	if len(candidates) > 1 {
		q, _ := TieBreaker(m)
		return &domain.ScoringResult{Status: domain.StatusNeedsTieBreaker, Question: q}
	}

	return okResult(m, candidates[0], agg.Scores, ConfidenceFor(best, agg.TotalPossibleWeight))
}

// ConfidenceFor grades how dominant the winning score is over everything
// that could have been scored.
func ConfidenceFor(best, total float64) domain.Confidence {
	if total == 0 {
		total = 1
	}
	ratio := best / total
	switch {
	case ratio > highConfidenceRatio:
		return domain.ConfidenceHigh
	case ratio < lowConfidenceRatio:
		return domain.ConfidenceLow
	default:
		return domain.ConfidenceMedium
	}
}

// leaderChoice reads the explicit tie-breaker answer of the party leader
// (first leader, else first respondent). Only the leader's choice counts.
func leaderChoice(m domain.Modality, respondents []domain.Respondent) (domain.ProfileID, bool) {
	if len(respondents) == 0 {
		return "", false
	}
	leader := &respondents[0]
	for i := range respondents {
		if respondents[i].Role == domain.RoleLeader {
			leader = &respondents[i]
			break
		}
	}
	choice := domain.ProfileID(leader.Answers[m.TieBreakerKey()])
	if choice == "" || !IsKnownProfile(choice) {
		return "", false
	}
	return choice, true
}

func defaultResult(m domain.Modality) *domain.ScoringResult {
	return okResult(m, DefaultProfileID(m), map[domain.ProfileID]float64{}, domain.ConfidenceMedium)
}

func okResult(m domain.Modality, id domain.ProfileID, scores map[domain.ProfileID]float64, c domain.Confidence) *domain.ScoringResult {
	profile, ok := Profile(id)
	if !ok {
		profile = profiles[fallbackWinner]
	}
	return &domain.ScoringResult{
		Status:    domain.StatusOK,
		Profile:   profile,
		Diagnosis: BuildDiagnosis(m, id, scores, profile, c),
	}
}

// BuildDiagnosis flattens a profile into the compact diagnosis record.
// Guardrails are always the Spanish texts.
func BuildDiagnosis(m domain.Modality, id domain.ProfileID, scores map[domain.ProfileID]float64, p *domain.EmotionalProfile, c domain.Confidence) *domain.DiagnosisResult {
	guardrails := make([]string, 0, len(p.Guardrails))
	for _, g := range p.Guardrails {
		guardrails = append(guardrails, g.ES)
	}
	return &domain.DiagnosisResult{
		Modality:  m,
		ProfileID: id,
		Scores:    scores,
		Params: domain.DiagnosisParams{
			Ritmo:        p.Architecture.Rhythm,
			Estructura:   p.Architecture.Structure,
			Entorno:      p.Architecture.Environment,
			Sociabilidad: p.Architecture.Sociability,
		},
		Guardrails: guardrails,
		Confidence: c,
	}
}
