package scoring

import "github.com/rocasalmo9ai/WEB-METATRAVELS/internal/domain"

// familyBiasBonus is added to FAM_01 when the party travels with kids under eight.
const familyBiasBonus = 1.5

const familyBiasProfile domain.ProfileID = "FAM_01"

// Aggregate is the weighted vote tally of a questionnaire.
type Aggregate struct {
	Scores map[domain.ProfileID]float64
	// TotalPossibleWeight counts every answer entry of every respondent,
	// classified or not, times that respondent's weight.
	TotalPossibleWeight float64
}

// Accumulate tallies the respondents' answers for modality m. Respondents
// are visited in slice order, so repeated calls produce bit-identical sums.
func Accumulate(m domain.Modality, respondents []domain.Respondent, meta domain.ScoringMeta) Aggregate {
	agg := Aggregate{Scores: make(map[domain.ProfileID]float64)}

	for _, r := range respondents {
		agg.TotalPossibleWeight += float64(len(r.Answers)) * r.Weight
		for _, answer := range r.Answers {
			if id, ok := Classify(m, answer); ok {
				agg.Scores[id] += r.Weight
			}
		}
	}

	if m == domain.ModalityFamily && meta.HasSmallKids {
		agg.Scores[familyBiasProfile] += familyBiasBonus
	}

	return agg
}

// Max returns the highest score and every candidate holding it.
func (a Aggregate) Max() (float64, []domain.ProfileID) {
	var (
		best       float64
		candidates []domain.ProfileID
	)
	for _, id := range profileOrder {
		score, ok := a.Scores[id]
		if !ok {
			continue
		}
		switch {
		case len(candidates) == 0 || score > best:
			best = score
			candidates = []domain.ProfileID{id}
		case score == best:
			candidates = append(candidates, id)
		}
	}
	return best, candidates
}
