package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/domain"
)

func respondent(id string, role domain.RespondentRole, weight float64, answers map[string]string) domain.Respondent {
	return domain.Respondent{ID: id, Role: role, Weight: weight, Answers: answers}
}

func TestScoreSoloExample(t *testing.T) {
	res := Score(domain.ModalitySolo, []domain.Respondent{
		respondent("R1", domain.RoleLeader, 1, map[string]string{
			"IND_Q1": "Bajas estímulo y te escondes un poco",
			"IND_Q2": "Que apaguen el ruido y quede vacío",
		}),
	}, domain.ScoringMeta{})

	require.Equal(t, domain.StatusOK, res.Status)
	assert.Equal(t, domain.ProfileID("IND_01"), res.Profile.ID)
	assert.Equal(t, "Retiro Curado", res.Profile.Name.ES)
	assert.Equal(t, map[domain.ProfileID]float64{"IND_01": 2}, res.Diagnosis.Scores)
	assert.Equal(t, domain.ConfidenceHigh, res.Diagnosis.Confidence)
	assert.Equal(t, domain.DiagnosisParams{
		Ritmo:        domain.RhythmBreathable,
		Estructura:   domain.StructureFullConcierge,
		Entorno:      domain.EnvironmentRefuge,
		Sociabilidad: domain.LevelLow,
	}, res.Diagnosis.Params)
	assert.Equal(t, []string{"Discreción absoluta"}, res.Diagnosis.Guardrails)
}

func TestScoreCoupleTieExample(t *testing.T) {
	res := Score(domain.ModalityCouple, []domain.Respondent{
		respondent("R1", domain.RoleLeader, 1.2, map[string]string{
			"COU_Q1": "Silencio cómodo, sin prisa",
			"COU_Q2": "Risa y descubrimiento",
		}),
	}, domain.ScoringMeta{})

	require.True(t, res.NeedsTieBreaker())
	require.NotNil(t, res.Question)
	assert.Equal(t, "TB_COU", res.Question.ID)
	assert.Nil(t, res.Profile)
	assert.Nil(t, res.Diagnosis)
}

func TestScoreTieBreakerQuestionPerModality(t *testing.T) {
	cases := []struct {
		modality domain.Modality
		answers  map[string]string
		wantID   string
	}{
		{domain.ModalitySolo, map[string]string{"IND_Q1": "Bajas estímulo y te escondes un poco", "IND_Q3": "Decidir sobre la marcha"}, "TB_IND"},
		{domain.ModalityCouple, map[string]string{"COU_Q5": "Pausado", "COU_Q6": "Meta/actividad ganada juntos"}, "TB_COU"},
		{domain.ModalityFamily, map[string]string{"FAM_Q1": "Se rompe la comida (hambre/antojos)", "FAM_Q4": "Una cosa nueva al día"}, "TB_FAM"},
		{domain.ModalityGroup, map[string]string{"GRP_Q2": "Risa desinhibida", "GRP_Q5": "Crear una historia compartida"}, "TB_GRP"},
	}

	for _, tc := range cases {
		t.Run(string(tc.modality), func(t *testing.T) {
			res := Score(tc.modality, []domain.Respondent{respondent("R1", domain.RoleLeader, 1, tc.answers)}, domain.ScoringMeta{})
			require.True(t, res.NeedsTieBreaker())
			assert.Equal(t, tc.wantID, res.Question.ID)
			assert.Len(t, res.Question.Options, 2)
		})
	}
}

func TestScoreTieBreakerOverride(t *testing.T) {
	tied := map[string]string{
		"COU_Q1": "Silencio cómodo, sin prisa",
		"COU_Q2": "Risa y descubrimiento",
	}

	q, ok := TieBreaker(domain.ModalityCouple)
	require.True(t, ok)

	for _, opt := range q.Options {
		answers := map[string]string{"couple_TB": string(opt.ProfileID)}
		for k, v := range tied {
			answers[k] = v
		}
		res := Score(domain.ModalityCouple, []domain.Respondent{
			respondent("R1", domain.RoleLeader, 1.2, answers),
			respondent("R2", domain.RoleFlex, 1, map[string]string{"COU_Q1": "Silencio cómodo, sin prisa"}),
		}, domain.ScoringMeta{})

		require.Equal(t, domain.StatusOK, res.Status)
		assert.Equal(t, opt.ProfileID, res.Profile.ID)
		assert.Equal(t, opt.ProfileID, res.Diagnosis.ProfileID)
		assert.Equal(t, domain.ConfidenceHigh, res.Diagnosis.Confidence)
		assert.InDelta(t, 2.2, res.Diagnosis.Scores["COU_01"], 1e-9)
		assert.InDelta(t, 1.2, res.Diagnosis.Scores["COU_02"], 1e-9)
	}
}

func TestScoreOverrideOnlyTrustsLeader(t *testing.T) {
	res := Score(domain.ModalityCouple, []domain.Respondent{
		respondent("R1", domain.RoleFlex, 1, map[string]string{"COU_Q1": "Silencio cómodo, sin prisa", "couple_TB": "COU_04"}),
		respondent("R2", domain.RoleLeader, 1.2, map[string]string{"COU_Q1": "Silencio cómodo, sin prisa"}),
	}, domain.ScoringMeta{})

	require.Equal(t, domain.StatusOK, res.Status)
	assert.Equal(t, domain.ProfileID("COU_01"), res.Profile.ID)
}

func TestScoreOverrideFallsBackToFirstRespondent(t *testing.T) {
	res := Score(domain.ModalityGroup, []domain.Respondent{
		respondent("R1", domain.RoleEnergy, 1, map[string]string{"group_TB": "GRP_02"}),
		respondent("R2", domain.RoleFlex, 1, map[string]string{"GRP_Q2": "Risa desinhibida"}),
	}, domain.ScoringMeta{})

	assert.Equal(t, domain.ProfileID("GRP_02"), res.Profile.ID)
	assert.Equal(t, domain.ConfidenceHigh, res.Diagnosis.Confidence)
}

func TestScoreOverrideAcceptsAnyKnownProfile(t *testing.T) {
	res := Score(domain.ModalitySolo, []domain.Respondent{
		respondent("R1", domain.RoleLeader, 1, map[string]string{"solo_TB": "GRP_03"}),
	}, domain.ScoringMeta{})

	assert.Equal(t, domain.ProfileID("GRP_03"), res.Profile.ID)
	assert.Equal(t, domain.ModalitySolo, res.Diagnosis.Modality)
}

func TestScoreOverrideIgnoresUnknownProfile(t *testing.T) {
	res := Score(domain.ModalitySolo, []domain.Respondent{
		respondent("R1", domain.RoleLeader, 1, map[string]string{
			"solo_TB": "IND_99",
			"IND_Q8":  "Claridad",
		}),
	}, domain.ScoringMeta{})

	assert.Equal(t, domain.ProfileID("IND_02"), res.Profile.ID)
	// one classified answer out of two entries
	assert.Equal(t, domain.ConfidenceMedium, res.Diagnosis.Confidence)
}

func TestScoreEmptyInputFallback(t *testing.T) {
	want := map[domain.Modality]domain.ProfileID{
		domain.ModalitySolo:   "IND_01",
		domain.ModalityCouple: "COU_01",
		domain.ModalityFamily: "FAM_01",
		domain.ModalityGroup:  "GRP_01",
	}

	for m, id := range want {
		for name, respondents := range map[string][]domain.Respondent{
			"no respondents":    nil,
			"empty answers":     {respondent("R1", domain.RoleLeader, 1.2, map[string]string{})},
			"unmatched answers": {respondent("R1", domain.RoleLeader, 1.2, map[string]string{"X": "no existe"})},
		} {
			res := Score(m, respondents, domain.ScoringMeta{})
			require.Equal(t, domain.StatusOK, res.Status, "%s/%s", m, name)
			assert.Equal(t, id, res.Profile.ID, "%s/%s", m, name)
			assert.Empty(t, res.Diagnosis.Scores, "%s/%s", m, name)
			assert.NotNil(t, res.Diagnosis.Scores)
			assert.Equal(t, domain.ConfidenceMedium, res.Diagnosis.Confidence)
		}
	}
}

func TestScoreUnknownModality(t *testing.T) {
	res := Score("cruise", []domain.Respondent{
		respondent("R1", domain.RoleLeader, 1, map[string]string{"cruise_TB": "IND_04"}),
	}, domain.ScoringMeta{})

	require.Equal(t, domain.StatusOK, res.Status)
	assert.Equal(t, domain.ProfileID("GRP_01"), res.Profile.ID)
	assert.Equal(t, domain.Modality("cruise"), res.Diagnosis.Modality)
	assert.Empty(t, res.Diagnosis.Scores)
}

func TestScoreDeterminism(t *testing.T) {
	respondents := []domain.Respondent{
		respondent("R1", domain.RoleLeader, 1.2, map[string]string{
			"GRP_Q1": "Club privado (calma/nivel)",
			"GRP_Q3": "Hay marco y aire (sin rigidez)",
			"GRP_Q4": "Respeto a acuerdos/tiempos",
			"GRP_Q7": "Fricción social (roles/egos/exclusión)",
		}),
		respondent("R2", domain.RoleEnergy, 1, map[string]string{
			"GRP_Q1": "Exploradores (moverse/descubrir)",
			"GRP_Q2": "Ritual corto y luego libertad",
			"GRP_Q6": "Silencio frente a algo sublime",
		}),
		respondent("R3", domain.RoleFlex, 1, map[string]string{
			"GRP_Q5": "Cuidar el vínculo y la confianza",
			"GRP_Q8": "“Expectativas cerradas antes de salir”",
		}),
	}

	first := Score(domain.ModalityGroup, respondents, domain.ScoringMeta{})
	require.Equal(t, domain.StatusOK, first.Status)
	assert.Equal(t, domain.ProfileID("GRP_02"), first.Profile.ID)

	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Score(domain.ModalityGroup, respondents, domain.ScoringMeta{}))
	}
}

func TestScoreDoesNotMutateInput(t *testing.T) {
	answers := map[string]string{"IND_Q8": "Expansión"}
	respondents := []domain.Respondent{respondent("R1", domain.RoleLeader, 1, answers)}

	Score(domain.ModalitySolo, respondents, domain.ScoringMeta{})

	assert.Equal(t, map[string]string{"IND_Q8": "Expansión"}, respondents[0].Answers)
	assert.Equal(t, 1.0, respondents[0].Weight)
}

func TestAccumulateWeightAdditivity(t *testing.T) {
	a := respondent("R1", domain.RoleLeader, 1.2, map[string]string{
		"FAM_Q1": "Se rompe el sueño/horario base",
		"FAM_Q2": "Resolver comida rápido y seguir",
		"FAM_Q3": "Bloques con aire (marco flexible)",
	})
	b := respondent("R2", domain.RoleCaregiver, 1, map[string]string{
		"FAM_Q1": "Se rompe los tiempos (traslados/esperas)",
		"FAM_Q5": "Se turnan: “bloque kids” / “bloque adultos”",
	})

	both := Accumulate(domain.ModalityFamily, []domain.Respondent{a, b}, domain.ScoringMeta{})
	onlyA := Accumulate(domain.ModalityFamily, []domain.Respondent{a}, domain.ScoringMeta{})
	onlyB := Accumulate(domain.ModalityFamily, []domain.Respondent{b}, domain.ScoringMeta{})

	for _, id := range profileOrder {
		assert.InDelta(t, onlyA.Scores[id]+onlyB.Scores[id], both.Scores[id], 1e-9, string(id))
	}
	assert.InDelta(t, onlyA.TotalPossibleWeight+onlyB.TotalPossibleWeight, both.TotalPossibleWeight, 1e-9)
	assert.InDelta(t, 5.6, both.TotalPossibleWeight, 1e-9)
}

func TestAccumulateCountsTieBreakerKeyInTotal(t *testing.T) {
	agg := Accumulate(domain.ModalitySolo, []domain.Respondent{
		respondent("R1", domain.RoleLeader, 2, map[string]string{"IND_Q8": "Claridad", "solo_TB": "IND_04", "junk": "???"}),
	}, domain.ScoringMeta{})

	assert.Equal(t, 6.0, agg.TotalPossibleWeight)
	assert.Equal(t, map[domain.ProfileID]float64{"IND_02": 2}, agg.Scores)
}

func TestFamilyBias(t *testing.T) {
	respondents := []domain.Respondent{
		respondent("R1", domain.RoleLeader, 1.2, map[string]string{
			"FAM_Q1": "Se rompe la comida (hambre/antojos)",
			"FAM_Q2": "Resolver comida rápido y seguir",
			"FAM_Q8": "Paz real (todo fluyó)",
		}),
	}

	without := Accumulate(domain.ModalityFamily, respondents, domain.ScoringMeta{})
	with := Accumulate(domain.ModalityFamily, respondents, domain.ScoringMeta{HasSmallKids: true})

	assert.InDelta(t, without.Scores["FAM_01"]+1.5, with.Scores["FAM_01"], 1e-9)
	assert.Equal(t, without.Scores["FAM_02"], with.Scores["FAM_02"])
	assert.Equal(t, without.TotalPossibleWeight, with.TotalPossibleWeight)

	before := Score(domain.ModalityFamily, respondents, domain.ScoringMeta{})
	after := Score(domain.ModalityFamily, respondents, domain.ScoringMeta{HasSmallKids: true})
	assert.Equal(t, domain.ProfileID("FAM_02"), before.Profile.ID)
	assert.Equal(t, domain.ProfileID("FAM_01"), after.Profile.ID)
}

func TestFamilyBiasAloneSelectsFAM01(t *testing.T) {
	res := Score(domain.ModalityFamily, nil, domain.ScoringMeta{HasSmallKids: true})

	require.Equal(t, domain.StatusOK, res.Status)
	assert.Equal(t, domain.ProfileID("FAM_01"), res.Profile.ID)
	assert.Equal(t, map[domain.ProfileID]float64{"FAM_01": 1.5}, res.Diagnosis.Scores)
	// ratio 1.5 / (0 || 1)
	assert.Equal(t, domain.ConfidenceHigh, res.Diagnosis.Confidence)
}

func TestFamilyBiasIgnoredOutsideFamily(t *testing.T) {
	agg := Accumulate(domain.ModalityGroup, nil, domain.ScoringMeta{HasSmallKids: true})
	assert.Empty(t, agg.Scores)
}

func TestConfidenceThresholds(t *testing.T) {
	cases := []struct {
		best, total float64
		want        domain.Confidence
	}{
		{6.1, 10, domain.ConfidenceHigh},
		{6, 10, domain.ConfidenceMedium},
		{3, 10, domain.ConfidenceMedium},
		{2.9, 10, domain.ConfidenceLow},
		{1, 0, domain.ConfidenceHigh},
		{0.2, 0, domain.ConfidenceLow},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ConfidenceFor(tc.best, tc.total), "%v/%v", tc.best, tc.total)
	}
}

func TestConfidenceMonotonicity(t *testing.T) {
	rank := map[domain.Confidence]int{domain.ConfidenceLow: 0, domain.ConfidenceMedium: 1, domain.ConfidenceHigh: 2}
	const total = 8.0
	prev := -1
	for best := 0.0; best <= total; best += 0.25 {
		r := rank[ConfidenceFor(best, total)]
		assert.GreaterOrEqual(t, r, prev, "best=%v", best)
		prev = r
	}
}

func TestScoreLowConfidence(t *testing.T) {
	res := Score(domain.ModalitySolo, []domain.Respondent{
		respondent("R1", domain.RoleLeader, 1, map[string]string{
			"IND_Q1": "Bajas estímulo y te escondes un poco",
			"a":      "x", "b": "x", "c": "x", "d": "x",
		}),
	}, domain.ScoringMeta{})

	assert.Equal(t, domain.ProfileID("IND_01"), res.Profile.ID)
	assert.Equal(t, domain.ConfidenceLow, res.Diagnosis.Confidence)
}

func TestDefaultProfileID(t *testing.T) {
	assert.Equal(t, domain.ProfileID("IND_01"), DefaultProfileID(domain.ModalitySolo))
	assert.Equal(t, domain.ProfileID("COU_01"), DefaultProfileID(domain.ModalityCouple))
	assert.Equal(t, domain.ProfileID("FAM_01"), DefaultProfileID(domain.ModalityFamily))
	assert.Equal(t, domain.ProfileID("GRP_01"), DefaultProfileID(domain.ModalityGroup))
	assert.Equal(t, domain.ProfileID("GRP_01"), DefaultProfileID("other"))
}
