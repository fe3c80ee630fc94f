package adapter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/domain"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/scoring"
)

func TestFormatProfileCard(t *testing.T) {
	profile, ok := scoring.Profile("IND_01")
	require.True(t, ok)
	diag := &domain.DiagnosisResult{
		ProfileID:  "IND_01",
		Confidence: domain.ConfidenceHigh,
		Guardrails: []string{"Evitar hoteles ruidosos"},
	}

	out := NewResponseFormatter(domain.LanguageEN).FormatResult(&domain.ScoringResult{
		Status:    domain.StatusOK,
		Profile:   profile,
		Diagnosis: diag,
	})
	assert.True(t, strings.HasPrefix(out, profile.Name.EN+" (IND_01)"))
	assert.Contains(t, out, "Confidence: high")
	assert.Contains(t, out, "! Evitar hoteles ruidosos")

	es := NewResponseFormatter("fr").FormatProfile(profile, diag)
	assert.Contains(t, es, "Confianza: high")
	assert.Contains(t, es, profile.Name.ES)
}

func TestFormatTieBreaker(t *testing.T) {
	q, ok := scoring.TieBreaker(domain.ModalityCouple)
	require.True(t, ok)

	out := NewResponseFormatter(domain.LanguageES).FormatResult(&domain.ScoringResult{
		Status:   domain.StatusNeedsTieBreaker,
		Question: q,
	})
	assert.Contains(t, out, "Empate")
	assert.Contains(t, out, "1. "+q.Options[0].Label.ES)
	assert.Contains(t, out, string(q.Options[0].ProfileID))
}

func TestScoreLinesOrdering(t *testing.T) {
	lines := ScoreLines(&domain.DiagnosisResult{
		ProfileID: "COU_02",
		Scores:    map[domain.ProfileID]float64{"COU_01": 1, "COU_02": 2.2, "COU_03": 1, "COU_04": 0},
	})
	require.Len(t, lines, 4)
	assert.Equal(t, domain.ProfileID("COU_02"), lines[0].ProfileID)
	assert.True(t, lines[0].Winner)
	assert.Equal(t, domain.ProfileID("COU_01"), lines[1].ProfileID)
	assert.Equal(t, domain.ProfileID("COU_03"), lines[2].ProfileID)
	assert.Nil(t, ScoreLines(nil))

	text := NewResponseFormatter(domain.LanguageEN).FormatScores(&domain.DiagnosisResult{
		ProfileID: "COU_02",
		Scores:    map[domain.ProfileID]float64{"COU_02": 2.2},
	})
	assert.Contains(t, text, "* COU_02")
	assert.Contains(t, text, "2.20")
}

func TestFormatForecast(t *testing.T) {
	f := NewResponseFormatter(domain.LanguageEN)
	assert.Equal(t, "No weather data for that range.", f.FormatForecast(nil))

	day := domain.WeatherDay{Date: "2026-11-01", MinTemp: 22, MaxTemp: 30, RainProb: 10, Condition: domain.WeatherCondition("sunny"), Quality: 90}
	out := f.FormatForecast(&domain.ForecastReport{
		Location:  domain.GeoLocation{Name: "Tulum"},
		Estimated: true,
		Days:      []domain.WeatherDay{day},
		BestDay:   &day,
		WorstDay:  &day,
		Analysis:  domain.ForecastAnalysis{Advice: []string{"Pack sunscreen"}},
	})
	assert.True(t, strings.HasPrefix(out, "Historical estimate · Tulum"))
	assert.Contains(t, out, "2026-11-01  22°/30°  10%  sunny  Q90")
	assert.Contains(t, out, "Best day: 2026-11-01")
	assert.Contains(t, out, "- Pack sunscreen")
}
