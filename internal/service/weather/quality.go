package weather

import (
	"sort"

	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/domain"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/util"
)

const (
	comfortMinTemp = 18
	comfortMaxTemp = 32
	windTolerance  = 25
	windWarning    = 30
)

var conditionPenalty = map[domain.WeatherCondition]float64{
	domain.ConditionThunder: 30,
	domain.ConditionSnow:    25,
	domain.ConditionRain:    20,
	domain.ConditionDrizzle: 8,
	domain.ConditionFog:     6,
	domain.ConditionCloudy:  4,
}

// DayQuality scores how pleasant a day is for travel, 0 (awful) to 100.
func DayQuality(day domain.WeatherDay) int {
	score := 100.0
	score -= float64(day.RainProb) / 2
	if day.WindSpeed > windTolerance {
		score -= 1.5 * float64(day.WindSpeed-windTolerance)
	}
	if day.MaxTemp < comfortMinTemp {
		score -= 3 * float64(comfortMinTemp-day.MaxTemp)
	}
	if day.MaxTemp > comfortMaxTemp {
		score -= 3 * float64(day.MaxTemp-comfortMaxTemp)
	}
	score -= conditionPenalty[day.Condition]

	return util.Clamp(util.RoundHalfUp(score), 0, 100)
}

// Rank returns the days ordered best first; equal scores keep date order.
func Rank(days []domain.WeatherDay) []domain.WeatherDay {
	ranked := make([]domain.WeatherDay, len(days))
	copy(ranked, days)
	for i := range ranked {
		ranked[i].Quality = DayQuality(ranked[i])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Quality != ranked[j].Quality {
			return ranked[i].Quality > ranked[j].Quality
		}
		return ranked[i].Date < ranked[j].Date
	})
	return ranked
}

func Best(days []domain.WeatherDay) *domain.WeatherDay {
	ranked := Rank(days)
	if len(ranked) == 0 {
		return nil
	}
	return &ranked[0]
}

func Worst(days []domain.WeatherDay) *domain.WeatherDay {
	ranked := Rank(days)
	if len(ranked) == 0 {
		return nil
	}
	return &ranked[len(ranked)-1]
}

// Analyze summarises a date range for the planner header.
func Analyze(days []domain.WeatherDay) domain.ForecastAnalysis {
	if len(days) == 0 {
		return domain.ForecastAnalysis{Status: domain.WeatherVariable, Summary: domain.SummaryMixed}
	}

	rain := make([]float64, len(days))
	maxTemps := make([]float64, len(days))
	analysis := domain.ForecastAnalysis{}
	for i, d := range days {
		rain[i] = float64(d.RainProb)
		maxTemps[i] = float64(d.MaxTemp)
		if d.MaxTemp > comfortMaxTemp {
			analysis.ExtremeHeat = true
		}
		analysis.MaxWind = util.Max(analysis.MaxWind, d.WindSpeed)
	}
	analysis.WindWarning = analysis.MaxWind > windWarning
	analysis.AvgRain = util.Mean(rain)
	analysis.AvgMaxTemp = util.Mean(maxTemps)

	switch {
	case analysis.AvgRain < 20 && analysis.AvgMaxTemp > comfortMinTemp && analysis.AvgMaxTemp < comfortMaxTemp:
		analysis.Status = domain.WeatherFavorable
	case analysis.AvgRain > 50:
		analysis.Status = domain.WeatherUnfavorable
	default:
		analysis.Status = domain.WeatherVariable
	}

	switch {
	case analysis.AvgRain < 15:
		analysis.Summary = domain.SummarySunny
	case analysis.AvgRain > 50:
		analysis.Summary = domain.SummaryRainy
	default:
		analysis.Summary = domain.SummaryMixed
	}

	return analysis
}
