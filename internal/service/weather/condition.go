package weather

import "github.com/rocasalmo9ai/WEB-METATRAVELS/internal/domain"

// DayInputs are the raw daily values the sky condition is derived from.
// Sunshine and Daylight are seconds; nil when the API omitted them.
type DayInputs struct {
	WeatherCode int
	PrecipProb  float64
	CloudCover  float64
	Sunshine    *float64
	Daylight    *float64
}

// DailyCondition maps a WMO weather code plus precipitation and sunshine
// data to a single sky category. Storms and snow win over everything, a
// high precipitation probability wins over the code, and clear-ish codes
// are refined by the sunshine/daylight ratio or cloud cover.
func DailyCondition(in DayInputs) domain.WeatherCondition {
	switch in.WeatherCode {
	case 95, 96, 99:
		return domain.ConditionThunder
	case 71, 73, 75, 77, 85, 86:
		return domain.ConditionSnow
	}

	if in.PrecipProb >= 60 {
		return domain.ConditionRain
	}
	if in.PrecipProb >= 35 {
		return domain.ConditionDrizzle
	}

	switch in.WeatherCode {
	case 45, 48:
		return domain.ConditionFog
	case 51, 53, 55, 56, 57:
		return domain.ConditionDrizzle
	case 61, 63, 65, 66, 67, 80, 81, 82:
		return domain.ConditionRain
	}

	return skyCondition(in)
}

func skyCondition(in DayInputs) domain.WeatherCondition {
	if in.Daylight != nil && *in.Daylight > 0 && in.Sunshine != nil {
		ratio := *in.Sunshine / *in.Daylight
		switch {
		case ratio >= 0.60:
			return domain.ConditionSun
		case ratio >= 0.30:
			return domain.ConditionPartlyCloudy
		default:
			return domain.ConditionCloudy
		}
	}

	switch {
	case in.CloudCover >= 75:
		return domain.ConditionCloudy
	case in.CloudCover >= 35:
		return domain.ConditionPartlyCloudy
	default:
		return domain.ConditionSun
	}
}
