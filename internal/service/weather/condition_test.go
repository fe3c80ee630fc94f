package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/domain"
)

func f64(v float64) *float64 { return &v }

func TestDailyCondition(t *testing.T) {
	cases := []struct {
		name string
		in   DayInputs
		want domain.WeatherCondition
	}{
		{"thunder beats low precip", DayInputs{WeatherCode: 95}, domain.ConditionThunder},
		{"snow", DayInputs{WeatherCode: 75, PrecipProb: 80}, domain.ConditionSnow},
		{"precip rain", DayInputs{WeatherCode: 1, PrecipProb: 60}, domain.ConditionRain},
		{"precip drizzle", DayInputs{WeatherCode: 0, PrecipProb: 35}, domain.ConditionDrizzle},
		{"sun ratio", DayInputs{WeatherCode: 2, Sunshine: f64(30000), Daylight: f64(43200)}, domain.ConditionSun},
		{"partly ratio", DayInputs{WeatherCode: 3, Sunshine: f64(13000), Daylight: f64(43200)}, domain.ConditionPartlyCloudy},
		{"cloudy ratio", DayInputs{WeatherCode: 3, Sunshine: f64(1000), Daylight: f64(43200)}, domain.ConditionCloudy},
		{"cloud cover without sunshine", DayInputs{WeatherCode: 1, CloudCover: 80}, domain.ConditionCloudy},
		{"cloud cover partly", DayInputs{WeatherCode: 1, CloudCover: 35}, domain.ConditionPartlyCloudy},
		{"zero daylight uses cloud cover", DayInputs{WeatherCode: 0, CloudCover: 10, Sunshine: f64(0), Daylight: f64(0)}, domain.ConditionSun},
		{"fog", DayInputs{WeatherCode: 45}, domain.ConditionFog},
		{"drizzle code", DayInputs{WeatherCode: 53}, domain.ConditionDrizzle},
		{"showers", DayInputs{WeatherCode: 81}, domain.ConditionRain},
		{"unknown code", DayInputs{WeatherCode: 10, CloudCover: 50}, domain.ConditionPartlyCloudy},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DailyCondition(tc.in))
		})
	}
}
