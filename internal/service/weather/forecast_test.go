package weather

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/domain"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/service/cache"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/pkg/errors"
)

var testNow = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func newTestForecaster(api Requester, store cache.Store) *Forecaster {
	f := NewForecaster(api, store, Endpoints{Forecast: "http://wx.test", Marine: "http://sea.test"}, nil, nil)
	f.now = func() time.Time { return testNow }
	return f
}

func threeDays() map[string]any {
	return map[string]any{"daily": map[string]any{
		"time":                          []string{"2025-03-03", "2025-03-04", "2025-03-05"},
		"temperature_2m_max":            []any{26.4, 30.5, nil},
		"temperature_2m_min":            []any{18.2, 21.5, 17},
		"precipitation_probability_max": []any{10, 70, nil},
		"weather_code":                  []any{1, 61, 95},
		"wind_speed_10m_max":            []any{12.4, 30.5, 8},
		"sunrise":                       []any{"2025-03-03T06:42", nil, "06:40"},
		"sunset":                        []any{"2025-03-03T18:20", "2025-03-04T18:21", ""},
		"relative_humidity_2m_max":      []any{70, nil, 60},
		"cloud_cover_mean":              []any{20, 90, nil},
		"sunshine_duration":             []any{36000, 1000, nil},
		"daylight_duration":             []any{43200, 43200, nil},
	}}
}

// onlySouthProbe returns sea data only for the probe just south of the origin.
func onlySouthProbe(originLat float64, originLon string, series []any) func(url.Values) (any, error) {
	return func(params url.Values) (any, error) {
		lat, _ := strconv.ParseFloat(params.Get("latitude"), 64)
		if lat < originLat && params.Get("longitude") == originLon {
			return map[string]any{"hourly": map[string]any{"sea_surface_temperature": series}}, nil
		}
		return map[string]any{"hourly": map[string]any{"sea_surface_temperature": []any{nil, nil}}}, nil
	}
}

func TestGetForecastMapsDailyData(t *testing.T) {
	series := make([]any, 72)
	series[12] = 25.6
	series[60] = 26.5

	api := newFakeRequester()
	api.on("forecast", func(params url.Values) (any, error) {
		assert.Equal(t, "2025-03-03", params.Get("start_date"))
		assert.Equal(t, "auto", params.Get("timezone"))
		return threeDays(), nil
	})
	api.on("marine", onlySouthProbe(15.66, "-96.55", series))

	days, mode, err := newTestForecaster(api, nil).GetForecast(context.Background(), 15.66, -96.55, "2025-03-03", "2025-03-05")
	require.NoError(t, err)
	assert.Equal(t, domain.ModeForecast, mode)
	require.Len(t, days, 3)
	assert.Equal(t, 5, api.count("marine"))

	d1 := days[0]
	assert.Equal(t, 26, d1.MaxTemp)
	assert.Equal(t, 18, d1.MinTemp)
	assert.Equal(t, 10, d1.RainProb)
	assert.Equal(t, 12, d1.WindSpeed)
	assert.Equal(t, domain.ConditionSun, d1.Condition)
	assert.Equal(t, "06:42", d1.Sunrise)
	assert.Equal(t, "18:20", d1.Sunset)
	require.NotNil(t, d1.Humidity)
	assert.Equal(t, 70.0, *d1.Humidity)
	require.NotNil(t, d1.WaterTemp)
	assert.Equal(t, 26, *d1.WaterTemp)
	assert.Equal(t, domain.WaterSourceForecast, d1.WaterTempSource)
	assert.Equal(t, 95, d1.Quality)
	assert.Equal(t, domain.TipNice, d1.Tip)

	d2 := days[1]
	assert.Equal(t, domain.ConditionRain, d2.Condition)
	assert.Equal(t, 31, d2.MaxTemp)
	assert.Equal(t, 31, d2.WindSpeed)
	assert.Equal(t, "--:--", d2.Sunrise)
	assert.Nil(t, d2.Humidity)
	assert.Nil(t, d2.WaterTemp)

	d3 := days[2]
	assert.Equal(t, domain.ConditionThunder, d3.Condition)
	assert.Equal(t, 0, d3.MaxTemp)
	assert.Equal(t, "06:40", d3.Sunrise)
	assert.Equal(t, "--:--", d3.Sunset)
	assert.Equal(t, 0.0, d3.CloudCover)
	require.NotNil(t, d3.WaterTemp)
	assert.Equal(t, 27, *d3.WaterTemp)
}

func TestGetForecastClimatology(t *testing.T) {
	api := newFakeRequester()
	api.on("forecast", func(url.Values) (any, error) { return threeDays(), nil })
	api.on("marine", func(params url.Values) (any, error) {
		assert.Equal(t, "2025-03-01", params.Get("start_date"))
		assert.Equal(t, "2025-03-08", params.Get("end_date"))
		return map[string]any{"hourly": map[string]any{"sea_surface_temperature": []any{24, nil, 25}}}, nil
	})

	days, mode, err := newTestForecaster(api, nil).GetForecast(context.Background(), 20.21, -87.46, "2025-04-01", "2025-04-03")
	require.NoError(t, err)
	assert.Equal(t, domain.ModeClimatology, mode)
	for _, d := range days {
		require.NotNil(t, d.WaterTemp)
		assert.Equal(t, 25, *d.WaterTemp)
		assert.Equal(t, domain.WaterSourceClimatology, d.WaterTempSource)
	}
}

func TestForecastModeBoundary(t *testing.T) {
	f := newTestForecaster(newFakeRequester(), nil)
	// ceil(12.58) = 13 days ahead
	assert.Equal(t, domain.ModeForecast, f.Mode(time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)))
	// ceil(13.58) = 14 days ahead
	assert.Equal(t, domain.ModeClimatology, f.Mode(time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, domain.ModeForecast, f.Mode(time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC)))
}

func TestGetForecastMarineFailureDegrades(t *testing.T) {
	api := newFakeRequester()
	api.on("forecast", func(url.Values) (any, error) { return threeDays(), nil })
	api.on("marine", func(url.Values) (any, error) { return nil, fmt.Errorf("marine down") })

	days, _, err := newTestForecaster(api, nil).GetForecast(context.Background(), 18.87, -98.98, "2025-03-03", "2025-03-05")
	require.NoError(t, err)
	require.Len(t, days, 3)
	for _, d := range days {
		assert.Nil(t, d.WaterTemp)
		assert.Equal(t, domain.WaterSourceUnavailable, d.WaterTempSource)
	}
}

func TestGetForecastTruncatesToShortestArray(t *testing.T) {
	api := newFakeRequester()
	api.on("forecast", func(url.Values) (any, error) {
		return map[string]any{"daily": map[string]any{
			"time":               []string{"2025-03-03", "2025-03-04", "2025-03-05"},
			"temperature_2m_max": []any{25, 26},
			"temperature_2m_min": []any{15, 16, 17},
			"weathercode":        []any{0, 0, 0},
		}}, nil
	})

	days, _, err := newTestForecaster(api, nil).GetForecast(context.Background(), 1, 1, "2025-03-03", "2025-03-05")
	require.NoError(t, err)
	assert.Len(t, days, 2)
}

func TestGetForecastEmptyDaily(t *testing.T) {
	api := newFakeRequester()
	api.on("forecast", func(url.Values) (any, error) { return map[string]any{}, nil })

	days, _, err := newTestForecaster(api, nil).GetForecast(context.Background(), 1, 1, "2025-03-03", "2025-03-05")
	require.NoError(t, err)
	assert.Empty(t, days)
	assert.Equal(t, 0, api.count("marine"))
}

func TestGetForecastUpstreamFailure(t *testing.T) {
	api := newFakeRequester()
	api.on("forecast", func(url.Values) (any, error) { return nil, fmt.Errorf("timeout") })

	_, _, err := newTestForecaster(api, nil).GetForecast(context.Background(), 1, 1, "2025-03-03", "2025-03-05")
	require.Error(t, err)
	assert.Equal(t, 500, errors.StatusOf(err))
}

func TestGetForecastValidation(t *testing.T) {
	f := newTestForecaster(newFakeRequester(), nil)
	cases := []struct {
		lat, lon   float64
		start, end string
	}{
		{91, 0, "2025-03-03", "2025-03-04"},
		{0, -181, "2025-03-03", "2025-03-04"},
		{0, 0, "03/03/2025", "2025-03-04"},
		{0, 0, "2025-03-03", "tomorrow"},
		{0, 0, "2025-03-05", "2025-03-04"},
		{0, 0, "2025-03-01", "2025-03-17"},
	}
	for _, tc := range cases {
		_, _, err := f.GetForecast(context.Background(), tc.lat, tc.lon, tc.start, tc.end)
		assert.Equal(t, 400, errors.StatusOf(err), "%+v", tc)
	}
}

func TestGetForecastCaches(t *testing.T) {
	api := newFakeRequester()
	api.on("forecast", func(url.Values) (any, error) { return threeDays(), nil })
	f := newTestForecaster(api, cache.NewMemoryStore())

	first, _, err := f.GetForecast(context.Background(), 15.66, -96.55, "2025-03-03", "2025-03-05")
	require.NoError(t, err)
	second, _, err := f.GetForecast(context.Background(), 15.66, -96.55, "2025-03-03", "2025-03-05")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, api.count("forecast"))
}

func TestPlanBuildsReport(t *testing.T) {
	api := newFakeRequester()
	api.on("forecast", func(url.Values) (any, error) { return threeDays(), nil })
	geo, err := NewGeocoder(api, nil, "", nil, nil)
	require.NoError(t, err)
	svc := NewService(geo, newTestForecaster(api, nil))

	report, err := svc.Plan(context.Background(), PlanRequest{
		Latitude: 15.66, Longitude: -96.55, Start: "2025-03-03", End: "2025-03-05", Language: domain.LanguageEN,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ModeForecast, report.Mode)
	assert.False(t, report.Estimated)
	assert.Equal(t, []string{"2025-03-03", "2025-03-04", "2025-03-05"}, report.Ranking)
	assert.Equal(t, "2025-03-03", report.BestDay.Date)
	assert.Equal(t, "2025-03-05", report.WorstDay.Date)
	assert.True(t, report.Analysis.WindWarning)
	assert.Contains(t, report.Analysis.Advice[0], "Variable weather")
}
