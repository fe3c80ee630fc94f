package weather

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/constants"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/domain"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/metrics"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/service/cache"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/util"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/pkg/errors"
)

const dailyFields = "temperature_2m_max,temperature_2m_min,precipitation_probability_max,weather_code," +
	"wind_speed_10m_max,sunrise,sunset,relative_humidity_2m_max,cloud_cover_mean,sunshine_duration,daylight_duration"

type dailyBlock struct {
	Time        []string   `json:"time"`
	MaxTemp     []*float64 `json:"temperature_2m_max"`
	MinTemp     []*float64 `json:"temperature_2m_min"`
	PrecipProb  []*float64 `json:"precipitation_probability_max"`
	WeatherCode []*float64 `json:"weather_code"`
	LegacyCode  []*float64 `json:"weathercode"`
	WindSpeed   []*float64 `json:"wind_speed_10m_max"`
	Sunrise     []*string  `json:"sunrise"`
	Sunset      []*string  `json:"sunset"`
	Humidity    []*float64 `json:"relative_humidity_2m_max"`
	CloudCover  []*float64 `json:"cloud_cover_mean"`
	Sunshine    []*float64 `json:"sunshine_duration"`
	Daylight    []*float64 `json:"daylight_duration"`
}

func (d *dailyBlock) codes() []*float64 {
	if d.WeatherCode != nil {
		return d.WeatherCode
	}
	return d.LegacyCode
}

type forecastResponse struct {
	Daily *dailyBlock `json:"daily"`
}

type marineResponse struct {
	Hourly *struct {
		SeaSurfaceTemperature []*float64 `json:"sea_surface_temperature"`
	} `json:"hourly"`
}

type Endpoints struct {
	Geocoding string
	Forecast  string
	Marine    string
}

func DefaultEndpoints() Endpoints {
	return Endpoints{
		Geocoding: constants.APIConfig.GeocodingURL,
		Forecast:  constants.APIConfig.ForecastURL,
		Marine:    constants.APIConfig.MarineURL,
	}
}

// Forecaster turns Open-Meteo daily data into WeatherDay records.
type Forecaster struct {
	api       Requester
	store     cache.Store
	endpoints Endpoints
	metrics   *metrics.Metrics
	logger    *zap.Logger
	now       func() time.Time
}

func NewForecaster(api Requester, store cache.Store, endpoints Endpoints, m *metrics.Metrics, logger *zap.Logger) *Forecaster {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Forecaster{
		api:       api,
		store:     store,
		endpoints: endpoints,
		metrics:   m,
		logger:    logger,
		now:       time.Now,
	}
}

// Mode decides between a real forecast and a seasonal estimate: dates that
// start 14 or more days ahead are beyond any useful forecast.
func (f *Forecaster) Mode(start time.Time) domain.ForecastMode {
	diffDays := math.Ceil(start.Sub(f.now()).Hours() / 24)
	if diffDays < float64(constants.ForecastConfig.ForecastHorizonDays) {
		return domain.ModeForecast
	}
	return domain.ModeClimatology
}

// GetForecast returns one record per day of [start, end], both YYYY-MM-DD.
func (f *Forecaster) GetForecast(ctx context.Context, lat, lon float64, start, end string) ([]domain.WeatherDay, domain.ForecastMode, error) {
	startDate, err := validateRange(lat, lon, start, end)
	if err != nil {
		return nil, "", err
	}
	mode := f.Mode(startDate)

	key := fmt.Sprintf("%s%.4f:%.4f:%s:%s", constants.CacheKeys.ForecastPrefix, lat, lon, start, end)
	if f.store != nil {
		var cached []domain.WeatherDay
		found, err := f.store.Get(ctx, key, &cached)
		if err != nil {
			f.logger.Warn("Forecast cache read failed", zap.String("key", key), zap.Error(err))
		}
		f.metrics.ObserveCache("forecast", found && err == nil)
		if found && err == nil {
			return cached, mode, nil
		}
	}

	params := url.Values{}
	params.Set("latitude", formatCoord(lat))
	params.Set("longitude", formatCoord(lon))
	params.Set("start_date", start)
	params.Set("end_date", end)
	params.Set("daily", dailyFields)
	params.Set("timezone", "auto")

	var resp forecastResponse
	if err := f.api.GetJSON(ctx, "forecast", f.endpoints.Forecast, params, &resp); err != nil {
		return nil, mode, errors.NewServiceError("forecast unavailable", "weather", "forecast", err)
	}
	if resp.Daily == nil || len(resp.Daily.Time) == 0 {
		return []domain.WeatherDay{}, mode, nil
	}

	daily := resp.Daily
	n := alignedLength(daily)
	waterTemps, source := f.waterTemperatures(ctx, lat, lon, start, end, mode, n)

	days := make([]domain.WeatherDay, n)
	for i := 0; i < n; i++ {
		days[i] = buildDay(daily, i, waterTemps[i], source)
	}

	if f.store != nil && len(days) > 0 {
		ttl := constants.CacheTTL.Forecast
		if mode == domain.ModeClimatology {
			ttl = constants.CacheTTL.Climatology
		}
		if err := f.store.Set(ctx, key, days, ttl); err != nil {
			f.logger.Warn("Forecast cache write failed", zap.String("key", key), zap.Error(err))
		}
	}

	return days, mode, nil
}

func validateRange(lat, lon float64, start, end string) (time.Time, error) {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return time.Time{}, errors.NewValidationError("latitude out of range", "lat", lat)
	}
	if math.IsNaN(lon) || lon < -180 || lon > 180 {
		return time.Time{}, errors.NewValidationError("longitude out of range", "lon", lon)
	}
	startDate, err := time.Parse(constants.ForecastConfig.DateLayout, start)
	if err != nil {
		return time.Time{}, errors.NewValidationError("start must be YYYY-MM-DD", "start", start)
	}
	endDate, err := time.Parse(constants.ForecastConfig.DateLayout, end)
	if err != nil {
		return time.Time{}, errors.NewValidationError("end must be YYYY-MM-DD", "end", end)
	}
	if endDate.Before(startDate) {
		return time.Time{}, errors.NewValidationError("end is before start", "end", end)
	}
	if days := int(endDate.Sub(startDate).Hours()/24) + 1; days > constants.ForecastConfig.MaxRangeDays {
		return time.Time{}, errors.NewValidationError(
			fmt.Sprintf("range exceeds %d days", constants.ForecastConfig.MaxRangeDays), "end", end)
	}
	return startDate, nil
}

// alignedLength is the shortest non-empty of the core daily arrays.
func alignedLength(d *dailyBlock) int {
	lengths := make([]int, 0, 4)
	for _, l := range []int{len(d.Time), len(d.MaxTemp), len(d.MinTemp), len(d.codes())} {
		if l > 0 {
			lengths = append(lengths, l)
		}
	}
	return util.MinLen(lengths...)
}

func buildDay(d *dailyBlock, i int, waterTemp *int, source domain.WaterTempSource) domain.WeatherDay {
	precip := valueAt(d.PrecipProb, i)
	cloud := valueAt(d.CloudCover, i)

	day := domain.WeatherDay{
		Date:            d.Time[i],
		MaxTemp:         util.RoundHalfUp(valueAt(d.MaxTemp, i)),
		MinTemp:         util.RoundHalfUp(valueAt(d.MinTemp, i)),
		RainProb:        util.RoundHalfUp(precip),
		WindSpeed:       util.RoundHalfUp(valueAt(d.WindSpeed, i)),
		Humidity:        ptrAt(d.Humidity, i),
		Sunrise:         clockTime(d.Sunrise, i),
		Sunset:          clockTime(d.Sunset, i),
		WaterTemp:       waterTemp,
		WaterTempSource: source,
		CloudCover:      cloud,
		Condition: DailyCondition(DayInputs{
			WeatherCode: int(valueAt(d.codes(), i)),
			PrecipProb:  precip,
			CloudCover:  cloud,
			Sunshine:    ptrAt(d.Sunshine, i),
			Daylight:    ptrAt(d.Daylight, i),
		}),
	}
	day.Quality = DayQuality(day)
	day.Tip = DayTip(day)
	return day
}

// waterTemperatures never fails: any marine problem yields "unavailable".
func (f *Forecaster) waterTemperatures(ctx context.Context, lat, lon float64, start, end string, mode domain.ForecastMode, n int) ([]*int, domain.WaterTempSource) {
	temps := make([]*int, n)

	marineStart, marineEnd := start, end
	if mode == domain.ModeClimatology {
		today := f.now().UTC()
		marineStart = today.Format(constants.ForecastConfig.DateLayout)
		marineEnd = today.AddDate(0, 0, constants.ForecastConfig.ClimatologyDays).Format(constants.ForecastConfig.DateLayout)
	}

	raw := f.probeMarine(ctx, lat, lon, marineStart, marineEnd)
	if raw == nil {
		return temps, domain.WaterSourceUnavailable
	}

	if mode == domain.ModeForecast {
		for i := 0; i < n; i++ {
			idx := i*24 + 12
			if idx < len(raw) && raw[idx] != nil {
				v := util.RoundHalfUp(*raw[idx])
				temps[i] = &v
			}
		}
		return temps, domain.WaterSourceForecast
	}

	valid := make([]float64, 0, len(raw))
	for _, v := range raw {
		if v != nil {
			valid = append(valid, *v)
		}
	}
	avg := util.RoundHalfUp(util.Mean(valid))
	for i := range temps {
		v := avg
		temps[i] = &v
	}
	return temps, domain.WaterSourceClimatology
}

type marineProbe struct {
	lat, lon float64
}

func marineProbes(lat, lon float64) []marineProbe {
	off := constants.ForecastConfig.MarineProbeOffset
	return []marineProbe{
		{lat, lon},
		{lat - off, lon},
		{lat, lon - off},
		{lat, lon + off},
		{lat + off, lon},
	}
}

// probeMarine queries the marine API at the point and four nearby offsets
// (inland points have no sea data) and returns the hourly series of the
// first probe, in probe order, that has any value.
func (f *Forecaster) probeMarine(ctx context.Context, lat, lon float64, start, end string) []*float64 {
	probes := marineProbes(lat, lon)
	results := make([][]*float64, len(probes))

	p := pool.New().WithMaxGoroutines(constants.ForecastConfig.MarineConcurrency)
	for idx, probe := range probes {
		idx, probe := idx, probe
		p.Go(func() {
			params := url.Values{}
			params.Set("latitude", formatCoord(probe.lat))
			params.Set("longitude", formatCoord(probe.lon))
			params.Set("start_date", start)
			params.Set("end_date", end)
			params.Set("hourly", "sea_surface_temperature")
			params.Set("timezone", "auto")

			var resp marineResponse
			if err := f.api.GetJSON(ctx, "marine", f.endpoints.Marine, params, &resp); err != nil {
				f.logger.Debug("Marine probe failed",
					zap.Float64("lat", probe.lat),
					zap.Float64("lon", probe.lon),
					zap.Error(err),
				)
				return
			}
			if resp.Hourly != nil {
				results[idx] = resp.Hourly.SeaSurfaceTemperature
			}
		})
	}
	p.Wait()

	for _, series := range results {
		for _, v := range series {
			if v != nil {
				return series
			}
		}
	}
	return nil
}

func valueAt(values []*float64, i int) float64 {
	if i < len(values) && values[i] != nil {
		return *values[i]
	}
	return 0
}

func ptrAt(values []*float64, i int) *float64 {
	if i < len(values) && values[i] != nil {
		v := *values[i]
		return &v
	}
	return nil
}

// clockTime reduces "2025-03-01T06:42" to "06:42".
func clockTime(values []*string, i int) string {
	if i >= len(values) || values[i] == nil || *values[i] == "" {
		return "--:--"
	}
	if _, after, ok := strings.Cut(*values[i], "T"); ok {
		return after
	}
	return *values[i]
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
