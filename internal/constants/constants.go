package constants

import "time"

var CacheTTL = struct {
	Geocode       time.Duration
	GeocodeLocal  time.Duration
	Forecast      time.Duration
	Climatology   time.Duration
	WizardSession time.Duration
	ChatSession   time.Duration
	CitationTitle time.Duration
}{
	Geocode:       7 * 24 * time.Hour, // place names barely change
	GeocodeLocal:  30 * time.Minute,   // in-process LRU entry lifetime
	Forecast:      1 * time.Hour,
	Climatology:   24 * time.Hour,
	WizardSession: 30 * 24 * time.Hour,
	ChatSession:   2 * time.Hour,
	CitationTitle: 24 * time.Hour,
}

var CacheKeys = struct {
	GeocodePrefix  string
	ForecastPrefix string
	WizardPrefix   string
	ChatPrefix     string
	CitationPrefix string
}{
	GeocodePrefix:  "geo_v4:",
	ForecastPrefix: "wx_v2:",
	WizardPrefix:   "wizard:",
	ChatPrefix:     "concierge:",
	CitationPrefix: "cite:",
}

var GeocodeConfig = struct {
	MinQueryRunes  int
	RemoteCount    int
	Language       string
	MaxResults     int
	DedupeDistance float64
	LRUSize        int
}{
	MinQueryRunes:  2,
	RemoteCount:    10,
	Language:       "es",
	MaxResults:     6,
	DedupeDistance: 0.01,
	LRUSize:        512,
}

var ForecastConfig = struct {
	ForecastHorizonDays int
	MarineProbeOffset   float64
	MarineConcurrency   int
	ClimatologyDays     int
	MaxRangeDays        int
	DateLayout          string
}{
	ForecastHorizonDays: 14,
	MarineProbeOffset:   0.05,
	MarineConcurrency:   5,
	ClimatologyDays:     7,
	MaxRangeDays:        16,
	DateLayout:          "2006-01-02",
}

var AIInputLimits = struct {
	MaxQueryLength   int
	MaxHistoryTurns  int
	CitationFetchMax int
}{
	MaxQueryLength:   2000,
	MaxHistoryTurns:  40,
	CitationFetchMax: 5,
}

var RetryConfig = struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Jitter      time.Duration
}{
	MaxAttempts: 3,
	BaseDelay:   500 * time.Millisecond,
	Jitter:      250 * time.Millisecond,
}

var CircuitBreakerConfig = struct {
	FailureThreshold    int
	ResetTimeout        time.Duration
	RateLimitTimeout    time.Duration
	HealthCheckInterval time.Duration
	HealthCheckTimeout  time.Duration
}{
	FailureThreshold:    3,
	ResetTimeout:        30 * time.Second,
	RateLimitTimeout:    1 * time.Hour, // 429 from a model provider
	HealthCheckInterval: 10 * time.Minute,
	HealthCheckTimeout:  10 * time.Second,
}

var APIConfig = struct {
	GeocodingURL     string
	ForecastURL      string
	MarineURL        string
	OpenMeteoTimeout time.Duration
	CitationTimeout  time.Duration
}{
	GeocodingURL:     "https://geocoding-api.open-meteo.com/v1/search",
	ForecastURL:      "https://api.open-meteo.com/v1/forecast",
	MarineURL:        "https://marine-api.open-meteo.com/v1/marine",
	OpenMeteoTimeout: 10 * time.Second,
	CitationTimeout:  4 * time.Second,
}

var QueueConfig = struct {
	AdvisorQueue   string
	DefaultQueue   string
	AdvisorTimeout time.Duration
	MaxRetry       int
}{
	AdvisorQueue:   "advisor",
	DefaultQueue:   "default",
	AdvisorTimeout: 90 * time.Second,
	MaxRetry:       5,
}

var DiagnosisLimits = struct {
	MaxRespondents int
	MaxAnswers     int
}{
	MaxRespondents: 20, // the wizard offers "5+"
	MaxAnswers:     16,
}
