package domain

type GeoLocation struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country"`
	Admin1    string  `json:"admin1,omitempty"`
}

type WeatherCondition string

const (
	ConditionSun          WeatherCondition = "sun"
	ConditionPartlyCloudy WeatherCondition = "partly_cloudy"
	ConditionCloudy       WeatherCondition = "cloudy"
	ConditionFog          WeatherCondition = "fog"
	ConditionDrizzle      WeatherCondition = "drizzle"
	ConditionRain         WeatherCondition = "rain"
	ConditionThunder      WeatherCondition = "thunder"
	ConditionSnow         WeatherCondition = "snow"
)

// ForecastMode tells whether days come from a real forecast or from a
// seasonal estimate for dates beyond the forecast horizon.
type ForecastMode string

const (
	ModeForecast    ForecastMode = "forecast"
	ModeClimatology ForecastMode = "climatology"
)

type WaterTempSource string

const (
	WaterSourceForecast    WaterTempSource = "forecast"
	WaterSourceClimatology WaterTempSource = "climatology"
	WaterSourceUnavailable WaterTempSource = "unavailable"
)

type WeatherDay struct {
	Date            string           `json:"date"`
	MinTemp         int              `json:"minTemp"`
	MaxTemp         int              `json:"maxTemp"`
	RainProb        int              `json:"rainProb"`
	Condition       WeatherCondition `json:"condition"`
	Humidity        *float64         `json:"humidity,omitempty"`
	WindSpeed       int              `json:"windSpeed"`
	Sunrise         string           `json:"sunrise"`
	Sunset          string           `json:"sunset"`
	WaterTemp       *int             `json:"waterTemp"`
	WaterTempSource WaterTempSource  `json:"waterTempSource"`
	CloudCover      float64          `json:"cloudCover"`
	Quality         int              `json:"quality"`
	Tip             TravelTip        `json:"tip"`
}

// TravelTip is the packing advice category shown for a day.
type TravelTip string

const (
	TipRain TravelTip = "rain"
	TipSnow TravelTip = "snow"
	TipHot  TravelTip = "hot"
	TipCold TravelTip = "cold"
	TipWind TravelTip = "wind"
	TipNice TravelTip = "nice"
)

type WeatherStatus string

const (
	WeatherFavorable   WeatherStatus = "favorable"
	WeatherVariable    WeatherStatus = "variable"
	WeatherUnfavorable WeatherStatus = "unfavorable"
)

type WeatherSummary string

const (
	SummarySunny WeatherSummary = "sunny"
	SummaryMixed WeatherSummary = "mixed"
	SummaryRainy WeatherSummary = "rainy"
)

type ForecastAnalysis struct {
	Status      WeatherStatus  `json:"status"`
	Summary     WeatherSummary `json:"summary"`
	AvgRain     float64        `json:"avgRain"`
	AvgMaxTemp  float64        `json:"avgMaxTemp"`
	ExtremeHeat bool           `json:"extremeHeat"`
	WindWarning bool           `json:"windWarning"`
	MaxWind     int            `json:"maxWind"`
	Advice      []string       `json:"advice"`
}

// ForecastReport is what the weather planner returns for a date range.
type ForecastReport struct {
	Location  GeoLocation      `json:"location"`
	Mode      ForecastMode     `json:"mode"`
	Estimated bool             `json:"estimated"`
	Days      []WeatherDay     `json:"days"`
	Analysis  ForecastAnalysis `json:"analysis"`
	Ranking   []string         `json:"ranking"`
	BestDay   *WeatherDay      `json:"bestDay,omitempty"`
	WorstDay  *WeatherDay      `json:"worstDay,omitempty"`
}
