package domain

type PackageLevel string

const (
	LevelStandard PackageLevel = "Estándar"
	LevelPremium  PackageLevel = "Premium"
	LevelLuxury   PackageLevel = "Lujo"
)

type ItineraryDay struct {
	Day         int           `json:"day" yaml:"day"`
	Title       LocalizedText `json:"title" yaml:"title"`
	Description LocalizedText `json:"description" yaml:"description"`
	Image       string        `json:"image,omitempty" yaml:"image"`
}

type Amenities struct {
	FlightsIntl     bool `json:"flightsIntl" yaml:"flightsIntl"`
	FlightsDomestic bool `json:"flightsDomestic" yaml:"flightsDomestic"`
	Accommodation   bool `json:"accommodation" yaml:"accommodation"`
	Tours           bool `json:"tours" yaml:"tours"`
	Guide           bool `json:"guide" yaml:"guide"`
	Meals           bool `json:"meals" yaml:"meals"`
	Tips            bool `json:"tips" yaml:"tips"`
	Taxes           bool `json:"taxes" yaml:"taxes"`
}

// TravelPackage is a curated trip in the public catalog.
type TravelPackage struct {
	ID           string          `json:"id" yaml:"id"`
	Slug         string          `json:"slug" yaml:"slug"`
	Title        LocalizedText   `json:"title" yaml:"title"`
	Subtitle     LocalizedText   `json:"subtitle" yaml:"subtitle"`
	Destination  LocalizedText   `json:"destination" yaml:"destination"`
	Duration     LocalizedText   `json:"duration" yaml:"duration"`
	Dates        LocalizedText   `json:"dates" yaml:"dates"`
	Price        int             `json:"price" yaml:"price"`
	Currency     string          `json:"currency" yaml:"currency"`
	Level        PackageLevel    `json:"level" yaml:"level"`
	Type         string          `json:"type" yaml:"type"`
	MinGroupSize int             `json:"minGroupSize,omitempty" yaml:"minGroupSize"`
	HeroImage    string          `json:"heroImage" yaml:"heroImage"`
	Description  LocalizedText   `json:"description" yaml:"description"`
	Highlights   []LocalizedText `json:"highlights" yaml:"highlights"`
	Amenities    Amenities       `json:"amenities" yaml:"amenities"`
	Includes     []LocalizedText `json:"includes" yaml:"includes"`
	Excludes     []LocalizedText `json:"excludes" yaml:"excludes"`
	Itinerary    []ItineraryDay  `json:"itinerary" yaml:"itinerary"`
}
