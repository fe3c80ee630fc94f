package weather

import (
	"context"

	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/domain"
)

type PlanRequest struct {
	Latitude  float64
	Longitude float64
	Start     string
	End       string
	Language  domain.Language
}

// Service is the weather planner: geocoding plus ranked forecasts.
type Service struct {
	geocoder   *Geocoder
	forecaster *Forecaster
}

func NewService(geocoder *Geocoder, forecaster *Forecaster) *Service {
	return &Service{geocoder: geocoder, forecaster: forecaster}
}

func (s *Service) SearchLocation(ctx context.Context, query string) ([]domain.GeoLocation, error) {
	return s.geocoder.SearchLocation(ctx, query)
}

// Plan fetches the forecast and derives the ranking and advice.
func (s *Service) Plan(ctx context.Context, req PlanRequest) (*domain.ForecastReport, error) {
	days, mode, err := s.forecaster.GetForecast(ctx, req.Latitude, req.Longitude, req.Start, req.End)
	if err != nil {
		return nil, err
	}

	report := &domain.ForecastReport{
		Location:  domain.GeoLocation{Latitude: req.Latitude, Longitude: req.Longitude},
		Mode:      mode,
		Estimated: mode == domain.ModeClimatology,
		Days:      days,
		Analysis:  Analyze(days),
		Ranking:   make([]string, 0, len(days)),
	}
	report.Analysis.Advice = Advise(report.Analysis, req.Language)

	ranked := Rank(days)
	for _, d := range ranked {
		report.Ranking = append(report.Ranking, d.Date)
	}
	if len(ranked) > 0 {
		best, worst := ranked[0], ranked[len(ranked)-1]
		report.BestDay = &best
		report.WorstDay = &worst
	}
	return report, nil
}
