package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/adapter"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/app"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/config"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/domain"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/service/cache"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/service/weather"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/util"
)

func newForecastCmd() *cobra.Command {
	var (
		place      string
		start, end string
		lang       string
	)

	cmd := &cobra.Command{
		Use:   "forecast [lat lon]",
		Short: "Print the ranked weather outlook for a place and date range",
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			svc, err := app.NewWeatherService(cfg.Weather, cache.NewMemoryStore(), nil, zap.NewNop())
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			loc, err := resolveLocation(ctx, svc, place, args)
			if err != nil {
				return err
			}

			language := domain.ParseLanguage(lang)
			report, err := svc.Plan(ctx, weather.PlanRequest{
				Latitude:  loc.Latitude,
				Longitude: loc.Longitude,
				Start:     start,
				End:       end,
				Language:  language,
			})
			if err != nil {
				return err
			}
			report.Location.Name = loc.Name

			fmt.Fprintln(cmd.OutOrStdout(), adapter.NewResponseFormatter(language).FormatForecast(report))
			return nil
		},
	}
	today := util.NowLocal().Format("2006-01-02")
	cmd.Flags().StringVar(&place, "place", "", "Place name to geocode instead of lat/lon")
	cmd.Flags().StringVar(&start, "start", today, "First day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", today, "Last day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&lang, "lang", "es", "Output language (es|en)")
	return cmd
}

func resolveLocation(ctx context.Context, svc *weather.Service, place string, args []string) (domain.GeoLocation, error) {
	if len(args) == 2 {
		lat, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return domain.GeoLocation{}, fmt.Errorf("invalid latitude %q", args[0])
		}
		lon, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return domain.GeoLocation{}, fmt.Errorf("invalid longitude %q", args[1])
		}
		return domain.GeoLocation{Latitude: lat, Longitude: lon}, nil
	}
	if place == "" {
		return domain.GeoLocation{}, fmt.Errorf("pass either lat lon or --place")
	}
	locations, err := svc.SearchLocation(ctx, place)
	if err != nil {
		return domain.GeoLocation{}, err
	}
	if len(locations) == 0 {
		return domain.GeoLocation{}, fmt.Errorf("no location matches %q", place)
	}
	return locations[0], nil
}
