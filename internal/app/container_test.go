package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/config"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/service/cache"
)

func TestContactLine(t *testing.T) {
	assert.Equal(t, "info@x.mx / +52 1", contactLine(config.SiteConfig{Email: "info@x.mx", Phone: "+52 1"}))
	assert.Equal(t, "info@x.mx", contactLine(config.SiteConfig{Email: "info@x.mx"}))
	assert.Equal(t, "+52 1", contactLine(config.SiteConfig{Phone: "+52 1"}))
}

func TestNewWeatherServiceIgnoresShortQueries(t *testing.T) {
	svc, err := NewWeatherService(config.WeatherConfig{
		GeocodingURL: "http://127.0.0.1:0/search",
		ForecastURL:  "http://127.0.0.1:0/forecast",
		MarineURL:    "http://127.0.0.1:0/marine",
		Timeout:      time.Second,
	}, cache.NewMemoryStore(), nil, zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, svc)

	locations, err := svc.SearchLocation(context.Background(), "x")
	require.NoError(t, err)
	assert.Empty(t, locations)
}

func TestBuildRejectsMissingInputs(t *testing.T) {
	_, err := Build(context.Background(), nil, zap.NewNop())
	assert.Error(t, err)
	_, err = Build(context.Background(), &config.Config{}, nil)
	assert.Error(t, err)

	var c *Container
	c.Close()
}
