package app

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"

	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/catalog"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/config"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/constants"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/metrics"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/queue"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/server"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/service/ai"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/service/cache"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/service/database"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/service/diagnosis"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/service/lead"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/service/weather"
)

// Container bundles the assembled services. Redis, Postgres, the model
// providers and the queue are optional; whatever is missing is nil and the
// routes that need it answer 503.
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	Store     cache.Store
	Redis     *cache.CacheService
	Postgres  *database.PostgresService
	Diagnosis *diagnosis.Service
	Weather   *weather.Service
	Catalog   *catalog.Catalog
	Concierge *ai.Concierge
	Leads     *lead.Service
	Queue     *queue.Client
	Worker    *queue.Worker
	Server    *server.Server

	closers []func()
}

// Close releases resources in reverse construction order.
func (c *Container) Close() {
	if c == nil {
		return
	}
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
}

// Build assembles the whole runtime graph behind the HTTP server and the
// advisor worker.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (container *Container, err error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	c := &Container{Config: cfg, Logger: logger}
	defer func() {
		if err != nil {
			c.Close()
		}
	}()

	m := metrics.Default()

	// Cache: Redis when reachable, in-process otherwise
	redisSvc, redisErr := cache.NewCacheService(cache.CacheConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, logger)
	if redisErr != nil {
		logger.Warn("Redis unavailable, using in-memory cache", zap.Error(redisErr))
		c.Store = cache.NewMemoryStore()
	} else {
		c.Redis = redisSvc
		c.Store = redisSvc
		c.closers = append(c.closers, func() { _ = redisSvc.Close() })
	}

	pg, pgErr := database.NewPostgresService(database.PostgresConfig{
		Host:     cfg.Postgres.Host,
		Port:     cfg.Postgres.Port,
		User:     cfg.Postgres.User,
		Password: cfg.Postgres.Password,
		Database: cfg.Postgres.Database,
	}, logger)
	if pgErr != nil {
		logger.Warn("PostgreSQL unavailable, lead capture disabled", zap.Error(pgErr))
	} else {
		c.Postgres = pg
		c.closers = append(c.closers, func() { _ = pg.Close() })
		if _, err := database.Migrate(ctx, pg.GetDB(), logger); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	c.Diagnosis = diagnosis.NewService(c.Store, m, logger)

	c.Weather, err = NewWeatherService(cfg.Weather, c.Store, m, logger)
	if err != nil {
		return nil, err
	}

	c.Catalog, err = catalog.Embedded()
	if err != nil {
		return nil, fmt.Errorf("failed to load package catalog: %w", err)
	}

	// AI stack
	modelManager, err := ai.NewModelManager(ctx, ai.ModelManagerConfig{
		GeminiAPIKey:       cfg.Gemini.APIKey,
		OpenAIAPIKey:       cfg.OpenAI.APIKey,
		DefaultGeminiModel: cfg.Gemini.Model,
		DefaultOpenAIModel: cfg.OpenAI.Model,
		EnableFallback:     cfg.OpenAI.EnableFallback,
	}, m, logger)
	switch {
	case stderrors.Is(err, ai.ErrNotConfigured):
		logger.Warn("No model provider configured, concierge answers with the setup notice")
		modelManager, err = nil, nil
	case err != nil:
		return nil, fmt.Errorf("failed to create model manager: %w", err)
	}

	titles := ai.NewTitleResolver(&http.Client{Timeout: constants.APIConfig.CitationTimeout}, c.Store, logger)
	c.Concierge = ai.NewConcierge(modelManager, c.Catalog, titles, c.Store, ai.ConciergeConfig{
		SiteName: cfg.Site.Name,
		Contact:  contactLine(cfg.Site),
	}, m, logger)
	briefer := ai.NewAdvisorBriefer(modelManager, cfg.Site.Name, logger)

	if c.Postgres != nil {
		if err := c.buildLeads(briefer, m); err != nil {
			return nil, err
		}
	}

	c.Server = server.New(server.Config{
		Addr:           cfg.Server.Addr(),
		Debug:          cfg.Server.Debug,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
	}, c.serverDeps(m))

	logger.Info("Container built",
		zap.Bool("redis", c.Redis != nil),
		zap.Bool("postgres", c.Postgres != nil),
		zap.Bool("ai", modelManager != nil),
		zap.Bool("queue", c.Worker != nil),
		zap.Int("packages", c.Catalog.Len()),
	)
	return c, nil
}

func (c *Container) buildLeads(briefer *ai.AdvisorBriefer, m *metrics.Metrics) error {
	cfg := c.Config
	node, err := snowflake.NewNode(cfg.Site.NodeID)
	if err != nil {
		return fmt.Errorf("failed to create id generator: %w", err)
	}

	deps := lead.Deps{
		Repo:      lead.NewPostgresRepository(c.Postgres.GetDB(), c.Logger),
		Diagnoser: c.Diagnosis,
		Packages:  c.Catalog,
		Briefer:   briefer,
		Node:      node,
		Metrics:   m,
		Logger:    c.Logger,
	}

	redisOpt := queue.RedisConfig{Addr: cfg.Redis.Addr(), Password: cfg.Redis.Password, DB: cfg.Redis.DB}
	queueEnabled := cfg.Queue.Enabled && c.Redis != nil
	if queueEnabled {
		c.Queue = queue.NewClient(redisOpt, c.Logger)
		c.closers = append(c.closers, func() { _ = c.Queue.Close() })
		deps.Enqueuer = c.Queue
	}

	c.Leads = lead.NewService(deps)

	if queueEnabled {
		c.Worker = queue.NewWorker(redisOpt, queue.WorkerConfig{
			Concurrency: cfg.Queue.Concurrency,
			Queues:      cfg.Queue.Queues,
		}, c.Leads, c.Logger)
	}
	return nil
}

func (c *Container) serverDeps(m *metrics.Metrics) server.Deps {
	deps := server.Deps{
		Diagnosis: c.Diagnosis,
		Weather:   c.Weather,
		Catalog:   c.Catalog,
		Concierge: c.Concierge,
		Auth: server.NewAdminAuth(
			c.Config.Auth.AdminUser,
			c.Config.Auth.AdminPasswordHash,
			c.Config.Auth.JWTSecret,
			c.Config.Auth.TokenTTL,
		),
		Metrics: m,
		Logger:  c.Logger,
	}
	if c.Leads != nil {
		deps.Leads = c.Leads
	}
	if c.Redis != nil {
		redisSvc := c.Redis
		deps.Health = append(deps.Health, server.HealthCheck{Name: "redis", Ping: func(ctx context.Context) error {
			if !redisSvc.IsConnected(ctx) {
				return fmt.Errorf("redis unreachable")
			}
			return nil
		}})
	}
	if c.Postgres != nil {
		deps.Health = append(deps.Health, server.HealthCheck{Name: "postgres", Ping: c.Postgres.Ping})
	}
	return deps
}

// NewWeatherService wires the Open-Meteo client, geocoder and forecaster.
func NewWeatherService(cfg config.WeatherConfig, store cache.Store, m *metrics.Metrics, logger *zap.Logger) (*weather.Service, error) {
	api := weather.NewAPIClient(&http.Client{Timeout: cfg.Timeout}, m, logger)
	geocoder, err := weather.NewGeocoder(api, store, cfg.GeocodingURL, m, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create geocoder: %w", err)
	}
	forecaster := weather.NewForecaster(api, store, weather.Endpoints{
		Geocoding: cfg.GeocodingURL,
		Forecast:  cfg.ForecastURL,
		Marine:    cfg.MarineURL,
	}, m, logger)
	return weather.NewService(geocoder, forecaster), nil
}

func contactLine(site config.SiteConfig) string {
	switch {
	case site.Email != "" && site.Phone != "":
		return site.Email + " / " + site.Phone
	case site.Email != "":
		return site.Email
	default:
		return site.Phone
	}
}
