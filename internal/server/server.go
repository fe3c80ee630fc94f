package server

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/domain"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/metrics"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/service/diagnosis"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/service/lead"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/service/weather"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/util"
)

type DiagnosisService interface {
	Diagnose(ctx context.Context, req diagnosis.Request) (*domain.ScoringResult, error)
	SaveSession(ctx context.Context, session *domain.WizardSession) error
	LoadSession(ctx context.Context, id string) (*domain.WizardSession, error)
	DeleteSession(ctx context.Context, id string) error
}

type WeatherService interface {
	SearchLocation(ctx context.Context, query string) ([]domain.GeoLocation, error)
	Plan(ctx context.Context, req weather.PlanRequest) (*domain.ForecastReport, error)
}

type PackageCatalog interface {
	Search(query string) []domain.TravelPackage
	BySlug(slug string) (*domain.TravelPackage, error)
}

type ConciergeService interface {
	NewSession(lang domain.Language) *domain.ChatSession
	Send(ctx context.Context, session *domain.ChatSession, message string) (*domain.ChatReply, error)
	SaveSession(ctx context.Context, session *domain.ChatSession) error
	LoadSession(ctx context.Context, id string) (*domain.ChatSession, error)
}

type LeadService interface {
	Capture(ctx context.Context, in lead.CaptureInput) (*domain.Lead, error)
	List(ctx context.Context, status string, limit, offset int) ([]*domain.Lead, error)
	UpdateStatus(ctx context.Context, id int64, status domain.LeadStatus) (*domain.Lead, error)
}

// HealthCheck is one dependency probed by /healthz.
type HealthCheck struct {
	Name string
	Ping func(ctx context.Context) error
}

type Config struct {
	Addr           string
	Debug          bool
	AllowedOrigins []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

// Deps carries the services behind the routes. A nil service leaves its
// routes answering 503.
type Deps struct {
	Diagnosis      DiagnosisService
	Weather        WeatherService
	Catalog        PackageCatalog
	Concierge      ConciergeService
	Leads          LeadService
	Auth           *AdminAuth
	Health         []HealthCheck
	Metrics        *metrics.Metrics
	MetricsHandler http.Handler
	Logger         *zap.Logger
}

type Server struct {
	cfg        Config
	deps       Deps
	engine     *gin.Engine
	httpServer *http.Server
	upgrader   websocket.Upgrader
	logger     *zap.Logger
}

func New(cfg Config, deps Deps) *Server {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.MetricsHandler == nil {
		deps.MetricsHandler = promhttp.Handler()
	}
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:    cfg,
		deps:   deps,
		logger: deps.Logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(cfg.AllowedOrigins),
		},
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestLogger(deps.Logger, deps.Metrics))
	engine.Use(cors.New(corsConfig(cfg.AllowedOrigins)))
	s.engine = engine
	s.registerRoutes()
	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      engine,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	if len(origins) == 0 || util.Contains(origins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	c.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	c.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	c.AllowWebSockets = true
	return c
}

func originChecker(origins []string) func(r *http.Request) bool {
	if len(origins) == 0 || util.Contains(origins, "*") {
		return func(*http.Request) bool { return true }
	}
	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		allowed[o] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := allowed[origin]
		return ok
	}
}

func (s *Server) registerRoutes() {
	s.engine.GET("/healthz", s.handleHealth)
	s.engine.GET("/metrics", gin.WrapH(s.deps.MetricsHandler))

	api := s.engine.Group("/api")
	api.GET("/questions/:modality", s.handleQuestions)
	api.POST("/diagnosis", s.handleDiagnosis)

	wizard := api.Group("/wizard/sessions")
	wizard.PUT("/:id", s.handleSaveWizard)
	wizard.GET("/:id", s.handleLoadWizard)
	wizard.DELETE("/:id", s.handleDeleteWizard)

	api.GET("/weather/locations", s.handleLocations)
	api.GET("/weather/forecast", s.handleForecast)

	api.GET("/packages", s.handlePackages)
	api.GET("/packages/:slug", s.handlePackage)

	api.POST("/concierge/sessions", s.handleNewChat)
	api.POST("/concierge/sessions/:id/messages", s.handleChatMessage)
	api.GET("/concierge/ws", s.handleChatSocket)

	api.POST("/leads", s.handleCaptureLead)

	admin := api.Group("/admin")
	admin.POST("/login", s.handleLogin)
	protected := admin.Group("", requireAdmin(s.deps.Auth))
	protected.GET("/leads", s.handleListLeads)
	protected.PATCH("/leads/:id", s.handleUpdateLead)
}

// Handler exposes the engine for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start blocks until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("HTTP server listening", zap.String("addr", s.cfg.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
