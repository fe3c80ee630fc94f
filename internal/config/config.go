package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/constants"
)

type Config struct {
	Server   ServerConfig
	Redis    RedisConfig
	Postgres PostgresConfig
	Gemini   GeminiConfig
	OpenAI   OpenAIConfig
	Weather  WeatherConfig
	Auth     AuthConfig
	Queue    QueueConfig
	Logging  LoggingConfig
	Site     SiteConfig
}

type ServerConfig struct {
	Host           string
	Port           int
	Debug          bool
	AllowedOrigins []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey         string
	Model          string
	EnableFallback bool
}

// WeatherConfig points at the Open-Meteo endpoints; tests and mirrors override them.
type WeatherConfig struct {
	GeocodingURL string
	ForecastURL  string
	MarineURL    string
	Timeout      time.Duration
}

type AuthConfig struct {
	JWTSecret         string
	AdminUser         string
	AdminPasswordHash string
	TokenTTL          time.Duration
}

// AdminEnabled reports whether the admin console can issue tokens.
func (a AuthConfig) AdminEnabled() bool {
	return a.AdminUser != "" && a.AdminPasswordHash != "" && a.JWTSecret != ""
}

type QueueConfig struct {
	Enabled     bool
	Concurrency int
	Queues      map[string]int
}

type LoggingConfig struct {
	Level string
	File  string
}

type SiteConfig struct {
	Name            string
	Email           string
	Phone           string
	DefaultLanguage string
	NodeID          int64
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			Port:           getEnvInt("SERVER_PORT", 8080),
			Debug:          getEnvBool("SERVER_DEBUG", false),
			AllowedOrigins: parseCommaSeparated(getEnv("CORS_ALLOWED_ORIGINS", "*")),
			ReadTimeout:    getEnvDuration("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:   getEnvDuration("SERVER_WRITE_TIMEOUT", 60*time.Second),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Postgres: PostgresConfig{
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnvInt("POSTGRES_PORT", 5432),
			User:     getEnv("POSTGRES_USER", "metatravels"),
			Password: getEnv("POSTGRES_PASSWORD", ""),
			Database: getEnv("POSTGRES_DB", "metatravels"),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		},
		OpenAI: OpenAIConfig{
			APIKey:         getEnv("OPENAI_API_KEY", ""),
			Model:          getEnv("OPENAI_MODEL", "gpt-5-mini"),
			EnableFallback: getEnvBool("OPENAI_ENABLE_FALLBACK", true),
		},
		Weather: WeatherConfig{
			GeocodingURL: getEnv("WEATHER_GEOCODING_URL", constants.APIConfig.GeocodingURL),
			ForecastURL:  getEnv("WEATHER_FORECAST_URL", constants.APIConfig.ForecastURL),
			MarineURL:    getEnv("WEATHER_MARINE_URL", constants.APIConfig.MarineURL),
			Timeout:      getEnvDuration("WEATHER_TIMEOUT", constants.APIConfig.OpenMeteoTimeout),
		},
		Auth: AuthConfig{
			JWTSecret:         getEnv("JWT_SECRET", ""),
			AdminUser:         getEnv("ADMIN_USER", "admin"),
			AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
			TokenTTL:          getEnvDuration("ADMIN_TOKEN_TTL", 12*time.Hour),
		},
		Queue: QueueConfig{
			Enabled:     getEnvBool("QUEUE_ENABLED", true),
			Concurrency: getEnvInt("QUEUE_CONCURRENCY", 4),
			Queues:      parseQueueWeights(getEnv("QUEUE_WEIGHTS", "advisor=3,default=1")),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
		Site: SiteConfig{
			Name:            getEnv("SITE_NAME", "Meta Travels"),
			Email:           getEnv("SITE_EMAIL", "info@grupocaptura.com"),
			Phone:           getEnv("SITE_PHONE", "+52 99 9743 7686"),
			DefaultLanguage: getEnv("SITE_DEFAULT_LANGUAGE", "es"),
			NodeID:          int64(getEnvInt("NODE_ID", 0)),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Site.DefaultLanguage != "es" && c.Site.DefaultLanguage != "en" {
		return fmt.Errorf("SITE_DEFAULT_LANGUAGE must be es or en, got %q", c.Site.DefaultLanguage)
	}
	if c.Auth.AdminPasswordHash != "" && len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters when ADMIN_PASSWORD_HASH is set")
	}
	if c.Site.NodeID < 0 || c.Site.NodeID > 1023 {
		return fmt.Errorf("NODE_ID must be between 0 and 1023")
	}
	if c.Queue.Enabled && c.Queue.Concurrency <= 0 {
		return fmt.Errorf("QUEUE_CONCURRENCY must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseCommaSeparated(value string) []string {
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// parseQueueWeights reads "advisor=3,default=1" into asynq queue priorities.
func parseQueueWeights(value string) map[string]int {
	result := make(map[string]int)
	for _, part := range parseCommaSeparated(value) {
		name, weight, ok := strings.Cut(part, "=")
		if !ok {
			result[strings.TrimSpace(part)] = 1
			continue
		}
		w, err := strconv.Atoi(strings.TrimSpace(weight))
		if err != nil || w <= 0 {
			w = 1
		}
		result[strings.TrimSpace(name)] = w
	}
	return result
}
