package ai

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/constants"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/metrics"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/util"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/pkg/errors"
)

// ErrNotConfigured is returned by NewModelManager when no provider key is set.
var ErrNotConfigured = stderrors.New("no AI provider configured")

// Provider is one model backend.
type Provider interface {
	Name() string
	Generate(ctx context.Context, prompt string, preset ModelPreset, opts *GenerateOptions) (ProviderResult, error)
	Chat(ctx context.Context, req ChatRequest) (ProviderResult, error)
	Ping(ctx context.Context) bool
}

// ModelManager runs requests on the primary provider, falls back to the
// secondary one, and trips a shared circuit breaker on upstream failures.
type ModelManager struct {
	primary        Provider
	fallback       Provider
	circuitBreaker *util.CircuitBreaker
	metrics        *metrics.Metrics
	logger         *zap.Logger
}

type ModelManagerConfig struct {
	GeminiAPIKey       string
	OpenAIAPIKey       string
	DefaultGeminiModel string
	DefaultOpenAIModel string
	EnableFallback     bool
}

func NewModelManager(ctx context.Context, cfg ModelManagerConfig, m *metrics.Metrics, logger *zap.Logger) (*ModelManager, error) {
	if cfg.GeminiAPIKey == "" && cfg.OpenAIAPIKey == "" {
		return nil, ErrNotConfigured
	}

	defaultGemini := cfg.DefaultGeminiModel
	if defaultGemini == "" {
		defaultGemini = "gemini-2.5-flash"
	}
	defaultOpenAI := cfg.DefaultOpenAIModel
	if defaultOpenAI == "" {
		defaultOpenAI = "gpt-5-mini"
	}

	var primary, fallback Provider
	if cfg.GeminiAPIKey != "" {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		primary = NewGeminiProvider(client, defaultGemini, logger)
	}

	if openaiProvider := NewOpenAIProvider(cfg.OpenAIAPIKey, defaultOpenAI, logger); openaiProvider != nil {
		switch {
		case primary == nil:
			primary = openaiProvider
		case cfg.EnableFallback:
			fallback = openaiProvider
			logger.Info("OpenAI fallback enabled", zap.String("model", defaultOpenAI))
		}
	}
	if fallback == nil {
		logger.Info("AI fallback disabled", zap.String("primary", primary.Name()))
	}

	return newModelManager(primary, fallback, m, logger), nil
}

func newModelManager(primary, fallback Provider, m *metrics.Metrics, logger *zap.Logger) *ModelManager {
	mm := &ModelManager{
		primary:  primary,
		fallback: fallback,
		metrics:  m,
		logger:   logger,
	}
	mm.circuitBreaker = util.NewCircuitBreaker(
		"model-providers",
		constants.CircuitBreakerConfig.FailureThreshold,
		constants.CircuitBreakerConfig.ResetTimeout,
		constants.CircuitBreakerConfig.HealthCheckInterval,
		mm.healthCheckPing,
		logger,
	)
	return mm
}

// Chat runs one conversational turn.
func (mm *ModelManager) Chat(ctx context.Context, req ChatRequest) (ProviderResult, *GenerateMetadata, error) {
	return mm.execute(ctx, "chat", func(p Provider) (ProviderResult, error) {
		return p.Chat(ctx, req)
	})
}

// GenerateJSON asks for a JSON document and decodes it into dest. Markdown
// code fences around the payload are tolerated.
func (mm *ModelManager) GenerateJSON(ctx context.Context, prompt string, preset ModelPreset, dest any, opts *GenerateOptions) (*GenerateMetadata, error) {
	var options GenerateOptions
	if opts != nil {
		options = *opts
	}
	options.JSONMode = true

	result, metadata, err := mm.execute(ctx, "generate_json", func(p Provider) (ProviderResult, error) {
		return p.Generate(ctx, prompt, preset, &options)
	})
	if err != nil {
		return nil, err
	}

	cleaned := stripCodeFence(result.Text)
	if cleaned == "" {
		return nil, fmt.Errorf("%s API returned empty response", metadata.Provider)
	}

	if err := json.Unmarshal([]byte(cleaned), dest); err != nil {
		mm.logger.Error("Failed to unmarshal JSON response",
			zap.String("provider", metadata.Provider),
			zap.Error(err),
			zap.String("response_preview", util.TruncateString(cleaned, 200)),
		)
		return nil, fmt.Errorf("invalid JSON from %s: %w", metadata.Provider, err)
	}

	return metadata, nil
}

func (mm *ModelManager) execute(ctx context.Context, op string, call func(Provider) (ProviderResult, error)) (ProviderResult, *GenerateMetadata, error) {
	if !mm.circuitBreaker.CanExecute() {
		status := mm.circuitBreaker.GetStatus()
		nextRetry := "unknown"
		if status.NextRetryTime != nil {
			nextRetry = util.FormatLocal(*status.NextRetryTime, "15:04")
		}
		mm.logger.Error("AI service unavailable (Circuit OPEN)",
			zap.String("operation", op),
			zap.Int("failure_count", status.FailureCount),
			zap.String("next_retry", nextRetry),
		)
		return ProviderResult{}, nil, errors.NewAPIError("AI service temporarily unavailable", 503, map[string]any{
			"operation":  op,
			"next_retry": nextRetry,
		})
	}

	result, primaryErr := mm.run(ctx, mm.primary, call)
	if primaryErr == nil {
		mm.circuitBreaker.RecordSuccess()
		return result, mm.metadata(mm.primary, result, false), nil
	}
	if ctx.Err() != nil {
		return ProviderResult{}, nil, ctx.Err()
	}

	var fallbackErr error
	if mm.fallback != nil {
		mm.logger.Warn("Primary AI provider failed, trying fallback",
			zap.String("operation", op),
			zap.String("primary", mm.primary.Name()),
			zap.Error(primaryErr),
		)
		result, fallbackErr = mm.run(ctx, mm.fallback, call)
		if fallbackErr == nil {
			mm.circuitBreaker.RecordSuccess()
			return result, mm.metadata(mm.fallback, result, true), nil
		}
		if ctx.Err() != nil {
			return ProviderResult{}, nil, ctx.Err()
		}
	}

	if isServiceFailure(primaryErr) || isServiceFailure(fallbackErr) {
		timeout := constants.CircuitBreakerConfig.ResetTimeout
		if isRateLimitError(primaryErr) || isRateLimitError(fallbackErr) {
			timeout = constants.CircuitBreakerConfig.RateLimitTimeout
		}
		mm.circuitBreaker.RecordFailure(timeout)
	}

	apiErr := errors.NewAPIError("AI providers failed", 502, map[string]any{"operation": op})
	apiErr.Cause = primaryErr
	if fallbackErr != nil {
		apiErr.Cause = fmt.Errorf("%w; fallback: %v", primaryErr, fallbackErr)
	}
	return ProviderResult{}, nil, apiErr
}

func (mm *ModelManager) run(ctx context.Context, p Provider, call func(Provider) (ProviderResult, error)) (ProviderResult, error) {
	upstream := strings.ToLower(p.Name())
	start := time.Now()
	result, err := call(p)
	if err != nil {
		mm.metrics.ObserveUpstream(upstream, "error", time.Since(start))
		reason := "error"
		if isRateLimitError(err) {
			reason = "rate_limit"
		} else if ctx.Err() != nil {
			reason = "canceled"
		}
		mm.metrics.IncUpstreamError(upstream, reason)
		return ProviderResult{}, err
	}
	mm.metrics.ObserveUpstream(upstream, "ok", time.Since(start))
	return result, nil
}

func (mm *ModelManager) metadata(p Provider, result ProviderResult, fallback bool) *GenerateMetadata {
	return &GenerateMetadata{
		Provider:     p.Name(),
		Model:        result.Model,
		UsedFallback: fallback,
	}
}

func (mm *ModelManager) healthCheckPing() bool {
	ctx, cancel := context.WithTimeout(context.Background(), constants.CircuitBreakerConfig.HealthCheckTimeout)
	defer cancel()

	primaryOK := mm.primary.Ping(ctx)
	fallbackOK := false
	if mm.fallback != nil {
		fallbackOK = mm.fallback.Ping(ctx)
	}

	mm.logger.Info("Health Check: Result",
		zap.Bool("primary", primaryOK),
		zap.Bool("fallback", fallbackOK),
	)
	return primaryOK || fallbackOK
}

func (mm *ModelManager) GetCircuitStatus() util.CircuitBreakerStatus {
	return mm.circuitBreaker.GetStatus()
}

func (mm *ModelManager) ResetCircuit() {
	mm.circuitBreaker.Reset()
}

func stripCodeFence(text string) string {
	cleaned := strings.TrimSpace(text)
	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimSpace(strings.TrimPrefix(cleaned, "```json"))
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimSpace(strings.TrimPrefix(cleaned, "```"))
	}
	if strings.HasSuffix(cleaned, "```") {
		cleaned = strings.TrimSpace(strings.TrimSuffix(cleaned, "```"))
	}
	return cleaned
}

var (
	httpStatusPattern   = regexp.MustCompile(`\b(5\d{2})\b`)
	geminiCodePattern   = regexp.MustCompile(`"code":\s*(\d{3})`)
	leadingCodePattern  = regexp.MustCompile(`^(\d{3})\s`)
	rateLimitSubstrings = []string{"429", "rate limit", "quota", "resource_exhausted"}
)

// isServiceFailure reports upstream outages (timeouts, 5xx, rate limits), as
// opposed to request errors that would fail the same way on retry.
func isServiceFailure(err error) bool {
	if err == nil {
		return false
	}
	if stderrors.Is(err, context.DeadlineExceeded) || isRateLimitError(err) {
		return true
	}

	msg := err.Error()
	if strings.Contains(msg, "timeout") || strings.Contains(msg, "ETIMEDOUT") {
		return true
	}
	if code, ok := embeddedStatus(msg); ok {
		return code >= 500 && code < 600
	}
	return httpStatusPattern.MatchString(msg)
}

func isRateLimitError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	if code, ok := embeddedStatus(msg); ok && code == 429 {
		return true
	}
	return util.ContainsAnyFold(msg, rateLimitSubstrings)
}

func embeddedStatus(msg string) (int, bool) {
	for _, re := range []*regexp.Regexp{geminiCodePattern, leadingCodePattern} {
		if matches := re.FindStringSubmatch(msg); len(matches) > 1 {
			if code, err := strconv.Atoi(matches[1]); err == nil {
				return code, true
			}
		}
	}
	return 0, false
}
