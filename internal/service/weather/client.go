package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/constants"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/metrics"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/util"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/pkg/errors"
)

// Requester fetches a JSON document from an Open-Meteo endpoint.
type Requester interface {
	GetJSON(ctx context.Context, upstream, endpoint string, params url.Values, dest any) error
	IsCircuitOpen() bool
}

// APIClient retries transient failures with exponential backoff and trips a
// circuit breaker after repeated upstream failures.
type APIClient struct {
	httpClient *http.Client
	breaker    *util.CircuitBreaker
	metrics    *metrics.Metrics
	logger     *zap.Logger
	sleep      func(ctx context.Context, d time.Duration) error
}

func NewAPIClient(httpClient *http.Client, m *metrics.Metrics, logger *zap.Logger) *APIClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: constants.APIConfig.OpenMeteoTimeout}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &APIClient{
		httpClient: httpClient,
		breaker: util.NewCircuitBreaker(
			"open-meteo",
			constants.CircuitBreakerConfig.FailureThreshold,
			constants.CircuitBreakerConfig.ResetTimeout,
			constants.CircuitBreakerConfig.HealthCheckInterval,
			nil,
			logger,
		),
		metrics: m,
		logger:  logger,
		sleep:   sleepContext,
	}
}

func (c *APIClient) IsCircuitOpen() bool {
	return !c.breaker.CanExecute()
}

func (c *APIClient) GetJSON(ctx context.Context, upstream, endpoint string, params url.Values, dest any) error {
	if !c.breaker.CanExecute() {
		status := c.breaker.GetStatus()
		var retryAfter int64
		if status.NextRetryTime != nil {
			retryAfter = time.Until(*status.NextRetryTime).Milliseconds()
		}
		c.logger.Warn("Circuit breaker is open", zap.String("upstream", upstream), zap.Int64("retry_after_ms", retryAfter))
		c.metrics.IncUpstreamError(upstream, "circuit_open")
		return errors.NewAPIError("Circuit breaker open", 503, map[string]any{
			"upstream":       upstream,
			"retry_after_ms": retryAfter,
		})
	}

	reqURL := endpoint
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	var lastErr error
	for attempt := 0; attempt < constants.RetryConfig.MaxAttempts; attempt++ {
		if attempt > 0 {
			delay := computeDelay(attempt - 1)
			c.logger.Warn("Request failed, retrying",
				zap.String("upstream", upstream),
				zap.Error(lastErr),
				zap.Int("attempt", attempt+1),
				zap.Duration("delay", delay),
			)
			if err := c.sleep(ctx, delay); err != nil {
				return err
			}
		}

		body, retry, err := c.do(ctx, upstream, reqURL)
		if err == nil {
			c.breaker.RecordSuccess()
			if err := json.Unmarshal(body, dest); err != nil {
				c.metrics.IncUpstreamError(upstream, "decode")
				return errors.NewAPIError("invalid upstream response", 502, map[string]any{"upstream": upstream}).WithCause(err)
			}
			return nil
		}
		lastErr = err
		if !retry {
			return err
		}
		c.breaker.RecordFailure(0)
		if !c.breaker.CanExecute() {
			break
		}
	}

	return lastErr
}

// do performs one attempt. retry reports whether the failure is transient.
func (c *APIClient) do(ctx context.Context, upstream, reqURL string) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveUpstream(upstream, "error", time.Since(start))
		c.metrics.IncUpstreamError(upstream, "transport")
		if ctx.Err() != nil {
			return nil, false, ctx.Err()
		}
		return nil, true, errors.NewAPIError("upstream request failed", 502, map[string]any{"upstream": upstream}).WithCause(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	c.metrics.ObserveUpstream(upstream, strconv.Itoa(resp.StatusCode), time.Since(start))
	if err != nil {
		c.metrics.IncUpstreamError(upstream, "read")
		return nil, true, errors.NewAPIError("failed to read upstream response", 502, map[string]any{"upstream": upstream}).WithCause(err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		c.metrics.IncUpstreamError(upstream, "status_"+strconv.Itoa(resp.StatusCode))
		return nil, true, errors.NewAPIError(fmt.Sprintf("Server error: %d", resp.StatusCode), 502, map[string]any{
			"upstream": upstream,
			"status":   resp.StatusCode,
		})
	case resp.StatusCode >= 400:
		c.metrics.IncUpstreamError(upstream, "status_"+strconv.Itoa(resp.StatusCode))
		return nil, false, errors.NewAPIError(fmt.Sprintf("Client error: %d", resp.StatusCode), 502, map[string]any{
			"upstream": upstream,
			"status":   resp.StatusCode,
			"body":     util.TruncateString(string(body), 200),
		})
	}

	return body, false, nil
}

func computeDelay(attempt int) time.Duration {
	base := constants.RetryConfig.BaseDelay * time.Duration(math.Pow(2, float64(attempt)))
	jitter := time.Duration(rand.Float64() * float64(constants.RetryConfig.Jitter))
	return base + jitter
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
