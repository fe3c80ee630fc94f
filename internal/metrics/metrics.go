package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "metatravels"

// Metrics holds the Prometheus collectors of the backend. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	diagnoses        *prometheus.CounterVec
	confidence       *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	upstreamErrors   *prometheus.CounterVec
	cacheLookups     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	conciergeReplies *prometheus.CounterVec
	leadsCaptured    *prometheus.CounterVec
}

var (
	defaultOnce   sync.Once
	sharedMetrics *Metrics
)

// Default returns the instance registered with the global registry.
func Default() *Metrics {
	defaultOnce.Do(func() {
		sharedMetrics = MustNew(prometheus.DefaultRegisterer)
	})
	return sharedMetrics
}

// MustNew registers every collector against reg. Collectors that are
// already registered are reused; any other registration error panics.
func MustNew(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		diagnoses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "diagnosis",
			Name:      "results_total",
			Help:      "Scoring outcomes by modality and status.",
		}, []string{"modality", "status"}),
		confidence: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "diagnosis",
			Name:      "confidence_total",
			Help:      "Resolved diagnoses by confidence grade.",
		}, []string{"confidence"}),
		upstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "request_duration_seconds",
			Help:      "Latency of calls to external APIs.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"upstream", "status"}),
		upstreamErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "errors_total",
			Help:      "Failed calls to external APIs.",
		}, []string{"upstream", "reason"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "Cache lookups by cache and result.",
		}, []string{"cache", "result"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		conciergeReplies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "concierge",
			Name:      "replies_total",
			Help:      "Concierge replies by provider.",
		}, []string{"provider", "fallback"}),
		leadsCaptured: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "leads",
			Name:      "captured_total",
			Help:      "Captured leads by modality.",
		}, []string{"modality"}),
	}

	m.diagnoses = registerCounter(reg, m.diagnoses)
	m.confidence = registerCounter(reg, m.confidence)
	m.upstreamDuration = registerHistogram(reg, m.upstreamDuration)
	m.upstreamErrors = registerCounter(reg, m.upstreamErrors)
	m.cacheLookups = registerCounter(reg, m.cacheLookups)
	m.httpDuration = registerHistogram(reg, m.httpDuration)
	m.conciergeReplies = registerCounter(reg, m.conciergeReplies)
	m.leadsCaptured = registerCounter(reg, m.leadsCaptured)

	return m
}

func registerCounter(reg prometheus.Registerer, c *prometheus.CounterVec) *prometheus.CounterVec {
	if err := reg.Register(c); err != nil {
		if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return already.ExistingCollector.(*prometheus.CounterVec)
		}
		panic(err)
	}
	return c
}

func registerHistogram(reg prometheus.Registerer, h *prometheus.HistogramVec) *prometheus.HistogramVec {
	if err := reg.Register(h); err != nil {
		if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return already.ExistingCollector.(*prometheus.HistogramVec)
		}
		panic(err)
	}
	return h
}

func (m *Metrics) ObserveDiagnosis(modality, status, confidence string) {
	if m == nil {
		return
	}
	m.diagnoses.WithLabelValues(modality, status).Inc()
	if confidence != "" {
		m.confidence.WithLabelValues(confidence).Inc()
	}
}

func (m *Metrics) ObserveUpstream(upstream, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.upstreamDuration.WithLabelValues(upstream, status).Observe(d.Seconds())
}

func (m *Metrics) IncUpstreamError(upstream, reason string) {
	if m == nil {
		return
	}
	m.upstreamErrors.WithLabelValues(upstream, reason).Inc()
}

func (m *Metrics) ObserveCache(cache string, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(cache, result).Inc()
}

func (m *Metrics) ObserveHTTP(method, route, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.httpDuration.WithLabelValues(method, route, status).Observe(d.Seconds())
}

func (m *Metrics) ObserveConciergeReply(provider string, fallback bool) {
	if m == nil {
		return
	}
	fb := "false"
	if fallback {
		fb = "true"
	}
	m.conciergeReplies.WithLabelValues(provider, fb).Inc()
}

func (m *Metrics) IncLeadCaptured(modality string) {
	if m == nil {
		return
	}
	if modality == "" {
		modality = "none"
	}
	m.leadsCaptured.WithLabelValues(modality).Inc()
}
