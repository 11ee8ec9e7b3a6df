package infrastructure

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"weatherdash.app/internal/ports"
)

// PrometheusMetricsCollector implements the MetricsCollector port with Prometheus instruments.
// It also keeps plain counters so the JSON metrics endpoint can report them.
type PrometheusMetricsCollector struct {
	completions       *prometheus.CounterVec
	completionLatency *prometheus.HistogramVec
	queries           *prometheus.CounterVec
	historySize       prometheus.Gauge
	cacheHits         prometheus.Counter
	cacheMisses       prometheus.Counter

	mu       sync.RWMutex
	counts   map[string]int64
	outcomes map[string]int64
	size     int
	hits     int64
	misses   int64
}

// NewPrometheusMetricsCollector registers the dashboard instruments on reg
func NewPrometheusMetricsCollector(reg prometheus.Registerer) *PrometheusMetricsCollector {
	factory := promauto.With(reg)

	return &PrometheusMetricsCollector{
		completions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weatherdash_ai_requests_total",
				Help: "The total number of generative AI requests",
			},
			[]string{"provider", "purpose", "status"},
		),
		completionLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "weatherdash_ai_request_duration_seconds",
				Help:    "Generative AI request duration in seconds",
				Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
			},
			[]string{"provider", "purpose"},
		),
		queries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weatherdash_queries_total",
				Help: "The total number of weather queries by outcome",
			},
			[]string{"outcome"},
		),
		historySize: factory.NewGauge(prometheus.GaugeOpts{
			Name: "weatherdash_history_entries",
			Help: "Number of entries in the search history",
		}),
		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "weatherdash_result_cache_hits_total",
			Help: "The total number of result cache hits",
		}),
		cacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "weatherdash_result_cache_misses_total",
			Help: "The total number of result cache misses",
		}),
		counts:   make(map[string]int64),
		outcomes: make(map[string]int64),
	}
}

func (m *PrometheusMetricsCollector) RecordCompletion(ctx context.Context, provider, purpose string, success bool, duration time.Duration) {
	status := "success"
	if !success {
		status = "failure"
	}
	m.completions.WithLabelValues(provider, purpose, status).Inc()
	m.completionLatency.WithLabelValues(provider, purpose).Observe(duration.Seconds())

	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[purpose+"_"+status]++
}

func (m *PrometheusMetricsCollector) RecordQuery(ctx context.Context, outcome string) {
	m.queries.WithLabelValues(outcome).Inc()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes[outcome]++
}

func (m *PrometheusMetricsCollector) RecordHistorySize(ctx context.Context, size int) {
	m.historySize.Set(float64(size))

	m.mu.Lock()
	defer m.mu.Unlock()
	m.size = size
}

func (m *PrometheusMetricsCollector) RecordCacheHit(ctx context.Context) {
	m.cacheHits.Inc()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.hits++
}

func (m *PrometheusMetricsCollector) RecordCacheMiss(ctx context.Context) {
	m.cacheMisses.Inc()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.misses++
}

// Snapshot returns the plain counters collected so far
func (m *PrometheusMetricsCollector) Snapshot() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	requests := make(map[string]int64, len(m.counts))
	for k, v := range m.counts {
		requests[k] = v
	}
	queries := make(map[string]int64, len(m.outcomes))
	for k, v := range m.outcomes {
		queries[k] = v
	}

	total := m.hits + m.misses
	hitRatio := float64(0)
	if total > 0 {
		hitRatio = float64(m.hits) / float64(total)
	}

	return map[string]interface{}{
		"ai_requests":  requests,
		"queries":      queries,
		"history_size": m.size,
		"result_cache": map[string]interface{}{
			"hits":      m.hits,
			"misses":    m.misses,
			"hit_ratio": hitRatio,
		},
	}
}

// MetricsCollectorAdapter aggregates metrics for the JSON metrics endpoint
type MetricsCollectorAdapter struct {
	collector *PrometheusMetricsCollector
	ai        ports.CompletionService
	store     ports.KeyValueStore
	config    ports.ConfigProvider
}

// MetricsCollectorConfig holds configuration for creating the metrics collector
type MetricsCollectorConfig struct {
	Collector *PrometheusMetricsCollector
	AI        ports.CompletionService
	Store     ports.KeyValueStore
	Config    ports.ConfigProvider
}

// NewMetricsCollectorAdapter creates a new metrics collector adapter
func NewMetricsCollectorAdapter(config MetricsCollectorConfig) *MetricsCollectorAdapter {
	return &MetricsCollectorAdapter{
		collector: config.Collector,
		ai:        config.AI,
		store:     config.Store,
		config:    config.Config,
	}
}

// GetMetrics returns aggregated metrics from all monitored components
func (m *MetricsCollectorAdapter) GetMetrics(ctx context.Context) (map[string]interface{}, error) {
	metrics := map[string]interface{}{}
	if m.collector != nil {
		metrics = m.collector.Snapshot()
	}

	if m.ai != nil {
		ai := map[string]interface{}{"provider": m.ai.GetProviderName()}
		if m.config != nil {
			cfg := m.config.GetAIConfig()
			ai["model"] = cfg.Model
			ai["search_enabled"] = cfg.EnableSearch
			ai["request_timeout_seconds"] = cfg.RequestTimeout.Seconds()
		}
		metrics["ai"] = ai
	}

	if statsProvider, ok := m.store.(ports.StoreStatsProvider); ok {
		metrics["store"] = statsProvider.GetStats()
	}

	return metrics, nil
}
