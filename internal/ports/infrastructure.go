package ports

import (
	"context"
	"time"
)

// ServerConfig represents server configuration
type ServerConfig struct {
	Port      int
	StaticDir string
}

// AIConfig represents the generative service settings the core depends on
type AIConfig struct {
	Provider            string
	Model               string
	WeatherTemperature  float32
	InsightsTemperature float32
	EnableSearch        bool
	RequestTimeout      time.Duration
}

// ForecastConfig represents forecast query configuration
type ForecastConfig struct {
	EnableInsights bool
	EnableCache    bool
	CacheTTL       time.Duration
}

// HistoryConfig represents search history configuration
type HistoryConfig struct {
	StoreType string
	Key       string
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetServerConfig() ServerConfig
	GetAIConfig() AIConfig
	GetForecastConfig() ForecastConfig
	GetHistoryConfig() HistoryConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Query outcomes reported to MetricsCollector.RecordQuery
const (
	QueryOutcomeSuccess  = "success"
	QueryOutcomeNoData   = "no_data"
	QueryOutcomeDegraded = "degraded"
	QueryOutcomeFailed   = "failed"
	QueryOutcomeCached   = "cached"
)

// MetricsCollector defines the contract for metrics collection
type MetricsCollector interface {
	RecordCompletion(ctx context.Context, provider, purpose string, success bool, duration time.Duration)
	RecordQuery(ctx context.Context, outcome string)
	RecordHistorySize(ctx context.Context, size int)
	RecordCacheHit(ctx context.Context)
	RecordCacheMiss(ctx context.Context)
}

// MetricsReporter exposes a JSON-friendly snapshot of collected metrics
type MetricsReporter interface {
	GetMetrics(ctx context.Context) (map[string]interface{}, error)
}
