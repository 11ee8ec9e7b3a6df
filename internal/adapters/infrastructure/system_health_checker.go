package infrastructure

import (
	"context"

	"weatherdash.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	aiChecker      ports.HealthChecker
	storeChecker   ports.HealthChecker
	configProvider ports.ConfigProvider
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	AIChecker      ports.HealthChecker
	StoreChecker   ports.HealthChecker
	ConfigProvider ports.ConfigProvider
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	return &SystemHealthChecker{
		aiChecker:      config.AIChecker,
		storeChecker:   config.StoreChecker,
		configProvider: config.ConfigProvider,
	}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus)

	if s.aiChecker != nil {
		results["ai"] = s.aiChecker.Check(ctx)
	}

	if s.storeChecker != nil {
		results["store"] = s.storeChecker.Check(ctx)
	}

	if s.configProvider != nil {
		aiConfig := s.configProvider.GetAIConfig()
		forecastConfig := s.configProvider.GetForecastConfig()
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    ports.StatusHealthy,
			Details: map[string]interface{}{
				"aiProvider":      aiConfig.Provider,
				"aiModel":         aiConfig.Model,
				"insightsEnabled": forecastConfig.EnableInsights,
				"cacheEnabled":    forecastConfig.EnableCache,
			},
		}
	}

	return results
}

// IsHealthy reports whether every component in results is healthy
func IsHealthy(results map[string]ports.HealthStatus) bool {
	for _, status := range results {
		if status.Status != ports.StatusHealthy {
			return false
		}
	}
	return true
}
