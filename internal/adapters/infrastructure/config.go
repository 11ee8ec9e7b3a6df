package infrastructure

import (
	"time"

	"weatherdash.app/internal/config"
	"weatherdash.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port:      c.config.Server.Port,
		StaticDir: c.config.Server.StaticDir,
	}
}

// GetAIConfig returns the generative service settings
func (c *ConfigProviderAdapter) GetAIConfig() ports.AIConfig {
	ai := c.config.AI
	return ports.AIConfig{
		Provider:            ai.Provider.String(),
		Model:               ai.Model(),
		WeatherTemperature:  ai.WeatherTemperature,
		InsightsTemperature: ai.InsightsTemperature,
		EnableSearch:        ai.EnableSearch,
		RequestTimeout:      time.Duration(ai.RequestTimeoutSeconds) * time.Second,
	}
}

// GetForecastConfig returns forecast query configuration
func (c *ConfigProviderAdapter) GetForecastConfig() ports.ForecastConfig {
	return ports.ForecastConfig{
		EnableInsights: c.config.Forecast.EnableInsights,
		EnableCache:    c.config.Forecast.EnableCache,
		CacheTTL:       time.Duration(c.config.Forecast.CacheTTLMinutes) * time.Minute,
	}
}

// GetHistoryConfig returns search history configuration
func (c *ConfigProviderAdapter) GetHistoryConfig() ports.HistoryConfig {
	return ports.HistoryConfig{
		StoreType: c.config.History.StoreType.String(),
		Key:       c.config.History.Key,
	}
}
