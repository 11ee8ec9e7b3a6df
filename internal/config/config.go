package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"weatherdash.app/pkg/errors"
)

const (
	maxRedisDB         = 15
	maxCacheTTLMinutes = 1440
	maxPortNumber      = 65535
	maxTemperature     = 2.0
	maxRequestTimeout  = 300
)

// Config represents the application configuration structure
type Config struct {
	Server   ServerConfig   `split_words:"true"`
	AI       AIConfig       `split_words:"true"`
	Forecast ForecastConfig `split_words:"true"`
	History  HistoryConfig  `split_words:"true"`
	Cache    CacheConfig    `split_words:"true"`
	Database DatabaseConfig `split_words:"true"`
}

type ServerConfig struct {
	Port      int    `envconfig:"SERVER_PORT" default:"8080"`
	StaticDir string `envconfig:"SERVER_STATIC_DIR" default:"public"`
}

// AIProvider selects the generative service backing weather lookups
type AIProvider int

const (
	AIProviderUnknown AIProvider = iota
	AIProviderGemini
	AIProviderOpenAI
)

func (p AIProvider) String() string {
	switch p {
	case AIProviderGemini:
		return "gemini"
	case AIProviderOpenAI:
		return "openai"
	default:
		return "unknown"
	}
}

func (p AIProvider) IsValid() bool {
	return p == AIProviderGemini || p == AIProviderOpenAI
}

func AIProviderFromString(s string) AIProvider {
	switch strings.ToLower(s) {
	case "gemini":
		return AIProviderGemini
	case "openai":
		return AIProviderOpenAI
	default:
		return AIProviderUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (p *AIProvider) UnmarshalText(text []byte) error {
	*p = AIProviderFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (p AIProvider) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

type AIConfig struct {
	Provider              AIProvider `envconfig:"AI_PROVIDER" default:"gemini"`
	GeminiAPIKey          string     `envconfig:"GEMINI_API_KEY"`
	GeminiModel           string     `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`
	OpenAIAPIKey          string     `envconfig:"OPENAI_API_KEY"`
	OpenAIBaseURL         string     `envconfig:"OPENAI_BASE_URL"`
	OpenAIModel           string     `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	WeatherTemperature    float32    `envconfig:"AI_WEATHER_TEMPERATURE" default:"0.7"`
	InsightsTemperature   float32    `envconfig:"AI_INSIGHTS_TEMPERATURE" default:"0.5"`
	EnableSearch          bool       `envconfig:"AI_ENABLE_SEARCH" default:"true"`
	RequestTimeoutSeconds int        `envconfig:"AI_REQUEST_TIMEOUT_SECONDS" default:"30"`
	RateLimitRPS          float64    `envconfig:"AI_RATE_LIMIT_RPS" default:"1"`
	RateLimitBurst        int        `envconfig:"AI_RATE_LIMIT_BURST" default:"2"`
	BreakerMaxFailures    uint32     `envconfig:"AI_BREAKER_MAX_FAILURES" default:"5"`
	BreakerTimeoutSeconds int        `envconfig:"AI_BREAKER_TIMEOUT_SECONDS" default:"30"`
	EnableLogging         bool       `envconfig:"AI_ENABLE_LOGGING" default:"true"`
	LogFilePath           string     `envconfig:"AI_LOG_FILE_PATH" default:"logs/ai_requests.log"`
}

// Model returns the model name of the selected provider
func (a AIConfig) Model() string {
	if a.Provider == AIProviderOpenAI {
		return a.OpenAIModel
	}
	return a.GeminiModel
}

type ForecastConfig struct {
	EnableInsights  bool `envconfig:"FORECAST_ENABLE_INSIGHTS" default:"true"`
	EnableCache     bool `envconfig:"FORECAST_ENABLE_CACHE" default:"false"`
	CacheTTLMinutes int  `envconfig:"FORECAST_CACHE_TTL_MINUTES" default:"10"`
}

// StoreType represents the key-value backend holding persistent state
type StoreType int

const (
	StoreTypeUnknown StoreType = iota
	StoreTypeMemory
	StoreTypeRedis
	StoreTypeDatabase
)

// String returns the string representation of store type
func (s StoreType) String() string {
	switch s {
	case StoreTypeMemory:
		return "memory"
	case StoreTypeRedis:
		return "redis"
	case StoreTypeDatabase:
		return "database"
	default:
		return "unknown"
	}
}

// IsValid checks if the store type is valid
func (s StoreType) IsValid() bool {
	return s == StoreTypeMemory || s == StoreTypeRedis || s == StoreTypeDatabase
}

// StoreTypeFromString converts string to StoreType enum
func StoreTypeFromString(s string) StoreType {
	switch s {
	case "memory":
		return StoreTypeMemory
	case "redis":
		return StoreTypeRedis
	case "database":
		return StoreTypeDatabase
	default:
		return StoreTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (s *StoreType) UnmarshalText(text []byte) error {
	*s = StoreTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (s StoreType) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type HistoryConfig struct {
	StoreType StoreType `envconfig:"HISTORY_STORE_TYPE" default:"database"`
	Key       string    `envconfig:"HISTORY_KEY" default:"weather_history"`
}

type CacheConfig struct {
	Redis RedisConfig `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

type DatabaseConfig struct {
	Driver     string `envconfig:"DB_DRIVER" default:"sqlite"`
	Host       string `envconfig:"DB_HOST" default:"localhost"`
	Port       int    `envconfig:"DB_PORT" default:"5432"`
	User       string `envconfig:"DB_USER" default:"postgres"`
	Password   string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name       string `envconfig:"DB_NAME" default:"weatherdash"`
	SSLMode    string `envconfig:"DB_SSL_MODE" default:"disable"`
	SQLitePath string `envconfig:"DB_SQLITE_PATH" default:"data/weatherdash.db"`
}

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.AI.Validate(); err != nil {
		return err
	}
	if err := c.Forecast.Validate(); err != nil {
		return err
	}
	if err := c.History.Validate(); err != nil {
		return err
	}
	switch c.History.StoreType {
	case StoreTypeRedis:
		return c.Cache.Redis.Validate()
	case StoreTypeDatabase:
		return c.Database.Validate()
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (a *AIConfig) Validate() error {
	if !a.Provider.IsValid() {
		return errors.NewConfigurationError("AI_PROVIDER must be one of: gemini, openai", nil)
	}

	switch a.Provider {
	case AIProviderGemini:
		if a.GeminiAPIKey == "" {
			return errors.NewConfigurationError("GEMINI_API_KEY is required when AI_PROVIDER is gemini", nil)
		}
		if a.GeminiModel == "" {
			return errors.NewConfigurationError("GEMINI_MODEL cannot be empty", nil)
		}
	case AIProviderOpenAI:
		if a.OpenAIAPIKey == "" {
			return errors.NewConfigurationError("OPENAI_API_KEY is required when AI_PROVIDER is openai", nil)
		}
		if a.OpenAIModel == "" {
			return errors.NewConfigurationError("OPENAI_MODEL cannot be empty", nil)
		}
		if a.OpenAIBaseURL != "" && !strings.HasPrefix(a.OpenAIBaseURL, "http://") && !strings.HasPrefix(a.OpenAIBaseURL, "https://") {
			return errors.NewConfigurationError("OPENAI_BASE_URL must start with http:// or https://", nil)
		}
	}

	if a.WeatherTemperature < 0 || a.WeatherTemperature > maxTemperature {
		return errors.NewConfigurationError("AI_WEATHER_TEMPERATURE must be between 0 and 2", nil)
	}
	if a.InsightsTemperature < 0 || a.InsightsTemperature > maxTemperature {
		return errors.NewConfigurationError("AI_INSIGHTS_TEMPERATURE must be between 0 and 2", nil)
	}
	if a.RequestTimeoutSeconds < 1 || a.RequestTimeoutSeconds > maxRequestTimeout {
		return errors.NewConfigurationError("AI_REQUEST_TIMEOUT_SECONDS must be between 1 and 300 seconds", nil)
	}
	if a.RateLimitRPS <= 0 {
		return errors.NewConfigurationError("AI_RATE_LIMIT_RPS must be positive", nil)
	}
	if a.RateLimitBurst < 1 {
		return errors.NewConfigurationError("AI_RATE_LIMIT_BURST must be at least 1", nil)
	}
	if a.BreakerMaxFailures < 1 {
		return errors.NewConfigurationError("AI_BREAKER_MAX_FAILURES must be at least 1", nil)
	}
	if a.BreakerTimeoutSeconds < 1 {
		return errors.NewConfigurationError("AI_BREAKER_TIMEOUT_SECONDS must be at least 1 second", nil)
	}
	if a.EnableLogging && a.LogFilePath == "" {
		return errors.NewConfigurationError("AI_LOG_FILE_PATH cannot be empty when AI_ENABLE_LOGGING is set", nil)
	}
	return nil
}

func (f *ForecastConfig) Validate() error {
	if f.CacheTTLMinutes < 1 || f.CacheTTLMinutes > maxCacheTTLMinutes {
		return errors.NewConfigurationError("FORECAST_CACHE_TTL_MINUTES must be between 1 and 1440 minutes", nil)
	}
	return nil
}

func (h *HistoryConfig) Validate() error {
	if !h.StoreType.IsValid() {
		return errors.NewConfigurationError("HISTORY_STORE_TYPE must be one of: memory, redis, database", nil)
	}
	if strings.TrimSpace(h.Key) == "" {
		return errors.NewConfigurationError("HISTORY_KEY cannot be empty", nil)
	}
	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis store", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (d *DatabaseConfig) Validate() error {
	switch d.Driver {
	case "sqlite":
		if d.SQLitePath == "" {
			return errors.NewConfigurationError("DB_SQLITE_PATH cannot be empty when DB_DRIVER is sqlite", nil)
		}
		return nil
	case "postgres":
	default:
		return errors.NewConfigurationError("DB_DRIVER must be one of: postgres, sqlite", nil)
	}

	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	return d.ValidateSSLMode()
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}
