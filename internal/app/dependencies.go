package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"weatherdash.app/internal/adapters/external"
	"weatherdash.app/internal/adapters/infrastructure"
	"weatherdash.app/internal/config"
	"weatherdash.app/internal/ports"
)

type DependencyContainer struct {
	config   *config.Config
	registry *prometheus.Registry
	metrics  *infrastructure.PrometheusMetricsCollector
	store    ports.KeyValueStore
	ports    *ports.ApplicationPorts
	closers  []io.Closer
}

// NewDependencyContainer builds every port from cfg.
// The key-value store and the AI request log are opened here and released by Cleanup.
func NewDependencyContainer(ctx context.Context, cfg *config.Config) (*DependencyContainer, error) {
	container := &DependencyContainer{
		config:   cfg,
		registry: prometheus.NewRegistry(),
	}

	container.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	container.metrics = infrastructure.NewPrometheusMetricsCollector(container.registry)

	if err := container.initializeStore(); err != nil {
		return nil, fmt.Errorf("initialize store: %w", err)
	}

	if err := container.initializePorts(ctx); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializeStore() error {
	slog.Info("Initializing history store...", "type", c.config.History.StoreType.String())

	store, err := external.NewKeyValueStoreFactory().CreateKeyValueStore(c.config)
	if err != nil {
		return fmt.Errorf("create key-value store: %w", err)
	}

	c.store = store
	if closer, ok := store.(io.Closer); ok {
		c.closers = append(c.closers, closer)
	}
	slog.Info("History store initialized",
		"type", c.config.History.StoreType.String(),
		"redis_addr", c.config.Cache.Redis.Addr)
	return nil
}

func (c *DependencyContainer) initializePorts(ctx context.Context) error {
	slog.Info("Initializing ports...")

	logger := infrastructure.NewSlogLoggerAdapter(slog.Default())

	ai := c.config.AI
	completion, err := external.NewCompletionServiceFactory().CreateCompletionService(ctx, &ai)
	if err != nil {
		return fmt.Errorf("create completion service: %w", err)
	}

	resilient, err := external.NewResilientCompletionService(completion, external.ResilienceConfig{
		RequestsPerSecond: ai.RateLimitRPS,
		Burst:             ai.RateLimitBurst,
		MaxFailures:       ai.BreakerMaxFailures,
		OpenTimeout:       time.Duration(ai.BreakerTimeoutSeconds) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("create resilient completion service: %w", err)
	}

	service := external.NewCompletionMetricsDecorator(resilient, c.metrics)

	// AI request logging goes to its own file when configured
	if ai.EnableLogging {
		var aiLogger ports.Logger = logger
		if ai.LogFilePath != "" {
			fileLogger, err := infrastructure.NewFileLoggerAdapter(ai.LogFilePath)
			if err != nil {
				slog.Warn("Failed to create file logger, falling back to slog", "error", err)
			} else {
				aiLogger = fileLogger
				c.closers = append(c.closers, fileLogger)
				slog.Info("AI request file logging enabled", "path", ai.LogFilePath)
			}
		}
		service = external.NewCompletionLoggingDecorator(service, aiLogger, ai.Model())
	}

	slog.Info("Completion service initialized",
		"provider", service.GetProviderName(),
		"model", ai.Model(),
		"search", ai.EnableSearch)

	c.ports = &ports.ApplicationPorts{
		CompletionService: service,
		HistoryStore:      c.store,
		ResultCache:       external.NewResultCacheAdapter(c.store, nil),
		ConfigProvider:    infrastructure.NewConfigProviderAdapter(c.config),
		Logger:            logger,
		Metrics:           c.metrics,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// Registry returns the Prometheus registry holding the dashboard instruments
func (c *DependencyContainer) Registry() *prometheus.Registry {
	return c.registry
}

// MetricsCollector returns the collector behind ApplicationPorts.Metrics
func (c *DependencyContainer) MetricsCollector() *infrastructure.PrometheusMetricsCollector {
	return c.metrics
}

// Cleanup releases everything opened by NewDependencyContainer, newest first
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.closers = nil
	return firstErr
}
