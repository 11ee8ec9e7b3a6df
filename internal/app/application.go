package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"weatherdash.app/internal/adapters/api"
	"weatherdash.app/internal/adapters/infrastructure"
	"weatherdash.app/internal/config"
	"weatherdash.app/internal/core/dashboard"
	"weatherdash.app/internal/core/forecast"
	"weatherdash.app/internal/core/history"
	"weatherdash.app/internal/ports"
)

type Application struct {
	config *config.Config

	// Use Cases
	forecastUseCase *forecast.UseCase
	historyStore    *history.Store
	dashboard       *dashboard.Dashboard

	// Adapters
	httpServer *http.Server
	router     *gin.Engine

	// Infrastructure
	deps  *DependencyContainer
	ports *ports.ApplicationPorts
}

func NewApplication(ctx context.Context) (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	deps, err := NewDependencyContainer(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	app, err := NewApplicationWithDependencies(ctx, cfg, deps)
	if err != nil {
		_ = deps.Cleanup()
		return nil, err
	}
	return app, nil
}

// NewApplicationWithDependencies creates an application with provided dependencies
func NewApplicationWithDependencies(ctx context.Context, cfg *config.Config, deps *DependencyContainer) (*Application, error) {
	app := &Application{
		config: cfg,
		deps:   deps,
		ports:  deps.ApplicationPorts(),
	}

	if err := app.initializeUseCases(ctx); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases(ctx context.Context) error {
	slog.Info("Initializing use cases...")

	forecastUseCase, err := forecast.NewUseCase(forecast.UseCaseDependencies{
		AI:      a.ports.CompletionService,
		Cache:   a.ports.ResultCache,
		Config:  a.ports.ConfigProvider,
		Logger:  a.ports.Logger,
		Metrics: a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create forecast use case: %w", err)
	}
	a.forecastUseCase = forecastUseCase

	historyStore, err := history.NewStore(history.StoreDependencies{
		KV:      a.ports.HistoryStore,
		Config:  a.ports.ConfigProvider,
		Logger:  a.ports.Logger,
		Metrics: a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create history store: %w", err)
	}
	entries := historyStore.Load(ctx)
	slog.Info("Search history loaded", "entries", len(entries))
	a.historyStore = historyStore

	board, err := dashboard.New(dashboard.Dependencies{
		Forecaster: a.forecastUseCase,
		History:    a.historyStore,
		Logger:     a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create dashboard: %w", err)
	}
	a.dashboard = board

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	metricsCollector := infrastructure.NewMetricsCollectorAdapter(infrastructure.MetricsCollectorConfig{
		Collector: a.deps.MetricsCollector(),
		AI:        a.ports.CompletionService,
		Store:     a.ports.HistoryStore,
		Config:    a.ports.ConfigProvider,
	})

	systemHealthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		AIChecker:      infrastructure.NewCompletionHealthChecker(a.ports.CompletionService),
		StoreChecker:   infrastructure.NewStoreHealthChecker(a.ports.HistoryStore, a.config.History.StoreType.String()),
		ConfigProvider: a.ports.ConfigProvider,
	})

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port:      a.config.Server.Port,
			StaticDir: a.config.Server.StaticDir,
		},
		Dashboard:           a.dashboard,
		MetricsCollector:    metricsCollector,
		SystemHealthChecker: systemHealthChecker,
		Gatherer:            a.deps.Registry(),
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.router = httpAdapter.GetRouter()

	// WriteTimeout leaves room for the weather and insights requests back to back
	requestTimeout := time.Duration(a.config.AI.RequestTimeoutSeconds) * time.Second
	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.config.Server.Port),
		Handler:      a.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2*requestTimeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("Adapters initialized successfully")
	return nil
}

func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting HTTP server", "port", a.config.Server.Port)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	if err := a.deps.Cleanup(); err != nil {
		slog.Warn("Error releasing resources", "error", err)
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// GetDashboard returns the dashboard controller for testing
func (a *Application) GetDashboard() *dashboard.Dashboard {
	return a.dashboard
}
