// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weatherdash.app/internal/core/dashboard"
	"weatherdash.app/internal/core/forecast"
	"weatherdash.app/internal/core/history"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port      int
	StaticDir string
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router           *gin.Engine
	config           ServerConfig
	dashboard        DashboardUseCase
	metricsCollector MetricsCollector
	healthChecker    ports.SystemHealthChecker
	gatherer         prometheus.Gatherer
}

// DashboardUseCase is the session controller the HTTP adapter drives
type DashboardUseCase interface {
	Search(ctx context.Context, location string) (*forecast.QueryResult, error)
	SearchCoordinates(ctx context.Context, coords dashboard.Coordinates) (*forecast.QueryResult, error)
	Replay(ctx context.Context, id string) (*forecast.QueryResult, error)
	History() []history.Entry
	ClearHistory(ctx context.Context) error
}

type MetricsCollector interface {
	GetMetrics(ctx context.Context) (map[string]interface{}, error)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config              ServerConfig
	Dashboard           DashboardUseCase
	MetricsCollector    MetricsCollector
	SystemHealthChecker ports.SystemHealthChecker
	Gatherer            prometheus.Gatherer
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	if err := RegisterValidators(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	router := gin.New()
	router.Use(gin.Recovery())

	server := &HTTPServerAdapter{
		router:           router,
		config:           opts.Config,
		dashboard:        opts.Dashboard,
		metricsCollector: opts.MetricsCollector,
		healthChecker:    opts.SystemHealthChecker,
		gatherer:         gatherer,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.Dashboard == nil {
		return errors.NewValidationError("dashboard use case is required")
	}
	if opts.MetricsCollector == nil {
		return errors.NewValidationError("metrics collector is required")
	}
	if opts.SystemHealthChecker == nil {
		return errors.NewValidationError("system health checker is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/weather", s.getWeather)
		api.POST("/weather/geolocation", s.postGeolocation)
		api.GET("/history", s.getHistory)
		api.DELETE("/history", s.clearHistory)
		api.POST("/history/:id/replay", s.replayHistory)
		api.GET("/health", s.getHealth)
		api.GET("/metrics", s.getMetrics)
	}

	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	s.setupStaticFiles()
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}

// setupStaticFiles serves the UI bundle when the static directory exists
func (s *HTTPServerAdapter) setupStaticFiles() {
	dir := s.config.StaticDir
	if dir == "" {
		return
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		slog.Debug("Static directory not found, UI disabled", "dir", dir)
		return
	}

	if assets := filepath.Join(dir, "static"); isDir(assets) {
		s.router.Static("/static", assets)
	}
	if index := filepath.Join(dir, "index.html"); isFile(index) {
		s.router.StaticFile("/", index)
	}
	if favicon := filepath.Join(dir, "favicon.ico"); isFile(favicon) {
		s.router.StaticFile("/favicon.ico", favicon)
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
