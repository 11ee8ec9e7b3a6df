package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherdash.app/internal/adapters/external"
	"weatherdash.app/internal/adapters/infrastructure"
	"weatherdash.app/internal/config"
	"weatherdash.app/internal/core/dashboard"
	"weatherdash.app/internal/core/forecast"
	"weatherdash.app/internal/core/history"
	"weatherdash.app/internal/mocks"
	"weatherdash.app/internal/ports"
)

const parisWeatherText = "Here is the weather.\n```json\n" + `{
  "location": "Paris, France",
  "current": {"temp": "18°C", "condition": "Partly Cloudy", "humidity": "60%", "wind": "10 km/h NW"},
  "forecast": [
    {"day": "Mon", "temp_high": "20°", "temp_low": "12°", "condition": "Sunny"},
    {"day": "Tue", "temp_high": "19°", "temp_low": "11°", "condition": "Cloudy"}
  ],
  "advice": "Bring a light jacket."
}` + "\n```"

const parisInsightsText = "```json\n" + `{
  "analysisSummary": "Mild and stable.",
  "algorithmSteps": [
    {"title": "Observation", "description": "Collect data."},
    {"title": "Assimilation", "description": "Blend data."},
    {"title": "Simulation", "description": "Run the model."},
    {"title": "Post-processing", "description": "Correct output."}
  ]
}` + "\n```"

type handlerFixture struct {
	ai      *mocks.CompletionService
	kv      *external.MemoryKeyValueStore
	history *history.Store
	board   *dashboard.Dashboard
	router  *gin.Engine
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8080},
		AI: config.AIConfig{
			Provider:              config.AIProviderGemini,
			GeminiModel:           "gemini-2.5-flash",
			WeatherTemperature:    0.7,
			InsightsTemperature:   0.5,
			EnableSearch:          true,
			RequestTimeoutSeconds: 30,
		},
		Forecast: config.ForecastConfig{EnableInsights: true, CacheTTLMinutes: 10},
		History:  config.HistoryConfig{StoreType: config.StoreTypeMemory, Key: "weather_history"},
	}
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfgProvider := infrastructure.NewConfigProviderAdapter(testConfig())
	logger := infrastructure.NewSlogLoggerAdapter(slog.New(slog.NewTextHandler(io.Discard, nil)))
	collector := infrastructure.NewPrometheusMetricsCollector(prometheus.NewRegistry())

	f := &handlerFixture{
		ai: mocks.NewCompletionService(t),
		kv: external.NewMemoryKeyValueStore(),
	}

	uc, err := forecast.NewUseCase(forecast.UseCaseDependencies{
		AI:      f.ai,
		Cache:   external.NewResultCacheAdapter(f.kv, nil),
		Config:  cfgProvider,
		Logger:  logger,
		Metrics: collector,
	})
	require.NoError(t, err)

	f.history, err = history.NewStore(history.StoreDependencies{
		KV: f.kv, Config: cfgProvider, Logger: logger, Metrics: collector,
	})
	require.NoError(t, err)

	f.board, err = dashboard.New(dashboard.Dependencies{Forecaster: uc, History: f.history, Logger: logger})
	require.NoError(t, err)

	server, err := NewHTTPServerAdapter(ServerOptions{
		Config:    ServerConfig{Port: 8080},
		Dashboard: f.board,
		MetricsCollector: infrastructure.NewMetricsCollectorAdapter(infrastructure.MetricsCollectorConfig{
			Collector: collector, AI: f.ai, Store: f.kv, Config: cfgProvider,
		}),
		SystemHealthChecker: infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
			StoreChecker:   infrastructure.NewStoreHealthChecker(f.kv, "memory"),
			ConfigProvider: cfgProvider,
		}),
		Gatherer: prometheus.NewRegistry(),
	})
	require.NoError(t, err)
	f.router = server.GetRouter()
	return f
}

// newHandlerFixtureDashboard returns a fully wired dashboard for servers built by hand
func newHandlerFixtureDashboard(t *testing.T) DashboardUseCase {
	t.Helper()
	return newHandlerFixture(t).board
}

func isPurpose(purpose string) interface{} {
	return mock.MatchedBy(func(req ports.CompletionRequest) bool { return req.Purpose == purpose })
}

func (f *handlerFixture) expectParis() {
	f.ai.EXPECT().Complete(mock.Anything, isPurpose(ports.PurposeWeather)).Return(&ports.CompletionResponse{
		Text:      parisWeatherText,
		Citations: []ports.Citation{{Title: "weather.com", URI: "https://weather.com/paris"}},
	}, nil).Once()
	f.ai.EXPECT().Complete(mock.Anything, isPurpose(ports.PurposeInsights)).Return(&ports.CompletionResponse{
		Text: parisInsightsText,
	}, nil).Once()
}

func (f *handlerFixture) do(t *testing.T, method, target, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader).WithContext(context.Background())
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	var decoded map[string]interface{}
	if w.Code != http.StatusNoContent && w.Body.Len() > 0 && strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}
