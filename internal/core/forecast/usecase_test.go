package forecast

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherdash.app/internal/adapters/infrastructure"
	"weatherdash.app/internal/mocks"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

const parisResponse = "Here is the latest weather for Paris.\n```json\n" + parisJSON + "\n```\nHave a nice day!"

const parisInsights = "```json\n" + `{
  "analysisSummary": "Temperatures remain mild. A brief cooling is expected midweek.",
  "algorithmSteps": [
    {"title": "Observation", "description": "Station and satellite data are collected."},
    {"title": "Assimilation", "description": "Data is blended into the initial state."},
    {"title": "Simulation", "description": "The GFS model integrates the atmosphere forward."},
    {"title": "Post-processing", "description": "Raw output is corrected and localized."}
  ]
}` + "\n```"

type useCaseFixture struct {
	ai      *mocks.CompletionService
	cache   *mocks.ResultCache
	config  *mocks.ConfigProvider
	metrics *infrastructure.PrometheusMetricsCollector
	uc      *UseCase
}

func newUseCaseFixture(t *testing.T, forecastCfg ports.ForecastConfig) *useCaseFixture {
	t.Helper()

	f := &useCaseFixture{
		ai:      mocks.NewCompletionService(t),
		cache:   mocks.NewResultCache(t),
		config:  mocks.NewConfigProvider(t),
		metrics: infrastructure.NewPrometheusMetricsCollector(prometheus.NewRegistry()),
	}

	f.config.EXPECT().GetForecastConfig().Return(forecastCfg).Maybe()
	f.config.EXPECT().GetAIConfig().Return(ports.AIConfig{
		Provider:            "gemini",
		Model:               "gemini-2.5-flash",
		WeatherTemperature:  0.7,
		InsightsTemperature: 0.5,
		EnableSearch:        true,
		RequestTimeout:      30 * time.Second,
	}).Maybe()

	uc, err := NewUseCase(UseCaseDependencies{
		AI:      f.ai,
		Cache:   f.cache,
		Config:  f.config,
		Logger:  infrastructure.NewSlogLoggerAdapter(slog.New(slog.NewTextHandler(io.Discard, nil))),
		Metrics: f.metrics,
	})
	require.NoError(t, err)
	f.uc = uc
	return f
}

func isPurpose(purpose string) interface{} {
	return mock.MatchedBy(func(req ports.CompletionRequest) bool { return req.Purpose == purpose })
}

func TestNewUseCase_RequiresDependencies(t *testing.T) {
	logger := infrastructure.NewSlogLoggerAdapter(nil)
	metrics := infrastructure.NewPrometheusMetricsCollector(prometheus.NewRegistry())

	_, err := NewUseCase(UseCaseDependencies{})
	assert.True(t, errors.IsValidationError(err))

	_, err = NewUseCase(UseCaseDependencies{
		AI:      mocks.NewCompletionService(t),
		Cache:   mocks.NewResultCache(t),
		Config:  mocks.NewConfigProvider(t),
		Logger:  logger,
		Metrics: nil,
	})
	assert.True(t, errors.IsValidationError(err))

	uc, err := NewUseCase(UseCaseDependencies{
		AI:      mocks.NewCompletionService(t),
		Cache:   mocks.NewResultCache(t),
		Config:  mocks.NewConfigProvider(t),
		Logger:  logger,
		Metrics: metrics,
	})
	assert.NoError(t, err)
	assert.NotNil(t, uc)
}

func TestUseCase_Query_ParisEndToEnd(t *testing.T) {
	f := newUseCaseFixture(t, ports.ForecastConfig{EnableInsights: true})

	var weatherReq, insightsReq ports.CompletionRequest
	f.ai.EXPECT().Complete(mock.Anything, isPurpose(ports.PurposeWeather)).
		Run(func(ctx context.Context, req ports.CompletionRequest) {
			weatherReq = req
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
		}).
		Return(&ports.CompletionResponse{
			Text: parisResponse,
			Citations: []ports.Citation{
				{Title: "Météo-France", URI: "https://meteofrance.com/paris"},
				{Title: "", URI: ""},
			},
		}, nil).Once()
	f.ai.EXPECT().Complete(mock.Anything, isPurpose(ports.PurposeInsights)).
		Run(func(ctx context.Context, req ports.CompletionRequest) { insightsReq = req }).
		Return(&ports.CompletionResponse{Text: parisInsights}, nil).Once()

	result, err := f.uc.Query(context.Background(), QueryRequest{Location: "  Paris "})

	require.NoError(t, err)
	require.NotNil(t, result.Data)
	assert.Equal(t, "Paris, France", result.Data.Location)
	assert.Equal(t, "18°C", result.Data.Current.Temp)
	assert.Len(t, result.Data.Forecast, 5)
	assert.Equal(t, parisResponse, result.RawText)
	assert.Equal(t, []SourceRef{
		{Title: "Météo-France", URI: "https://meteofrance.com/paris"},
		{Title: "Source", URI: "#"},
	}, result.Sources)
	require.NotNil(t, result.Insights)
	assert.Len(t, result.Insights.AlgorithmSteps, 4)

	assert.Equal(t, "Find the current weather and 5-day forecast for: Paris. Remember to format as JSON.", weatherReq.Prompt)
	assert.InDelta(t, 0.7, weatherReq.Temperature, 0.0001)
	assert.True(t, weatherReq.EnableSearch)
	assert.Contains(t, weatherReq.SystemInstruction, `"feels_like": "14°C"`)

	assert.True(t, strings.HasPrefix(insightsReq.Prompt, "Generate analysis summary and algorithm steps for this weather data: "))
	assert.Contains(t, insightsReq.Prompt,
		`{"temp":"18°C","condition":"Partly Cloudy","humidity":"60%","wind":"10 km/h NW","feels_like":"17°C"}`)
	assert.InDelta(t, 0.5, insightsReq.Temperature, 0.0001)
	assert.False(t, insightsReq.EnableSearch)

	snapshot := f.metrics.Snapshot()
	assert.Equal(t, int64(1), snapshot["queries"].(map[string]int64)[ports.QueryOutcomeSuccess])
}

func TestUseCase_Query_InsightsFailureDegrades(t *testing.T) {
	f := newUseCaseFixture(t, ports.ForecastConfig{EnableInsights: true})

	f.ai.EXPECT().Complete(mock.Anything, isPurpose(ports.PurposeWeather)).
		Return(&ports.CompletionResponse{
			Text:      parisResponse,
			Citations: []ports.Citation{{Title: "BBC Weather", URI: "https://bbc.co.uk/weather"}},
		}, nil).Once()
	f.ai.EXPECT().Complete(mock.Anything, isPurpose(ports.PurposeInsights)).
		Return(nil, fmt.Errorf("quota exceeded")).Once()

	result, err := f.uc.Query(context.Background(), QueryRequest{Location: "Paris"})

	require.NoError(t, err)
	require.NotNil(t, result.Data)
	assert.Equal(t, "Paris, France", result.Data.Location)
	assert.Len(t, result.Sources, 1)
	assert.Nil(t, result.Insights)

	snapshot := f.metrics.Snapshot()
	assert.Equal(t, int64(1), snapshot["queries"].(map[string]int64)[ports.QueryOutcomeDegraded])
}

func TestUseCase_Query_UnparseableInsights(t *testing.T) {
	f := newUseCaseFixture(t, ports.ForecastConfig{EnableInsights: true})

	f.ai.EXPECT().Complete(mock.Anything, isPurpose(ports.PurposeWeather)).
		Return(&ports.CompletionResponse{Text: parisResponse}, nil).Once()
	f.ai.EXPECT().Complete(mock.Anything, isPurpose(ports.PurposeInsights)).
		Return(&ports.CompletionResponse{Text: "I cannot analyze that."}, nil).Once()

	result, err := f.uc.Query(context.Background(), QueryRequest{Location: "Paris"})

	require.NoError(t, err)
	assert.NotNil(t, result.Data)
	assert.Nil(t, result.Insights)
	assert.NotNil(t, result.Sources)
}

func TestUseCase_Query_NoStructuredDataSkipsInsights(t *testing.T) {
	f := newUseCaseFixture(t, ports.ForecastConfig{EnableInsights: true})

	text := "I could not find reliable weather information for Atlantis."
	f.ai.EXPECT().Complete(mock.Anything, isPurpose(ports.PurposeWeather)).
		Return(&ports.CompletionResponse{Text: text}, nil).Once()

	result, err := f.uc.Query(context.Background(), QueryRequest{Location: "Atlantis"})

	require.NoError(t, err)
	assert.Nil(t, result.Data)
	assert.Equal(t, text, result.RawText)
	assert.Nil(t, result.Insights)
	assert.Empty(t, result.Sources)
}

func TestUseCase_Query_InsightsDisabled(t *testing.T) {
	f := newUseCaseFixture(t, ports.ForecastConfig{EnableInsights: false})

	f.ai.EXPECT().Complete(mock.Anything, isPurpose(ports.PurposeWeather)).
		Return(&ports.CompletionResponse{Text: parisResponse}, nil).Once()

	result, err := f.uc.Query(context.Background(), QueryRequest{Location: "Paris"})

	require.NoError(t, err)
	assert.NotNil(t, result.Data)
	assert.Nil(t, result.Insights)
}

func TestUseCase_Query_PrimaryFailure(t *testing.T) {
	f := newUseCaseFixture(t, ports.ForecastConfig{EnableInsights: true})

	f.ai.EXPECT().Complete(mock.Anything, isPurpose(ports.PurposeWeather)).
		Return(nil, context.DeadlineExceeded).Once()

	result, err := f.uc.Query(context.Background(), QueryRequest{Location: "Paris"})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.IsExternalAPIError(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	snapshot := f.metrics.Snapshot()
	assert.Equal(t, int64(1), snapshot["queries"].(map[string]int64)[ports.QueryOutcomeFailed])
}

func TestUseCase_Query_NilResponseIsFailure(t *testing.T) {
	f := newUseCaseFixture(t, ports.ForecastConfig{EnableInsights: true})

	f.ai.EXPECT().Complete(mock.Anything, isPurpose(ports.PurposeWeather)).Return(nil, nil).Once()

	_, err := f.uc.Query(context.Background(), QueryRequest{Location: "Paris"})

	assert.True(t, errors.IsExternalAPIError(err))
}

func TestUseCase_Query_ValidationError(t *testing.T) {
	f := newUseCaseFixture(t, ports.ForecastConfig{EnableInsights: true})

	result, err := f.uc.Query(context.Background(), QueryRequest{Location: "   "})

	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}

func TestUseCase_Query_CacheHit(t *testing.T) {
	f := newUseCaseFixture(t, ports.ForecastConfig{EnableInsights: true, EnableCache: true, CacheTTL: 10 * time.Minute})

	f.cache.EXPECT().Get(mock.Anything, "forecast:paris", mock.Anything).
		Run(func(ctx context.Context, key string, target interface{}) {
			*target.(*QueryResult) = QueryResult{Data: &WeatherRecord{Location: "Paris, France"}, RawText: "cached"}
		}).
		Return(nil).Once()

	result, err := f.uc.Query(context.Background(), QueryRequest{Location: "PARIS"})

	require.NoError(t, err)
	assert.Equal(t, "cached", result.RawText)
	assert.Equal(t, "Paris, France", result.Data.Location)
}

func TestUseCase_Query_CacheMissStoresResultWithRecord(t *testing.T) {
	f := newUseCaseFixture(t, ports.ForecastConfig{EnableInsights: false, EnableCache: true, CacheTTL: 10 * time.Minute})

	f.cache.EXPECT().Get(mock.Anything, "forecast:paris", mock.Anything).
		Return(errors.NewNotFoundError("cache miss")).Once()
	f.ai.EXPECT().Complete(mock.Anything, isPurpose(ports.PurposeWeather)).
		Return(&ports.CompletionResponse{Text: parisResponse}, nil).Once()
	f.cache.EXPECT().Set(mock.Anything, "forecast:paris", mock.AnythingOfType("*forecast.QueryResult"), 10*time.Minute).
		Return(nil).Once()

	result, err := f.uc.Query(context.Background(), QueryRequest{Location: "Paris"})

	require.NoError(t, err)
	assert.NotNil(t, result.Data)

	snapshot := f.metrics.Snapshot()
	cache := snapshot["result_cache"].(map[string]interface{})
	assert.Equal(t, int64(1), cache["misses"])
}

func TestUseCase_Query_CacheSkipsResultsWithoutRecord(t *testing.T) {
	f := newUseCaseFixture(t, ports.ForecastConfig{EnableCache: true, CacheTTL: time.Minute})

	f.cache.EXPECT().Get(mock.Anything, "forecast:atlantis", mock.Anything).
		Return(errors.NewNotFoundError("cache miss")).Once()
	f.ai.EXPECT().Complete(mock.Anything, isPurpose(ports.PurposeWeather)).
		Return(&ports.CompletionResponse{Text: "no data"}, nil).Once()

	result, err := f.uc.Query(context.Background(), QueryRequest{Location: "Atlantis"})

	require.NoError(t, err)
	assert.Nil(t, result.Data)
	f.cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
