package forecast

import (
	"context"
	"fmt"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

const (
	defaultSourceTitle = "Source"
	defaultSourceURI   = "#"
)

type UseCase struct {
	ai      ports.CompletionService
	cache   ports.ResultCache
	config  ports.ConfigProvider
	logger  ports.Logger
	metrics ports.MetricsCollector
}

type UseCaseDependencies struct {
	AI      ports.CompletionService
	Cache   ports.ResultCache
	Config  ports.ConfigProvider
	Logger  ports.Logger
	Metrics ports.MetricsCollector
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.AI == nil {
		return nil, errors.NewValidationError("completion service is required")
	}
	if deps.Cache == nil {
		return nil, errors.NewValidationError("cache is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	return &UseCase{
		ai:      deps.AI,
		cache:   deps.Cache,
		config:  deps.Config,
		logger:  deps.Logger,
		metrics: deps.Metrics,
	}, nil
}

// Query runs the weather request followed by the insights request and merges both.
// Only a failure of the weather request is returned; an insights failure leaves Insights nil.
func (uc *UseCase) Query(ctx context.Context, request QueryRequest) (*QueryResult, error) {
	if err := request.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid weather query: " + err.Error())
	}

	request.NormalizeLocation()
	location := request.Location
	uc.logger.Debug("Querying weather", ports.F("location", location))

	cfg := uc.config.GetForecastConfig()
	if cfg.EnableCache {
		if cached := uc.fromCache(ctx, request); cached != nil {
			uc.metrics.RecordQuery(ctx, ports.QueryOutcomeCached)
			return cached, nil
		}
	}

	result, err := uc.fetch(ctx, location, cfg.EnableInsights)
	if err != nil {
		uc.metrics.RecordQuery(ctx, ports.QueryOutcomeFailed)
		uc.logger.Error("Weather query failed",
			ports.F("location", location),
			ports.F("error", err))
		return nil, fmt.Errorf("query weather for %s: %w", location, err)
	}

	uc.metrics.RecordQuery(ctx, queryOutcome(result, cfg.EnableInsights))

	if cfg.EnableCache && result.HasData() {
		if cacheErr := uc.cache.Set(ctx, request.CacheKey(), result, cfg.CacheTTL); cacheErr != nil {
			uc.logger.Warn("Failed to cache weather result",
				ports.F("location", location),
				ports.F("error", cacheErr))
		}
	}

	uc.logger.Debug("Weather query completed",
		ports.F("location", location),
		ports.F("has_data", result.HasData()),
		ports.F("sources", len(result.Sources)),
		ports.F("has_insights", result.Insights != nil))
	return result, nil
}

func (uc *UseCase) fromCache(ctx context.Context, request QueryRequest) *QueryResult {
	var cached QueryResult
	if err := uc.cache.Get(ctx, request.CacheKey(), &cached); err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Warn("Failed to read cached weather result",
				ports.F("location", request.Location),
				ports.F("error", err))
		}
		uc.metrics.RecordCacheMiss(ctx)
		return nil
	}

	uc.metrics.RecordCacheHit(ctx)
	uc.logger.Debug("Weather result found in cache", ports.F("location", request.Location))
	return &cached
}

func (uc *UseCase) fetch(ctx context.Context, location string, withInsights bool) (*QueryResult, error) {
	aiCfg := uc.config.GetAIConfig()

	resp, err := uc.complete(ctx, aiCfg, ports.CompletionRequest{
		Purpose:           ports.PurposeWeather,
		Prompt:            weatherPrompt(location),
		SystemInstruction: weatherSystemInstruction,
		Temperature:       aiCfg.WeatherTemperature,
		EnableSearch:      aiCfg.EnableSearch,
	})
	if err != nil {
		return nil, errors.NewExternalAPIError("weather request failed", err)
	}

	result := &QueryResult{
		Data:    ParseWeatherRecord(resp.Text),
		RawText: resp.Text,
		Sources: toSourceRefs(resp.Citations),
	}

	if !result.HasData() {
		uc.logger.Warn("No structured weather data in response",
			ports.F("location", location),
			ports.F("text_length", len(resp.Text)))
		return result, nil
	}

	if withInsights {
		result.Insights = uc.fetchInsights(ctx, aiCfg, result.Data)
	}
	return result, nil
}

func (uc *UseCase) fetchInsights(ctx context.Context, aiCfg ports.AIConfig, record *WeatherRecord) *Insights {
	prompt, err := insightsPrompt(record.Current)
	if err != nil {
		uc.logger.Warn("Failed to build insights prompt", ports.F("error", err))
		return nil
	}

	resp, err := uc.complete(ctx, aiCfg, ports.CompletionRequest{
		Purpose:           ports.PurposeInsights,
		Prompt:            prompt,
		SystemInstruction: insightsSystemInstruction,
		Temperature:       aiCfg.InsightsTemperature,
	})
	if err != nil {
		uc.logger.Warn("Failed to fetch weather insights",
			ports.F("location", record.Location),
			ports.F("error", err))
		return nil
	}

	insights := ParseInsights(resp.Text)
	if insights == nil {
		uc.logger.Warn("No structured insights in response", ports.F("location", record.Location))
	}
	return insights
}

func (uc *UseCase) complete(ctx context.Context, aiCfg ports.AIConfig, req ports.CompletionRequest) (*ports.CompletionResponse, error) {
	if aiCfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, aiCfg.RequestTimeout)
		defer cancel()
	}

	resp, err := uc.ai.Complete(ctx, req)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, fmt.Errorf("%s request returned no response", req.Purpose)
	}
	return resp, nil
}

func toSourceRefs(citations []ports.Citation) []SourceRef {
	sources := make([]SourceRef, 0, len(citations))
	for _, c := range citations {
		source := SourceRef{Title: c.Title, URI: c.URI}
		if source.Title == "" {
			source.Title = defaultSourceTitle
		}
		if source.URI == "" {
			source.URI = defaultSourceURI
		}
		sources = append(sources, source)
	}
	return sources
}

func queryOutcome(result *QueryResult, withInsights bool) string {
	switch {
	case !result.HasData():
		return ports.QueryOutcomeNoData
	case withInsights && result.Insights == nil:
		return ports.QueryOutcomeDegraded
	default:
		return ports.QueryOutcomeSuccess
	}
}
