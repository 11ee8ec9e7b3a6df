package external

import (
	"context"
	"fmt"

	"weatherdash.app/internal/config"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

type CompletionServiceFactory struct{}

func NewCompletionServiceFactory() *CompletionServiceFactory {
	return &CompletionServiceFactory{}
}

// CreateCompletionService builds the provider client selected by AI_PROVIDER
func (f *CompletionServiceFactory) CreateCompletionService(ctx context.Context, cfg *config.AIConfig) (ports.CompletionService, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("AI config cannot be nil", nil)
	}

	switch cfg.Provider {
	case config.AIProviderGemini:
		return NewGeminiCompletionService(ctx, GeminiCompletionParams{
			APIKey: cfg.GeminiAPIKey,
			Model:  cfg.GeminiModel,
		})
	case config.AIProviderOpenAI:
		return NewOpenAICompletionService(OpenAICompletionParams{
			APIKey:  cfg.OpenAIAPIKey,
			Model:   cfg.OpenAIModel,
			BaseURL: cfg.OpenAIBaseURL,
		})
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported AI provider: %s", cfg.Provider.String()), nil)
	}
}
