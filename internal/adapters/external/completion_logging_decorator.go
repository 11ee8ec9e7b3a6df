package external

import (
	"context"
	"time"

	"weatherdash.app/internal/ports"
)

// CompletionLoggingDecorator decorates completion services with structured logging
type CompletionLoggingDecorator struct {
	service ports.CompletionService
	logger  ports.Logger
	model   string
}

// NewCompletionLoggingDecorator creates a new logging decorator for completion services
func NewCompletionLoggingDecorator(service ports.CompletionService, logger ports.Logger, model string) ports.CompletionService {
	return &CompletionLoggingDecorator{
		service: service,
		logger:  logger,
		model:   model,
	}
}

// Complete wraps the service call with request, response and error log entries.
// Prompts are not logged, only their length.
func (d *CompletionLoggingDecorator) Complete(ctx context.Context, req ports.CompletionRequest) (*ports.CompletionResponse, error) {
	providerName := d.service.GetProviderName()

	d.logger.Info("AI request started",
		ports.F("provider", providerName),
		ports.F("model", d.model),
		ports.F("purpose", req.Purpose),
		ports.F("search", req.EnableSearch),
		ports.F("prompt_length", len(req.Prompt)),
		ports.F("event", "request"))

	startTime := time.Now()
	resp, err := d.service.Complete(ctx, req)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("AI request failed",
			ports.F("provider", providerName),
			ports.F("model", d.model),
			ports.F("purpose", req.Purpose),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	textLength, citations := 0, 0
	if resp != nil {
		textLength = len(resp.Text)
		citations = len(resp.Citations)
	}

	d.logger.Info("AI request completed",
		ports.F("provider", providerName),
		ports.F("model", d.model),
		ports.F("purpose", req.Purpose),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("text_length", textLength),
		ports.F("citations", citations))

	return resp, nil
}

// GetProviderName delegates to the wrapped service
func (d *CompletionLoggingDecorator) GetProviderName() string {
	return d.service.GetProviderName()
}

// BreakerState exposes the wrapped service's breaker state, if any
func (d *CompletionLoggingDecorator) BreakerState() string {
	return breakerStateOf(d.service)
}
