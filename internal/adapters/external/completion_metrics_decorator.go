package external

import (
	"context"
	"time"

	"weatherdash.app/internal/ports"
)

// CompletionMetricsDecorator records request counts and latency per provider and purpose
type CompletionMetricsDecorator struct {
	service ports.CompletionService
	metrics ports.MetricsCollector
}

func NewCompletionMetricsDecorator(service ports.CompletionService, metrics ports.MetricsCollector) ports.CompletionService {
	return &CompletionMetricsDecorator{
		service: service,
		metrics: metrics,
	}
}

func (d *CompletionMetricsDecorator) Complete(ctx context.Context, req ports.CompletionRequest) (*ports.CompletionResponse, error) {
	startTime := time.Now()
	resp, err := d.service.Complete(ctx, req)
	d.metrics.RecordCompletion(ctx, d.service.GetProviderName(), req.Purpose, err == nil, time.Since(startTime))
	return resp, err
}

func (d *CompletionMetricsDecorator) GetProviderName() string {
	return d.service.GetProviderName()
}

func (d *CompletionMetricsDecorator) BreakerState() string {
	return breakerStateOf(d.service)
}
