package external

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// ResilienceConfig bounds the call rate and trips after consecutive failures
type ResilienceConfig struct {
	RequestsPerSecond float64
	Burst             int
	MaxFailures       uint32
	OpenTimeout       time.Duration
}

// ResilientCompletionService throttles calls and short-circuits while the provider is failing.
// Requests are never retried.
type ResilientCompletionService struct {
	service ports.CompletionService
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker
}

func NewResilientCompletionService(service ports.CompletionService, cfg ResilienceConfig) (*ResilientCompletionService, error) {
	if service == nil {
		return nil, errors.NewValidationError("completion service is required")
	}
	if cfg.RequestsPerSecond <= 0 || cfg.Burst < 1 {
		return nil, errors.NewConfigurationError("rate limit must be positive", nil)
	}
	if cfg.MaxFailures < 1 {
		return nil, errors.NewConfigurationError("breaker max failures must be at least 1", nil)
	}

	maxFailures := cfg.MaxFailures
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        service.GetProviderName(),
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
	})

	return &ResilientCompletionService{
		service: service,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		breaker: breaker,
	}, nil
}

func (r *ResilientCompletionService) Complete(ctx context.Context, req ports.CompletionRequest) (*ports.CompletionResponse, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, errors.NewExternalAPIError("rate limit wait aborted", err)
	}

	result, err := r.breaker.Execute(func() (interface{}, error) {
		return r.service.Complete(ctx, req)
	})
	if err != nil {
		if stderrors.Is(err, gobreaker.ErrOpenState) || stderrors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, errors.NewExternalAPIError("AI service temporarily unavailable", err)
		}
		return nil, err
	}

	resp, ok := result.(*ports.CompletionResponse)
	if !ok {
		return nil, errors.NewExternalAPIError("unexpected completion result type", nil)
	}
	return resp, nil
}

func (r *ResilientCompletionService) GetProviderName() string {
	return r.service.GetProviderName()
}

// BreakerState reports "closed", "half-open" or "open"
func (r *ResilientCompletionService) BreakerState() string {
	return r.breaker.State().String()
}

type breakerStateReporter interface {
	BreakerState() string
}

func breakerStateOf(service ports.CompletionService) string {
	if reporter, ok := service.(breakerStateReporter); ok {
		return reporter.BreakerState()
	}
	return ""
}
