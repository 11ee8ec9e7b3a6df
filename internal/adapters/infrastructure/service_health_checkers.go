package infrastructure

import (
	"context"

	"weatherdash.app/internal/ports"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type breakerStater interface {
	BreakerState() string
}

// CompletionHealthChecker reports on the configured generative AI provider
type CompletionHealthChecker struct {
	service ports.CompletionService
}

// NewCompletionHealthChecker creates a new AI provider health checker
func NewCompletionHealthChecker(service ports.CompletionService) *CompletionHealthChecker {
	return &CompletionHealthChecker{service: service}
}

// Check reports the provider name and circuit breaker state.
// It never calls the provider, so health probes do not consume quota.
func (c *CompletionHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "ai",
		Status:    ports.StatusHealthy,
		Details:   map[string]interface{}{},
	}

	if c.service == nil {
		status.Status = ports.StatusUnhealthy
		status.Error = "completion service is not available"
		return status
	}

	status.Details["provider"] = c.service.GetProviderName()
	if stater, ok := c.service.(breakerStater); ok {
		state := stater.BreakerState()
		status.Details["circuit_breaker"] = state
		if state == "open" {
			status.Status = ports.StatusUnhealthy
			status.Error = "circuit breaker is open"
		}
	}
	return status
}

// StoreHealthChecker reports on the key-value backend holding history
type StoreHealthChecker struct {
	store     ports.KeyValueStore
	storeType string
}

// NewStoreHealthChecker creates a new key-value store health checker
func NewStoreHealthChecker(store ports.KeyValueStore, storeType string) *StoreHealthChecker {
	return &StoreHealthChecker{store: store, storeType: storeType}
}

// Check pings backends that support it and otherwise probes with Exists
func (s *StoreHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "store",
		Details: map[string]interface{}{
			"type": s.storeType,
		},
	}

	if s.store == nil {
		status.Status = ports.StatusUnhealthy
		status.Error = "key-value store is not available"
		return status
	}

	var err error
	if p, ok := s.store.(pinger); ok {
		err = p.Ping(ctx)
	} else {
		_, err = s.store.Exists(ctx, "health:probe")
	}
	if err != nil {
		status.Status = ports.StatusUnhealthy
		status.Error = err.Error()
		return status
	}

	status.Status = ports.StatusHealthy
	status.Details["connected"] = true
	return status
}
