package infrastructure

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"weatherdash.app/internal/mocks"
	"weatherdash.app/internal/ports"
)

type breakerService struct {
	*mocks.CompletionService
	state string
}

func (b breakerService) BreakerState() string { return b.state }

type pingStore struct {
	*mocks.KeyValueStore
	err error
}

func (p pingStore) Ping(ctx context.Context) error { return p.err }

func TestCompletionHealthChecker(t *testing.T) {
	tests := []struct {
		name          string
		state         string
		expectStatus  string
		expectBreaker bool
	}{
		{name: "Closed", state: "closed", expectStatus: ports.StatusHealthy, expectBreaker: true},
		{name: "HalfOpen", state: "half-open", expectStatus: ports.StatusHealthy, expectBreaker: true},
		{name: "Open", state: "open", expectStatus: ports.StatusUnhealthy, expectBreaker: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ai := mocks.NewCompletionService(t)
			ai.EXPECT().GetProviderName().Return("gemini")

			status := NewCompletionHealthChecker(breakerService{CompletionService: ai, state: tt.state}).Check(context.Background())

			assert.Equal(t, "ai", status.Component)
			assert.Equal(t, tt.expectStatus, status.Status)
			assert.Equal(t, "gemini", status.Details["provider"])
			assert.Equal(t, tt.state, status.Details["circuit_breaker"])
		})
	}

	t.Run("WithoutBreaker", func(t *testing.T) {
		ai := mocks.NewCompletionService(t)
		ai.EXPECT().GetProviderName().Return("openai")

		status := NewCompletionHealthChecker(ai).Check(context.Background())

		assert.Equal(t, ports.StatusHealthy, status.Status)
		assert.NotContains(t, status.Details, "circuit_breaker")
	})

	t.Run("NilService", func(t *testing.T) {
		status := NewCompletionHealthChecker(nil).Check(context.Background())

		assert.Equal(t, ports.StatusUnhealthy, status.Status)
		assert.NotEmpty(t, status.Error)
	})
}

func TestStoreHealthChecker(t *testing.T) {
	t.Run("PingSucceeds", func(t *testing.T) {
		status := NewStoreHealthChecker(pingStore{KeyValueStore: mocks.NewKeyValueStore(t)}, "redis").Check(context.Background())

		assert.Equal(t, ports.StatusHealthy, status.Status)
		assert.Equal(t, "redis", status.Details["type"])
		assert.Equal(t, true, status.Details["connected"])
	})

	t.Run("PingFails", func(t *testing.T) {
		store := pingStore{KeyValueStore: mocks.NewKeyValueStore(t), err: fmt.Errorf("connection refused")}

		status := NewStoreHealthChecker(store, "redis").Check(context.Background())

		assert.Equal(t, ports.StatusUnhealthy, status.Status)
		assert.Equal(t, "connection refused", status.Error)
	})

	t.Run("FallsBackToExists", func(t *testing.T) {
		store := mocks.NewKeyValueStore(t)
		store.EXPECT().Exists(mock.Anything, "health:probe").Return(false, nil)

		status := NewStoreHealthChecker(store, "memory").Check(context.Background())

		assert.Equal(t, ports.StatusHealthy, status.Status)
	})

	t.Run("NilStore", func(t *testing.T) {
		status := NewStoreHealthChecker(nil, "memory").Check(context.Background())

		assert.Equal(t, ports.StatusUnhealthy, status.Status)
	})
}
