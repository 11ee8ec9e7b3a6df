package dashboard

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"weatherdash.app/internal/core/forecast"
	"weatherdash.app/internal/core/history"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// Forecaster runs a weather lookup
type Forecaster interface {
	Query(ctx context.Context, request forecast.QueryRequest) (*forecast.QueryResult, error)
}

// HistoryStore remembers successful lookups
type HistoryStore interface {
	Record(ctx context.Context, record *forecast.WeatherRecord) (*history.Entry, error)
	Clear(ctx context.Context) error
	Entries() []history.Entry
	Find(id string) (history.Entry, error)
}

// Dashboard is the single-user session controller.
// At most one lookup runs at a time; a trigger arriving while busy is rejected.
type Dashboard struct {
	forecaster Forecaster
	history    HistoryStore
	logger     ports.Logger

	busy    atomic.Bool
	mu      sync.RWMutex
	current *forecast.QueryResult
}

type Dependencies struct {
	Forecaster Forecaster
	History    HistoryStore
	Logger     ports.Logger
}

func New(deps Dependencies) (*Dashboard, error) {
	if deps.Forecaster == nil {
		return nil, errors.NewValidationError("forecaster is required")
	}
	if deps.History == nil {
		return nil, errors.NewValidationError("history store is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &Dashboard{
		forecaster: deps.Forecaster,
		history:    deps.History,
		logger:     deps.Logger,
	}, nil
}

// Search looks up the weather for a free-text location and records it in history
func (d *Dashboard) Search(ctx context.Context, location string) (*forecast.QueryResult, error) {
	if strings.TrimSpace(location) == "" {
		return nil, errors.NewValidationError("location is required")
	}

	if !d.busy.CompareAndSwap(false, true) {
		return nil, errors.NewBusyError("a weather lookup is already in progress")
	}
	defer d.busy.Store(false)

	result, err := d.forecaster.Query(ctx, forecast.QueryRequest{Location: location})
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", location, err)
	}

	d.mu.Lock()
	d.current = result
	d.mu.Unlock()

	if result.HasData() {
		if _, err := d.history.Record(ctx, result.Data); err != nil {
			d.logger.Warn("Failed to persist history entry",
				ports.F("location", result.Data.Location),
				ports.F("error", err))
		}
	}

	return result, nil
}

// SearchCoordinates runs a lookup for the caller's position.
// A denied lookup fails without touching the busy flag or the current result.
func (d *Dashboard) SearchCoordinates(ctx context.Context, coords Coordinates) (*forecast.QueryResult, error) {
	if coords.Denied() {
		var cause error
		if coords.Error != "" {
			cause = fmt.Errorf("geolocation: %s", coords.Error)
		}
		d.logger.Warn("Geolocation unavailable", ports.F("reason", coords.Error))
		return nil, errors.NewGeolocationError(GeolocationDeniedMessage, cause)
	}
	return d.Search(ctx, coords.Query())
}

// Replay repeats the lookup of a remembered history entry
func (d *Dashboard) Replay(ctx context.Context, id string) (*forecast.QueryResult, error) {
	entry, err := d.history.Find(id)
	if err != nil {
		return nil, fmt.Errorf("replay %s: %w", id, err)
	}
	return d.Search(ctx, entry.Location)
}

// History returns the remembered lookups, newest first
func (d *Dashboard) History() []history.Entry {
	return d.history.Entries()
}

// ClearHistory forgets every remembered lookup
func (d *Dashboard) ClearHistory(ctx context.Context) error {
	if err := d.history.Clear(ctx); err != nil {
		return errors.NewDatabaseError("failed to clear history", err)
	}
	return nil
}

// Current returns the most recent successful lookup, or nil
func (d *Dashboard) Current() *forecast.QueryResult {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.current
}

// IsBusy reports whether a lookup is in flight
func (d *Dashboard) IsBusy() bool {
	return d.busy.Load()
}
