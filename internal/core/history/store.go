package history

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"weatherdash.app/internal/core/forecast"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// Store keeps the most recent lookups, one per location, newest first.
// The list lives in memory and is mirrored to a single key-value slot.
type Store struct {
	kv      ports.KeyValueStore
	key     string
	logger  ports.Logger
	metrics ports.MetricsCollector
	now     func() time.Time
	newID   func() (string, error)

	mu      sync.RWMutex
	entries []Entry
}

type StoreDependencies struct {
	KV      ports.KeyValueStore
	Config  ports.ConfigProvider
	Logger  ports.Logger
	Metrics ports.MetricsCollector
	Clock   func() time.Time
}

func NewStore(deps StoreDependencies) (*Store, error) {
	if deps.KV == nil {
		return nil, errors.NewValidationError("key-value store is required")
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

	key := deps.Config.GetHistoryConfig().Key
	if key == "" {
		return nil, errors.NewValidationError("history key is required")
	}

	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	return &Store{
		kv:      deps.KV,
		key:     key,
		logger:  deps.Logger,
		metrics: deps.Metrics,
		now:     clock,
		newID:   newEntryID,
		entries: []Entry{},
	}, nil
}

func newEntryID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Load replaces the in-memory list with the persisted one.
// A missing or unreadable slot yields an empty history; Load never fails.
func (s *Store) Load(ctx context.Context) []Entry {
	entries := s.readPersisted(ctx)

	s.mu.Lock()
	s.entries = entries
	s.mu.Unlock()

	s.metrics.RecordHistorySize(ctx, len(entries))
	s.logger.Info("History loaded", ports.F("entries", len(entries)))
	return cloneEntries(entries)
}

func (s *Store) readPersisted(ctx context.Context) []Entry {
	data, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			s.logger.Warn("Failed to read history, starting empty",
				ports.F("key", s.key),
				ports.F("error", err))
		}
		return []Entry{}
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.Warn("Malformed history, starting empty",
			ports.F("key", s.key),
			ports.F("error", err))
		return []Entry{}
	}
	if entries == nil {
		return []Entry{}
	}
	return entries
}

// Record prepends an entry for the record's location, dropping any earlier entry for the
// same location and evicting the oldest beyond MaxEntries. The in-memory list is updated
// even when persisting fails; the persistence error is returned.
func (s *Store) Record(ctx context.Context, record *forecast.WeatherRecord) (*Entry, error) {
	if record == nil {
		return nil, errors.NewValidationError("weather record is required")
	}

	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("generate history id: %w", err)
	}

	entry := Entry{
		ID:        id,
		Location:  record.Location,
		Temp:      record.Current.Temp,
		Condition: record.Current.Condition,
		Timestamp: s.now().UnixMilli(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	updated := make([]Entry, 0, MaxEntries)
	updated = append(updated, entry)
	for _, existing := range s.entries {
		if existing.SameLocation(entry.Location) {
			continue
		}
		if len(updated) == MaxEntries {
			break
		}
		updated = append(updated, existing)
	}
	s.entries = updated

	s.metrics.RecordHistorySize(ctx, len(updated))
	if err := s.persist(ctx, updated); err != nil {
		return &entry, err
	}

	s.logger.Debug("History entry recorded",
		ports.F("location", entry.Location),
		ports.F("entries", len(updated)))
	return &entry, nil
}

func (s *Store) persist(ctx context.Context, entries []Entry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	if err := s.kv.Set(ctx, s.key, data, 0); err != nil {
		return fmt.Errorf("persist history: %w", err)
	}
	return nil
}

// Clear empties the history and removes the persisted slot
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = []Entry{}
	s.metrics.RecordHistorySize(ctx, 0)
	if err := s.kv.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}

	s.logger.Info("History cleared")
	return nil
}

// Entries returns a copy of the current history, newest first
func (s *Store) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneEntries(s.entries)
}

// Find returns the entry with the given id
func (s *Store) Find(id string) (Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, entry := range s.entries {
		if entry.ID == id {
			return entry, nil
		}
	}
	return Entry{}, errors.NewNotFoundError(fmt.Sprintf("history entry %s not found", id))
}

func cloneEntries(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}
