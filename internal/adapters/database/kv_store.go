package database

import (
	"context"
	stderrors "errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// KeyValueEntry is the database model for a single key-value slot
type KeyValueEntry struct {
	Key       string `gorm:"primaryKey;size:255"`
	Value     []byte `gorm:"not null"`
	ExpiresAt *time.Time
	UpdatedAt time.Time
}

func (KeyValueEntry) TableName() string {
	return "key_value_entries"
}

func (e KeyValueEntry) expired(now time.Time) bool {
	return e.ExpiresAt != nil && now.After(*e.ExpiresAt)
}

// KeyValueStore implements the KeyValueStore port using GORM
type KeyValueStore struct {
	db  *gorm.DB
	now func() time.Time
}

func NewKeyValueStore(db *gorm.DB) (*KeyValueStore, error) {
	if db == nil {
		return nil, errors.NewValidationError("database is required")
	}
	return &KeyValueStore{db: db, now: time.Now}, nil
}

func (s *KeyValueStore) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("store key cannot be empty")
	}

	var entry KeyValueEntry
	result := s.db.WithContext(ctx).Where(map[string]interface{}{"key": key}).Take(&entry)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("key not found")
		}
		return nil, errors.NewDatabaseError("failed to read key", result.Error)
	}

	if entry.expired(s.now()) {
		return nil, errors.NewNotFoundError("key not found")
	}

	return entry.Value, nil
}

// Set upserts the slot; a zero ttl keeps it until deleted
func (s *KeyValueStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("store key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("store value cannot be nil")
	}
	if ttl < 0 {
		return errors.NewValidationError("store TTL cannot be negative")
	}

	entry := KeyValueEntry{Key: key, Value: value}
	if ttl > 0 {
		expiresAt := s.now().Add(ttl)
		entry.ExpiresAt = &expiresAt
	}

	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "expires_at", "updated_at"}),
	}).Create(&entry)
	if result.Error != nil {
		return errors.NewDatabaseError("failed to write key", result.Error)
	}

	return nil
}

func (s *KeyValueStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("store key cannot be empty")
	}

	result := s.db.WithContext(ctx).Where(map[string]interface{}{"key": key}).Delete(&KeyValueEntry{})
	if result.Error != nil {
		return errors.NewDatabaseError("failed to delete key", result.Error)
	}

	return nil
}

func (s *KeyValueStore) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.Get(ctx, key)
	if err == nil {
		return true, nil
	}
	if errors.IsNotFoundError(err) {
		return false, nil
	}
	return false, err
}

// Ping checks if the database connection is alive
func (s *KeyValueStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return errors.NewDatabaseError("failed to get database handle", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.NewDatabaseError("database ping failed", err)
	}
	return nil
}

var _ ports.KeyValueStore = (*KeyValueStore)(nil)

// Close releases the underlying connection pool
func (s *KeyValueStore) Close() error {
	if err := Close(s.db); err != nil {
		return errors.NewDatabaseError("failed to close database", err)
	}
	return nil
}
