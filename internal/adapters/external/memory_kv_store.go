package external

import (
	"context"
	"sync"
	"time"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// MemoryKeyValueStore keeps slots in process memory; they do not survive a restart
type MemoryKeyValueStore struct {
	data  map[string]memoryItem
	mutex sync.RWMutex
	stats storeCounters
}

type memoryItem struct {
	data      []byte
	expiresAt time.Time
}

func (i memoryItem) expired(now time.Time) bool {
	return !i.expiresAt.IsZero() && now.After(i.expiresAt)
}

func NewMemoryKeyValueStore() *MemoryKeyValueStore {
	return &MemoryKeyValueStore{
		data: make(map[string]memoryItem),
	}
}

func (c *MemoryKeyValueStore) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("store key cannot be empty")
	}

	c.mutex.RLock()
	item, exists := c.data[key]
	c.mutex.RUnlock()

	if !exists || item.expired(time.Now()) {
		c.stats.recordMiss()
		return nil, errors.NewNotFoundError("key not found")
	}

	c.stats.recordHit()
	out := make([]byte, len(item.data))
	copy(out, item.data)
	return out, nil
}

func (c *MemoryKeyValueStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("store key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("store value cannot be nil")
	}
	if ttl < 0 {
		return errors.NewValidationError("store TTL cannot be negative")
	}

	item := memoryItem{data: make([]byte, len(value))}
	copy(item.data, value)
	if ttl > 0 {
		item.expiresAt = time.Now().Add(ttl)
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data[key] = item
	return nil
}

func (c *MemoryKeyValueStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("store key cannot be empty")
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.data, key)
	return nil
}

func (c *MemoryKeyValueStore) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.NewValidationError("store key cannot be empty")
	}

	c.mutex.RLock()
	item, exists := c.data[key]
	c.mutex.RUnlock()

	if !exists {
		return false, nil
	}
	return !item.expired(time.Now()), nil
}

// Clear drops every slot
func (c *MemoryKeyValueStore) Clear(ctx context.Context) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data = make(map[string]memoryItem)
	return nil
}

func (c *MemoryKeyValueStore) Ping(ctx context.Context) error {
	return nil
}

func (c *MemoryKeyValueStore) GetStats() ports.StoreStats {
	return c.stats.snapshot()
}
