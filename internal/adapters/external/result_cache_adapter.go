package external

import (
	"context"
	"encoding/json"
	"time"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// JSONSerializer encodes cached values as JSON
type JSONSerializer struct{}

func (JSONSerializer) Serialize(data interface{}) ([]byte, error) {
	return json.Marshal(data)
}

func (JSONSerializer) Deserialize(data []byte, target interface{}) error {
	return json.Unmarshal(data, target)
}

// ResultCacheAdapter bridges a byte-oriented KeyValueStore to typed ResultCache values
type ResultCacheAdapter struct {
	store      ports.KeyValueStore
	serializer ports.CacheSerializer
}

// NewResultCacheAdapter creates a result cache; a nil serializer means JSON
func NewResultCacheAdapter(store ports.KeyValueStore, serializer ports.CacheSerializer) ports.ResultCache {
	if serializer == nil {
		serializer = JSONSerializer{}
	}
	return &ResultCacheAdapter{
		store:      store,
		serializer: serializer,
	}
}

// Get decodes the cached value into target; a miss is a NotFound error
func (c *ResultCacheAdapter) Get(ctx context.Context, key string, target interface{}) error {
	if target == nil {
		return errors.NewValidationError("cache target cannot be nil")
	}

	data, err := c.store.Get(ctx, key)
	if err != nil {
		return err
	}

	if err := c.serializer.Deserialize(data, target); err != nil {
		return errors.NewExternalAPIError("failed to deserialize cached value", err)
	}

	return nil
}

func (c *ResultCacheAdapter) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}

	data, err := c.serializer.Serialize(value)
	if err != nil {
		return errors.NewExternalAPIError("failed to serialize cached value", err)
	}

	return c.store.Set(ctx, key, data, ttl)
}
