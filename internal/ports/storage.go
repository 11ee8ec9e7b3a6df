package ports

import (
	"context"
	"time"
)

// KeyValueStore defines the contract for persistent key-value slots.
// Get returns a NotFound error when the key is absent or expired.
// A zero ttl on Set means the value never expires.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// ResultCache stores serializable values under string keys
type ResultCache interface {
	Get(ctx context.Context, key string, target interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// CacheSerializer defines the contract for data serialization
type CacheSerializer interface {
	Serialize(data interface{}) ([]byte, error)
	Deserialize(data []byte, target interface{}) error
}

// StoreStats represents key-value store access counters
type StoreStats struct {
	Hits        int64     `json:"hits"`
	Misses      int64     `json:"misses"`
	TotalOps    int64     `json:"total_ops"`
	HitRatio    float64   `json:"hit_ratio"`
	LastUpdated time.Time `json:"updated"`
}

// StoreStatsProvider is implemented by stores that count hits and misses
type StoreStatsProvider interface {
	GetStats() StoreStats
}
