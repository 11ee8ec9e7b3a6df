package external

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"weatherdash.app/internal/config"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// RedisKeyValueStore implements KeyValueStore port using Redis
type RedisKeyValueStore struct {
	client *redis.Client
	stats  storeCounters
}

// NewRedisKeyValueStore connects to Redis and verifies the connection
func NewRedisKeyValueStore(config *config.RedisConfig) (*RedisKeyValueStore, error) {
	if config == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         config.Addr,
		Password:     config.Password,
		DB:           config.DB,
		DialTimeout:  time.Duration(config.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(config.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.WriteTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewExternalAPIError("failed to connect to Redis", err)
	}

	return NewRedisKeyValueStoreFromClient(client), nil
}

// NewRedisKeyValueStoreFromClient wraps an existing client without pinging it
func NewRedisKeyValueStoreFromClient(client *redis.Client) *RedisKeyValueStore {
	return &RedisKeyValueStore{client: client}
}

func (r *RedisKeyValueStore) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("store key cannot be empty")
	}

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			r.stats.recordMiss()
			return nil, errors.NewNotFoundError("key not found")
		}
		return nil, errors.NewExternalAPIError("redis get operation failed", err)
	}

	r.stats.recordHit()
	return val, nil
}

// Set stores a value; a zero ttl keeps it until deleted
func (r *RedisKeyValueStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("store key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("store value cannot be nil")
	}
	if ttl < 0 {
		return errors.NewValidationError("store TTL cannot be negative")
	}

	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errors.NewExternalAPIError("redis set operation failed", err)
	}

	return nil
}

func (r *RedisKeyValueStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("store key cannot be empty")
	}

	if err := r.client.Del(ctx, key).Err(); err != nil {
		return errors.NewExternalAPIError("redis delete operation failed", err)
	}

	return nil
}

func (r *RedisKeyValueStore) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.NewValidationError("store key cannot be empty")
	}

	count, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return false, errors.NewExternalAPIError("redis exists operation failed", err)
	}

	return count > 0, nil
}

func (r *RedisKeyValueStore) GetStats() ports.StoreStats {
	return r.stats.snapshot()
}

// Close closes the Redis client connection
func (r *RedisKeyValueStore) Close() error {
	if err := r.client.Close(); err != nil {
		return errors.NewExternalAPIError("failed to close Redis connection", err)
	}
	return nil
}

// Ping checks if Redis connection is alive
func (r *RedisKeyValueStore) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.NewExternalAPIError("Redis ping failed", err)
	}
	return nil
}
