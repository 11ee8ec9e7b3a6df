package external

import (
	"fmt"

	"weatherdash.app/internal/adapters/database"
	"weatherdash.app/internal/config"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

type KeyValueStoreFactory struct{}

func NewKeyValueStoreFactory() *KeyValueStoreFactory {
	return &KeyValueStoreFactory{}
}

// CreateKeyValueStore builds the backend selected by HISTORY_STORE_TYPE.
// Redis and database stores implement Close and must be closed by the caller.
func (f *KeyValueStoreFactory) CreateKeyValueStore(cfg *config.Config) (ports.KeyValueStore, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("config cannot be nil", nil)
	}

	switch cfg.History.StoreType {
	case config.StoreTypeMemory:
		return NewMemoryKeyValueStore(), nil
	case config.StoreTypeRedis:
		return NewRedisKeyValueStore(&cfg.Cache.Redis)
	case config.StoreTypeDatabase:
		db, err := database.Open(&cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := database.RunMigrations(db); err != nil {
			_ = database.Close(db)
			return nil, err
		}
		return database.NewKeyValueStore(db)
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported store type: %s", cfg.History.StoreType.String()), nil)
	}
}
