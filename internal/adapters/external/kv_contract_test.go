package external

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// runKeyValueStoreContract checks the behaviour every KeyValueStore shares
func runKeyValueStoreContract(t *testing.T, store ports.KeyValueStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("SetAndGet", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "contract:set", []byte("value"), time.Minute))

		data, err := store.Get(ctx, "contract:set")
		require.NoError(t, err)
		assert.Equal(t, []byte("value"), data)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "contract:overwrite", []byte("one"), 0))
		require.NoError(t, store.Set(ctx, "contract:overwrite", []byte("two"), 0))

		data, err := store.Get(ctx, "contract:overwrite")
		require.NoError(t, err)
		assert.Equal(t, []byte("two"), data)
	})

	t.Run("MissingKey", func(t *testing.T) {
		data, err := store.Get(ctx, "contract:missing")
		assert.Nil(t, data)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "contract:delete", []byte("v"), 0))
		require.NoError(t, store.Delete(ctx, "contract:delete"))

		_, err := store.Get(ctx, "contract:delete")
		assert.True(t, errors.IsNotFoundError(err))

		assert.NoError(t, store.Delete(ctx, "contract:delete"))
	})

	t.Run("Exists", func(t *testing.T) {
		exists, err := store.Exists(ctx, "contract:exists")
		require.NoError(t, err)
		assert.False(t, exists)

		require.NoError(t, store.Set(ctx, "contract:exists", []byte("v"), 0))

		exists, err = store.Exists(ctx, "contract:exists")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("Validation", func(t *testing.T) {
		_, err := store.Get(ctx, "")
		assert.True(t, errors.IsValidationError(err))

		assert.True(t, errors.IsValidationError(store.Set(ctx, "", []byte("v"), 0)))
		assert.True(t, errors.IsValidationError(store.Set(ctx, "k", nil, 0)))
		assert.True(t, errors.IsValidationError(store.Set(ctx, "k", []byte("v"), -time.Second)))
		assert.True(t, errors.IsValidationError(store.Delete(ctx, "")))

		_, err = store.Exists(ctx, "")
		assert.True(t, errors.IsValidationError(err))
	})
}
