package cache_test

import (
	"context"
	"testing"

	"github.com/mydash/dashcache/pkg/cache"
	"github.com/stretchr/testify/assert"
)

func testStore(t *testing.T, newStore func() cache.Store) {
	t.Helper()

	value := []byte("testValue")
	ctx := context.Background()
	store := newStore()

	t.Run("key not found", func(t *testing.T) {
		t.Parallel()
		_, ok := store.Get(ctx, cache.Key("keyNotFound"))
		assert.False(t, ok)
	})

	t.Run("store", func(t *testing.T) {
		t.Parallel()
		store.Set(ctx, cache.Key("keyWrittenNeverRead"), value)
	})

	t.Run("key found", func(t *testing.T) {
		t.Parallel()

		key := cache.Namespace("foo").Key("bar")
		store.Set(ctx, key, value)
		storedValue, ok := store.Get(ctx, key)
		assert.True(t, ok)
		assert.Equal(t, value, storedValue)
	})

	t.Run("overwrite", func(t *testing.T) {
		t.Parallel()

		key := cache.Namespace("foo").Key("rewritten")
		store.Set(ctx, key, []byte("old"))
		store.Set(ctx, key, value)
		storedValue, ok := store.Get(ctx, key)
		assert.True(t, ok)
		assert.Equal(t, value, storedValue)
	})
}
