package storage

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/AnujGadekar1/verto-eshop/internal/domain"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a miniredis server and returns a RedisStorage instance
func setupTestRedis(t *testing.T) (*RedisStorage, *miniredis.Miniredis, func()) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	store := NewRedisStorage(client, "session42")

	cleanup := func() {
		client.Close()
		mr.Close()
	}

	return store, mr, cleanup
}

func TestRedisStorage_LoadAbsent(t *testing.T) {
	store, _, cleanup := setupTestRedis(t)
	defer cleanup()

	items, err := store.Load(context.Background())
	require.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, items)
}

func TestRedisStorage_SaveLoad(t *testing.T) {
	store, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	saved := []domain.LineItem{
		{Product: domain.Product{ID: "p_003", Name: "USB-C Hub", PriceCents: 8000, Currency: "INR"}, Quantity: 3},
	}
	require.NoError(t, store.Save(ctx, saved))

	// Stored under the prefixed key as a JSON array
	raw, err := mr.Get("session42:" + CartKey)
	require.NoError(t, err)
	var onDisk []domain.LineItem
	require.NoError(t, json.Unmarshal([]byte(raw), &onDisk))
	require.Len(t, onDisk, 1)

	items, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "p_003", items[0].ID)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, int64(8000), items[0].PriceCents)
}

func TestRedisStorage_LoadCorrupt(t *testing.T) {
	store, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	require.NoError(t, mr.Set("session42:"+CartKey, "not a cart"))

	items, err := store.Load(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Nil(t, items)
}

func TestRedisStorage_Clear(t *testing.T) {
	store, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, []domain.LineItem{{Product: domain.Product{ID: "p_001"}, Quantity: 1}}))
	require.NoError(t, store.Clear(ctx))

	assert.False(t, mr.Exists("session42:"+CartKey))
	_, err := store.Load(ctx)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStorage_NoPrefix(t *testing.T) {
	mr := miniredis.RunT(t)
	defer mr.Close()
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	store := NewRedisStorage(client, "")
	require.NoError(t, store.Save(context.Background(), nil))
	assert.True(t, mr.Exists(CartKey))
}
