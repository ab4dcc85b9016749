package cache_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"dealerhub/internal/adapters/cache"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func setup(t *testing.T) (cache.Cache, redismock.ClientMock) {
	t.Helper()
	client, mock := redismock.NewClientMock()
	return cache.NewRedisCache(client, 10*time.Minute), mock
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	key := "test:get"
	value := payload{Name: "Routers", Count: 3}
	data, err := json.Marshal(value)
	require.NoError(t, err)

	t.Run("Hit", func(t *testing.T) {
		// Arrange
		c, mock := setup(t)
		mock.ExpectGet(key).SetVal(string(data))

		// Act
		var got payload
		found, err := c.Get(ctx, key, &got)

		// Assert
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, value, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Miss", func(t *testing.T) {
		c, mock := setup(t)
		mock.ExpectGet(key).SetErr(redis.Nil)

		var got payload
		found, err := c.Get(ctx, key, &got)

		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Redis error", func(t *testing.T) {
		c, mock := setup(t)
		mock.ExpectGet(key).SetErr(errors.New("connection refused"))

		var got payload
		found, err := c.Get(ctx, key, &got)

		require.Error(t, err)
		assert.False(t, found)
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("Corrupt data", func(t *testing.T) {
		c, mock := setup(t)
		mock.ExpectGet(key).SetVal("{not json")

		var got payload
		found, err := c.Get(ctx, key, &got)

		require.Error(t, err)
		assert.False(t, found)
	})
}

func TestSet(t *testing.T) {
	ctx := context.Background()
	key := "test:set"
	value := payload{Name: "Switches", Count: 1}
	data, err := json.Marshal(value)
	require.NoError(t, err)

	t.Run("Explicit TTL", func(t *testing.T) {
		c, mock := setup(t)
		mock.ExpectSet(key, data, time.Minute).SetVal("OK")

		require.NoError(t, c.Set(ctx, key, value, time.Minute))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Default TTL", func(t *testing.T) {
		c, mock := setup(t)
		mock.ExpectSet(key, data, 10*time.Minute).SetVal("OK")

		require.NoError(t, c.Set(ctx, key, value, 0))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDelete(t *testing.T) {
	c, mock := setup(t)
	mock.ExpectDel("test:del").SetVal(1)

	require.NoError(t, c.Delete(context.Background(), "test:del"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNilClientIsNoop(t *testing.T) {
	c := cache.NewRedisCache(nil, time.Minute)

	var got payload
	found, err := c.Get(context.Background(), "any", &got)

	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, c.Set(context.Background(), "any", payload{}, 0))
	assert.NoError(t, c.Delete(context.Background(), "any"))
}
