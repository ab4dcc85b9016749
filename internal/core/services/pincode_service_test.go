package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"dealerhub/internal/adapters/cache"
	"dealerhub/internal/adapters/external/pincode"
	"dealerhub/internal/core/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeLookup struct {
	offices map[string][]pincode.PostOffice
	calls   int
}

func (l *fakeLookup) Lookup(_ context.Context, code string) ([]pincode.PostOffice, error) {
	l.calls++
	offices, ok := l.offices[code]
	if !ok {
		return nil, pincode.ErrNotFound
	}
	return offices, nil
}

var bengaluru = []pincode.PostOffice{
	{Name: "Bangalore GPO", BranchType: "Head Post Office", District: "Bangalore", State: "Karnataka", Pincode: "560001"},
}

func TestPincodeLookup(t *testing.T) {
	ctx := context.Background()
	ttl := 24 * time.Hour
	data, err := json.Marshal(bengaluru)
	require.NoError(t, err)

	t.Run("Miss fills the cache", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		lookup := &fakeLookup{offices: map[string][]pincode.PostOffice{"560001": bengaluru}}
		svc := NewPincodeService(lookup, cache.NewRedisCache(client, time.Hour), ttl, zap.NewNop())

		mock.ExpectGet("pincode:560001").RedisNil()
		mock.ExpectSet("pincode:560001", data, ttl).SetVal("OK")

		offices, err := svc.Lookup(ctx, " 560001 ")

		require.NoError(t, err)
		assert.Equal(t, bengaluru, offices)
		assert.Equal(t, 1, lookup.calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Hit skips the api", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		lookup := &fakeLookup{}
		svc := NewPincodeService(lookup, cache.NewRedisCache(client, time.Hour), ttl, zap.NewNop())

		mock.ExpectGet("pincode:560001").SetVal(string(data))

		city, state, err := svc.Locate(ctx, "560001")

		require.NoError(t, err)
		assert.Equal(t, "Bangalore", city)
		assert.Equal(t, "Karnataka", state)
		assert.Zero(t, lookup.calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty cached answer is a miss", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		lookup := &fakeLookup{offices: map[string][]pincode.PostOffice{"560002": {}}}
		svc := NewPincodeService(lookup, cache.NewRedisCache(client, time.Hour), ttl, zap.NewNop())

		mock.ExpectGet("pincode:560002").SetVal("[]")

		_, _, err := svc.Locate(ctx, "560002")

		assert.ErrorIs(t, err, domain.ErrPincodeNotFound)
		assert.Equal(t, 1, lookup.calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown pincode", func(t *testing.T) {
		svc := NewPincodeService(&fakeLookup{}, cache.NewRedisCache(nil, 0), ttl, zap.NewNop())

		_, err := svc.Lookup(ctx, "999999")

		assert.ErrorIs(t, err, domain.ErrPincodeNotFound)
	})

	t.Run("Malformed pincode", func(t *testing.T) {
		lookup := &fakeLookup{}
		svc := NewPincodeService(lookup, cache.NewRedisCache(nil, 0), ttl, zap.NewNop())

		_, err := svc.Lookup(ctx, "0123")

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Zero(t, lookup.calls)
	})
}
