//go:build integration

package session

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/example/customer-page-service/internal/domain"
)

func newRedisStore(t *testing.T, ttl time.Duration) *RedisStore {
	t.Helper()
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err, "start redis container")
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	url, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	s, err := NewRedisStore(ctx, url, ttl)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRedisStoreRoundTrip(t *testing.T) {
	s := newRedisStore(t, time.Hour)
	ctx := context.Background()
	customer := domain.Customer{ID: 42, Email: "spencor.hopkin@spryker.com", FirstName: "Spencor"}

	token, err := s.Create(ctx, customer)
	require.NoError(t, err)

	got, err := s.CurrentCustomer(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, customer, got)

	ttl, err := s.client.TTL(ctx, keyPrefix+token).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 59*time.Minute)

	require.NoError(t, s.Delete(ctx, token))
	_, err = s.CurrentCustomer(ctx, token)
	assert.ErrorIs(t, err, domain.ErrNotLoggedIn)
}

func TestRedisStoreCorruptSession(t *testing.T) {
	s := newRedisStore(t, time.Hour)
	ctx := context.Background()
	require.NoError(t, s.client.Set(ctx, keyPrefix+"broken", "{", redis.KeepTTL).Err())

	_, err := s.CurrentCustomer(ctx, "broken")

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotLoggedIn)
}
