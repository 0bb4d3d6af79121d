package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/dfa/pkg/adapters/redis"
	"github.com/aretw0/dfa/pkg/domain"
	"github.com/aretw0/dfa/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, opts ...redis.Option) (*redis.Store, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	store := redis.NewFromClient(client, opts...)
	t.Cleanup(func() { _ = store.Close() })
	return store, mr
}

func TestRedisStore_Contract(t *testing.T) {
	store, _ := newStore(t)
	ports.RunReportStoreContract(t, store)
}

func TestRedisStore_Prefix(t *testing.T) {
	store, mr := newStore(t, redis.WithPrefix("test:"))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &domain.Report{ID: "r1"}))
	assert.True(t, mr.Exists("test:r1"))
	assert.False(t, mr.Exists(redis.DefaultPrefix+"r1"))
}

func TestRedisStore_TTL(t *testing.T) {
	store, mr := newStore(t, redis.WithTTL(time.Minute))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &domain.Report{ID: "r1"}))
	assert.Equal(t, time.Minute, mr.TTL(redis.DefaultPrefix+"r1"))

	mr.FastForward(2 * time.Minute)

	_, err := store.Load(ctx, "r1")
	assert.ErrorIs(t, err, domain.ErrReportNotFound)
}

func TestRedisStore_ListByCreationTime(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	base := time.Now().UTC()
	require.NoError(t, store.Save(ctx, &domain.Report{ID: "c", CreatedAt: base}))
	require.NoError(t, store.Save(ctx, &domain.Report{ID: "a", CreatedAt: base.Add(time.Second)}))
	require.NoError(t, store.Save(ctx, &domain.Report{ID: "b", CreatedAt: base.Add(2 * time.Second)}))

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, ids)
}

func TestRedisStore_ListPrunesExpired(t *testing.T) {
	store, _ := newStore(t, redis.WithTTL(time.Minute))
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, store.Save(ctx, &domain.Report{ID: "old", CreatedAt: now.Add(-time.Hour)}))
	require.NoError(t, store.Save(ctx, &domain.Report{ID: "new", CreatedAt: now}))

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"new"}, ids)
}
