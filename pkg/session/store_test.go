package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, time.Hour), mr
}

func TestCreateAndGet(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	sess, err := store.Create(ctx, 7, "u@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, sess.ID)
	assert.Equal(t, time.Hour, mr.TTL(keyPrefix+sess.ID))

	got, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, uint(7), got.UserID)
	assert.Equal(t, "u@x.com", got.Email)
}

func TestGetUnknownOrExpired(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	got, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, got)

	sess, err := store.Create(ctx, 1, "u@x.com")
	require.NoError(t, err)
	mr.FastForward(2 * time.Hour)

	got, err = store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDestroyIsIdempotent(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	sess, err := store.Create(ctx, 1, "u@x.com")
	require.NoError(t, err)

	require.NoError(t, store.Destroy(ctx, sess.ID))
	require.NoError(t, store.Destroy(ctx, sess.ID))
	require.NoError(t, store.Destroy(ctx, ""))

	got, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStoreUnavailable(t *testing.T) {
	store, mr := newTestStore(t)
	mr.Close()

	_, err := store.Create(context.Background(), 1, "u@x.com")
	assert.Error(t, err)

	_, err = store.Get(context.Background(), "abc")
	assert.Error(t, err)
}
