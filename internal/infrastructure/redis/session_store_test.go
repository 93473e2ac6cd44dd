package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srikanthravipati27/environment-hub/internal/domain/repository"
)

func newSessionStoreTest(t *testing.T, ttl time.Duration) (*SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewSessionStore(rdb, ttl), mr
}

func TestSessionCreateGetDestroy(t *testing.T) {
	store, mr := newSessionStoreTest(t, time.Hour)
	ctx := context.Background()

	sess, err := store.Create(ctx, "annx")
	require.NoError(t, err)
	require.NotEmpty(t, sess.ID)

	assert.Equal(t, "annx", mr.HGet(sessionKey(sess.ID), "user"))
	assert.Equal(t, time.Hour, mr.TTL(sessionKey(sess.ID)))

	got, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "annx", got.UserName)
	assert.WithinDuration(t, sess.CreatedAt, got.CreatedAt, time.Second)

	require.NoError(t, store.Destroy(ctx, sess.ID))
	_, err = store.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// second destroy is a no-op
	require.NoError(t, store.Destroy(ctx, sess.ID))
}

func TestSessionIDsAreDistinct(t *testing.T) {
	store, _ := newSessionStoreTest(t, time.Hour)
	ctx := context.Background()

	a, err := store.Create(ctx, "annx")
	require.NoError(t, err)
	b, err := store.Create(ctx, "annx")
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestSessionExpires(t *testing.T) {
	store, mr := newSessionStoreTest(t, time.Minute)
	ctx := context.Background()

	sess, err := store.Create(ctx, "annx")
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)
	_, err = store.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSessionGetUnknownOrEmpty(t *testing.T) {
	store, _ := newSessionStoreTest(t, time.Hour)
	ctx := context.Background()

	_, err := store.Get(ctx, "")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = store.Get(ctx, "does-not-exist")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSessionStoreUnavailable(t *testing.T) {
	store, mr := newSessionStoreTest(t, time.Hour)
	mr.Close()

	_, err := store.Get(context.Background(), "abc")
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrNotFound)
}
