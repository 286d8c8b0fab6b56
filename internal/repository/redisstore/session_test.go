package redisstore_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/msomdec/notekeeper/internal/domain"
	"github.com/msomdec/notekeeper/internal/repository/redisstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ domain.SessionRepository = (*redisstore.SessionStore)(nil)

// newTestStore connects to the server named by REDIS_URL and skips otherwise.
func newTestStore(t *testing.T) *redisstore.SessionStore {
	t.Helper()
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}
	rdb, err := redisstore.Connect(context.Background(), url)
	require.NoError(t, err)
	t.Cleanup(func() { rdb.Close() })
	return redisstore.NewSessionStore(rdb)
}

func TestSessionStore_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	sess := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    42,
		ExpiresAt: time.Now().Add(time.Minute).UTC().Truncate(time.Second),
	}
	require.NoError(t, store.Create(ctx, sess))

	got, err := store.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.UserID)
	assert.True(t, got.ExpiresAt.Equal(sess.ExpiresAt))

	require.NoError(t, store.Delete(ctx, sess.ID))
	_, err = store.GetByID(ctx, sess.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSessionStore_UnknownID(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestConnect_BadURL(t *testing.T) {
	_, err := redisstore.Connect(context.Background(), "http://not-redis")
	assert.Error(t, err)
}
