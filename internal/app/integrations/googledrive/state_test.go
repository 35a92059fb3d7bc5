package googledrive

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "yolo-transcript/internal/app/errors"
)

func newTestStateStore(t *testing.T) (*StateStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewStateStore(client, "test:state", time.Minute), mr
}

func TestStateStore_IssueAndConsume(t *testing.T) {
	store, mr := newTestStateStore(t)
	ctx := context.Background()

	state, err := store.Issue(ctx, "user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, state)
	assert.Equal(t, time.Minute, mr.TTL("test:state:"+state))

	userID, err := store.Consume(ctx, state)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	_, err = store.Consume(ctx, state)
	assert.ErrorIs(t, err, apperrors.ErrUnknownState, "states are single use")
}

func TestStateStore_UnknownState(t *testing.T) {
	store, _ := newTestStateStore(t)

	_, err := store.Consume(context.Background(), "never-issued")
	assert.ErrorIs(t, err, apperrors.ErrUnknownState)

	_, err = store.Consume(context.Background(), "")
	assert.ErrorIs(t, err, apperrors.ErrUnknownState)
}

func TestStateStore_Expired(t *testing.T) {
	store, mr := newTestStateStore(t)
	ctx := context.Background()

	state, err := store.Issue(ctx, "user-1")
	require.NoError(t, err)
	mr.FastForward(2 * time.Minute)

	_, err = store.Consume(ctx, state)
	assert.ErrorIs(t, err, apperrors.ErrUnknownState)
}

func TestStateStore_IssuesDistinctStates(t *testing.T) {
	store, _ := newTestStateStore(t)
	a, err := store.Issue(context.Background(), "user-1")
	require.NoError(t, err)
	b, err := store.Issue(context.Background(), "user-1")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestNewStateStore_Defaults(t *testing.T) {
	store := NewStateStore(nil, "", 0)
	assert.Equal(t, "yolo:oauth-state", store.prefix)
	assert.Equal(t, DefaultStateTTL, store.ttl)
}
