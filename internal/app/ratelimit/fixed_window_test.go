package ratelimit

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimiter(t *testing.T, limit int) (*FixedWindowLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	limiter, err := NewFixedWindowLimiter(client, "test:ratelimit", limit, time.Minute)
	require.NoError(t, err)
	return limiter, mr
}

func TestFixedWindowLimiter(t *testing.T) {
	limiter, _ := newLimiter(t, 2)
	ctx := context.Background()

	assert.True(t, limiter.Allow(ctx, "user-1"), "first request should pass")
	assert.True(t, limiter.Allow(ctx, "user-1"), "second request should pass")
	assert.False(t, limiter.Allow(ctx, "user-1"), "third request should be blocked")
	assert.True(t, limiter.Allow(ctx, "user-2"), "other keys have their own quota")
}

func TestFixedWindowLimiterNextWindow(t *testing.T) {
	limiter, _ := newLimiter(t, 1)
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	assert.True(t, limiter.Allow(ctx, "user-1"))
	assert.False(t, limiter.Allow(ctx, "user-1"))

	now = now.Add(time.Minute)
	assert.True(t, limiter.Allow(ctx, "user-1"))
}

func TestFixedWindowLimiterSetsExpiry(t *testing.T) {
	limiter, mr := newLimiter(t, 5)
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	require.True(t, limiter.Allow(context.Background(), "user-1"))
	slot := now.UnixMilli() / time.Minute.Milliseconds()
	key := fmt.Sprintf("test:ratelimit:user-1:%d", slot)
	assert.True(t, mr.Exists(key))
	assert.Equal(t, time.Minute, mr.TTL(key))
}

func TestFixedWindowLimiterFailClosed(t *testing.T) {
	limiter, mr := newLimiter(t, 1)
	mr.Close()
	assert.False(t, limiter.Allow(context.Background(), "user-1"), "limiter should fail closed on redis errors")
}

func TestNewFixedWindowLimiterValidation(t *testing.T) {
	_, err := NewFixedWindowLimiter(nil, "", 1, time.Second)
	assert.Error(t, err)

	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	defer client.Close()
	_, err = NewFixedWindowLimiter(client, "", 0, time.Second)
	assert.Error(t, err)
	_, err = NewFixedWindowLimiter(client, "", 1, 0)
	assert.Error(t, err)

	limiter, err := NewFixedWindowLimiter(client, " ", 3, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "yolo:ratelimit", limiter.prefix)
	assert.Equal(t, 3, limiter.Limit())
}

func TestNilLimiterDenies(t *testing.T) {
	var limiter *FixedWindowLimiter
	assert.False(t, limiter.Allow(context.Background(), "user-1"))
}
