//go:build unit
// +build unit

package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter_FixedWindow(t *testing.T) {
	limiter := NewMemoryLimiter(2, 5*time.Second)
	now := time.Unix(1_700_000_000, 0)
	limiter.now = func() time.Time { return now }

	ctx := context.Background()

	for i := 0; i < 2; i++ {
		retry, err := limiter.Allow(ctx, "127.0.0.1:/")
		require.NoError(t, err)
		assert.Zero(t, retry)
	}

	now = now.Add(2 * time.Second)
	retry, err := limiter.Allow(ctx, "127.0.0.1:/")
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, retry)

	retry, err = limiter.Allow(ctx, "10.0.0.1:/")
	require.NoError(t, err)
	assert.Zero(t, retry, "other keys have their own window")

	now = now.Add(3 * time.Second)
	retry, err = limiter.Allow(ctx, "127.0.0.1:/")
	require.NoError(t, err)
	assert.Zero(t, retry, "a new window opens once the old one closes")
}

func TestMemoryLimiter_EvictsExpiredWindows(t *testing.T) {
	limiter := NewMemoryLimiter(1, time.Second)
	now := time.Unix(1_700_000_000, 0)
	limiter.now = func() time.Time { return now }

	_, err := limiter.Allow(context.Background(), "a")
	require.NoError(t, err)
	_, err = limiter.Allow(context.Background(), "b")
	require.NoError(t, err)
	assert.Len(t, limiter.windows, 2)

	now = now.Add(time.Second)
	_, err = limiter.Allow(context.Background(), "c")
	require.NoError(t, err)
	assert.Len(t, limiter.windows, 1)
}

func TestMemoryLimiter_SweepsOncePerPeriod(t *testing.T) {
	limiter := NewMemoryLimiter(1, time.Second)
	start := time.Unix(1_700_000_000, 0)
	now := start
	limiter.now = func() time.Time { return now }
	ctx := context.Background()

	_, err := limiter.Allow(ctx, "a")
	require.NoError(t, err)

	now = start.Add(500 * time.Millisecond)
	_, err = limiter.Allow(ctx, "b")
	require.NoError(t, err)
	assert.Len(t, limiter.windows, 2, "no sweep before a period has passed")

	now = start.Add(1200 * time.Millisecond)
	_, err = limiter.Allow(ctx, "c")
	require.NoError(t, err)
	assert.Len(t, limiter.windows, 2, "the sweep drops a and keeps the live b")

	now = start.Add(1600 * time.Millisecond)
	_, err = limiter.Allow(ctx, "d")
	require.NoError(t, err)
	assert.Len(t, limiter.windows, 3, "expired b waits for the next sweep")

	retry, err := limiter.Allow(ctx, "b")
	require.NoError(t, err)
	assert.Zero(t, retry, "an expired window that was not swept yet still resets")
}
