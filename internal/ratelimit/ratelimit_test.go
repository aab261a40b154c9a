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

func TestMemoryLimiter_WindowCap(t *testing.T) {
	t.Parallel()

	l := NewMemoryLimiter(10, time.Minute)
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	current := base
	l.now = func() time.Time { return current }

	for i := 0; i < 10; i++ {
		current = base.Add(time.Duration(i) * time.Second)
		allowed, err := l.Allow(context.Background(), "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	current = base.Add(10 * time.Second)
	allowed, err := l.Allow(context.Background(), "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed, "11th request within the window must be rejected")
}

func TestMemoryLimiter_WindowSlides(t *testing.T) {
	t.Parallel()

	l := NewMemoryLimiter(10, time.Minute)
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	current := base
	l.now = func() time.Time { return current }

	for i := 0; i < 10; i++ {
		allowed, _ := l.Allow(context.Background(), "10.0.0.2")
		assert.True(t, allowed)
	}
	allowed, _ := l.Allow(context.Background(), "10.0.0.2")
	assert.False(t, allowed)

	// After the window elapses the key is usable again.
	current = base.Add(61 * time.Second)
	allowed, err := l.Allow(context.Background(), "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestMemoryLimiter_RejectionNotRecorded(t *testing.T) {
	t.Parallel()

	l := NewMemoryLimiter(2, time.Minute)
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	current := base
	l.now = func() time.Time { return current }

	for i := 0; i < 2; i++ {
		allowed, _ := l.Allow(context.Background(), "k")
		assert.True(t, allowed)
	}
	// Rejections must not extend the window.
	for i := 0; i < 5; i++ {
		allowed, _ := l.Allow(context.Background(), "k")
		assert.False(t, allowed)
	}

	// Only the two admitted timestamps count; once they age out, allowed again.
	current = base.Add(61 * time.Second)
	allowed, _ := l.Allow(context.Background(), "k")
	assert.True(t, allowed)
}

func TestMemoryLimiter_KeysIndependent(t *testing.T) {
	t.Parallel()

	l := NewMemoryLimiter(1, time.Minute)

	allowed, _ := l.Allow(context.Background(), "a")
	assert.True(t, allowed)
	allowed, _ = l.Allow(context.Background(), "a")
	assert.False(t, allowed)

	allowed, _ = l.Allow(context.Background(), "b")
	assert.True(t, allowed, "a saturated key must not affect other keys")
}

func TestMemoryLimiter_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	l := NewMemoryLimiter(100, time.Minute)
	done := make(chan struct{})
	for g := 0; g < 8; g++ {
		go func(g int) {
			defer func() { done <- struct{}{} }()
			for i := 0; i < 50; i++ {
				_, _ = l.Allow(context.Background(), fmt.Sprintf("key-%d", g%2))
			}
		}(g)
	}
	for g := 0; g < 8; g++ {
		<-done
	}
}

func TestRedisLimiter_WindowCap(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = rdb.Close() }()

	l := NewRedisLimiter(rdb, 3, time.Minute)

	for i := 0; i < 3; i++ {
		allowed, err := l.Allow(context.Background(), "10.0.0.3")
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, err := l.Allow(context.Background(), "10.0.0.3")
	require.NoError(t, err)
	assert.False(t, allowed)

	// Other keys are unaffected.
	allowed, err = l.Allow(context.Background(), "10.0.0.4")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisLimiter_WindowSlides(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = rdb.Close() }()

	l := NewRedisLimiter(rdb, 2, 50*time.Millisecond)

	for i := 0; i < 2; i++ {
		allowed, err := l.Allow(context.Background(), "k")
		require.NoError(t, err)
		assert.True(t, allowed)
	}
	allowed, err := l.Allow(context.Background(), "k")
	require.NoError(t, err)
	assert.False(t, allowed)

	time.Sleep(60 * time.Millisecond)

	allowed, err = l.Allow(context.Background(), "k")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisLimiter_ErrorSurfaced(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	mr.Close()

	l := NewRedisLimiter(rdb, 10, time.Minute)
	_, err := l.Allow(context.Background(), "k")
	assert.Error(t, err)
}
