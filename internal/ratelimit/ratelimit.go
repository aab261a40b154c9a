// Package ratelimit implements sliding-window request throttling for the
// approval decision endpoint. Two implementations share one interface: an
// in-memory limiter scoped to the process, and a Redis-backed limiter for
// deployments with more than one instance.
package ratelimit

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter decides whether a caller identified by key may proceed.
type Limiter interface {
	// Allow reports whether the request is within the limit. A rejected
	// request is not recorded against the window.
	Allow(ctx context.Context, key string) (bool, error)
}

const (
	// DefaultLimit is the number of requests allowed per window.
	DefaultLimit = 10
	// DefaultWindow is the sliding window length.
	DefaultWindow = 60 * time.Second
)

// MemoryLimiter is a process-lifetime sliding-window limiter. It keeps an
// ordered timestamp slice per key behind a mutex; precision under heavy
// contention is not required, it is a soft throttle. State is lost on
// restart.
type MemoryLimiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	entries map[string][]time.Time
	now     func() time.Time
}

// NewMemoryLimiter creates a MemoryLimiter allowing limit requests per window.
func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		limit:   limit,
		window:  window,
		entries: make(map[string][]time.Time),
		now:     time.Now,
	}
}

// Allow drops timestamps older than the window, counts the rest, and records
// the request only if it is admitted.
func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	recent := l.entries[key][:0]
	for _, ts := range l.entries[key] {
		if ts.After(cutoff) {
			recent = append(recent, ts)
		}
	}

	if len(recent) >= l.limit {
		l.entries[key] = recent
		return false, nil
	}

	l.entries[key] = append(recent, now)
	return true, nil
}

// RedisLimiter implements the same sliding-window semantics on a Redis sorted
// set so multiple instances enforce one shared limit. Member scores are
// nanosecond timestamps; stale members are trimmed before counting.
type RedisLimiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
	prefix string
}

// NewRedisLimiter creates a RedisLimiter allowing limit requests per window.
func NewRedisLimiter(rdb *redis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		rdb:    rdb,
		limit:  limit,
		window: window,
		prefix: "rl:decision:",
	}
}

// Allow trims the caller's window, counts the remainder, and records the
// request only if it is admitted.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	now := time.Now()
	cutoff := strconv.FormatInt(now.Add(-l.window).UnixNano(), 10)
	redisKey := l.prefix + key

	if err := l.rdb.ZRemRangeByScore(ctx, redisKey, "0", cutoff).Err(); err != nil {
		return false, err
	}

	count, err := l.rdb.ZCard(ctx, redisKey).Result()
	if err != nil {
		return false, err
	}
	if count >= int64(l.limit) {
		return false, nil
	}

	member := redis.Z{
		Score:  float64(now.UnixNano()),
		Member: strconv.FormatInt(now.UnixNano(), 10),
	}
	pipe := l.rdb.TxPipeline()
	pipe.ZAdd(ctx, redisKey, member)
	pipe.Expire(ctx, redisKey, l.window+time.Second)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return true, nil
}
