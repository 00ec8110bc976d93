// Package ratelimit provides Redis-backed request limiting and distributed locks.
package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"

	"estatehub/internal/config"
	"estatehub/internal/port"
)

// NewRedisClient connects to Redis and verifies the connection with a ping.
func NewRedisClient(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %w", cfg.Addr, err)
	}
	return rdb, nil
}

type fixedWindow struct {
	rdb    redis.Cmdable
	prefix string
	limit  int
	window time.Duration
}

// NewFixedWindow creates a RateLimiter allowing limit requests per key per
// window. Each key expires with its window.
func NewFixedWindow(rdb redis.Cmdable, prefix string, limit int, window time.Duration) port.RateLimiter {
	return &fixedWindow{rdb: rdb, prefix: prefix, limit: limit, window: window}
}

func (l *fixedWindow) Allow(ctx context.Context, key string) (port.RateLimitResult, error) {
	k := l.prefix + ":" + key

	count, err := l.rdb.Incr(ctx, k).Result()
	if err != nil {
		return port.RateLimitResult{}, fmt.Errorf("rateLimiter.Allow incr: %w", err)
	}
	ttl, err := l.rdb.PTTL(ctx, k).Result()
	if err != nil {
		return port.RateLimitResult{}, fmt.Errorf("rateLimiter.Allow ttl: %w", err)
	}
	// A key without expiry starts a new window.
	if ttl < 0 {
		if err := l.rdb.PExpire(ctx, k, l.window).Err(); err != nil {
			return port.RateLimitResult{}, fmt.Errorf("rateLimiter.Allow expire: %w", err)
		}
		ttl = l.window
	}

	remaining := l.limit - int(count)
	if remaining < 0 {
		remaining = 0
	}
	res := port.RateLimitResult{
		Allowed:   int(count) <= l.limit,
		Limit:     l.limit,
		Remaining: remaining,
	}
	if !res.Allowed {
		res.RetryAfter = ttl
	}
	return res, nil
}

type redisLocker struct {
	client *redislock.Client
}

// NewLocker creates a port.Locker backed by bsm/redislock.
func NewLocker(rdb redis.UniversalClient) port.Locker {
	return &redisLocker{client: redislock.New(rdb)}
}

func (l *redisLocker) TryLock(ctx context.Context, key string, ttl time.Duration) (func(context.Context) error, bool, error) {
	lock, err := l.client.Obtain(ctx, key, ttl, nil)
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("obtaining lock %s: %w", key, err)
	}
	return lock.Release, true, nil
}
