package port

import (
	"context"
	"time"
)

// RateLimitResult describes the outcome of a single rate limit check.
type RateLimitResult struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// RateLimiter counts requests per key in a fixed window.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (RateLimitResult, error)
}

// Locker grants a short-lived exclusive lock across service instances.
// Release must be called when ok is true.
type Locker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (release func(context.Context) error, ok bool, err error)
}
