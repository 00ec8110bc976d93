package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"estatehub/internal/port"
)

// MockRateLimiter is a mock implementation of port.RateLimiter.
type MockRateLimiter struct {
	mock.Mock
}

func (m *MockRateLimiter) Allow(ctx context.Context, key string) (port.RateLimitResult, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(port.RateLimitResult), args.Error(1)
}

// MockLocker is a mock implementation of port.Locker.
type MockLocker struct {
	mock.Mock
}

func (m *MockLocker) TryLock(ctx context.Context, key string, ttl time.Duration) (func(context.Context) error, bool, error) {
	args := m.Called(ctx, key, ttl)
	var release func(context.Context) error
	if f := args.Get(0); f != nil {
		release = f.(func(context.Context) error)
	}
	return release, args.Bool(1), args.Error(2)
}
