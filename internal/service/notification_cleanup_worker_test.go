package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"estatehub/internal/service"
	"estatehub/mocks"
)

var cleanupCfg = service.NotificationCleanupConfig{Interval: time.Hour, RetentionDays: 14}

func TestNotificationCleanupWorker_RunOnce_AcquiresLock(t *testing.T) {
	notifications := new(mocks.MockNotificationService)
	locker := new(mocks.MockLocker)
	log, _ := logtest.NewNullLogger()
	w := service.NewNotificationCleanupWorker(notifications, locker, cleanupCfg, log)

	released := false
	release := func(context.Context) error {
		released = true
		return nil
	}
	locker.On("TryLock", mock.Anything, service.CleanupLockKey, time.Hour).Return(release, true, nil)
	notifications.On("CleanupOlderThan", mock.Anything, 14).Return(int64(3), nil)

	deleted, err := w.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
	assert.True(t, released)
}

func TestNotificationCleanupWorker_RunOnce_LockHeldElsewhere(t *testing.T) {
	notifications := new(mocks.MockNotificationService)
	locker := new(mocks.MockLocker)
	log, _ := logtest.NewNullLogger()
	w := service.NewNotificationCleanupWorker(notifications, locker, cleanupCfg, log)

	locker.On("TryLock", mock.Anything, service.CleanupLockKey, time.Hour).Return(nil, false, nil)

	deleted, err := w.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Zero(t, deleted)
	notifications.AssertNotCalled(t, "CleanupOlderThan", mock.Anything, mock.Anything)
}

func TestNotificationCleanupWorker_RunOnce_LockError(t *testing.T) {
	notifications := new(mocks.MockNotificationService)
	locker := new(mocks.MockLocker)
	log, _ := logtest.NewNullLogger()
	w := service.NewNotificationCleanupWorker(notifications, locker, cleanupCfg, log)

	locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(nil, false, errors.New("redis down"))

	_, err := w.RunOnce(context.Background())

	assert.Error(t, err)
	notifications.AssertNotCalled(t, "CleanupOlderThan", mock.Anything, mock.Anything)
}

func TestNotificationCleanupWorker_RunOnce_NoLocker(t *testing.T) {
	notifications := new(mocks.MockNotificationService)
	log, _ := logtest.NewNullLogger()
	w := service.NewNotificationCleanupWorker(notifications, nil, cleanupCfg, log)

	notifications.On("CleanupOlderThan", mock.Anything, 14).Return(int64(1), nil)

	deleted, err := w.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}

func TestNotificationCleanupWorker_Start_StopsOnCancel(t *testing.T) {
	notifications := new(mocks.MockNotificationService)
	log, _ := logtest.NewNullLogger()
	w := service.NewNotificationCleanupWorker(notifications, nil,
		service.NotificationCleanupConfig{Interval: 10 * time.Millisecond, RetentionDays: 30}, log)

	swept := make(chan struct{}, 1)
	notifications.On("CleanupOlderThan", mock.Anything, 30).Return(int64(0), nil).Run(func(mock.Arguments) {
		select {
		case swept <- struct{}{}:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	select {
	case <-swept:
	case <-time.After(time.Second):
		t.Fatal("worker never swept")
	}
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}
