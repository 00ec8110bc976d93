package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"estatehub/internal/logger"
	"estatehub/internal/port"
)

// CleanupLockKey guards the notification sweep across instances.
const CleanupLockKey = "locks:notification-cleanup"

// NotificationCleanupConfig holds settings for the notification cleanup worker.
type NotificationCleanupConfig struct {
	Interval      time.Duration
	RetentionDays int
}

// NotificationCleanupWorker periodically deletes notifications past retention.
type NotificationCleanupWorker struct {
	notifications NotificationService
	locker        port.Locker
	cfg           NotificationCleanupConfig
	log           logrus.FieldLogger
}

// NewNotificationCleanupWorker creates a new NotificationCleanupWorker.
// A nil locker runs the sweep without coordination.
func NewNotificationCleanupWorker(
	notifications NotificationService,
	locker port.Locker,
	cfg NotificationCleanupConfig,
	log logrus.FieldLogger,
) *NotificationCleanupWorker {
	return &NotificationCleanupWorker{
		notifications: notifications,
		locker:        locker,
		cfg:           cfg,
		log:           log,
	}
}

// Start runs the sweep on every tick until ctx is canceled.
func (w *NotificationCleanupWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.Interval)
	defer ticker.Stop()

	w.log.WithFields(logrus.Fields{
		"interval":       w.cfg.Interval.String(),
		"retention_days": w.cfg.RetentionDays,
	}).Info("notificationCleanupWorker: started")

	for {
		select {
		case <-ctx.Done():
			w.log.Info("notificationCleanupWorker: shutdown complete")
			return
		case <-ticker.C:
			if _, err := w.RunOnce(ctx); err != nil && ctx.Err() == nil {
				logger.LogError(w.log, "notificationCleanupWorker", "RunOnce", nil, err)
			}
		}
	}
}

// RunOnce performs a single sweep. It returns 0 without sweeping when another
// instance holds the lock.
func (w *NotificationCleanupWorker) RunOnce(ctx context.Context) (int64, error) {
	if w.locker != nil {
		release, ok, err := w.locker.TryLock(ctx, CleanupLockKey, w.cfg.Interval)
		if err != nil {
			return 0, err
		}
		if !ok {
			w.log.Debug("notificationCleanupWorker: lock held elsewhere, skipping")
			return 0, nil
		}
		defer func() {
			// Release on a fresh context so shutdown does not leak the lock.
			releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := release(releaseCtx); err != nil {
				logger.LogError(w.log, "notificationCleanupWorker", "release", nil, err)
			}
		}()
	}
	return w.notifications.CleanupOlderThan(ctx, w.cfg.RetentionDays)
}
