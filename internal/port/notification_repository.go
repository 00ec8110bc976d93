package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"estatehub/internal/domain"
)

// NotificationRepository defines the contract for notification persistence.
// Per-notification mutations are scoped to the owning user.
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	CreateMany(ctx context.Context, userIDs []uuid.UUID, template domain.Notification) ([]domain.Notification, error)
	ListByUser(ctx context.Context, userID uuid.UUID, filters domain.NotificationFilters) ([]domain.Notification, int, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
	MarkAsRead(ctx context.Context, id, userID uuid.UUID) error
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) (int64, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
