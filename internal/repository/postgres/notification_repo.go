package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"estatehub/internal/domain"
	"estatehub/internal/port"
)

type notificationRepo struct {
	db *sqlx.DB
}

// NewNotificationRepo creates a new PostgreSQL-backed NotificationRepository.
func NewNotificationRepo(db *sqlx.DB) port.NotificationRepository {
	return &notificationRepo{db: db}
}

func (r *notificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	n.ID = uuid.New()
	now := time.Now().UTC()
	n.CreatedAt = now
	n.UpdatedAt = now

	query := `INSERT INTO notifications (id, user_id, title, message, type, entity_type, entity_id, is_read, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecContext(ctx, query,
		n.ID, n.UserID, n.Title, n.Message, n.Type, n.EntityType, n.EntityID, n.IsRead, n.CreatedAt, n.UpdatedAt)
	if err != nil {
		return fmt.Errorf("notificationRepo.Create: %w", err)
	}
	return nil
}

func (r *notificationRepo) CreateMany(ctx context.Context, userIDs []uuid.UUID, template domain.Notification) ([]domain.Notification, error) {
	if len(userIDs) == 0 {
		return []domain.Notification{}, nil
	}
	ids := make([]string, len(userIDs))
	for i, id := range userIDs {
		ids[i] = id.String()
	}

	query := `INSERT INTO notifications (id, user_id, title, message, type, entity_type, entity_id, is_read, created_at, updated_at)
		SELECT gen_random_uuid(), u, $2, $3, $4, $5, $6, false, NOW(), NOW()
		FROM unnest($1::uuid[]) AS u
		RETURNING *`

	created := []domain.Notification{}
	err := r.db.SelectContext(ctx, &created, query,
		pq.Array(ids), template.Title, template.Message, template.Type, template.EntityType, template.EntityID)
	if err != nil {
		return nil, fmt.Errorf("notificationRepo.CreateMany: %w", err)
	}
	return created, nil
}

func (r *notificationRepo) ListByUser(ctx context.Context, userID uuid.UUID, filters domain.NotificationFilters) ([]domain.Notification, int, error) {
	w := &whereBuilder{}
	w.add("user_id = $%d", userID)
	if filters.UnreadOnly {
		w.conds = append(w.conds, "is_read = false")
	}
	if filters.EntityType != "" {
		w.add("entity_type = $%d", filters.EntityType)
	}

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM notifications %s", w.clause())
	if err := r.db.GetContext(ctx, &total, countQuery, w.args...); err != nil {
		return nil, 0, fmt.Errorf("notificationRepo.ListByUser count: %w", err)
	}

	args := append(append([]interface{}{}, w.args...), filters.Limit, filters.Offset)
	query := fmt.Sprintf("SELECT * FROM notifications %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		w.clause(), len(w.args)+1, len(w.args)+2)

	items := []domain.Notification{}
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, 0, fmt.Errorf("notificationRepo.ListByUser: %w", err)
	}
	return items, total, nil
}

func (r *notificationRepo) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = false", userID)
	if err != nil {
		return 0, fmt.Errorf("notificationRepo.CountUnread: %w", err)
	}
	return count, nil
}

func (r *notificationRepo) MarkAsRead(ctx context.Context, id, userID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE notifications SET is_read = true, updated_at = $1 WHERE id = $2 AND user_id = $3",
		time.Now().UTC(), id, userID)
	if err != nil {
		return fmt.Errorf("notificationRepo.MarkAsRead: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}

func (r *notificationRepo) MarkAllAsRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"UPDATE notifications SET is_read = true, updated_at = $1 WHERE user_id = $2 AND is_read = false",
		time.Now().UTC(), userID)
	if err != nil {
		return 0, fmt.Errorf("notificationRepo.MarkAllAsRead: %w", err)
	}
	rows, _ := result.RowsAffected()
	return rows, nil
}

func (r *notificationRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM notifications WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return fmt.Errorf("notificationRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}

func (r *notificationRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM notifications WHERE created_at < $1", cutoff)
	if err != nil {
		return 0, fmt.Errorf("notificationRepo.DeleteOlderThan: %w", err)
	}
	rows, _ := result.RowsAffected()
	return rows, nil
}
