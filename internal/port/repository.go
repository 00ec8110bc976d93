package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"estatehub/internal/domain"
)

// UserRepository defines the contract for user persistence.
type UserRepository interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ListByRoles(ctx context.Context, roles []domain.UserRole) ([]domain.User, error)
}

// PropertyRepository defines the contract for property persistence and the
// read-only aggregations the operations reports run over properties.
type PropertyRepository interface {
	Create(ctx context.Context, p *domain.Property) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error)
	List(ctx context.Context, offset, limit int) ([]domain.Property, int, error)
	Update(ctx context.Context, p *domain.Property) error

	// ListClosedBetween returns properties whose closed_date falls within
	// [startDate, endDate] inclusive. Dates are YYYY-MM-DD.
	ListClosedBetween(ctx context.Context, startDate, endDate string) ([]domain.CommissionProperty, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error)
	// CountAmendedBetween counts properties updated within [from, to] whose
	// updated_at is strictly after created_at.
	CountAmendedBetween(ctx context.Context, from, to time.Time) (int, error)
}

// LeadRepository defines the read-only lead aggregations used by daily reports.
type LeadRepository interface {
	CountAddedByBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) (int, error)
}

// SettingRepository defines the contract for global key/value settings.
type SettingRepository interface {
	// Get returns domain.ErrNotFound when the key has no row.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
