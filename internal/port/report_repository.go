package port

import (
	"context"

	"github.com/google/uuid"

	"estatehub/internal/domain"
)

// CommissionReportRepository defines the contract for commission report persistence.
type CommissionReportRepository interface {
	Create(ctx context.Context, report *domain.CommissionReport) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CommissionReport, error)
	// FindByRange returns domain.ErrNotFound when no report covers exactly this range.
	FindByRange(ctx context.Context, startDate, endDate string) (*domain.CommissionReport, error)
	List(ctx context.Context, filters domain.CommissionReportFilters) ([]domain.CommissionReport, error)
	Update(ctx context.Context, report *domain.CommissionReport) error
	// Delete removes the row and returns it as it was before deletion.
	Delete(ctx context.Context, id uuid.UUID) (*domain.CommissionReport, error)
}

// DailyReportRepository defines the contract for daily operations report persistence.
type DailyReportRepository interface {
	Create(ctx context.Context, report *domain.DailyOperationsReport) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DailyOperationsReport, error)
	// FindByOperatorAndDate returns domain.ErrNotFound when the pair has no report.
	FindByOperatorAndDate(ctx context.Context, operationsID uuid.UUID, reportDate string) (*domain.DailyOperationsReport, error)
	List(ctx context.Context, filters domain.DailyReportFilters) ([]domain.DailyOperationsReport, error)
	Update(ctx context.Context, report *domain.DailyOperationsReport) error
	Delete(ctx context.Context, id uuid.UUID) (*domain.DailyOperationsReport, error)
}
