package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"estatehub/internal/domain"
	"estatehub/internal/port"
)

const commissionReportRangeKey = "commission_reports_range_key"

type commissionReportRepo struct {
	db *sqlx.DB
}

// NewCommissionReportRepo creates a new PostgreSQL-backed CommissionReportRepository.
func NewCommissionReportRepo(db *sqlx.DB) port.CommissionReportRepository {
	return &commissionReportRepo{db: db}
}

func (r *commissionReportRepo) Create(ctx context.Context, report *domain.CommissionReport) error {
	report.ID = uuid.New()
	now := time.Now().UTC()
	report.CreatedAt = now
	report.UpdatedAt = now

	query := `INSERT INTO commission_reports (
		id, start_date, end_date, month, year, commission_percentage,
		total_properties_count, total_sales_count, total_rent_count,
		total_sales_value, total_rent_value, total_commission_amount,
		created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.ExecContext(ctx, query,
		report.ID, report.StartDate, report.EndDate, report.Month, report.Year, report.CommissionPercentage,
		report.TotalPropertiesCount, report.TotalSalesCount, report.TotalRentCount,
		report.TotalSalesValue, report.TotalRentValue, report.TotalCommissionAmount,
		report.CreatedAt, report.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, commissionReportRangeKey) {
			return domain.ErrDuplicateReport
		}
		return fmt.Errorf("commissionReportRepo.Create: %w", err)
	}
	return nil
}

func (r *commissionReportRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CommissionReport, error) {
	var report domain.CommissionReport
	err := r.db.GetContext(ctx, &report, "SELECT * FROM commission_reports WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReportNotFound
		}
		return nil, fmt.Errorf("commissionReportRepo.GetByID: %w", err)
	}
	return &report, nil
}

func (r *commissionReportRepo) FindByRange(ctx context.Context, startDate, endDate string) (*domain.CommissionReport, error) {
	var report domain.CommissionReport
	err := r.db.GetContext(ctx, &report,
		"SELECT * FROM commission_reports WHERE start_date = $1::date AND end_date = $2::date LIMIT 1",
		startDate, endDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("commissionReportRepo.FindByRange: %w", err)
	}
	return &report, nil
}

// buildCommissionWhere applies range > month > year precedence.
func buildCommissionWhere(filters domain.CommissionReportFilters) *whereBuilder {
	w := &whereBuilder{}
	switch {
	case filters.StartDate != nil:
		w.add("start_date >= $%d", *filters.StartDate)
		if filters.EndDate != nil {
			w.add("end_date <= $%d", *filters.EndDate)
		}
	case filters.Month != nil:
		w.add("month = $%d", *filters.Month)
		if filters.Year != nil {
			w.add("year = $%d", *filters.Year)
		}
	case filters.Year != nil:
		w.add("year = $%d", *filters.Year)
	}
	if filters.StartDate == nil && filters.EndDate != nil {
		w.add("end_date <= $%d", *filters.EndDate)
	}
	return w
}

func (r *commissionReportRepo) List(ctx context.Context, filters domain.CommissionReportFilters) ([]domain.CommissionReport, error) {
	w := buildCommissionWhere(filters)
	query := fmt.Sprintf(`SELECT * FROM commission_reports %s ORDER BY start_date DESC, end_date DESC`, w.clause())

	reports := []domain.CommissionReport{}
	if err := r.db.SelectContext(ctx, &reports, query, w.args...); err != nil {
		return nil, fmt.Errorf("commissionReportRepo.List: %w", err)
	}
	return reports, nil
}

func (r *commissionReportRepo) Update(ctx context.Context, report *domain.CommissionReport) error {
	report.UpdatedAt = time.Now().UTC()
	query := `UPDATE commission_reports SET
		start_date = $1, end_date = $2, month = $3, year = $4, commission_percentage = $5,
		total_properties_count = $6, total_sales_count = $7, total_rent_count = $8,
		total_sales_value = $9, total_rent_value = $10, total_commission_amount = $11,
		updated_at = $12
	WHERE id = $13`

	result, err := r.db.ExecContext(ctx, query,
		report.StartDate, report.EndDate, report.Month, report.Year, report.CommissionPercentage,
		report.TotalPropertiesCount, report.TotalSalesCount, report.TotalRentCount,
		report.TotalSalesValue, report.TotalRentValue, report.TotalCommissionAmount,
		report.UpdatedAt, report.ID)
	if err != nil {
		if isUniqueViolation(err, commissionReportRangeKey) {
			return domain.ErrDuplicateReport
		}
		return fmt.Errorf("commissionReportRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrReportNotFound
	}
	return nil
}

func (r *commissionReportRepo) Delete(ctx context.Context, id uuid.UUID) (*domain.CommissionReport, error) {
	var report domain.CommissionReport
	err := r.db.GetContext(ctx, &report, "DELETE FROM commission_reports WHERE id = $1 RETURNING *", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReportNotFound
		}
		return nil, fmt.Errorf("commissionReportRepo.Delete: %w", err)
	}
	return &report, nil
}
