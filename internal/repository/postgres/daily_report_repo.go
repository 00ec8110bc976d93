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

const dailyReportOperatorDateKey = "daily_operations_reports_operator_date_key"

type dailyReportRepo struct {
	db *sqlx.DB
}

// NewDailyReportRepo creates a new PostgreSQL-backed DailyReportRepository.
func NewDailyReportRepo(db *sqlx.DB) port.DailyReportRepository {
	return &dailyReportRepo{db: db}
}

func (r *dailyReportRepo) Create(ctx context.Context, report *domain.DailyOperationsReport) error {
	report.ID = uuid.New()
	now := time.Now().UTC()
	report.CreatedAt = now
	report.UpdatedAt = now

	query := `INSERT INTO daily_operations_reports (
		id, operations_id, operations_name, report_date,
		properties_added, leads_responded_to, amending_previous_properties,
		preparing_contract, tasks_efficiency_duty_time, tasks_efficiency_uniform,
		tasks_efficiency_after_duty, leads_responded_out_of_duty_time,
		created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.ExecContext(ctx, query,
		report.ID, report.OperationsID, report.OperationsName, report.ReportDate,
		report.PropertiesAdded, report.LeadsRespondedTo, report.AmendingPreviousProperties,
		report.PreparingContract, report.TasksEfficiencyDutyTime, report.TasksEfficiencyUniform,
		report.TasksEfficiencyAfterDuty, report.LeadsRespondedOutOfDutyTime,
		report.CreatedAt, report.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, dailyReportOperatorDateKey) {
			return domain.ErrDuplicateReport
		}
		return fmt.Errorf("dailyReportRepo.Create: %w", err)
	}
	return nil
}

func (r *dailyReportRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.DailyOperationsReport, error) {
	var report domain.DailyOperationsReport
	err := r.db.GetContext(ctx, &report, "SELECT * FROM daily_operations_reports WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReportNotFound
		}
		return nil, fmt.Errorf("dailyReportRepo.GetByID: %w", err)
	}
	return &report, nil
}

func (r *dailyReportRepo) FindByOperatorAndDate(ctx context.Context, operationsID uuid.UUID, reportDate string) (*domain.DailyOperationsReport, error) {
	var report domain.DailyOperationsReport
	err := r.db.GetContext(ctx, &report,
		"SELECT * FROM daily_operations_reports WHERE operations_id = $1 AND report_date = $2::date LIMIT 1",
		operationsID, reportDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("dailyReportRepo.FindByOperatorAndDate: %w", err)
	}
	return &report, nil
}

// buildDailyWhere applies exact date > range > month > year precedence.
func buildDailyWhere(filters domain.DailyReportFilters) *whereBuilder {
	w := &whereBuilder{}
	switch {
	case filters.ReportDate != nil:
		w.add("report_date = $%d::date", filters.ReportDate.Format("2006-01-02"))
	case filters.StartDate != nil || filters.EndDate != nil:
		if filters.StartDate != nil {
			w.add("report_date >= $%d::date", filters.StartDate.Format("2006-01-02"))
		}
		if filters.EndDate != nil {
			w.add("report_date <= $%d::date", filters.EndDate.Format("2006-01-02"))
		}
	case filters.Month != nil:
		w.add("EXTRACT(MONTH FROM report_date) = $%d", *filters.Month)
		if filters.Year != nil {
			w.add("EXTRACT(YEAR FROM report_date) = $%d", *filters.Year)
		}
	case filters.Year != nil:
		w.add("EXTRACT(YEAR FROM report_date) = $%d", *filters.Year)
	}
	if filters.OperationsID != nil {
		w.add("operations_id = $%d", *filters.OperationsID)
	}
	return w
}

func (r *dailyReportRepo) List(ctx context.Context, filters domain.DailyReportFilters) ([]domain.DailyOperationsReport, error) {
	w := buildDailyWhere(filters)
	query := fmt.Sprintf(`SELECT * FROM daily_operations_reports %s
		ORDER BY report_date DESC, operations_name DESC`, w.clause())

	reports := []domain.DailyOperationsReport{}
	if err := r.db.SelectContext(ctx, &reports, query, w.args...); err != nil {
		return nil, fmt.Errorf("dailyReportRepo.List: %w", err)
	}
	return reports, nil
}

func (r *dailyReportRepo) Update(ctx context.Context, report *domain.DailyOperationsReport) error {
	report.UpdatedAt = time.Now().UTC()
	query := `UPDATE daily_operations_reports SET
		properties_added = $1, leads_responded_to = $2, amending_previous_properties = $3,
		preparing_contract = $4, tasks_efficiency_duty_time = $5, tasks_efficiency_uniform = $6,
		tasks_efficiency_after_duty = $7, leads_responded_out_of_duty_time = $8,
		updated_at = $9
	WHERE id = $10`

	result, err := r.db.ExecContext(ctx, query,
		report.PropertiesAdded, report.LeadsRespondedTo, report.AmendingPreviousProperties,
		report.PreparingContract, report.TasksEfficiencyDutyTime, report.TasksEfficiencyUniform,
		report.TasksEfficiencyAfterDuty, report.LeadsRespondedOutOfDutyTime,
		report.UpdatedAt, report.ID)
	if err != nil {
		return fmt.Errorf("dailyReportRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrReportNotFound
	}
	return nil
}

func (r *dailyReportRepo) Delete(ctx context.Context, id uuid.UUID) (*domain.DailyOperationsReport, error) {
	var report domain.DailyOperationsReport
	err := r.db.GetContext(ctx, &report, "DELETE FROM daily_operations_reports WHERE id = $1 RETURNING *", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReportNotFound
		}
		return nil, fmt.Errorf("dailyReportRepo.Delete: %w", err)
	}
	return &report, nil
}
