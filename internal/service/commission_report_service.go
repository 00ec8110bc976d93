package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"estatehub/internal/daterange"
	"estatehub/internal/domain"
	"estatehub/internal/logger"
	"estatehub/internal/port"
)

const entityCommissionReport = "commission_report"

// reportAudience receives report lifecycle notifications.
var reportAudience = []domain.UserRole{domain.RoleAdmin, domain.RoleOperationsManager}

// CreateCommissionReportInput is the DTO for creating a commission report.
type CreateCommissionReportInput struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

// UpdateCommissionReportInput is the DTO for a manual overwrite of the
// aggregate fields. The HTTP boundary requires every field; nil fields are
// left unchanged here. Amounts are rounded to the stored scale.
type UpdateCommissionReportInput struct {
	CommissionPercentage  *decimal.Decimal `json:"commission_percentage" binding:"required"`
	TotalPropertiesCount  *int             `json:"total_properties_count" binding:"required"`
	TotalSalesCount       *int             `json:"total_sales_count" binding:"required"`
	TotalRentCount        *int             `json:"total_rent_count" binding:"required"`
	TotalSalesValue       *decimal.Decimal `json:"total_sales_value" binding:"required"`
	TotalRentValue        *decimal.Decimal `json:"total_rent_value" binding:"required"`
	TotalCommissionAmount *decimal.Decimal `json:"total_commission_amount" binding:"required"`
}

// CommissionReportService defines the commission report contract.
type CommissionReportService interface {
	Create(ctx context.Context, input CreateCommissionReportInput) (*domain.CommissionReport, error)
	List(ctx context.Context, filters domain.CommissionReportFilters) ([]domain.CommissionReport, error)
	// GetByID returns the stored row with a property breakdown recomputed from current data.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CommissionReport, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateCommissionReportInput) (*domain.CommissionReport, error)
	Recalculate(ctx context.Context, id uuid.UUID) (*domain.CommissionReport, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.CommissionReport, error)
}

type commissionReportService struct {
	repo       port.CommissionReportRepository
	aggregator CommissionAggregator
	notifier   NotificationService
	log        logrus.FieldLogger
}

// NewCommissionReportService creates a new CommissionReportService implementation.
// notifier may be nil.
func NewCommissionReportService(
	repo port.CommissionReportRepository,
	aggregator CommissionAggregator,
	notifier NotificationService,
	log logrus.FieldLogger,
) CommissionReportService {
	return &commissionReportService{
		repo:       repo,
		aggregator: aggregator,
		notifier:   notifier,
		log:        log,
	}
}

func (s *commissionReportService) Create(ctx context.Context, input CreateCommissionReportInput) (*domain.CommissionReport, error) {
	r, err := daterange.Normalize(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByRange(ctx, r.StartStr, r.EndStr)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("commissionReport.Create: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrDuplicateReport
	}

	calc, err := s.aggregator.Calculate(ctx, r)
	if err != nil {
		return nil, err
	}

	report := &domain.CommissionReport{}
	calc.apply(report, r)
	if err := s.repo.Create(ctx, report); err != nil {
		return nil, err
	}

	s.notify(ctx, domain.ActionCreated, report)
	return report, nil
}

func (s *commissionReportService) List(ctx context.Context, filters domain.CommissionReportFilters) ([]domain.CommissionReport, error) {
	return s.repo.List(ctx, filters)
}

func (s *commissionReportService) GetByID(ctx context.Context, id uuid.UUID) (*domain.CommissionReport, error) {
	report, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	r, err := storedRange(report)
	if err != nil {
		return nil, err
	}
	calc, err := s.aggregator.Calculate(ctx, r)
	if err != nil {
		return nil, err
	}
	report.Properties = calc.Properties
	return report, nil
}

func (s *commissionReportService) Update(ctx context.Context, id uuid.UUID, input UpdateCommissionReportInput) (*domain.CommissionReport, error) {
	report, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.CommissionPercentage != nil {
		report.CommissionPercentage = input.CommissionPercentage.Round(moneyScale)
	}
	if input.TotalPropertiesCount != nil {
		report.TotalPropertiesCount = *input.TotalPropertiesCount
	}
	if input.TotalSalesCount != nil {
		report.TotalSalesCount = *input.TotalSalesCount
	}
	if input.TotalRentCount != nil {
		report.TotalRentCount = *input.TotalRentCount
	}
	if input.TotalSalesValue != nil {
		report.TotalSalesValue = input.TotalSalesValue.Round(moneyScale)
	}
	if input.TotalRentValue != nil {
		report.TotalRentValue = input.TotalRentValue.Round(moneyScale)
	}
	if input.TotalCommissionAmount != nil {
		report.TotalCommissionAmount = input.TotalCommissionAmount.Round(moneyScale)
	}

	if err := s.repo.Update(ctx, report); err != nil {
		return nil, err
	}
	s.notify(ctx, domain.ActionUpdated, report)
	return report, nil
}

func (s *commissionReportService) Recalculate(ctx context.Context, id uuid.UUID) (*domain.CommissionReport, error) {
	report, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	r, err := storedRange(report)
	if err != nil {
		return nil, err
	}
	calc, err := s.aggregator.Calculate(ctx, r)
	if err != nil {
		return nil, err
	}
	calc.apply(report, r)

	if err := s.repo.Update(ctx, report); err != nil {
		return nil, err
	}
	s.notify(ctx, domain.ActionUpdated, report)
	return report, nil
}

func (s *commissionReportService) Delete(ctx context.Context, id uuid.UUID) (*domain.CommissionReport, error) {
	report, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.notify(ctx, domain.ActionDeleted, report)
	return report, nil
}

// storedRange rebuilds the normalized range of a stored report. Rows that only
// carry month and year fall back to that calendar month.
func storedRange(report *domain.CommissionReport) (daterange.Range, error) {
	start, end := report.StartDate, report.EndDate
	if (start.IsZero() || end.IsZero()) && report.Month >= 1 && report.Month <= 12 && report.Year > 0 {
		start = time.Date(report.Year, time.Month(report.Month), 1, 0, 0, 0, 0, time.UTC)
		end = start.AddDate(0, 1, -1)
	}
	return daterange.Normalize(start, end)
}

func (s *commissionReportService) notify(ctx context.Context, action domain.NotificationAction, report *domain.CommissionReport) {
	if s.notifier == nil {
		return
	}
	id := report.ID
	name := report.StartDate.Format(daterange.Layout) + " to " + report.EndDate.Format(daterange.Layout)
	_, err := s.notifier.NotifyRoles(ctx, reportAudience, NotifyActionInput{
		Action:     action,
		EntityType: entityCommissionReport,
		EntityID:   &id,
		EntityName: name,
	})
	if err != nil {
		logger.LogError(s.log, "commissionReport", "notify", report.ID, err)
	}
}
