package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"estatehub/internal/daterange"
	"estatehub/internal/domain"
	"estatehub/internal/logger"
	"estatehub/internal/port"
)

const entityDailyReport = "daily_report"

// CreateDailyReportInput is the DTO for creating a daily operations report.
// Omitted manual fields default to zero.
type CreateDailyReportInput struct {
	OperationsID                uuid.UUID `json:"operations_id" binding:"required"`
	ReportDate                  string    `json:"report_date" binding:"required"`
	PreparingContract           int       `json:"preparing_contract"`
	TasksEfficiencyDutyTime     int       `json:"tasks_efficiency_duty_time"`
	TasksEfficiencyUniform      int       `json:"tasks_efficiency_uniform"`
	TasksEfficiencyAfterDuty    int       `json:"tasks_efficiency_after_duty"`
	LeadsRespondedOutOfDutyTime int       `json:"leads_responded_out_of_duty_time"`
}

// UpdateDailyReportInput is the DTO for updating a daily report. Any subset of
// the manual fields may be given. Recalculate refreshes the calculated fields
// before the manual fields are applied.
type UpdateDailyReportInput struct {
	PreparingContract           *int `json:"preparing_contract"`
	TasksEfficiencyDutyTime     *int `json:"tasks_efficiency_duty_time"`
	TasksEfficiencyUniform      *int `json:"tasks_efficiency_uniform"`
	TasksEfficiencyAfterDuty    *int `json:"tasks_efficiency_after_duty"`
	LeadsRespondedOutOfDutyTime *int `json:"leads_responded_out_of_duty_time"`
	Recalculate                 bool `json:"recalculate"`
}

// DailyReportService defines the daily operations report contract.
type DailyReportService interface {
	Create(ctx context.Context, input CreateDailyReportInput) (*domain.DailyOperationsReport, error)
	List(ctx context.Context, filters domain.DailyReportFilters) ([]domain.DailyOperationsReport, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DailyOperationsReport, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateDailyReportInput) (*domain.DailyOperationsReport, error)
	Recalculate(ctx context.Context, id uuid.UUID) (*domain.DailyOperationsReport, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.DailyOperationsReport, error)
	ListOperationsUsers(ctx context.Context) ([]domain.User, error)
}

type dailyReportService struct {
	repo       port.DailyReportRepository
	userRepo   port.UserRepository
	aggregator DailyAggregator
	notifier   NotificationService
	log        logrus.FieldLogger
}

// NewDailyReportService creates a new DailyReportService implementation.
// notifier may be nil.
func NewDailyReportService(
	repo port.DailyReportRepository,
	userRepo port.UserRepository,
	aggregator DailyAggregator,
	notifier NotificationService,
	log logrus.FieldLogger,
) DailyReportService {
	return &dailyReportService{
		repo:       repo,
		userRepo:   userRepo,
		aggregator: aggregator,
		notifier:   notifier,
		log:        log,
	}
}

func (s *dailyReportService) Create(ctx context.Context, input CreateDailyReportInput) (*domain.DailyOperationsReport, error) {
	day, err := daterange.NormalizeDay(input.ReportDate)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByOperatorAndDate(ctx, input.OperationsID, day.Str)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("dailyReport.Create: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrDuplicateReport
	}

	calc, err := s.aggregator.Calculate(ctx, input.OperationsID, day)
	if err != nil {
		return nil, err
	}

	report := &domain.DailyOperationsReport{
		OperationsID:                calc.OperationsID,
		OperationsName:              calc.OperationsName,
		ReportDate:                  day.StartUTC,
		PreparingContract:           input.PreparingContract,
		TasksEfficiencyDutyTime:     input.TasksEfficiencyDutyTime,
		TasksEfficiencyUniform:      input.TasksEfficiencyUniform,
		TasksEfficiencyAfterDuty:    input.TasksEfficiencyAfterDuty,
		LeadsRespondedOutOfDutyTime: input.LeadsRespondedOutOfDutyTime,
	}
	calc.apply(report)

	if err := s.repo.Create(ctx, report); err != nil {
		return nil, err
	}
	s.notify(ctx, domain.ActionCreated, report)
	return report, nil
}

func (s *dailyReportService) List(ctx context.Context, filters domain.DailyReportFilters) ([]domain.DailyOperationsReport, error) {
	return s.repo.List(ctx, filters)
}

func (s *dailyReportService) GetByID(ctx context.Context, id uuid.UUID) (*domain.DailyOperationsReport, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *dailyReportService) Update(ctx context.Context, id uuid.UUID, input UpdateDailyReportInput) (*domain.DailyOperationsReport, error) {
	report, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Recalculate {
		if err := s.refresh(ctx, report); err != nil {
			return nil, err
		}
	}

	if input.PreparingContract != nil {
		report.PreparingContract = *input.PreparingContract
	}
	if input.TasksEfficiencyDutyTime != nil {
		report.TasksEfficiencyDutyTime = *input.TasksEfficiencyDutyTime
	}
	if input.TasksEfficiencyUniform != nil {
		report.TasksEfficiencyUniform = *input.TasksEfficiencyUniform
	}
	if input.TasksEfficiencyAfterDuty != nil {
		report.TasksEfficiencyAfterDuty = *input.TasksEfficiencyAfterDuty
	}
	if input.LeadsRespondedOutOfDutyTime != nil {
		report.LeadsRespondedOutOfDutyTime = *input.LeadsRespondedOutOfDutyTime
	}

	if err := s.repo.Update(ctx, report); err != nil {
		return nil, err
	}
	s.notify(ctx, domain.ActionUpdated, report)
	return report, nil
}

func (s *dailyReportService) Recalculate(ctx context.Context, id uuid.UUID) (*domain.DailyOperationsReport, error) {
	return s.Update(ctx, id, UpdateDailyReportInput{Recalculate: true})
}

func (s *dailyReportService) Delete(ctx context.Context, id uuid.UUID) (*domain.DailyOperationsReport, error) {
	report, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.notify(ctx, domain.ActionDeleted, report)
	return report, nil
}

func (s *dailyReportService) ListOperationsUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.ListByRoles(ctx, domain.OperatorRoles)
}

func (s *dailyReportService) refresh(ctx context.Context, report *domain.DailyOperationsReport) error {
	day, err := daterange.NormalizeDay(report.ReportDate)
	if err != nil {
		return err
	}
	calc, err := s.aggregator.Calculate(ctx, report.OperationsID, day)
	if err != nil {
		return err
	}
	calc.apply(report)
	return nil
}

func (s *dailyReportService) notify(ctx context.Context, action domain.NotificationAction, report *domain.DailyOperationsReport) {
	if s.notifier == nil {
		return
	}
	id := report.ID
	name := report.OperationsName + " " + report.ReportDate.Format(daterange.Layout)
	_, err := s.notifier.NotifyRoles(ctx, reportAudience, NotifyActionInput{
		Action:     action,
		EntityType: entityDailyReport,
		EntityID:   &id,
		EntityName: name,
	})
	if err != nil {
		logger.LogError(s.log, "dailyReport", "notify", report.ID, err)
	}
}
