package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"estatehub/internal/domain"
)

// MockCommissionReportRepo is a mock implementation of port.CommissionReportRepository.
type MockCommissionReportRepo struct {
	mock.Mock
}

func (m *MockCommissionReportRepo) Create(ctx context.Context, report *domain.CommissionReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockCommissionReportRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CommissionReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommissionReport), args.Error(1)
}

func (m *MockCommissionReportRepo) FindByRange(ctx context.Context, startDate, endDate string) (*domain.CommissionReport, error) {
	args := m.Called(ctx, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommissionReport), args.Error(1)
}

func (m *MockCommissionReportRepo) List(ctx context.Context, filters domain.CommissionReportFilters) ([]domain.CommissionReport, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CommissionReport), args.Error(1)
}

func (m *MockCommissionReportRepo) Update(ctx context.Context, report *domain.CommissionReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockCommissionReportRepo) Delete(ctx context.Context, id uuid.UUID) (*domain.CommissionReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommissionReport), args.Error(1)
}

// MockDailyReportRepo is a mock implementation of port.DailyReportRepository.
type MockDailyReportRepo struct {
	mock.Mock
}

func (m *MockDailyReportRepo) Create(ctx context.Context, report *domain.DailyOperationsReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockDailyReportRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.DailyOperationsReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyOperationsReport), args.Error(1)
}

func (m *MockDailyReportRepo) FindByOperatorAndDate(ctx context.Context, operationsID uuid.UUID, reportDate string) (*domain.DailyOperationsReport, error) {
	args := m.Called(ctx, operationsID, reportDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyOperationsReport), args.Error(1)
}

func (m *MockDailyReportRepo) List(ctx context.Context, filters domain.DailyReportFilters) ([]domain.DailyOperationsReport, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyOperationsReport), args.Error(1)
}

func (m *MockDailyReportRepo) Update(ctx context.Context, report *domain.DailyOperationsReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockDailyReportRepo) Delete(ctx context.Context, id uuid.UUID) (*domain.DailyOperationsReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyOperationsReport), args.Error(1)
}
