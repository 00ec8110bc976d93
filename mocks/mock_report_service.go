package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"estatehub/internal/domain"
	"estatehub/internal/service"
)

// MockCommissionReportService is a mock implementation of service.CommissionReportService.
type MockCommissionReportService struct {
	mock.Mock
}

func (m *MockCommissionReportService) Create(ctx context.Context, input service.CreateCommissionReportInput) (*domain.CommissionReport, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommissionReport), args.Error(1)
}

func (m *MockCommissionReportService) List(ctx context.Context, filters domain.CommissionReportFilters) ([]domain.CommissionReport, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CommissionReport), args.Error(1)
}

func (m *MockCommissionReportService) GetByID(ctx context.Context, id uuid.UUID) (*domain.CommissionReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommissionReport), args.Error(1)
}

func (m *MockCommissionReportService) Update(ctx context.Context, id uuid.UUID, input service.UpdateCommissionReportInput) (*domain.CommissionReport, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommissionReport), args.Error(1)
}

func (m *MockCommissionReportService) Recalculate(ctx context.Context, id uuid.UUID) (*domain.CommissionReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommissionReport), args.Error(1)
}

func (m *MockCommissionReportService) Delete(ctx context.Context, id uuid.UUID) (*domain.CommissionReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommissionReport), args.Error(1)
}

// MockDailyReportService is a mock implementation of service.DailyReportService.
type MockDailyReportService struct {
	mock.Mock
}

func (m *MockDailyReportService) Create(ctx context.Context, input service.CreateDailyReportInput) (*domain.DailyOperationsReport, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyOperationsReport), args.Error(1)
}

func (m *MockDailyReportService) List(ctx context.Context, filters domain.DailyReportFilters) ([]domain.DailyOperationsReport, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyOperationsReport), args.Error(1)
}

func (m *MockDailyReportService) GetByID(ctx context.Context, id uuid.UUID) (*domain.DailyOperationsReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyOperationsReport), args.Error(1)
}

func (m *MockDailyReportService) Update(ctx context.Context, id uuid.UUID, input service.UpdateDailyReportInput) (*domain.DailyOperationsReport, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyOperationsReport), args.Error(1)
}

func (m *MockDailyReportService) Recalculate(ctx context.Context, id uuid.UUID) (*domain.DailyOperationsReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyOperationsReport), args.Error(1)
}

func (m *MockDailyReportService) Delete(ctx context.Context, id uuid.UUID) (*domain.DailyOperationsReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyOperationsReport), args.Error(1)
}

func (m *MockDailyReportService) ListOperationsUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
