package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"estatehub/internal/daterange"
	"estatehub/internal/service"
)

// MockCommissionAggregator is a mock implementation of service.CommissionAggregator.
type MockCommissionAggregator struct {
	mock.Mock
}

func (m *MockCommissionAggregator) Calculate(ctx context.Context, r daterange.Range) (*service.CommissionCalculation, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CommissionCalculation), args.Error(1)
}

func (m *MockCommissionAggregator) Percentage(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// MockDailyAggregator is a mock implementation of service.DailyAggregator.
type MockDailyAggregator struct {
	mock.Mock
}

func (m *MockDailyAggregator) Calculate(ctx context.Context, operatorID uuid.UUID, day daterange.Day) (*service.DailyCalculation, error) {
	args := m.Called(ctx, operatorID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DailyCalculation), args.Error(1)
}
