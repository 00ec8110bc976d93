package mocks

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"estatehub/internal/service"
)

// MockSettingService is a mock implementation of service.SettingService.
type MockSettingService struct {
	mock.Mock
}

func (m *MockSettingService) GetCommissionPercentage(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockSettingService) SetCommissionPercentage(ctx context.Context, input service.UpdateCommissionPercentageInput) (decimal.Decimal, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
