package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"estatehub/internal/service"
)

// MockExportService is a mock implementation of service.ExportService.
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) CommissionExcel(ctx context.Context, id uuid.UUID) (*service.ExportFile, error) {
	return m.file(m.Called(ctx, id))
}

func (m *MockExportService) CommissionPDF(ctx context.Context, id uuid.UUID) (*service.ExportFile, error) {
	return m.file(m.Called(ctx, id))
}

func (m *MockExportService) DailyExcel(ctx context.Context, id uuid.UUID) (*service.ExportFile, error) {
	return m.file(m.Called(ctx, id))
}

func (m *MockExportService) DailyPDF(ctx context.Context, id uuid.UUID) (*service.ExportFile, error) {
	return m.file(m.Called(ctx, id))
}

func (m *MockExportService) file(args mock.Arguments) (*service.ExportFile, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExportFile), args.Error(1)
}
