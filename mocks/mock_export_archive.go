package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"estatehub/internal/port"
)

// MockExportArchive is a mock implementation of port.ExportArchive.
type MockExportArchive struct {
	mock.Mock
}

func (m *MockExportArchive) Store(ctx context.Context, file port.ArchivedExport) (string, error) {
	args := m.Called(ctx, file)
	return args.String(0), args.Error(1)
}

func (m *MockExportArchive) DownloadURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	args := m.Called(ctx, key, ttl)
	return args.String(0), args.Error(1)
}
