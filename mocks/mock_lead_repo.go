package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockLeadRepo is a mock implementation of port.LeadRepository.
type MockLeadRepo struct {
	mock.Mock
}

func (m *MockLeadRepo) CountAddedByBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) (int, error) {
	args := m.Called(ctx, userID, from, to)
	return args.Int(0), args.Error(1)
}
