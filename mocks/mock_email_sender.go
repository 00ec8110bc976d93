package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendNotificationEmail(ctx context.Context, toEmail, toName, title, message string) error {
	args := m.Called(ctx, toEmail, toName, title, message)
	return args.Error(0)
}
