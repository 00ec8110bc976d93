package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"estatehub/internal/domain"
	"estatehub/internal/service"
	"estatehub/mocks"
)

func TestUserService_GetByID_Success(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewUserService(repo)

	userID := uuid.New()
	expected := &domain.User{ID: userID, Email: "ops@estatehub.test", Role: domain.RoleOperations, IsActive: true}
	repo.On("GetByID", mock.Anything, userID).Return(expected, nil)

	user, err := svc.GetByID(context.Background(), userID)

	assert.NoError(t, err)
	assert.Equal(t, expected, user)
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewUserService(repo)

	userID := uuid.New()
	repo.On("GetByID", mock.Anything, userID).Return(nil, domain.ErrNotFound)

	user, err := svc.GetByID(context.Background(), userID)

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
