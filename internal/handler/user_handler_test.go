package handler_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"estatehub/internal/domain"
	"estatehub/internal/handler"
	"estatehub/mocks"
)

func TestUserHandler_Me(t *testing.T) {
	svc := new(mocks.MockUserService)
	h := handler.NewUserHandler(svc)
	userID := uuid.New()

	svc.On("GetByID", mock.Anything, userID).Return(&domain.User{
		ID:           userID,
		Email:        "ops@estatehub.test",
		PasswordHash: "secret-hash",
		Role:         domain.RoleOperations,
	}, nil)

	c, w := newTestContext(http.MethodGet, "/api/v1/users/me", nil)
	setAuthContext(c, userID, domain.RoleOperations)

	h.Me(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ops@estatehub.test")
	assert.NotContains(t, w.Body.String(), "secret-hash")
}

func TestUserHandler_Me_Unauthenticated(t *testing.T) {
	h := handler.NewUserHandler(new(mocks.MockUserService))

	c, w := newTestContext(http.MethodGet, "/api/v1/users/me", nil)

	h.Me(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
