package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"estatehub/internal/config"
	"estatehub/internal/domain"
	"estatehub/internal/service"
	"estatehub/mocks"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:             "test-secret-key-for-unit-tests",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 168 * time.Hour,
		Issuer:             "estatehub-test",
	}
}

func hashPassword(password string) string {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return string(hash)
}

func activeUser(password string) *domain.User {
	return &domain.User{
		ID:           uuid.New(),
		Email:        "ops@test.com",
		PasswordHash: hashPassword(password),
		FullName:     "Dana Ops",
		Role:         domain.RoleOperations,
		IsActive:     true,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	user := activeUser("password123")
	userRepo.On("GetByEmail", mock.Anything, "ops@test.com").Return(user, nil)

	result, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "ops@test.com",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.True(t, result.ExpiresAt.After(time.Now()))
	userRepo.AssertExpectations(t)
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	userRepo.On("GetByEmail", mock.Anything, "ops@test.com").Return(activeUser("correct-password"), nil)

	result, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "ops@test.com",
		Password: "wrong-password",
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	userRepo.On("GetByEmail", mock.Anything, "nobody@test.com").Return(nil, domain.ErrNotFound)

	result, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "nobody@test.com",
		Password: "password123",
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	user := activeUser("password123")
	user.IsActive = false
	userRepo.On("GetByEmail", mock.Anything, "ops@test.com").Return(user, nil)

	result, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "ops@test.com",
		Password: "password123",
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrUserInactive)
}

func TestAuthService_ValidateToken_Success(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	user := activeUser("password123")
	userRepo.On("GetByEmail", mock.Anything, "ops@test.com").Return(user, nil)
	tokens, err := svc.Login(context.Background(), service.LoginInput{Email: "ops@test.com", Password: "password123"})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(tokens.AccessToken)

	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, domain.RoleOperations, claims.Role)
	assert.Equal(t, "ops@test.com", claims.Email)
}

func TestAuthService_ValidateToken_RejectsRefreshToken(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	userRepo.On("GetByEmail", mock.Anything, "ops@test.com").Return(activeUser("password123"), nil)
	tokens, err := svc.Login(context.Background(), service.LoginInput{Email: "ops@test.com", Password: "password123"})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(tokens.RefreshToken)

	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestAuthService_ValidateToken_WrongSecret(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	issuer := service.NewAuthService(userRepo, testJWTConfig())
	otherCfg := testJWTConfig()
	otherCfg.Secret = "a-different-secret"
	verifier := service.NewAuthService(userRepo, otherCfg)

	userRepo.On("GetByEmail", mock.Anything, "ops@test.com").Return(activeUser("password123"), nil)
	tokens, err := issuer.Login(context.Background(), service.LoginInput{Email: "ops@test.com", Password: "password123"})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(tokens.AccessToken)

	assert.Error(t, err)
}

func TestAuthService_RefreshToken_Success(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	user := activeUser("password123")
	userRepo.On("GetByEmail", mock.Anything, "ops@test.com").Return(user, nil)
	userRepo.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	tokens, err := svc.Login(context.Background(), service.LoginInput{Email: "ops@test.com", Password: "password123"})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), tokens.RefreshToken)

	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestAuthService_RefreshToken_WithAccessToken(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	userRepo.On("GetByEmail", mock.Anything, "ops@test.com").Return(activeUser("password123"), nil)
	tokens, err := svc.Login(context.Background(), service.LoginInput{Email: "ops@test.com", Password: "password123"})
	require.NoError(t, err)

	result, err := svc.RefreshToken(context.Background(), tokens.AccessToken)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthService_RefreshToken_UserDeactivated(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	user := activeUser("password123")
	userRepo.On("GetByEmail", mock.Anything, "ops@test.com").Return(user, nil)
	tokens, err := svc.Login(context.Background(), service.LoginInput{Email: "ops@test.com", Password: "password123"})
	require.NoError(t, err)

	inactive := *user
	inactive.IsActive = false
	userRepo.On("GetByID", mock.Anything, user.ID).Return(&inactive, nil)

	result, err := svc.RefreshToken(context.Background(), tokens.RefreshToken)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrUserInactive)
}
