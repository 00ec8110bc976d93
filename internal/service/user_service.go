package service

import (
	"context"

	"github.com/google/uuid"

	"estatehub/internal/domain"
	"estatehub/internal/port"
)

// UserService defines the user lookup contract.
type UserService interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

type userService struct {
	repo port.UserRepository
}

// NewUserService creates a new UserService implementation.
func NewUserService(repo port.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return s.repo.GetByID(ctx, userID)
}
