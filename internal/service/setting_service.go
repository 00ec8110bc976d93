package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"estatehub/internal/domain"
	"estatehub/internal/port"
)

// UpdateCommissionPercentageInput is the DTO for changing the global commission rate.
type UpdateCommissionPercentageInput struct {
	Percentage *decimal.Decimal `json:"percentage" binding:"required"`
}

// SettingService defines the global settings contract.
type SettingService interface {
	GetCommissionPercentage(ctx context.Context) (decimal.Decimal, error)
	SetCommissionPercentage(ctx context.Context, input UpdateCommissionPercentageInput) (decimal.Decimal, error)
}

type settingService struct {
	repo       port.SettingRepository
	aggregator CommissionAggregator
}

// NewSettingService creates a new SettingService implementation. Reads go
// through the aggregator so the configured default applies.
func NewSettingService(repo port.SettingRepository, aggregator CommissionAggregator) SettingService {
	return &settingService{repo: repo, aggregator: aggregator}
}

func (s *settingService) GetCommissionPercentage(ctx context.Context) (decimal.Decimal, error) {
	return s.aggregator.Percentage(ctx)
}

func (s *settingService) SetCommissionPercentage(ctx context.Context, input UpdateCommissionPercentageInput) (decimal.Decimal, error) {
	if input.Percentage == nil {
		return decimal.Zero, fmt.Errorf("%w: percentage is required", domain.ErrValidation)
	}
	pct := *input.Percentage
	if !pct.IsPositive() || pct.GreaterThan(hundred) {
		return decimal.Zero, fmt.Errorf("%w: percentage must be greater than 0 and at most 100", domain.ErrValidation)
	}
	if !pct.Equal(pct.Round(moneyScale)) {
		return decimal.Zero, fmt.Errorf("%w: percentage allows at most %d decimal places", domain.ErrValidation, moneyScale)
	}
	if err := s.repo.Set(ctx, SettingCommissionPercentage, pct.String()); err != nil {
		return decimal.Zero, err
	}
	return pct, nil
}
