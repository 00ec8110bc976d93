package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"estatehub/internal/daterange"
	"estatehub/internal/domain"
	"estatehub/internal/port"
)

// DailyCalculation holds the three calculated counters of a daily report.
// LeadsRespondedTo is the raw count; out-of-duty responses are only
// subtracted when the report is displayed.
type DailyCalculation struct {
	OperationsID               uuid.UUID
	OperationsName             string
	ReportDate                 string
	PropertiesAdded            int
	LeadsRespondedTo           int
	AmendingPreviousProperties int
}

// DailyAggregator computes one operator's activity for one UTC day.
type DailyAggregator interface {
	Calculate(ctx context.Context, operatorID uuid.UUID, day daterange.Day) (*DailyCalculation, error)
}

type dailyAggregator struct {
	userRepo     port.UserRepository
	propertyRepo port.PropertyRepository
	leadRepo     port.LeadRepository
}

// NewDailyAggregator creates a new DailyAggregator.
func NewDailyAggregator(
	userRepo port.UserRepository,
	propertyRepo port.PropertyRepository,
	leadRepo port.LeadRepository,
) DailyAggregator {
	return &dailyAggregator{
		userRepo:     userRepo,
		propertyRepo: propertyRepo,
		leadRepo:     leadRepo,
	}
}

func (a *dailyAggregator) Calculate(ctx context.Context, operatorID uuid.UUID, day daterange.Day) (*DailyCalculation, error) {
	user, err := a.userRepo.GetByID(ctx, operatorID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidOperator
		}
		return nil, fmt.Errorf("dailyAggregator.Calculate: %w", err)
	}
	if !user.Role.IsOperator() {
		return nil, domain.ErrInvalidOperator
	}

	added, err := a.propertyRepo.CountCreatedBetween(ctx, day.StartUTC, day.EndUTC)
	if err != nil {
		return nil, fmt.Errorf("dailyAggregator.Calculate properties: %w", err)
	}
	leads, err := a.leadRepo.CountAddedByBetween(ctx, operatorID, day.StartUTC, day.EndUTC)
	if err != nil {
		return nil, fmt.Errorf("dailyAggregator.Calculate leads: %w", err)
	}
	amended, err := a.propertyRepo.CountAmendedBetween(ctx, day.StartUTC, day.EndUTC)
	if err != nil {
		return nil, fmt.Errorf("dailyAggregator.Calculate amendments: %w", err)
	}

	return &DailyCalculation{
		OperationsID:               user.ID,
		OperationsName:             user.FullName,
		ReportDate:                 day.Str,
		PropertiesAdded:            added,
		LeadsRespondedTo:           leads,
		AmendingPreviousProperties: amended,
	}, nil
}

func (c *DailyCalculation) apply(report *domain.DailyOperationsReport) {
	report.PropertiesAdded = c.PropertiesAdded
	report.LeadsRespondedTo = c.LeadsRespondedTo
	report.AmendingPreviousProperties = c.AmendingPreviousProperties
}
