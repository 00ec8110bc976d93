package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"estatehub/internal/daterange"
	"estatehub/internal/domain"
	"estatehub/internal/port"
)

// SettingCommissionPercentage is the settings key holding the global commission rate.
const SettingCommissionPercentage = "commission_percentage"

// moneyScale is the scale of the money and percentage columns of commission_reports.
const moneyScale = 2

var hundred = decimal.NewFromInt(100)

// CommissionCalculation is the output of one commission aggregation run.
type CommissionCalculation struct {
	StartDate             string
	EndDate               string
	Month                 int
	Year                  int
	CommissionPercentage  decimal.Decimal
	TotalPropertiesCount  int
	TotalSalesCount       int
	TotalRentCount        int
	TotalSalesValue       decimal.Decimal
	TotalRentValue        decimal.Decimal
	TotalCommissionAmount decimal.Decimal
	Properties            []domain.CommissionProperty
}

// CommissionAggregator computes commission totals over closed properties.
type CommissionAggregator interface {
	Calculate(ctx context.Context, r daterange.Range) (*CommissionCalculation, error)
	Percentage(ctx context.Context) (decimal.Decimal, error)
}

type commissionAggregator struct {
	propertyRepo      port.PropertyRepository
	settingRepo       port.SettingRepository
	defaultPercentage decimal.Decimal
}

// NewCommissionAggregator creates a new CommissionAggregator. defaultPercentage
// applies when the settings table has no usable commission rate.
func NewCommissionAggregator(
	propertyRepo port.PropertyRepository,
	settingRepo port.SettingRepository,
	defaultPercentage float64,
) CommissionAggregator {
	return &commissionAggregator{
		propertyRepo:      propertyRepo,
		settingRepo:       settingRepo,
		defaultPercentage: decimal.NewFromFloat(defaultPercentage).Round(moneyScale),
	}
}

func (a *commissionAggregator) Percentage(ctx context.Context) (decimal.Decimal, error) {
	raw, err := a.settingRepo.Get(ctx, SettingCommissionPercentage)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return a.defaultPercentage, nil
		}
		return decimal.Zero, fmt.Errorf("commissionAggregator.Percentage: %w", err)
	}
	pct, err := decimal.NewFromString(raw)
	if err != nil {
		return a.defaultPercentage, nil
	}
	return pct.Round(moneyScale), nil
}

func (a *commissionAggregator) Calculate(ctx context.Context, r daterange.Range) (*CommissionCalculation, error) {
	pct, err := a.Percentage(ctx)
	if err != nil {
		return nil, err
	}

	props, err := a.propertyRepo.ListClosedBetween(ctx, r.StartStr, r.EndStr)
	if err != nil {
		return nil, fmt.Errorf("commissionAggregator.Calculate: %w", err)
	}

	calc := &CommissionCalculation{
		StartDate:             r.StartStr,
		EndDate:               r.EndStr,
		Month:                 r.Month(),
		Year:                  r.Year(),
		CommissionPercentage:  pct,
		TotalSalesValue:       decimal.Zero,
		TotalRentValue:        decimal.Zero,
		TotalCommissionAmount: decimal.Zero,
		Properties:            make([]domain.CommissionProperty, 0, len(props)),
	}

	for i := range props {
		p := props[i]
		p.Commission = commissionOn(p.Price, pct)
		if domain.ClassifyPropertyType(p.PropertyType) == domain.PropertyTypeSale {
			calc.TotalSalesCount++
			calc.TotalSalesValue = calc.TotalSalesValue.Add(p.Price)
		} else {
			calc.TotalRentCount++
			calc.TotalRentValue = calc.TotalRentValue.Add(p.Price)
		}
		calc.Properties = append(calc.Properties, p)
	}

	calc.TotalPropertiesCount = calc.TotalSalesCount + calc.TotalRentCount
	calc.TotalSalesValue = calc.TotalSalesValue.Round(moneyScale)
	calc.TotalRentValue = calc.TotalRentValue.Round(moneyScale)
	calc.TotalCommissionAmount = commissionOn(calc.TotalSalesValue.Add(calc.TotalRentValue), pct)
	return calc, nil
}

func commissionOn(amount, pct decimal.Decimal) decimal.Decimal {
	return amount.Mul(pct).Div(hundred).Round(moneyScale)
}

// apply copies the calculated aggregates onto a stored report. Both dates are
// day starts, the same values a DATE column reads back.
func (c *CommissionCalculation) apply(report *domain.CommissionReport, r daterange.Range) {
	report.StartDate = r.StartUTC
	report.EndDate = r.EndUTC.Truncate(24 * time.Hour)
	report.Month = c.Month
	report.Year = c.Year
	report.CommissionPercentage = c.CommissionPercentage
	report.TotalPropertiesCount = c.TotalPropertiesCount
	report.TotalSalesCount = c.TotalSalesCount
	report.TotalRentCount = c.TotalRentCount
	report.TotalSalesValue = c.TotalSalesValue
	report.TotalRentValue = c.TotalRentValue
	report.TotalCommissionAmount = c.TotalCommissionAmount
	report.Properties = c.Properties
}
