package service_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"estatehub/internal/domain"
	"estatehub/internal/service"
	"estatehub/mocks"
)

func TestSettingService_GetCommissionPercentage(t *testing.T) {
	repo := new(mocks.MockSettingRepo)
	agg := new(mocks.MockCommissionAggregator)
	svc := service.NewSettingService(repo, agg)

	agg.On("Percentage", mock.Anything).Return(decimal.RequireFromString("3.5"), nil)

	pct, err := svc.GetCommissionPercentage(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "3.5", pct.String())
}

func TestSettingService_SetCommissionPercentage_Success(t *testing.T) {
	repo := new(mocks.MockSettingRepo)
	agg := new(mocks.MockCommissionAggregator)
	svc := service.NewSettingService(repo, agg)

	repo.On("Set", mock.Anything, service.SettingCommissionPercentage, "2.75").Return(nil)

	pct, err := svc.SetCommissionPercentage(context.Background(), service.UpdateCommissionPercentageInput{
		Percentage: decPtr("2.75"),
	})

	require.NoError(t, err)
	assert.Equal(t, "2.75", pct.String())
	repo.AssertExpectations(t)
}

func TestSettingService_SetCommissionPercentage_Rejected(t *testing.T) {
	for _, v := range []string{"0", "-1", "100.01", "4.125"} {
		t.Run(v, func(t *testing.T) {
			repo := new(mocks.MockSettingRepo)
			agg := new(mocks.MockCommissionAggregator)
			svc := service.NewSettingService(repo, agg)

			_, err := svc.SetCommissionPercentage(context.Background(), service.UpdateCommissionPercentageInput{
				Percentage: decPtr(v),
			})

			assert.ErrorIs(t, err, domain.ErrValidation)
			repo.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}
