package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"estatehub/internal/domain"
	"estatehub/internal/handler"
	"estatehub/internal/service"
	"estatehub/mocks"
)

func TestSettingHandler_GetCommissionPercentage(t *testing.T) {
	svc := new(mocks.MockSettingService)
	h := handler.NewSettingHandler(svc)
	svc.On("GetCommissionPercentage", mock.Anything).Return(decimal.RequireFromString("4"), nil)

	c, w := newTestContext(http.MethodGet, "/api/v1/settings/commission-percentage", nil)

	h.GetCommissionPercentage(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{"percentage":"4"}}`, w.Body.String())
}

func TestSettingHandler_UpdateCommissionPercentage(t *testing.T) {
	svc := new(mocks.MockSettingService)
	h := handler.NewSettingHandler(svc)
	svc.On("SetCommissionPercentage", mock.Anything, mock.MatchedBy(func(in service.UpdateCommissionPercentageInput) bool {
		return in.Percentage != nil && in.Percentage.Equal(decimal.RequireFromString("2.75"))
	})).Return(decimal.RequireFromString("2.75"), nil)

	c, w := newTestContext(http.MethodPut, "/api/v1/settings/commission-percentage", map[string]interface{}{
		"percentage": 2.75,
	})

	h.UpdateCommissionPercentage(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{"percentage":"2.75"}}`, w.Body.String())
}

func TestSettingHandler_UpdateCommissionPercentage_OutOfRange(t *testing.T) {
	svc := new(mocks.MockSettingService)
	h := handler.NewSettingHandler(svc)
	svc.On("SetCommissionPercentage", mock.Anything, mock.Anything).
		Return(decimal.Zero, fmt.Errorf("%w: percentage must be greater than 0 and at most 100", domain.ErrValidation))

	c, w := newTestContext(http.MethodPut, "/api/v1/settings/commission-percentage", map[string]interface{}{
		"percentage": 250,
	})

	h.UpdateCommissionPercentage(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "at most 100")
}

func TestSettingHandler_UpdateCommissionPercentage_Missing(t *testing.T) {
	svc := new(mocks.MockSettingService)
	h := handler.NewSettingHandler(svc)

	c, w := newTestContext(http.MethodPut, "/api/v1/settings/commission-percentage", map[string]interface{}{})

	h.UpdateCommissionPercentage(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "SetCommissionPercentage", mock.Anything, mock.Anything)
}
