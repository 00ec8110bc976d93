package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estatehub/internal/domain"
	"estatehub/internal/handler"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantCode   string
	}{
		{domain.ErrReportNotFound, http.StatusNotFound, "REPORT_NOT_FOUND"},
		{domain.ErrNotificationNotFound, http.StatusNotFound, "NOTIFICATION_NOT_FOUND"},
		{domain.ErrPropertyNotFound, http.StatusNotFound, "PROPERTY_NOT_FOUND"},
		{domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{domain.ErrDuplicateReport, http.StatusConflict, "DUPLICATE_REPORT"},
		{domain.ErrInvalidDateFormat, http.StatusBadRequest, "INVALID_DATE_FORMAT"},
		{domain.ErrInvalidDateRange, http.StatusBadRequest, "INVALID_DATE_RANGE"},
		{domain.ErrInvalidPropertyType, http.StatusBadRequest, "INVALID_PROPERTY_TYPE"},
		{domain.ErrInvalidOperator, http.StatusBadRequest, "INVALID_OPERATOR"},
		{domain.ErrMissingFields, http.StatusBadRequest, "MISSING_FIELDS"},
		{domain.ErrValidation, http.StatusBadRequest, "VALIDATION_ERROR"},
		{domain.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{domain.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{domain.ErrUserInactive, http.StatusForbidden, "USER_INACTIVE"},
		{domain.ErrRateLimited, http.StatusTooManyRequests, "RATE_LIMITED"},
		{fmt.Errorf("commissionReportRepo.GetByID: %w", domain.ErrReportNotFound), http.StatusNotFound, "REPORT_NOT_FOUND"},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.wantCode, func(t *testing.T) {
			status, code, _ := handler.MapDomainError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestHandleError_Detail(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	t.Cleanup(func() { handler.Configure(logrus.StandardLogger(), true) })

	t.Run("hidden in production", func(t *testing.T) {
		handler.Configure(log, false)
		c, w := newTestContext(http.MethodGet, "/api/v1/operations-daily", nil)

		handler.HandleError(c, errors.New("pq: relation does not exist"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		resp := decode(t, w)
		require.NotNil(t, resp.Error)
		assert.Empty(t, resp.Error.Detail)
		require.NotNil(t, hook.LastEntry())
		assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
		assert.Equal(t, "/api/v1/operations-daily", hook.LastEntry().Data["path"])
	})

	t.Run("exposed in development", func(t *testing.T) {
		hook.Reset()
		handler.Configure(log, true)
		c, w := newTestContext(http.MethodGet, "/api/v1/operations-daily", nil)

		handler.HandleError(c, domain.ErrDuplicateReport)

		resp := decode(t, w)
		require.NotNil(t, resp.Error)
		assert.Equal(t, domain.ErrDuplicateReport.Error(), resp.Error.Detail)
		assert.Empty(t, hook.AllEntries())
	})
}
