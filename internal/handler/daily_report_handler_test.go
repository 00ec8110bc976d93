package handler_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"estatehub/internal/domain"
	"estatehub/internal/handler"
	"estatehub/internal/service"
	"estatehub/mocks"
)

func newDailyHandler() (*handler.DailyReportHandler, *mocks.MockDailyReportService, *mocks.MockExportService) {
	reportSvc := new(mocks.MockDailyReportService)
	exportSvc := new(mocks.MockExportService)
	return handler.NewDailyReportHandler(reportSvc, exportSvc), reportSvc, exportSvc
}

func TestDailyReportHandler_OperationsUsers_EmptyList(t *testing.T) {
	h, reportSvc, _ := newDailyHandler()
	reportSvc.On("ListOperationsUsers", mock.Anything).Return(nil, nil)

	c, w := newTestContext(http.MethodGet, "/api/v1/operations-daily/operations-users", nil)

	h.OperationsUsers(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":[]}`, w.Body.String())
}

func TestDailyReportHandler_Create_Success(t *testing.T) {
	h, reportSvc, _ := newDailyHandler()
	operatorID := uuid.New()

	reportSvc.On("Create", mock.Anything, mock.MatchedBy(func(in service.CreateDailyReportInput) bool {
		return in.OperationsID == operatorID && in.ReportDate == "2024-05-10" && in.PreparingContract == 2
	})).Return(&domain.DailyOperationsReport{ID: uuid.New(), OperationsID: operatorID}, nil)

	c, w := newTestContext(http.MethodPost, "/api/v1/operations-daily", map[string]interface{}{
		"operations_id":      operatorID.String(),
		"report_date":        "2024-05-10",
		"preparing_contract": 2,
	})

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	reportSvc.AssertExpectations(t)
}

func TestDailyReportHandler_Create_MissingFields(t *testing.T) {
	h, reportSvc, _ := newDailyHandler()

	c, w := newTestContext(http.MethodPost, "/api/v1/operations-daily", map[string]interface{}{
		"report_date": "2024-05-10",
	})

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "operations_id and report_date are required", resp.Error.Message)
	reportSvc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDailyReportHandler_Create_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"duplicate", domain.ErrDuplicateReport, http.StatusConflict, "DUPLICATE_REPORT"},
		{"not an operator", domain.ErrInvalidOperator, http.StatusBadRequest, "INVALID_OPERATOR"},
		{"bad date", domain.ErrInvalidDateFormat, http.StatusBadRequest, "INVALID_DATE_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, reportSvc, _ := newDailyHandler()
			reportSvc.On("Create", mock.Anything, mock.Anything).Return(nil, tt.err)

			c, w := newTestContext(http.MethodPost, "/api/v1/operations-daily", map[string]interface{}{
				"operations_id": uuid.New().String(),
				"report_date":   "2024-05-10",
			})

			h.Create(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := decode(t, w)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestDailyReportHandler_List_Filters(t *testing.T) {
	h, reportSvc, _ := newDailyHandler()
	operatorID := uuid.New()

	reportSvc.On("List", mock.Anything, mock.MatchedBy(func(f domain.DailyReportFilters) bool {
		return f.ReportDate != nil && f.ReportDate.Equal(time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)) &&
			f.OperationsID != nil && *f.OperationsID == operatorID &&
			f.Year != nil && *f.Year == 2024
	})).Return([]domain.DailyOperationsReport{{ID: uuid.New()}}, nil)

	c, w := newTestContext(http.MethodGet, "/api/v1/operations-daily?date=2024-05-10&year=2024&operations_id="+operatorID.String(), nil)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	data, ok := resp.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, data, 1)
	reportSvc.AssertExpectations(t)
}

func TestDailyReportHandler_List_InvalidOperationsID(t *testing.T) {
	h, reportSvc, _ := newDailyHandler()

	c, w := newTestContext(http.MethodGet, "/api/v1/operations-daily?operations_id=abc", nil)

	h.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	reportSvc.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestDailyReportHandler_Update_Recalculate(t *testing.T) {
	h, reportSvc, _ := newDailyHandler()
	id := uuid.New()

	reportSvc.On("Update", mock.Anything, id, mock.MatchedBy(func(in service.UpdateDailyReportInput) bool {
		return in.Recalculate && in.TasksEfficiencyUniform != nil && *in.TasksEfficiencyUniform == 1 && in.PreparingContract == nil
	})).Return(&domain.DailyOperationsReport{ID: id}, nil)

	c, w := newTestContext(http.MethodPut, "/api/v1/operations-daily/"+id.String(), map[string]interface{}{
		"tasks_efficiency_uniform": 1,
		"recalculate":              true,
	})
	withID(c, id.String())

	h.Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	reportSvc.AssertExpectations(t)
}

func TestDailyReportHandler_Recalculate_NotFound(t *testing.T) {
	h, reportSvc, _ := newDailyHandler()
	id := uuid.New()

	reportSvc.On("Recalculate", mock.Anything, id).Return(nil, domain.ErrReportNotFound)

	c, w := newTestContext(http.MethodPost, "/api/v1/operations-daily/"+id.String()+"/recalculate", nil)
	withID(c, id.String())

	h.Recalculate(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDailyReportHandler_Delete_Success(t *testing.T) {
	h, reportSvc, _ := newDailyHandler()
	id := uuid.New()

	reportSvc.On("Delete", mock.Anything, id).Return(&domain.DailyOperationsReport{ID: id}, nil)

	c, w := newTestContext(http.MethodDelete, "/api/v1/operations-daily/"+id.String(), nil)
	withID(c, id.String())

	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "report deleted", decode(t, w).Message)
}

func TestDailyReportHandler_ExportPDF_Headers(t *testing.T) {
	h, _, exportSvc := newDailyHandler()
	id := uuid.New()

	exportSvc.On("DailyPDF", mock.Anything, id).Return(&service.ExportFile{
		Filename:    "daily-report_Jane_Doe_2024-05-10.pdf",
		ContentType: "application/pdf",
		Data:        []byte("%PDF-1.3"),
	}, nil)

	c, w := newTestContext(http.MethodGet, "/api/v1/operations-daily/"+id.String()+"/export/pdf", nil)
	withID(c, id.String())

	h.ExportPDF(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="daily-report_Jane_Doe_2024-05-10.pdf"`, w.Header().Get("Content-Disposition"))
	assert.Empty(t, w.Header().Get("X-Archive-URL"))
}

func TestDailyReportHandler_ExportExcel_InvalidID(t *testing.T) {
	h, _, exportSvc := newDailyHandler()

	c, w := newTestContext(http.MethodGet, "/api/v1/operations-daily/x/export/excel", nil)
	withID(c, "x")

	h.ExportExcel(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	exportSvc.AssertNotCalled(t, "DailyExcel", mock.Anything, mock.Anything)
}
