package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estatehub/internal/domain"
	"estatehub/internal/service"
)

// DailyReportHandler handles daily operations report endpoints.
type DailyReportHandler struct {
	reportService service.DailyReportService
	exportService service.ExportService
}

// NewDailyReportHandler creates a new DailyReportHandler.
func NewDailyReportHandler(reportService service.DailyReportService, exportService service.ExportService) *DailyReportHandler {
	return &DailyReportHandler{reportService: reportService, exportService: exportService}
}

// OperationsUsers handles GET /api/v1/operations-daily/operations-users
// @Summary List eligible operators
// @Description Users with the operations or operations_manager role
// @Tags daily-reports
// @Produce json
// @Success 200 {object} Response{data=[]domain.User}
// @Security BearerAuth
// @Router /operations-daily/operations-users [get]
func (h *DailyReportHandler) OperationsUsers(c *gin.Context) {
	users, err := h.reportService.ListOperationsUsers(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	if users == nil {
		users = []domain.User{}
	}
	RespondOK(c, users)
}

// List handles GET /api/v1/operations-daily
// @Summary List daily reports
// @Description report_date or a start/end date takes precedence over month, which takes precedence over year
// @Tags daily-reports
// @Produce json
// @Param report_date query string false "Exact day (YYYY-MM-DD)"
// @Param start_date query string false "Range start (YYYY-MM-DD); alias date_from"
// @Param end_date query string false "Range end (YYYY-MM-DD); alias date_to"
// @Param month query int false "Month (1-12)"
// @Param year query int false "Year"
// @Param operations_id query string false "Operator UUID"
// @Success 200 {object} Response{data=[]domain.DailyOperationsReport}
// @Failure 400 {object} ErrorResponseBody "Invalid filter"
// @Security BearerAuth
// @Router /operations-daily [get]
func (h *DailyReportHandler) List(c *gin.Context) {
	filters, err := parseDailyFilters(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	reports, err := h.reportService.List(c.Request.Context(), filters)
	if err != nil {
		HandleError(c, err)
		return
	}
	if reports == nil {
		reports = []domain.DailyOperationsReport{}
	}
	RespondOK(c, reports)
}

// Get handles GET /api/v1/operations-daily/:id
// @Summary Get a daily report
// @Tags daily-reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} Response{data=domain.DailyOperationsReport}
// @Failure 404 {object} ErrorResponseBody "Report not found"
// @Security BearerAuth
// @Router /operations-daily/{id} [get]
func (h *DailyReportHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "report")
	if !ok {
		return
	}

	report, err := h.reportService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, report)
}

// Create handles POST /api/v1/operations-daily
// @Summary Create a daily report
// @Tags daily-reports
// @Accept json
// @Produce json
// @Param request body CreateDailyReportRequest true "Operator, day and manual fields"
// @Success 201 {object} Response{data=domain.DailyOperationsReport}
// @Failure 400 {object} ErrorResponseBody "Validation error or invalid operator"
// @Failure 409 {object} ErrorResponseBody "Report already exists for this operator and day"
// @Security BearerAuth
// @Router /operations-daily [post]
func (h *DailyReportHandler) Create(c *gin.Context) {
	var input service.CreateDailyReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "operations_id and report_date are required")
		return
	}

	report, err := h.reportService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, report)
}

// Update handles PUT /api/v1/operations-daily/:id
// @Summary Update a daily report
// @Description Any subset of the manual fields; recalculate refreshes the calculated fields first
// @Tags daily-reports
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Param request body UpdateDailyReportRequest true "Manual fields"
// @Success 200 {object} Response{data=domain.DailyOperationsReport}
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 404 {object} ErrorResponseBody "Report not found"
// @Security BearerAuth
// @Router /operations-daily/{id} [put]
func (h *DailyReportHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "report")
	if !ok {
		return
	}

	var input service.UpdateDailyReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	report, err := h.reportService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, report)
}

// Recalculate handles POST /api/v1/operations-daily/:id/recalculate
// @Summary Recalculate a daily report
// @Description Refreshes the three calculated fields; manual fields are kept
// @Tags daily-reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} Response{data=domain.DailyOperationsReport}
// @Failure 404 {object} ErrorResponseBody "Report not found"
// @Security BearerAuth
// @Router /operations-daily/{id}/recalculate [post]
func (h *DailyReportHandler) Recalculate(c *gin.Context) {
	id, ok := parseIDParam(c, "report")
	if !ok {
		return
	}

	report, err := h.reportService.Recalculate(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondMessage(c, report, "report recalculated")
}

// Delete handles DELETE /api/v1/operations-daily/:id
// @Summary Delete a daily report
// @Tags daily-reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} Response{data=domain.DailyOperationsReport}
// @Failure 404 {object} ErrorResponseBody "Report not found"
// @Security BearerAuth
// @Router /operations-daily/{id} [delete]
func (h *DailyReportHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "report")
	if !ok {
		return
	}

	report, err := h.reportService.Delete(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondMessage(c, report, "report deleted")
}

// ExportExcel handles GET /api/v1/operations-daily/:id/export/excel
// @Summary Export a daily report as Excel
// @Tags daily-reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Report ID"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponseBody "Report not found"
// @Security BearerAuth
// @Router /operations-daily/{id}/export/excel [get]
func (h *DailyReportHandler) ExportExcel(c *gin.Context) {
	id, ok := parseIDParam(c, "report")
	if !ok {
		return
	}
	file, err := h.exportService.DailyExcel(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	sendExport(c, file)
}

// ExportPDF handles GET /api/v1/operations-daily/:id/export/pdf
// @Summary Export a daily report as PDF
// @Tags daily-reports
// @Produce application/pdf
// @Param id path string true "Report ID"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponseBody "Report not found"
// @Security BearerAuth
// @Router /operations-daily/{id}/export/pdf [get]
func (h *DailyReportHandler) ExportPDF(c *gin.Context) {
	id, ok := parseIDParam(c, "report")
	if !ok {
		return
	}
	file, err := h.exportService.DailyPDF(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	sendExport(c, file)
}
