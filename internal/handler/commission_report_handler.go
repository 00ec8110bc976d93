package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estatehub/internal/domain"
	"estatehub/internal/service"
	"estatehub/internal/validator"
)

// CommissionReportHandler handles commission report endpoints.
type CommissionReportHandler struct {
	reportService service.CommissionReportService
	exportService service.ExportService
}

// NewCommissionReportHandler creates a new CommissionReportHandler.
func NewCommissionReportHandler(reportService service.CommissionReportService, exportService service.ExportService) *CommissionReportHandler {
	return &CommissionReportHandler{reportService: reportService, exportService: exportService}
}

// List handles GET /api/v1/operations-commission/monthly
// @Summary List commission reports
// @Description A start date takes precedence over month, which takes precedence over year
// @Tags commission-reports
// @Produce json
// @Param start_date query string false "Range start (YYYY-MM-DD); alias date_from"
// @Param end_date query string false "Range end (YYYY-MM-DD); alias date_to"
// @Param month query int false "Month (1-12)"
// @Param year query int false "Year"
// @Success 200 {object} Response{data=[]domain.CommissionReport}
// @Failure 400 {object} ErrorResponseBody "Invalid filter"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /operations-commission/monthly [get]
func (h *CommissionReportHandler) List(c *gin.Context) {
	filters, err := parseCommissionFilters(c)
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
		reports = []domain.CommissionReport{}
	}
	RespondOK(c, reports)
}

// Get handles GET /api/v1/operations-commission/monthly/:id
// @Summary Get a commission report
// @Description Returns the stored report with the per-property breakdown computed from current data
// @Tags commission-reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} Response{data=domain.CommissionReport}
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Report not found"
// @Security BearerAuth
// @Router /operations-commission/monthly/{id} [get]
func (h *CommissionReportHandler) Get(c *gin.Context) {
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

// Create handles POST /api/v1/operations-commission/monthly
// @Summary Create a commission report
// @Tags commission-reports
// @Accept json
// @Produce json
// @Param request body CreateCommissionReportRequest true "Date range"
// @Success 201 {object} Response{data=domain.CommissionReport}
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 409 {object} ErrorResponseBody "Report already exists for this range"
// @Security BearerAuth
// @Router /operations-commission/monthly [post]
func (h *CommissionReportHandler) Create(c *gin.Context) {
	var input service.CreateCommissionReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "start_date and end_date are required")
		return
	}

	report, err := h.reportService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, report)
}

// Update handles PUT /api/v1/operations-commission/monthly/:id
// @Summary Overwrite a commission report
// @Description All seven aggregate fields are required
// @Tags commission-reports
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Param request body UpdateCommissionReportRequest true "Aggregate values"
// @Success 200 {object} Response{data=domain.CommissionReport}
// @Failure 400 {object} ErrorResponseBody "Missing fields or invalid values"
// @Failure 404 {object} ErrorResponseBody "Report not found"
// @Security BearerAuth
// @Router /operations-commission/monthly/{id} [put]
func (h *CommissionReportHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "report")
	if !ok {
		return
	}

	var input service.UpdateCommissionReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		if validator.MissingRequired(err) {
			RespondError(c, http.StatusBadRequest, "MISSING_FIELDS", "all report fields are required")
			return
		}
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

// Recalculate handles POST /api/v1/operations-commission/monthly/:id/recalculate
// @Summary Recalculate a commission report
// @Description Recomputes every aggregate from current property data and the current percentage
// @Tags commission-reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} Response{data=domain.CommissionReport}
// @Failure 404 {object} ErrorResponseBody "Report not found"
// @Security BearerAuth
// @Router /operations-commission/monthly/{id}/recalculate [post]
func (h *CommissionReportHandler) Recalculate(c *gin.Context) {
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

// Delete handles DELETE /api/v1/operations-commission/monthly/:id
// @Summary Delete a commission report
// @Tags commission-reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} Response{data=domain.CommissionReport}
// @Failure 404 {object} ErrorResponseBody "Report not found"
// @Security BearerAuth
// @Router /operations-commission/monthly/{id} [delete]
func (h *CommissionReportHandler) Delete(c *gin.Context) {
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

// ExportExcel handles GET /api/v1/operations-commission/monthly/:id/export/excel
// @Summary Export a commission report as Excel
// @Tags commission-reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Report ID"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponseBody "Report not found"
// @Security BearerAuth
// @Router /operations-commission/monthly/{id}/export/excel [get]
func (h *CommissionReportHandler) ExportExcel(c *gin.Context) {
	id, ok := parseIDParam(c, "report")
	if !ok {
		return
	}
	file, err := h.exportService.CommissionExcel(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	sendExport(c, file)
}

// ExportPDF handles GET /api/v1/operations-commission/monthly/:id/export/pdf
// @Summary Export a commission report as PDF
// @Tags commission-reports
// @Produce application/pdf
// @Param id path string true "Report ID"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponseBody "Report not found"
// @Security BearerAuth
// @Router /operations-commission/monthly/{id}/export/pdf [get]
func (h *CommissionReportHandler) ExportPDF(c *gin.Context) {
	id, ok := parseIDParam(c, "report")
	if !ok {
		return
	}
	file, err := h.exportService.CommissionPDF(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	sendExport(c, file)
}
