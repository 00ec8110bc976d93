package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estatehub/internal/service"
)

// SettingHandler handles global settings endpoints.
type SettingHandler struct {
	settingService service.SettingService
}

// NewSettingHandler creates a new SettingHandler.
func NewSettingHandler(settingService service.SettingService) *SettingHandler {
	return &SettingHandler{settingService: settingService}
}

// GetCommissionPercentage handles GET /api/v1/settings/commission-percentage
// @Summary Get the commission percentage
// @Tags settings
// @Produce json
// @Success 200 {object} Response{data=CommissionPercentageResponse}
// @Failure 403 {object} ErrorResponseBody "Forbidden - admin only"
// @Security BearerAuth
// @Router /settings/commission-percentage [get]
func (h *SettingHandler) GetCommissionPercentage(c *gin.Context) {
	pct, err := h.settingService.GetCommissionPercentage(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"percentage": pct})
}

// UpdateCommissionPercentage handles PUT /api/v1/settings/commission-percentage
// @Summary Update the commission percentage
// @Description Applies to reports created or recalculated afterwards
// @Tags settings
// @Accept json
// @Produce json
// @Param request body CommissionPercentageRequest true "New percentage (0 < p <= 100)"
// @Success 200 {object} Response{data=CommissionPercentageResponse}
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 403 {object} ErrorResponseBody "Forbidden - admin only"
// @Security BearerAuth
// @Router /settings/commission-percentage [put]
func (h *SettingHandler) UpdateCommissionPercentage(c *gin.Context) {
	var input service.UpdateCommissionPercentageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	pct, err := h.settingService.SetCommissionPercentage(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"percentage": pct})
}
