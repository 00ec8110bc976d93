package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estatehub/internal/domain"
	"estatehub/internal/service"
)

// PropertyHandler handles property endpoints.
type PropertyHandler struct {
	propertyService service.PropertyService
}

// NewPropertyHandler creates a new PropertyHandler.
func NewPropertyHandler(propertyService service.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// Create handles POST /api/v1/properties
// @Summary Create a property
// @Tags properties
// @Accept json
// @Produce json
// @Param request body CreatePropertyRequest true "Property details"
// @Success 201 {object} Response{data=domain.Property}
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Security BearerAuth
// @Router /properties [post]
func (h *PropertyHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input service.CreatePropertyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	p, err := h.propertyService.Create(c.Request.Context(), userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, p)
}

// List handles GET /api/v1/properties
// @Summary List properties
// @Tags properties
// @Produce json
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Limit (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Property,meta=PagMeta}
// @Security BearerAuth
// @Router /properties [get]
func (h *PropertyHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c, 20)

	items, total, err := h.propertyService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	if items == nil {
		items = []domain.Property{}
	}
	RespondPaginated(c, items, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Get handles GET /api/v1/properties/:id
// @Summary Get a property
// @Tags properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} Response{data=domain.Property}
// @Failure 404 {object} ErrorResponseBody "Property not found"
// @Security BearerAuth
// @Router /properties/{id} [get]
func (h *PropertyHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "property")
	if !ok {
		return
	}

	p, err := h.propertyService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, p)
}

// Update handles PUT /api/v1/properties/:id
// @Summary Update a property
// @Description Rate limited per client IP
// @Tags properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param request body UpdatePropertyRequest true "Fields to change"
// @Success 200 {object} Response{data=domain.Property}
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 404 {object} ErrorResponseBody "Property not found"
// @Failure 429 {object} ErrorResponseBody "Too many requests"
// @Security BearerAuth
// @Router /properties/{id} [put]
func (h *PropertyHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "property")
	if !ok {
		return
	}

	var input service.UpdatePropertyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	p, err := h.propertyService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, p)
}

// Close handles POST /api/v1/properties/:id/close
// @Summary Mark a property as closed
// @Tags properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param request body ClosePropertyRequest true "Closing date"
// @Success 200 {object} Response{data=domain.Property}
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 404 {object} ErrorResponseBody "Property not found"
// @Security BearerAuth
// @Router /properties/{id}/close [post]
func (h *PropertyHandler) Close(c *gin.Context) {
	id, ok := parseIDParam(c, "property")
	if !ok {
		return
	}

	var input service.ClosePropertyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	p, err := h.propertyService.Close(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, p)
}
