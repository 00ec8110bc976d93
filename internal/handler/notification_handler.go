package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"estatehub/internal/domain"
	"estatehub/internal/service"
)

// NotificationHandler handles the current user's notification endpoints.
type NotificationHandler struct {
	notificationService service.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// List handles GET /api/v1/notifications
// @Summary List notifications
// @Tags notifications
// @Produce json
// @Param limit query int false "Page size (max 100)" default(20)
// @Param offset query int false "Offset" default(0)
// @Param unreadOnly query bool false "Only unread notifications"
// @Param entityType query string false "Filter by entity type"
// @Success 200 {object} Response{data=[]domain.Notification,meta=PagMeta}
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	offset, limit := parsePagination(c, 20)
	unreadOnly, _ := strconv.ParseBool(c.DefaultQuery("unreadOnly", "false"))
	filters := domain.NotificationFilters{
		Limit:      limit,
		Offset:     offset,
		UnreadOnly: unreadOnly,
		EntityType: c.Query("entityType"),
	}

	items, total, err := h.notificationService.List(c.Request.Context(), userID, filters)
	if err != nil {
		HandleError(c, err)
		return
	}
	if items == nil {
		items = []domain.Notification{}
	}
	RespondPaginated(c, items, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// UnreadCount handles GET /api/v1/notifications/unread-count
// @Summary Count unread notifications
// @Tags notifications
// @Produce json
// @Success 200 {object} Response{data=UnreadCountResponse}
// @Security BearerAuth
// @Router /notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	count, err := h.notificationService.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"count": count})
}

// MarkAsRead handles PUT /api/v1/notifications/:id/read
// @Summary Mark a notification as read
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} Response{data=MessageResponse}
// @Failure 404 {object} ErrorResponseBody "Notification not found"
// @Security BearerAuth
// @Router /notifications/{id}/read [put]
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "notification")
	if !ok {
		return
	}

	if err := h.notificationService.MarkAsRead(c.Request.Context(), id, userID); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "notification marked as read"})
}

// MarkAllAsRead handles PUT /api/v1/notifications/read-all
// @Summary Mark every notification as read
// @Tags notifications
// @Produce json
// @Success 200 {object} Response{data=CountResponse}
// @Security BearerAuth
// @Router /notifications/read-all [put]
func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	n, err := h.notificationService.MarkAllAsRead(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"count": n})
}

// Delete handles DELETE /api/v1/notifications/:id
// @Summary Delete a notification
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} Response{data=MessageResponse}
// @Failure 404 {object} ErrorResponseBody "Notification not found"
// @Security BearerAuth
// @Router /notifications/{id} [delete]
func (h *NotificationHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "notification")
	if !ok {
		return
	}

	if err := h.notificationService.Delete(c.Request.Context(), id, userID); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "notification deleted"})
}

// Cleanup handles DELETE /api/v1/notifications/cleanup
// @Summary Delete old notifications
// @Description Removes notifications older than the given number of days (admin only)
// @Tags notifications
// @Produce json
// @Param days query int false "Age in days" default(30)
// @Success 200 {object} Response{data=CountResponse}
// @Failure 403 {object} ErrorResponseBody "Forbidden - admin only"
// @Security BearerAuth
// @Router /notifications/cleanup [delete]
func (h *NotificationHandler) Cleanup(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(service.DefaultNotificationRetentionDays)))
	if err != nil || days <= 0 {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid 'days': must be a positive integer")
		return
	}

	n, err := h.notificationService.CleanupOlderThan(c.Request.Context(), days)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"count": n})
}

// CreateTest handles POST /api/v1/notifications/test
// @Summary Send a test notification to yourself
// @Tags notifications
// @Produce json
// @Success 201 {object} Response{data=domain.Notification}
// @Security BearerAuth
// @Router /notifications/test [post]
func (h *NotificationHandler) CreateTest(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	n, err := h.notificationService.CreateTest(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, n)
}
