package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"estatehub/internal/domain"
	"estatehub/internal/middleware"
)

var (
	errorLog     logrus.FieldLogger = logrus.StandardLogger()
	exposeDetail                    = true
)

// Configure sets the logger used for internal errors and whether raw error
// strings are echoed to clients. Detail must be disabled in production.
func Configure(log logrus.FieldLogger, includeDetail bool) {
	if log != nil {
		errorLog = log
	}
	exposeDetail = includeDetail
}

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondMessage sends a 200 success response carrying data and a message.
func RespondMessage(c *gin.Context, data interface{}, msg string) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Message: msg})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondPaginated sends a 200 success response with pagination metadata.
func RespondPaginated(c *gin.Context, data interface{}, meta PagMeta) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrReportNotFound):
		return http.StatusNotFound, "REPORT_NOT_FOUND", "report not found"
	case errors.Is(err, domain.ErrNotificationNotFound):
		return http.StatusNotFound, "NOTIFICATION_NOT_FOUND", "notification not found"
	case errors.Is(err, domain.ErrPropertyNotFound):
		return http.StatusNotFound, "PROPERTY_NOT_FOUND", "property not found"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrDuplicateReport):
		return http.StatusConflict, "DUPLICATE_REPORT", "a report already exists for this period"
	case errors.Is(err, domain.ErrInvalidDateFormat):
		return http.StatusBadRequest, "INVALID_DATE_FORMAT", "invalid date format; use YYYY-MM-DD"
	case errors.Is(err, domain.ErrInvalidDateRange):
		return http.StatusBadRequest, "INVALID_DATE_RANGE", "end date must be on or after start date"
	case errors.Is(err, domain.ErrInvalidPropertyType):
		return http.StatusBadRequest, "INVALID_PROPERTY_TYPE", "invalid property type; allowed: sale, rent"
	case errors.Is(err, domain.ErrInvalidOperator):
		return http.StatusBadRequest, "INVALID_OPERATOR", "user is not a valid operations user"
	case errors.Is(err, domain.ErrMissingFields):
		return http.StatusBadRequest, "MISSING_FIELDS", "required fields are missing"
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, "VALIDATION_ERROR", err.Error()
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "FORBIDDEN", "forbidden"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid credentials"
	case errors.Is(err, domain.ErrUserInactive):
		return http.StatusForbidden, "USER_INACTIVE", "user is inactive"
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests, "RATE_LIMITED", "too many requests, please try again later"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// currentUserID returns the caller's user ID. Returns false if auth context is
// missing (error response already written).
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return uuid.Nil, false
	}
	return p.UserID, true
}

// parseIDParam parses the :id path parameter. Returns false if it is not a
// UUID (error response already written).
func parseIDParam(c *gin.Context, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid "+what+" ID")
		return uuid.Nil, false
	}
	return id, true
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		errorLog.WithFields(logrus.Fields{
			"request_id": requestID,
			"path":       c.Request.URL.Path,
		}).Error("internal error: " + err.Error())
	}
	apiErr := &APIError{Code: code, Message: msg}
	if exposeDetail {
		apiErr.Detail = err.Error()
	}
	c.JSON(status, APIResponse{Success: false, Error: apiErr})
}
