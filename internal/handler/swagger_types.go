package handler

import (
	"time"

	"github.com/google/uuid"
)

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// LoginRequest represents the login request body.
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"ops@estatehub.io"`
	Password string `json:"password" binding:"required" example:"securepassword123"`
}

// RefreshRequest represents the token refresh request body.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// CreateCommissionReportRequest represents the create commission report request body.
type CreateCommissionReportRequest struct {
	StartDate string `json:"start_date" binding:"required" example:"2024-01-01"`
	EndDate   string `json:"end_date" binding:"required" example:"2024-01-31"`
}

// UpdateCommissionReportRequest represents the full overwrite of a commission report.
type UpdateCommissionReportRequest struct {
	CommissionPercentage  string `json:"commission_percentage" binding:"required" example:"4"`
	TotalPropertiesCount  int    `json:"total_properties_count" binding:"required" example:"12"`
	TotalSalesCount       int    `json:"total_sales_count" binding:"required" example:"5"`
	TotalRentCount        int    `json:"total_rent_count" binding:"required" example:"7"`
	TotalSalesValue       string `json:"total_sales_value" binding:"required" example:"1250000"`
	TotalRentValue        string `json:"total_rent_value" binding:"required" example:"42000"`
	TotalCommissionAmount string `json:"total_commission_amount" binding:"required" example:"51680"`
}

// CreateDailyReportRequest represents the create daily report request body.
type CreateDailyReportRequest struct {
	OperationsID                uuid.UUID `json:"operations_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	ReportDate                  string    `json:"report_date" binding:"required" example:"2024-03-15"`
	PreparingContract           int       `json:"preparing_contract" example:"2"`
	TasksEfficiencyDutyTime     int       `json:"tasks_efficiency_duty_time" example:"1"`
	TasksEfficiencyUniform      int       `json:"tasks_efficiency_uniform" example:"0"`
	TasksEfficiencyAfterDuty    int       `json:"tasks_efficiency_after_duty" example:"-1"`
	LeadsRespondedOutOfDutyTime int       `json:"leads_responded_out_of_duty_time" example:"3"`
}

// UpdateDailyReportRequest represents a partial update of a daily report.
type UpdateDailyReportRequest struct {
	PreparingContract           *int `json:"preparing_contract" example:"2"`
	TasksEfficiencyDutyTime     *int `json:"tasks_efficiency_duty_time" example:"1"`
	TasksEfficiencyUniform      *int `json:"tasks_efficiency_uniform" example:"0"`
	TasksEfficiencyAfterDuty    *int `json:"tasks_efficiency_after_duty" example:"-1"`
	LeadsRespondedOutOfDutyTime *int `json:"leads_responded_out_of_duty_time" example:"3"`
	Recalculate                 bool `json:"recalculate" example:"false"`
}

// CreatePropertyRequest represents the create property request body.
type CreatePropertyRequest struct {
	Title        string  `json:"title" binding:"required" example:"Sea View Villa"`
	PropertyType string  `json:"property_type" binding:"required" example:"sale"`
	Price        string  `json:"price" binding:"required" example:"250000"`
	ClosedDate   *string `json:"closed_date" example:"2024-02-10"`
}

// UpdatePropertyRequest represents a partial property update.
type UpdatePropertyRequest struct {
	Title        *string `json:"title" example:"Sea View Villa"`
	PropertyType *string `json:"property_type" example:"rent"`
	Price        *string `json:"price" example:"3200"`
	ClosedDate   *string `json:"closed_date" example:"2024-02-10"`
}

// ClosePropertyRequest represents the close property request body.
type ClosePropertyRequest struct {
	ClosedDate string `json:"closed_date" binding:"required" example:"2024-02-10"`
}

// CommissionPercentageRequest represents the commission percentage update body.
type CommissionPercentageRequest struct {
	Percentage string `json:"percentage" binding:"required" example:"4.5"`
}

// --- Response Types ---

// TokenResponse represents the authentication token response.
type TokenResponse struct {
	AccessToken  string    `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string    `json:"refresh_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt    time.Time `json:"expires_at" example:"2025-01-15T10:30:00Z"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"database not reachable"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"operation completed successfully"`
}

// CommissionPercentageResponse represents the current commission percentage.
type CommissionPercentageResponse struct {
	Percentage string `json:"percentage" example:"4"`
}

// UnreadCountResponse represents the unread notification count.
type UnreadCountResponse struct {
	Count int `json:"count" example:"3"`
}

// CountResponse represents the number of rows affected by a bulk operation.
type CountResponse struct {
	Count int64 `json:"count" example:"12"`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
