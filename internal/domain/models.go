package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User represents a back-office user.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Property is a listing. ClosedDate is set once a sale or lease completes.
type Property struct {
	ID           uuid.UUID       `db:"id" json:"id"`
	Title        string          `db:"title" json:"title"`
	PropertyType PropertyType    `db:"property_type" json:"property_type"`
	Price        decimal.Decimal `db:"price" json:"price"`
	ClosedDate   *time.Time      `db:"closed_date" json:"closed_date"`
	AddedBy      *uuid.UUID      `db:"added_by" json:"added_by"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at" json:"updated_at"`
}

// CommissionReport is a persisted commission snapshot over an inclusive date range.
// Month and Year mirror StartDate for month-granularity filtering.
type CommissionReport struct {
	ID                    uuid.UUID       `db:"id" json:"id"`
	StartDate             time.Time       `db:"start_date" json:"start_date"`
	EndDate               time.Time       `db:"end_date" json:"end_date"`
	Month                 int             `db:"month" json:"month"`
	Year                  int             `db:"year" json:"year"`
	CommissionPercentage  decimal.Decimal `db:"commission_percentage" json:"commission_percentage"`
	TotalPropertiesCount  int             `db:"total_properties_count" json:"total_properties_count"`
	TotalSalesCount       int             `db:"total_sales_count" json:"total_sales_count"`
	TotalRentCount        int             `db:"total_rent_count" json:"total_rent_count"`
	TotalSalesValue       decimal.Decimal `db:"total_sales_value" json:"total_sales_value"`
	TotalRentValue        decimal.Decimal `db:"total_rent_value" json:"total_rent_value"`
	TotalCommissionAmount decimal.Decimal `db:"total_commission_amount" json:"total_commission_amount"`
	CreatedAt             time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt             time.Time       `db:"updated_at" json:"updated_at"`

	Properties []CommissionProperty `db:"-" json:"properties,omitempty"`
}

// CommissionProperty is one closed property with its individual commission.
type CommissionProperty struct {
	ID           uuid.UUID       `db:"id" json:"id"`
	Title        string          `db:"title" json:"title"`
	PropertyType string          `db:"property_type" json:"property_type"`
	Price        decimal.Decimal `db:"price" json:"price"`
	ClosedDate   time.Time       `db:"closed_date" json:"closed_date"`
	Commission   decimal.Decimal `db:"-" json:"commission"`
}

// DailyOperationsReport is one operator's activity for one day. The first three
// counters are calculated; the remaining five are entered manually and survive
// recalculation.
type DailyOperationsReport struct {
	ID             uuid.UUID `db:"id" json:"id"`
	OperationsID   uuid.UUID `db:"operations_id" json:"operations_id"`
	OperationsName string    `db:"operations_name" json:"operations_name"`
	ReportDate     time.Time `db:"report_date" json:"report_date"`

	PropertiesAdded            int `db:"properties_added" json:"properties_added"`
	LeadsRespondedTo           int `db:"leads_responded_to" json:"leads_responded_to"`
	AmendingPreviousProperties int `db:"amending_previous_properties" json:"amending_previous_properties"`

	PreparingContract           int `db:"preparing_contract" json:"preparing_contract"`
	TasksEfficiencyDutyTime     int `db:"tasks_efficiency_duty_time" json:"tasks_efficiency_duty_time"`
	TasksEfficiencyUniform      int `db:"tasks_efficiency_uniform" json:"tasks_efficiency_uniform"`
	TasksEfficiencyAfterDuty    int `db:"tasks_efficiency_after_duty" json:"tasks_efficiency_after_duty"`
	LeadsRespondedOutOfDutyTime int `db:"leads_responded_out_of_duty_time" json:"leads_responded_out_of_duty_time"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// EffectiveLeadsResponded is the leads count net of out-of-duty responses, never negative.
func (r *DailyOperationsReport) EffectiveLeadsResponded() int {
	n := r.LeadsRespondedTo - r.LeadsRespondedOutOfDutyTime
	if n < 0 {
		return 0
	}
	return n
}

// Notification is a message addressed to one user.
type Notification struct {
	ID         uuid.UUID        `db:"id" json:"id"`
	UserID     uuid.UUID        `db:"user_id" json:"user_id"`
	Title      string           `db:"title" json:"title"`
	Message    string           `db:"message" json:"message"`
	Type       NotificationType `db:"type" json:"type"`
	EntityType *string          `db:"entity_type" json:"entity_type"`
	EntityID   *uuid.UUID       `db:"entity_id" json:"entity_id"`
	IsRead     bool             `db:"is_read" json:"is_read"`
	CreatedAt  time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time        `db:"updated_at" json:"updated_at"`
}

// CommissionReportFilters narrows a commission report listing. A start date
// takes precedence over Month, which takes precedence over Year.
type CommissionReportFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
	Month     *int
	Year      *int
}

// DailyReportFilters narrows a daily report listing. ReportDate or a start date
// take precedence over Month, which takes precedence over Year.
type DailyReportFilters struct {
	ReportDate   *time.Time
	StartDate    *time.Time
	EndDate      *time.Time
	OperationsID *uuid.UUID
	Month        *int
	Year         *int
}

// NotificationFilters narrows a user's notification listing.
type NotificationFilters struct {
	Limit      int
	Offset     int
	UnreadOnly bool
	EntityType string
}
