package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user is inactive")
	ErrRateLimited        = errors.New("too many requests")

	ErrValidation          = errors.New("validation failed")
	ErrMissingFields       = errors.New("required fields are missing")
	ErrInvalidDateFormat   = errors.New("invalid date format")
	ErrInvalidDateRange    = errors.New("end date must be on or after start date")
	ErrInvalidPropertyType = errors.New("invalid property type; allowed: sale, rent")

	ErrReportNotFound       = errors.New("report not found")
	ErrDuplicateReport      = errors.New("a report already exists for this period")
	ErrInvalidOperator      = errors.New("user is not a valid operations user")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrPropertyNotFound     = errors.New("property not found")
)
