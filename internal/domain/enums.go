package domain

import "strings"

// UserRole defines the back-office role of a user.
type UserRole string

const (
	RoleAdmin             UserRole = "admin"
	RoleOperationsManager UserRole = "operations_manager"
	RoleOperations        UserRole = "operations"
	RoleAgent             UserRole = "agent"
)

// IsOperator reports whether the role may be the subject of a daily operations report.
func (r UserRole) IsOperator() bool {
	return r == RoleOperations || r == RoleOperationsManager
}

// OperatorRoles lists the roles eligible for daily operations reports.
var OperatorRoles = []UserRole{RoleOperations, RoleOperationsManager}

// PropertyType is the transaction kind of a property listing.
type PropertyType string

const (
	PropertyTypeSale PropertyType = "sale"
	PropertyTypeRent PropertyType = "rent"
)

// ParsePropertyType validates a caller-supplied property type. Matching is
// case-insensitive; anything other than sale or rent is rejected.
func ParsePropertyType(s string) (PropertyType, error) {
	switch PropertyType(strings.ToLower(strings.TrimSpace(s))) {
	case PropertyTypeSale:
		return PropertyTypeSale, nil
	case PropertyTypeRent:
		return PropertyTypeRent, nil
	default:
		return "", ErrInvalidPropertyType
	}
}

// ClassifyPropertyType maps a stored property type onto the commission partition.
// Only "sale" (case-insensitive) is a sale; every other stored value counts as rent.
func ClassifyPropertyType(s string) PropertyType {
	if strings.EqualFold(strings.TrimSpace(s), string(PropertyTypeSale)) {
		return PropertyTypeSale
	}
	return PropertyTypeRent
}

// NotificationType is the severity of a notification.
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationUrgent  NotificationType = "urgent"
)

// Valid reports whether t is a known notification type.
func (t NotificationType) Valid() bool {
	switch t {
	case NotificationInfo, NotificationSuccess, NotificationWarning, NotificationUrgent:
		return true
	}
	return false
}

// NotificationAction names the entity event a templated notification describes.
type NotificationAction string

const (
	ActionCreated       NotificationAction = "created"
	ActionUpdated       NotificationAction = "updated"
	ActionDeleted       NotificationAction = "deleted"
	ActionAssigned      NotificationAction = "assigned"
	ActionStatusChanged NotificationAction = "status_changed"
	ActionReminder      NotificationAction = "reminder"
)
