package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"estatehub/internal/domain"
	"estatehub/internal/logger"
	"estatehub/internal/port"
)

// DefaultNotificationRetentionDays is the age after which notifications are swept.
const DefaultNotificationRetentionDays = 30

// CreateNotificationInput is the DTO for creating a single notification.
type CreateNotificationInput struct {
	UserID     uuid.UUID               `json:"user_id" binding:"required"`
	Title      string                  `json:"title" binding:"required"`
	Message    string                  `json:"message" binding:"required"`
	Type       domain.NotificationType `json:"type"`
	EntityType *string                 `json:"entity_type"`
	EntityID   *uuid.UUID              `json:"entity_id"`
}

// NotifyManyInput is the DTO for sending one notification to many users.
type NotifyManyInput struct {
	UserIDs    []uuid.UUID             `json:"user_ids" binding:"required,min=1"`
	Title      string                  `json:"title" binding:"required"`
	Message    string                  `json:"message" binding:"required"`
	Type       domain.NotificationType `json:"type"`
	EntityType *string                 `json:"entity_type"`
	EntityID   *uuid.UUID              `json:"entity_id"`
}

// NotifyActionInput describes an entity event rendered through the action templates.
type NotifyActionInput struct {
	UserIDs    []uuid.UUID
	Action     domain.NotificationAction
	EntityType string
	EntityID   *uuid.UUID
	EntityName string
}

// NotificationService defines the notification contract.
type NotificationService interface {
	Create(ctx context.Context, input CreateNotificationInput) (*domain.Notification, error)
	NotifyMany(ctx context.Context, input NotifyManyInput) ([]domain.Notification, error)
	NotifyAction(ctx context.Context, input NotifyActionInput) ([]domain.Notification, error)
	// NotifyRoles sends an action notification to every active user holding one of roles.
	NotifyRoles(ctx context.Context, roles []domain.UserRole, input NotifyActionInput) ([]domain.Notification, error)
	List(ctx context.Context, userID uuid.UUID, filters domain.NotificationFilters) ([]domain.Notification, int, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
	MarkAsRead(ctx context.Context, id, userID uuid.UUID) error
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) (int64, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
	CleanupOlderThan(ctx context.Context, days int) (int64, error)
	CreateTest(ctx context.Context, userID uuid.UUID) (*domain.Notification, error)
}

type actionTemplate struct {
	title   string
	message string
	typ     domain.NotificationType
}

// Titles take the entity label; messages take the entity label and name.
var actionTemplates = map[domain.NotificationAction]actionTemplate{
	domain.ActionCreated:       {"%s Created", "%s %q has been created", domain.NotificationSuccess},
	domain.ActionUpdated:       {"%s Updated", "%s %q has been updated", domain.NotificationInfo},
	domain.ActionDeleted:       {"%s Deleted", "%s %q has been deleted", domain.NotificationWarning},
	domain.ActionAssigned:      {"%s Assigned", "%s %q has been assigned to you", domain.NotificationInfo},
	domain.ActionStatusChanged: {"%s Status Changed", "%s %q has changed status", domain.NotificationInfo},
	domain.ActionReminder:      {"%s Reminder", "%s %q needs your attention", domain.NotificationUrgent},
}

// entityLabel turns "commission_report" into "Commission Report".
func entityLabel(entityType string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(entityType, "_", " "))
}

type notificationService struct {
	repo     port.NotificationRepository
	userRepo port.UserRepository
	email    port.EmailSender
	log      logrus.FieldLogger
}

// NewNotificationService creates a new NotificationService implementation.
// Urgent notifications are additionally emailed when email is non-nil.
func NewNotificationService(
	repo port.NotificationRepository,
	userRepo port.UserRepository,
	email port.EmailSender,
	log logrus.FieldLogger,
) NotificationService {
	return &notificationService{
		repo:     repo,
		userRepo: userRepo,
		email:    email,
		log:      log,
	}
}

func (s *notificationService) Create(ctx context.Context, input CreateNotificationInput) (*domain.Notification, error) {
	typ, err := normalizeNotificationType(input.Type)
	if err != nil {
		return nil, err
	}
	n := &domain.Notification{
		UserID:     input.UserID,
		Title:      input.Title,
		Message:    input.Message,
		Type:       typ,
		EntityType: input.EntityType,
		EntityID:   input.EntityID,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	s.emailUrgent(ctx, []domain.Notification{*n})
	return n, nil
}

func (s *notificationService) NotifyMany(ctx context.Context, input NotifyManyInput) ([]domain.Notification, error) {
	typ, err := normalizeNotificationType(input.Type)
	if err != nil {
		return nil, err
	}
	if len(input.UserIDs) == 0 {
		return []domain.Notification{}, nil
	}
	created, err := s.repo.CreateMany(ctx, input.UserIDs, domain.Notification{
		Title:      input.Title,
		Message:    input.Message,
		Type:       typ,
		EntityType: input.EntityType,
		EntityID:   input.EntityID,
	})
	if err != nil {
		return nil, err
	}
	s.emailUrgent(ctx, created)
	return created, nil
}

func (s *notificationService) NotifyAction(ctx context.Context, input NotifyActionInput) ([]domain.Notification, error) {
	tmpl, ok := actionTemplates[input.Action]
	if !ok {
		return nil, fmt.Errorf("%w: unknown notification action %q", domain.ErrValidation, input.Action)
	}
	label := entityLabel(input.EntityType)
	var entityType *string
	if input.EntityType != "" {
		et := input.EntityType
		entityType = &et
	}
	return s.NotifyMany(ctx, NotifyManyInput{
		UserIDs:    input.UserIDs,
		Title:      fmt.Sprintf(tmpl.title, label),
		Message:    fmt.Sprintf(tmpl.message, label, input.EntityName),
		Type:       tmpl.typ,
		EntityType: entityType,
		EntityID:   input.EntityID,
	})
}

func (s *notificationService) NotifyRoles(ctx context.Context, roles []domain.UserRole, input NotifyActionInput) ([]domain.Notification, error) {
	users, err := s.userRepo.ListByRoles(ctx, roles)
	if err != nil {
		return nil, fmt.Errorf("notification.NotifyRoles: %w", err)
	}
	input.UserIDs = make([]uuid.UUID, 0, len(users))
	for i := range users {
		input.UserIDs = append(input.UserIDs, users[i].ID)
	}
	return s.NotifyAction(ctx, input)
}

func (s *notificationService) List(ctx context.Context, userID uuid.UUID, filters domain.NotificationFilters) ([]domain.Notification, int, error) {
	return s.repo.ListByUser(ctx, userID, filters)
}

func (s *notificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.repo.CountUnread(ctx, userID)
}

func (s *notificationService) MarkAsRead(ctx context.Context, id, userID uuid.UUID) error {
	return s.repo.MarkAsRead(ctx, id, userID)
}

func (s *notificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.MarkAllAsRead(ctx, userID)
}

func (s *notificationService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return s.repo.Delete(ctx, id, userID)
}

func (s *notificationService) CleanupOlderThan(ctx context.Context, days int) (int64, error) {
	if days <= 0 {
		days = DefaultNotificationRetentionDays
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	deleted, err := s.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	s.log.WithFields(logrus.Fields{"deleted": deleted, "days": days}).Info("notification cleanup complete")
	return deleted, nil
}

func (s *notificationService) CreateTest(ctx context.Context, userID uuid.UUID) (*domain.Notification, error) {
	return s.Create(ctx, CreateNotificationInput{
		UserID:  userID,
		Title:   "Test Notification",
		Message: "This is a test notification sent at " + time.Now().UTC().Format(time.RFC1123),
		Type:    domain.NotificationInfo,
	})
}

// emailUrgent mails every urgent notification to its recipient. Failures are logged only.
func (s *notificationService) emailUrgent(ctx context.Context, items []domain.Notification) {
	if s.email == nil {
		return
	}
	for i := range items {
		n := items[i]
		if n.Type != domain.NotificationUrgent {
			continue
		}
		user, err := s.userRepo.GetByID(ctx, n.UserID)
		if err != nil {
			logger.LogError(s.log, "notification", "emailUrgent", n.UserID, err)
			continue
		}
		if err := s.email.SendNotificationEmail(ctx, user.Email, user.FullName, n.Title, n.Message); err != nil {
			logger.LogError(s.log, "notification", "emailUrgent", n.ID, err)
		}
	}
}

func normalizeNotificationType(t domain.NotificationType) (domain.NotificationType, error) {
	if t == "" {
		return domain.NotificationInfo, nil
	}
	t = domain.NotificationType(strings.ToLower(string(t)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: unknown notification type %q", domain.ErrValidation, t)
	}
	return t, nil
}
