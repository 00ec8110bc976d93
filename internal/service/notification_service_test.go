package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"estatehub/internal/domain"
	"estatehub/internal/service"
	"estatehub/mocks"
)

type notificationFixture struct {
	repo     *mocks.MockNotificationRepo
	userRepo *mocks.MockUserRepo
	email    *mocks.MockEmailSender
	svc      service.NotificationService
}

func newNotificationFixture(withEmail bool) *notificationFixture {
	f := &notificationFixture{
		repo:     new(mocks.MockNotificationRepo),
		userRepo: new(mocks.MockUserRepo),
		email:    new(mocks.MockEmailSender),
	}
	log, _ := logtest.NewNullLogger()
	if withEmail {
		f.svc = service.NewNotificationService(f.repo, f.userRepo, f.email, log)
	} else {
		f.svc = service.NewNotificationService(f.repo, f.userRepo, nil, log)
	}
	return f
}

func echoCreateMany(repo *mocks.MockNotificationRepo) {
	repo.On("CreateMany", mock.Anything, mock.Anything, mock.AnythingOfType("domain.Notification")).
		Return(func(_ context.Context, userIDs []uuid.UUID, tmpl domain.Notification) []domain.Notification {
			out := make([]domain.Notification, 0, len(userIDs))
			for _, id := range userIDs {
				n := tmpl
				n.ID = uuid.New()
				n.UserID = id
				out = append(out, n)
			}
			return out
		}, nil)
}

func TestNotificationService_Create_DefaultsToInfo(t *testing.T) {
	f := newNotificationFixture(true)
	f.repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Notification")).Return(nil)

	n, err := f.svc.Create(context.Background(), service.CreateNotificationInput{
		UserID:  uuid.New(),
		Title:   "Hello",
		Message: "World",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.NotificationInfo, n.Type)
	assert.False(t, n.IsRead)
	f.email.AssertNotCalled(t, "SendNotificationEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestNotificationService_Create_InvalidType(t *testing.T) {
	f := newNotificationFixture(false)

	_, err := f.svc.Create(context.Background(), service.CreateNotificationInput{
		UserID:  uuid.New(),
		Title:   "Hello",
		Message: "World",
		Type:    "shouting",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestNotificationService_Create_UrgentSendsEmail(t *testing.T) {
	f := newNotificationFixture(true)
	userID := uuid.New()

	f.repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.userRepo.On("GetByID", mock.Anything, userID).Return(&domain.User{
		ID: userID, Email: "ops@example.com", FullName: "Dana Ops",
	}, nil)
	f.email.On("SendNotificationEmail", mock.Anything, "ops@example.com", "Dana Ops", "Deadline", "Contract due").Return(nil)

	n, err := f.svc.Create(context.Background(), service.CreateNotificationInput{
		UserID:  userID,
		Title:   "Deadline",
		Message: "Contract due",
		Type:    "URGENT",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.NotificationUrgent, n.Type)
	f.email.AssertExpectations(t)
}

func TestNotificationService_Create_EmailFailureIsSwallowed(t *testing.T) {
	f := newNotificationFixture(true)
	userID := uuid.New()

	f.repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.userRepo.On("GetByID", mock.Anything, userID).Return(&domain.User{ID: userID, Email: "a@b.c"}, nil)
	f.email.On("SendNotificationEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("provider unavailable"))

	_, err := f.svc.Create(context.Background(), service.CreateNotificationInput{
		UserID: userID, Title: "t", Message: "m", Type: domain.NotificationUrgent,
	})

	assert.NoError(t, err)
}

func TestNotificationService_NotifyMany_EmptyRecipients(t *testing.T) {
	f := newNotificationFixture(false)

	created, err := f.svc.NotifyMany(context.Background(), service.NotifyManyInput{
		Title: "t", Message: "m",
	})

	require.NoError(t, err)
	assert.Empty(t, created)
	f.repo.AssertNotCalled(t, "CreateMany", mock.Anything, mock.Anything, mock.Anything)
}

func TestNotificationService_NotifyAction_Templates(t *testing.T) {
	tests := []struct {
		action  domain.NotificationAction
		title   string
		message string
		typ     domain.NotificationType
	}{
		{domain.ActionCreated, "Daily Report Created", `Daily Report "Q1" has been created`, domain.NotificationSuccess},
		{domain.ActionUpdated, "Daily Report Updated", `Daily Report "Q1" has been updated`, domain.NotificationInfo},
		{domain.ActionDeleted, "Daily Report Deleted", `Daily Report "Q1" has been deleted`, domain.NotificationWarning},
		{domain.ActionAssigned, "Daily Report Assigned", `Daily Report "Q1" has been assigned to you`, domain.NotificationInfo},
		{domain.ActionStatusChanged, "Daily Report Status Changed", `Daily Report "Q1" has changed status`, domain.NotificationInfo},
	}
	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			f := newNotificationFixture(false)
			echoCreateMany(f.repo)
			entityID := uuid.New()

			created, err := f.svc.NotifyAction(context.Background(), service.NotifyActionInput{
				UserIDs:    []uuid.UUID{uuid.New(), uuid.New()},
				Action:     tt.action,
				EntityType: "daily_report",
				EntityID:   &entityID,
				EntityName: "Q1",
			})

			require.NoError(t, err)
			require.Len(t, created, 2)
			assert.Equal(t, tt.title, created[0].Title)
			assert.Equal(t, tt.message, created[0].Message)
			assert.Equal(t, tt.typ, created[0].Type)
			require.NotNil(t, created[0].EntityType)
			assert.Equal(t, "daily_report", *created[0].EntityType)
			assert.Equal(t, &entityID, created[0].EntityID)
		})
	}
}

func TestNotificationService_NotifyAction_ReminderEmailsEachRecipient(t *testing.T) {
	f := newNotificationFixture(true)
	echoCreateMany(f.repo)
	a, b := uuid.New(), uuid.New()

	f.userRepo.On("GetByID", mock.Anything, a).Return(&domain.User{ID: a, Email: "a@example.com"}, nil)
	f.userRepo.On("GetByID", mock.Anything, b).Return(&domain.User{ID: b, Email: "b@example.com"}, nil)
	f.email.On("SendNotificationEmail", mock.Anything, mock.Anything, mock.Anything, "Property Reminder", mock.Anything).Return(nil)

	_, err := f.svc.NotifyAction(context.Background(), service.NotifyActionInput{
		UserIDs:    []uuid.UUID{a, b},
		Action:     domain.ActionReminder,
		EntityType: "property",
		EntityName: "Sea View",
	})

	require.NoError(t, err)
	f.email.AssertNumberOfCalls(t, "SendNotificationEmail", 2)
}

func TestNotificationService_NotifyAction_UnknownAction(t *testing.T) {
	f := newNotificationFixture(false)

	_, err := f.svc.NotifyAction(context.Background(), service.NotifyActionInput{
		UserIDs:    []uuid.UUID{uuid.New()},
		Action:     "archived",
		EntityType: "property",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestNotificationService_NotifyRoles_ResolvesRecipients(t *testing.T) {
	f := newNotificationFixture(false)
	admin, manager := uuid.New(), uuid.New()
	roles := []domain.UserRole{domain.RoleAdmin, domain.RoleOperationsManager}

	f.userRepo.On("ListByRoles", mock.Anything, roles).Return([]domain.User{{ID: admin}, {ID: manager}}, nil)
	f.repo.On("CreateMany", mock.Anything, []uuid.UUID{admin, manager}, mock.Anything).
		Return([]domain.Notification{{UserID: admin}, {UserID: manager}}, nil)

	created, err := f.svc.NotifyRoles(context.Background(), roles, service.NotifyActionInput{
		Action:     domain.ActionCreated,
		EntityType: "commission_report",
		EntityName: "2024-01-01 to 2024-01-31",
	})

	require.NoError(t, err)
	assert.Len(t, created, 2)
	f.repo.AssertExpectations(t)
}

func TestNotificationService_NotifyRoles_NoUsers(t *testing.T) {
	f := newNotificationFixture(false)
	f.userRepo.On("ListByRoles", mock.Anything, mock.Anything).Return([]domain.User{}, nil)

	created, err := f.svc.NotifyRoles(context.Background(), []domain.UserRole{domain.RoleAdmin}, service.NotifyActionInput{
		Action: domain.ActionDeleted, EntityType: "daily_report",
	})

	require.NoError(t, err)
	assert.Empty(t, created)
}

func TestNotificationService_MarkAsRead_NotFound(t *testing.T) {
	f := newNotificationFixture(false)
	id, userID := uuid.New(), uuid.New()
	f.repo.On("MarkAsRead", mock.Anything, id, userID).Return(domain.ErrNotificationNotFound)

	err := f.svc.MarkAsRead(context.Background(), id, userID)

	assert.ErrorIs(t, err, domain.ErrNotificationNotFound)
}

func TestNotificationService_MarkAllAsRead(t *testing.T) {
	f := newNotificationFixture(false)
	userID := uuid.New()
	f.repo.On("MarkAllAsRead", mock.Anything, userID).Return(int64(4), nil)

	n, err := f.svc.MarkAllAsRead(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestNotificationService_CleanupOlderThan(t *testing.T) {
	tests := []struct {
		name     string
		days     int
		wantDays int
	}{
		{"explicit", 7, 7},
		{"zero uses default", 0, service.DefaultNotificationRetentionDays},
		{"negative uses default", -3, service.DefaultNotificationRetentionDays},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newNotificationFixture(false)
			expected := time.Now().UTC().AddDate(0, 0, -tt.wantDays)
			f.repo.On("DeleteOlderThan", mock.Anything, mock.MatchedBy(func(cutoff time.Time) bool {
				return cutoff.Sub(expected).Abs() < time.Minute
			})).Return(int64(12), nil)

			deleted, err := f.svc.CleanupOlderThan(context.Background(), tt.days)

			require.NoError(t, err)
			assert.Equal(t, int64(12), deleted)
			f.repo.AssertExpectations(t)
		})
	}
}

func TestNotificationService_CreateTest(t *testing.T) {
	f := newNotificationFixture(false)
	userID := uuid.New()
	f.repo.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.UserID == userID && n.Title == "Test Notification"
	})).Return(nil)

	n, err := f.svc.CreateTest(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, domain.NotificationInfo, n.Type)
}
