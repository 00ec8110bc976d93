package email_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"estatehub/internal/email"
)

func TestNotificationHTML_EscapesContent(t *testing.T) {
	body := email.NotificationHTML("Sam <admin>", "Report Reminder", "a & b", "https://app.example.com")

	assert.Contains(t, body, "Sam &lt;admin&gt;")
	assert.Contains(t, body, "a &amp; b")
	assert.Contains(t, body, "https://app.example.com/notifications")
}

func TestNotificationText(t *testing.T) {
	body := email.NotificationText("Sam", "Title", "Message", "https://app.example.com")

	assert.Contains(t, body, "Hi Sam,")
	assert.Contains(t, body, "Title")
	assert.Contains(t, body, "https://app.example.com/notifications")
}

func TestNotificationSubject(t *testing.T) {
	assert.Equal(t, "[EstateHub] Daily Report Reminder", email.NotificationSubject("Daily Report Reminder"))
}
