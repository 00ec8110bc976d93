package port

import "context"

// EmailSender defines the contract for sending emails.
type EmailSender interface {
	SendNotificationEmail(ctx context.Context, toEmail, toName, title, message string) error
}
