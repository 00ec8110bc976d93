package resend

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v3"

	"estatehub/internal/email"
	"estatehub/internal/port"
)

type resendSender struct {
	client      *resend.Client
	from        string
	frontendURL string
}

// NewResendSender creates a new Resend-backed EmailSender.
func NewResendSender(apiKey, fromAddress, fromName, frontendURL string) (port.EmailSender, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend api key is required")
	}
	return &resendSender{
		client:      resend.NewClient(apiKey),
		from:        fmt.Sprintf("%s <%s>", fromName, fromAddress),
		frontendURL: frontendURL,
	}, nil
}

func (s *resendSender) SendNotificationEmail(_ context.Context, toEmail, toName, title, message string) error {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{toEmail},
		Subject: email.NotificationSubject(title),
		Html:    email.NotificationHTML(toName, title, message, s.frontendURL),
		Text:    email.NotificationText(toName, title, message, s.frontendURL),
	}
	if _, err := s.client.Emails.Send(params); err != nil {
		return fmt.Errorf("resend send: %w", err)
	}
	return nil
}
