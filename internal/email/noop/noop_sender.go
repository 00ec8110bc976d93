package noop

import (
	"context"

	"github.com/sirupsen/logrus"

	"estatehub/internal/port"
)

type noopSender struct {
	log logrus.FieldLogger
}

// NewNoopSender creates a no-op EmailSender that only logs what would be sent.
func NewNoopSender(log logrus.FieldLogger) port.EmailSender {
	return &noopSender{log: log}
}

func (s *noopSender) SendNotificationEmail(_ context.Context, toEmail, toName, title, _ string) error {
	s.log.WithFields(logrus.Fields{
		"to":    toEmail,
		"name":  toName,
		"title": title,
	}).Info("[NOOP EMAIL] notification email")
	return nil
}
