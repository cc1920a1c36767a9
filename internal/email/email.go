package email

import (
	"context"

	"github.com/proofdeck/server/internal/pkg/logger"
)

// Message is one outbound email
type Message struct {
	To       string
	ToName   string
	Subject  string
	TextBody string
	HTMLBody string
}

// Sender delivers email messages
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// LogSender logs messages instead of delivering them. Used when email
// delivery is disabled, typically in development.
type LogSender struct {
	logger *logger.Logger
}

// NewLogSender creates a sender that only logs
func NewLogSender(log *logger.Logger) *LogSender {
	return &LogSender{logger: log}
}

// Send logs the message and reports success
func (s *LogSender) Send(ctx context.Context, msg Message) error {
	s.logger.WithFields(map[string]interface{}{
		"to":      msg.To,
		"subject": msg.Subject,
	}).Info("Email delivery disabled, message logged")
	return nil
}
