// Package mailer holds the email.Sender implementations the service can be
// configured with.
package mailer

import (
	"context"
	"log/slog"

	"github.com/International-Combat-Archery-Alliance/email"
)

var _ email.Sender = &Logger{}

// Logger is an email.Sender for local dev that logs emails instead of sending them.
type Logger struct {
	logger *slog.Logger
}

func NewLogger(logger *slog.Logger) *Logger {
	return &Logger{logger: logger}
}

func (l *Logger) SendEmail(ctx context.Context, e email.Email) error {
	l.logger.InfoContext(ctx, "email that would be sent",
		slog.String("from", e.FromAddress),
		slog.Any("to", e.ToAddresses),
		slog.String("subject", e.Subject),
		slog.Bool("hasHTML", e.HTMLBody != ""),
		slog.String("text", e.TextBody),
	)

	return nil
}
