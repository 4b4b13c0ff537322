package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/International-Combat-Archery-Alliance/email"
	"github.com/International-Combat-Archery-Alliance/email/gmail"

	"github.com/toms1010/YACC-2025-Sports-Event-Registration/config"
	"github.com/toms1010/YACC-2025-Sports-Event-Registration/events"
	"github.com/toms1010/YACC-2025-Sports-Event-Registration/mailer"
	"github.com/toms1010/YACC-2025-Sports-Event-Registration/registration"
)

// EmailSender builds the sender named by EMAIL_PROVIDER.
func EmailSender(ctx context.Context, cfg config.Config, logger *slog.Logger) (email.Sender, error) {
	switch cfg.EmailProvider {
	case config.EmailProviderLog:
		return mailer.NewLogger(logger), nil
	case config.EmailProviderSES:
		sender, err := mailer.NewSESSender(ctx)
		if err != nil {
			return nil, err
		}
		return sender, nil
	case config.EmailProviderGmail:
		creds, err := GoogleServiceAccountJSON(ctx, cfg)
		if err != nil {
			return nil, err
		}
		sender, err := gmail.NewGmailSender(ctx, creds, cfg.GmailSender)
		if err != nil {
			return nil, fmt.Errorf("failed to create gmail sender: %w", err)
		}
		return sender, nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.EmailProvider)
	}
}

func Notifier(cfg config.Config, sender email.Sender, loc *time.Location) (*registration.Notifier, error) {
	return registration.NewNotifier(sender, registration.NotifierConfig{
		FromAddress:    cfg.EmailFrom,
		AdminAddress:   cfg.AdminEmail,
		SpreadsheetURL: cfg.SpreadsheetURL(),
		Event:          events.YACC2025(loc),
	})
}
