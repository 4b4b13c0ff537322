package registration

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/International-Combat-Archery-Alliance/email"
	"github.com/toms1010/YACC-2025-Sports-Event-Registration/events"
)

//go:embed templates
var templates embed.FS

type NotifierConfig struct {
	FromAddress    string
	AdminAddress   string
	SpreadsheetURL string
	Event          events.Event
}

// Notifier renders and sends the participant confirmation and the admin alert.
type Notifier struct {
	sender email.Sender
	cfg    NotifierConfig

	confirmationHTML *htmltemplate.Template
	confirmationText *texttemplate.Template
	adminText        *texttemplate.Template
}

var templateFuncs = map[string]any{
	"orNA": func(s string) string {
		if s == "" {
			return "N/A"
		}
		return s
	},
}

func NewNotifier(sender email.Sender, cfg NotifierConfig) (*Notifier, error) {
	confirmationHTML, err := htmltemplate.New("registration-confirmation.html.tmpl").
		Funcs(templateFuncs).
		ParseFS(templates, "templates/registration-confirmation.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email template: %w", err)
	}

	confirmationText, err := texttemplate.New("registration-confirmation-textonly.tmpl").
		Funcs(templateFuncs).
		ParseFS(templates, "templates/registration-confirmation-textonly.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email template: %w", err)
	}

	adminText, err := texttemplate.New("admin-notification.tmpl").
		Funcs(templateFuncs).
		ParseFS(templates, "templates/admin-notification.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email template: %w", err)
	}

	return &Notifier{
		sender:           sender,
		cfg:              cfg,
		confirmationHTML: confirmationHTML,
		confirmationText: confirmationText,
		adminText:        adminText,
	}, nil
}

func (n *Notifier) templateData(record Record) map[string]any {
	return map[string]any{
		"Event":          n.cfg.Event,
		"Registration":   record,
		"SpreadsheetURL": n.cfg.SpreadsheetURL,
	}
}

func (n *Notifier) SendConfirmationEmail(ctx context.Context, record Record) error {
	data := n.templateData(record)

	var htmlBody bytes.Buffer
	if err := n.confirmationHTML.Execute(&htmlBody, data); err != nil {
		return NewFailedToNotifyError(record.RegistrationID, record.Email, fmt.Errorf("failed to execute email template: %w", err))
	}

	var textBody bytes.Buffer
	if err := n.confirmationText.Execute(&textBody, data); err != nil {
		return NewFailedToNotifyError(record.RegistrationID, record.Email, fmt.Errorf("failed to execute email template: %w", err))
	}

	err := n.sender.SendEmail(ctx, email.Email{
		FromAddress: n.cfg.FromAddress,
		ToAddresses: []string{record.Email},
		Subject:     ConfirmationSubject(n.cfg.Event, record.RegistrationID),
		HTMLBody:    htmlBody.String(),
		TextBody:    textBody.String(),
	})
	if err != nil {
		return NewFailedToNotifyError(record.RegistrationID, record.Email, err)
	}

	return nil
}

func (n *Notifier) SendAdminNotification(ctx context.Context, record Record) error {
	var textBody bytes.Buffer
	if err := n.adminText.Execute(&textBody, n.templateData(record)); err != nil {
		return NewFailedToNotifyError(record.RegistrationID, n.cfg.AdminAddress, fmt.Errorf("failed to execute email template: %w", err))
	}

	err := n.sender.SendEmail(ctx, email.Email{
		FromAddress: n.cfg.FromAddress,
		ToAddresses: []string{n.cfg.AdminAddress},
		Subject:     AdminSubject(n.cfg.Event, record.RegistrationID),
		TextBody:    textBody.String(),
	})
	if err != nil {
		return NewFailedToNotifyError(record.RegistrationID, n.cfg.AdminAddress, err)
	}

	return nil
}

func ConfirmationSubject(event events.Event, registrationID string) string {
	return fmt.Sprintf("%s Registration Confirmation - %s", event.Name, registrationID)
}

func AdminSubject(event events.Event, registrationID string) string {
	return fmt.Sprintf("📋 New %s Registration - %s", event.Name, registrationID)
}
