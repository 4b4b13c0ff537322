package registration

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
)

// Repository is the table registrations are appended to.
type Repository interface {
	AppendRegistration(ctx context.Context, record Record) error
}

type Registrar struct {
	repo     Repository
	notifier *Notifier
	ids      *IDGenerator
	logger   *slog.Logger
}

func NewRegistrar(repo Repository, notifier *Notifier, ids *IDGenerator, logger *slog.Logger) *Registrar {
	return &Registrar{
		repo:     repo,
		notifier: notifier,
		ids:      ids,
		logger:   logger,
	}
}

// Submit validates the request, saves it and then emails the participant and
// the admin. Once the record is saved the registration counts as successful;
// email failures are only logged.
func (r *Registrar) Submit(ctx context.Context, req Request) (registrationID string, err error) {
	ctx, span := tracer.Start(ctx, "registration.Submit")
	defer span.End()

	defer func() {
		if p := recover(); p != nil {
			registrationID = ""
			err = NewInternalError("Unexpected failure while registering", fmt.Errorf("%v", p))
			recordSpanError(span, err)
		}
	}()

	if err := req.Validate(); err != nil {
		r.logger.WarnContext(ctx, "Rejected registration", "error", err)
		recordSpanError(span, err)
		return "", err
	}

	now := r.ids.Now()
	registrationID = r.ids.GenerateAt(now)
	record := NewRecord(registrationID, now, req)

	span.SetAttributes(
		attribute.String("registration.id", registrationID),
		attribute.String("registration.sport", record.SportID),
	)

	logger := r.logger.With(slog.String("registrationId", registrationID))
	logger.InfoContext(ctx, "Processing registration", slog.String("fullName", record.FullName))

	if err := r.save(ctx, record); err != nil {
		logger.ErrorContext(ctx, "Failed to save registration", "error", err)
		recordSpanError(span, err)
		return "", err
	}

	if err := r.isolate(ctx, "registration.SendConfirmationEmail", record, r.notifier.SendConfirmationEmail); err != nil {
		logger.ErrorContext(ctx, "Failed to send confirmation email", "error", err, slog.String("email", record.Email))
	} else {
		logger.InfoContext(ctx, "Confirmation email sent", slog.String("email", record.Email))
	}

	if err := r.isolate(ctx, "registration.SendAdminNotification", record, r.notifier.SendAdminNotification); err != nil {
		logger.ErrorContext(ctx, "Failed to send admin notification", "error", err)
	} else {
		logger.InfoContext(ctx, "Admin notification sent")
	}

	return registrationID, nil
}

func (r *Registrar) save(ctx context.Context, record Record) error {
	ctx, span := tracer.Start(ctx, "registration.AppendRegistration")
	defer span.End()

	if err := r.repo.AppendRegistration(ctx, record); err != nil {
		saveErr := NewFailedToSaveError(record.RegistrationID, err)
		recordSpanError(span, saveErr)
		return saveErr
	}

	return nil
}

// isolate runs one notification in its own span and turns a panic into an
// error so it cannot stop the other notification.
func (r *Registrar) isolate(ctx context.Context, name string, record Record, send func(context.Context, Record) error) (err error) {
	ctx, span := tracer.Start(ctx, name)
	defer span.End()

	defer func() {
		if p := recover(); p != nil {
			err = NewFailedToNotifyError(record.RegistrationID, "", fmt.Errorf("panic: %v", p))
		}
		if err != nil {
			recordSpanError(span, err)
		}
	}()

	return send(ctx, record)
}
