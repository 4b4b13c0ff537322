package registration

import (
	"context"
	"fmt"
)

// RegistrationsOverview is the operator's registrations view. It does not read
// the store yet.
func RegistrationsOverview(eventName string) string {
	return fmt.Sprintf("%s Registrations\n\nTotal registrations will be shown here.\n", eventName)
}

// SendTestEmail sends a participant confirmation for a fixture registration to
// the given address and returns the ID it used. Nothing is saved.
func SendTestEmail(ctx context.Context, notifier *Notifier, ids *IDGenerator, to string) (string, error) {
	now := ids.Now()
	registrationID := ids.GenerateAt(now)

	record := NewRecord(registrationID, now, Request{
		Personal: &Personal{
			FullName:     "Test User",
			Email:        Text(to),
			Organization: "Test Church",
		},
		Sports: []Sport{{
			ID:   "test",
			Name: "Test Sport",
			Type: "individual",
		}},
	})

	if err := notifier.SendConfirmationEmail(ctx, record); err != nil {
		return registrationID, err
	}

	return registrationID, nil
}
