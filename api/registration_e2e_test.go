package api

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/International-Combat-Archery-Alliance/email"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toms1010/YACC-2025-Sports-Event-Registration/events"
	"github.com/toms1010/YACC-2025-Sports-Event-Registration/registration"
)

var manila = time.FixedZone("PST", 8*60*60)

type e2eFixture struct {
	repo    *mockRepository
	sender  *mockEmailSender
	handler http.Handler
}

func newE2EFixture(t *testing.T, repo *mockRepository, sender *mockEmailSender) *e2eFixture {
	t.Helper()

	notifier, err := registration.NewNotifier(sender, registration.NotifierConfig{
		FromAddress:    "YACC 2025 <yacc2025connect@gmail.com>",
		AdminAddress:   "admin@example.com",
		SpreadsheetURL: "https://docs.google.com/spreadsheets/d/sheet-123",
		Event:          events.YACC2025(manila),
	})
	require.NoError(t, err)

	registrar := registration.NewRegistrar(repo, notifier, registration.NewIDGenerator(manila), noopLogger)
	return &e2eFixture{
		repo:    repo,
		sender:  sender,
		handler: mustHandler(t, NewAPI(registrar, noopLogger, LOCAL, nil)),
	}
}

func TestRegistrationEndToEnd(t *testing.T) {
	idPattern := regexp.MustCompile(`^YACC\d{10}$`)

	t.Run("jane doe registers for volleyball", func(t *testing.T) {
		f := newE2EFixture(t, &mockRepository{}, &mockEmailSender{})

		resp := decodeResponse(t, post(t, f.handler, janeDoeBody))

		require.True(t, resp.Success, resp.Message)
		assert.Equal(t, "Registration successful! Confirmation email sent.", resp.Message)
		assert.Regexp(t, idPattern, registrationIDOf(resp))

		require.Len(t, f.repo.records, 1)
		rec := f.repo.records[0]
		assert.Equal(t, registrationIDOf(resp), rec.RegistrationID)
		assert.Equal(t, "Jane Doe", rec.FullName)
		assert.Equal(t, "22", rec.Age)
		assert.Equal(t, "Volleyball", rec.SportName)
		assert.Equal(t, 2, rec.TeamMembersCount)
		assert.Equal(t, "", rec.Island)
		assert.Equal(t, "", rec.CoachName)
		assert.Equal(t, "Pending", rec.Status)
		assert.Equal(t, "Unpaid", rec.PaymentStatus)

		require.Len(t, f.sender.sent, 2)
		assert.Equal(t, []string{"jane@example.com"}, f.sender.sent[0].ToAddresses)
		assert.Equal(t, "YACC 2025 Registration Confirmation - "+registrationIDOf(resp), f.sender.sent[0].Subject)
		assert.Equal(t, []string{"admin@example.com"}, f.sender.sent[1].ToAddresses)
		assert.Equal(t, "📋 New YACC 2025 Registration - "+registrationIDOf(resp), f.sender.sent[1].Subject)
	})

	t.Run("missing personal has no side effects", func(t *testing.T) {
		f := newE2EFixture(t, &mockRepository{}, &mockEmailSender{})

		resp := decodeResponse(t, post(t, f.handler,
			`{"action":"submitRegistration","sports":[{"id":"vb","name":"Volleyball","type":"team"}]}`))

		assert.Equal(t, Response{Success: false, Message: "Missing required information"}, resp)
		assert.Empty(t, f.repo.records)
		assert.Empty(t, f.sender.sent)
	})

	t.Run("empty sports has no side effects", func(t *testing.T) {
		f := newE2EFixture(t, &mockRepository{}, &mockEmailSender{})

		resp := decodeResponse(t, post(t, f.handler,
			`{"action":"submitRegistration","personal":{"fullName":"Jane Doe","email":"jane@example.com"},"sports":[]}`))

		assert.Equal(t, Response{Success: false, Message: "Missing required information"}, resp)
		assert.Empty(t, f.repo.records)
		assert.Empty(t, f.sender.sent)
	})

	t.Run("same payload twice makes two records", func(t *testing.T) {
		f := newE2EFixture(t, &mockRepository{}, &mockEmailSender{})

		first := decodeResponse(t, post(t, f.handler, janeDoeBody))
		second := decodeResponse(t, post(t, f.handler, janeDoeBody))

		assert.True(t, first.Success)
		assert.True(t, second.Success)
		assert.Len(t, f.repo.records, 2)
		assert.Len(t, f.sender.sent, 4)
	})

	t.Run("store failure sends no email", func(t *testing.T) {
		repo := &mockRepository{
			AppendRegistrationFunc: func(ctx context.Context, record registration.Record) error {
				return errors.New("The caller does not have permission")
			},
		}
		f := newE2EFixture(t, repo, &mockEmailSender{})

		resp := decodeResponse(t, post(t, f.handler, janeDoeBody))

		assert.False(t, resp.Success)
		assert.Equal(t, "Failed to save to spreadsheet: The caller does not have permission", resp.Message)
		assert.Nil(t, resp.RegistrationId)
		assert.Empty(t, f.sender.sent)
	})

	t.Run("email failure still succeeds", func(t *testing.T) {
		sender := &mockEmailSender{
			SendEmailFunc: func(ctx context.Context, e email.Email) error {
				return errors.New("smtp unavailable")
			},
		}
		f := newE2EFixture(t, &mockRepository{}, sender)

		resp := decodeResponse(t, post(t, f.handler, janeDoeBody))

		assert.True(t, resp.Success)
		assert.Regexp(t, idPattern, registrationIDOf(resp))
		assert.Len(t, f.repo.records, 1)
		assert.Len(t, f.sender.sent, 2)
	})

	t.Run("only the admin email fails", func(t *testing.T) {
		sender := &mockEmailSender{
			SendEmailFunc: func(ctx context.Context, e email.Email) error {
				if e.ToAddresses[0] == "admin@example.com" {
					return errors.New("mailbox full")
				}
				return nil
			},
		}
		f := newE2EFixture(t, &mockRepository{}, sender)

		resp := decodeResponse(t, post(t, f.handler, janeDoeBody))

		assert.True(t, resp.Success)
		assert.Len(t, f.sender.sent, 2)
	})
}
