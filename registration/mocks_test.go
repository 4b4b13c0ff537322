package registration

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/International-Combat-Archery-Alliance/email"
	"github.com/toms1010/YACC-2025-Sports-Event-Registration/events"
)

var noopLogger = slog.New(slog.DiscardHandler)

var manila = time.FixedZone("PST", 8*60*60)

var _ Repository = &mockRepository{}

type mockRepository struct {
	AppendRegistrationFunc func(ctx context.Context, record Record) error

	mu      sync.Mutex
	records []Record
}

func (m *mockRepository) AppendRegistration(ctx context.Context, record Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.AppendRegistrationFunc != nil {
		if err := m.AppendRegistrationFunc(ctx, record); err != nil {
			return err
		}
	}
	m.records = append(m.records, record)
	return nil
}

var _ email.Sender = &mockEmailSender{}

type mockEmailSender struct {
	SendEmailFunc func(ctx context.Context, e email.Email) error

	mu   sync.Mutex
	sent []email.Email
}

func (m *mockEmailSender) SendEmail(ctx context.Context, e email.Email) error {
	m.mu.Lock()
	m.sent = append(m.sent, e)
	m.mu.Unlock()

	if m.SendEmailFunc != nil {
		return m.SendEmailFunc(ctx, e)
	}
	return nil
}

func testNotifierConfig() NotifierConfig {
	return NotifierConfig{
		FromAddress:    "YACC 2025 <yacc2025connect@gmail.com>",
		AdminAddress:   "admin@example.com",
		SpreadsheetURL: "https://docs.google.com/spreadsheets/d/sheet-123",
		Event:          events.YACC2025(manila),
	}
}

func newTestNotifier(sender email.Sender) *Notifier {
	n, err := NewNotifier(sender, testNotifierConfig())
	if err != nil {
		panic(err)
	}
	return n
}

// fixedIDGenerator always reports the same instant and counts up the suffix.
func fixedIDGenerator(at time.Time) *IDGenerator {
	next := 0
	var mu sync.Mutex
	return &IDGenerator{
		loc: manila,
		now: func() time.Time { return at },
		suffix: func() int {
			mu.Lock()
			defer mu.Unlock()
			next++
			return next
		},
	}
}

func janeDoeRequest() Request {
	return Request{
		Personal: &Personal{
			FullName:     "Jane Doe",
			Age:          "22",
			Gender:       "F",
			Contact:      "0900-000-0000",
			Email:        "jane@example.com",
			Organization: "Team A",
		},
		Sports: []Sport{
			{ID: "vb", Name: "Volleyball", Type: "team"},
		},
		TeamMembers: []json.RawMessage{[]byte(`{}`), []byte(`{}`)},
	}
}
