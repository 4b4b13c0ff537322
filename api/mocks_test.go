package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/International-Combat-Archery-Alliance/email"
	"github.com/stretchr/testify/require"
	"github.com/toms1010/YACC-2025-Sports-Event-Registration/registration"
)

var noopLogger = slog.New(slog.DiscardHandler)

var _ Registrar = &mockRegistrar{}

type mockRegistrar struct {
	SubmitFunc func(ctx context.Context, req registration.Request) (string, error)

	calls []registration.Request
}

func (m *mockRegistrar) Submit(ctx context.Context, req registration.Request) (string, error) {
	m.calls = append(m.calls, req)
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, req)
	}
	return "YACC2511030001", nil
}

var _ registration.Repository = &mockRepository{}

type mockRepository struct {
	AppendRegistrationFunc func(ctx context.Context, record registration.Record) error

	mu      sync.Mutex
	records []registration.Record
}

func (m *mockRepository) AppendRegistration(ctx context.Context, record registration.Record) error {
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

func mustHandler(t *testing.T, a *API) http.Handler {
	t.Helper()

	h, err := a.Handler()
	require.NoError(t, err)
	return h
}

func registrationIDOf(resp Response) string {
	if resp.RegistrationId == nil {
		return ""
	}
	return *resp.RegistrationId
}

func post(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}
