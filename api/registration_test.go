package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toms1010/YACC-2025-Sports-Event-Registration/ptr"
	"github.com/toms1010/YACC-2025-Sports-Event-Registration/registration"
)

const janeDoeBody = `{
	"action": "submitRegistration",
	"personal": {
		"fullName": "Jane Doe",
		"age": 22,
		"gender": "F",
		"contact": "0900-000-0000",
		"email": "jane@example.com",
		"organization": "Team A"
	},
	"sports": [{"id": "vb", "name": "Volleyball", "type": "team"}],
	"teamMembers": [{}, {}]
}`

func TestHandleAction(t *testing.T) {
	t.Run("successful registration", func(t *testing.T) {
		registrar := &mockRegistrar{}
		h := mustHandler(t, NewAPI(registrar, noopLogger, LOCAL, nil))

		resp := decodeResponse(t, post(t, h, janeDoeBody))

		assert.Equal(t, Response{
			Success:        true,
			Message:        "Registration successful! Confirmation email sent.",
			RegistrationId: ptr.String("YACC2511030001"),
		}, resp)

		require.Len(t, registrar.calls, 1)
		req := registrar.calls[0]
		assert.Equal(t, registration.Text("Jane Doe"), req.Personal.FullName)
		assert.Equal(t, registration.Text("22"), req.Personal.Age)
		assert.Len(t, req.TeamMembers, 2)
	})

	t.Run("unknown action", func(t *testing.T) {
		registrar := &mockRegistrar{}
		h := mustHandler(t, NewAPI(registrar, noopLogger, LOCAL, nil))

		resp := decodeResponse(t, post(t, h, `{"action":"deleteEverything"}`))

		assert.Equal(t, Response{Success: false, Message: "Invalid action"}, resp)
		assert.Empty(t, registrar.calls)
	})

	t.Run("missing action", func(t *testing.T) {
		registrar := &mockRegistrar{}
		h := mustHandler(t, NewAPI(registrar, noopLogger, LOCAL, nil))

		resp := decodeResponse(t, post(t, h, `{"personal":{}}`))

		assert.Equal(t, "Invalid action", resp.Message)
		assert.Empty(t, registrar.calls)
	})

	t.Run("bodies that name no known action", func(t *testing.T) {
		tests := []struct {
			name string
			body string
		}{
			{name: "numeric action", body: `{"action":5}`},
			{name: "object action", body: `{"action":{"name":"submitRegistration"}}`},
			{name: "array body", body: `[1,2]`},
			{name: "string body", body: `"submitRegistration"`},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				registrar := &mockRegistrar{}
				h := mustHandler(t, NewAPI(registrar, noopLogger, LOCAL, nil))

				resp := decodeResponse(t, post(t, h, tt.body))

				assert.Equal(t, Response{Success: false, Message: "Invalid action"}, resp)
				assert.Empty(t, registrar.calls)
			})
		}
	})

	t.Run("null body", func(t *testing.T) {
		registrar := &mockRegistrar{}
		h := mustHandler(t, NewAPI(registrar, noopLogger, LOCAL, nil))

		resp := decodeResponse(t, post(t, h, `null`))

		assert.Equal(t, Response{Success: false, Message: "Server error: request body is null"}, resp)
		assert.Empty(t, registrar.calls)
	})

	t.Run("numeric contact is kept as written", func(t *testing.T) {
		registrar := &mockRegistrar{}
		h := mustHandler(t, NewAPI(registrar, noopLogger, LOCAL, nil))

		body := strings.Replace(janeDoeBody, `"contact": "0900-000-0000"`, `"contact": 9000000000`, 1)
		resp := decodeResponse(t, post(t, h, body))

		assert.True(t, resp.Success, resp.Message)
		require.Len(t, registrar.calls, 1)
		assert.Equal(t, registration.Text("9000000000"), registrar.calls[0].Personal.Contact)
	})

	t.Run("json posted as text/plain", func(t *testing.T) {
		registrar := &mockRegistrar{}
		h := mustHandler(t, NewAPI(registrar, noopLogger, LOCAL, nil))

		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(janeDoeBody))
		req.Header.Set("Content-Type", "text/plain;charset=utf-8")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		resp := decodeResponse(t, rec)
		assert.True(t, resp.Success, resp.Message)
		assert.Len(t, registrar.calls, 1)
	})

	t.Run("body is not json", func(t *testing.T) {
		registrar := &mockRegistrar{}
		h := mustHandler(t, NewAPI(registrar, noopLogger, LOCAL, nil))

		resp := decodeResponse(t, post(t, h, `{"action":`))

		assert.False(t, resp.Success)
		assert.True(t, strings.HasPrefix(resp.Message, "Server error: "), resp.Message)
		assert.Empty(t, registrar.calls)
	})

	t.Run("registration with wrongly typed fields", func(t *testing.T) {
		registrar := &mockRegistrar{}
		h := mustHandler(t, NewAPI(registrar, noopLogger, LOCAL, nil))

		resp := decodeResponse(t, post(t, h, `{"action":"submitRegistration","sports":"volleyball"}`))

		assert.False(t, resp.Success)
		assert.True(t, strings.HasPrefix(resp.Message, "Server error: "), resp.Message)
		assert.Empty(t, registrar.calls)
	})

	t.Run("body too large", func(t *testing.T) {
		registrar := &mockRegistrar{}
		h := mustHandler(t, NewAPI(registrar, noopLogger, LOCAL, nil))

		body := `{"action":"submitRegistration","notes":"` + strings.Repeat("x", maxBodyBytes) + `"}`
		resp := decodeResponse(t, post(t, h, body))

		assert.False(t, resp.Success)
		assert.Contains(t, resp.Message, "Server error: ")
		assert.Empty(t, registrar.calls)
	})

	t.Run("submit errors are rendered by reason", func(t *testing.T) {
		tests := []struct {
			name    string
			err     error
			message string
		}{
			{
				name:    "missing information",
				err:     registration.NewMissingRequiredInformationError(true, false),
				message: "Missing required information",
			},
			{
				name:    "failed to save",
				err:     registration.NewFailedToSaveError("YACC2511030001", errors.New("quota exceeded")),
				message: "Failed to save to spreadsheet: quota exceeded",
			},
			{
				name:    "internal",
				err:     registration.NewInternalError("boom", errors.New("nil map")),
				message: "Registration failed: nil map",
			},
			{
				name:    "untyped error",
				err:     errors.New("something odd"),
				message: "Server error: something odd",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				registrar := &mockRegistrar{
					SubmitFunc: func(ctx context.Context, req registration.Request) (string, error) {
						return "", tt.err
					},
				}
				h := mustHandler(t, NewAPI(registrar, noopLogger, LOCAL, nil))

				resp := decodeResponse(t, post(t, h, janeDoeBody))

				assert.Equal(t, Response{Success: false, Message: tt.message}, resp)
			})
		}
	})

	t.Run("panic in the registrar fails the registration", func(t *testing.T) {
		registrar := &mockRegistrar{
			SubmitFunc: func(ctx context.Context, req registration.Request) (string, error) {
				panic("sheet exploded")
			},
		}
		h := mustHandler(t, NewAPI(registrar, noopLogger, LOCAL, nil))

		resp := decodeResponse(t, post(t, h, janeDoeBody))

		assert.Equal(t, Response{Success: false, Message: "Registration failed: sheet exploded"}, resp)
	})

	t.Run("registrar sees the request logger", func(t *testing.T) {
		registrar := &mockRegistrar{
			SubmitFunc: func(ctx context.Context, req registration.Request) (string, error) {
				_, ok := getRequestIdFromCtx(ctx)
				assert.True(t, ok)
				return "YACC2511030001", nil
			},
		}
		h := mustHandler(t, NewAPI(registrar, noopLogger, LOCAL, nil))

		resp := decodeResponse(t, post(t, h, janeDoeBody))
		assert.True(t, resp.Success)
	})
}

func TestHandleLiveness(t *testing.T) {
	h := mustHandler(t, NewAPI(&mockRegistrar{}, noopLogger, LOCAL, nil))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html", rec.Header().Get("Content-Type"))
	assert.Equal(t, "<h1>YACC 2025 Registration API</h1><p>API is running. Use POST requests to submit data.</p>", rec.Body.String())
}

func TestUnknownPath(t *testing.T) {
	h := mustHandler(t, NewAPI(&mockRegistrar{}, noopLogger, LOCAL, nil))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin", strings.NewReader("{}")))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestGetSwagger(t *testing.T) {
	swagger, err := GetSwagger()
	require.NoError(t, err)

	root := swagger.Paths.Find("/")
	require.NotNil(t, root)
	assert.Equal(t, "getLiveness", root.Get.OperationID)
	assert.Equal(t, "postAction", root.Post.OperationID)
}
