package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/toms1010/YACC-2025-Sports-Event-Registration/registration"
)

const (
	successMessage       = "Registration successful! Confirmation email sent."
	invalidActionMessage = "Invalid action"
	missingInfoMessage   = "Missing required information"
)

// writeResponse writes the envelope outside of the generated handlers. The
// outcome lives in Success, so a POST is always answered with 200.
func writeResponse(w http.ResponseWriter, statusCode int, resp Response) {
	body, err := json.Marshal(resp)
	if err != nil {
		body = []byte(`{"success":false,"message":"Server error: failed to encode response"}`)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(body)
}

// requestErrorHandler answers a body the generated handler could not decode.
func (a *API) requestErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	a.getLoggerOrBaseLogger(r.Context()).WarnContext(r.Context(), "Failed to decode request body", "error", err)

	writeResponse(w, http.StatusOK, serverError(err.Error()))
}

func (a *API) responseErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	a.getLoggerOrBaseLogger(r.Context()).ErrorContext(r.Context(), "Failed to write response", "error", err)

	writeResponse(w, http.StatusOK, serverError(err.Error()))
}

func serverError(description string) Response {
	return Response{Success: false, Message: "Server error: " + description}
}

func invalidAction() Response {
	return Response{Success: false, Message: invalidActionMessage}
}

func registrationSuccess(registrationID string) Response {
	return Response{Success: true, Message: successMessage, RegistrationId: &registrationID}
}

// errorResponse renders a submit failure into its user facing message.
func errorResponse(err error) Response {
	var regErr *registration.Error
	if !errors.As(err, &regErr) {
		return serverError(err.Error())
	}

	switch regErr.Reason {
	case registration.REASON_MISSING_REQUIRED_INFORMATION:
		return Response{Success: false, Message: missingInfoMessage}
	case registration.REASON_FAILED_TO_SAVE:
		return Response{Success: false, Message: "Failed to save to spreadsheet: " + causeText(regErr)}
	case registration.REASON_INTERNAL:
		return Response{Success: false, Message: "Registration failed: " + causeText(regErr)}
	default:
		return serverError(causeText(regErr))
	}
}

func causeText(err *registration.Error) string {
	if err.Cause != nil {
		return err.Cause.Error()
	}
	return err.Message
}
