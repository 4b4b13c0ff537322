package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/toms1010/YACC-2025-Sports-Event-Registration/registration"
)

const (
	actionSubmitRegistration = "submitRegistration"

	maxBodyBytes = 65536

	livenessHTML = "<h1>YACC 2025 Registration API</h1><p>API is running. Use POST requests to submit data.</p>"
)

func (a *API) GetLiveness(ctx context.Context, request GetLivenessRequestObject) (GetLivenessResponseObject, error) {
	return GetLiveness200TexthtmlResponse{
		Body:          strings.NewReader(livenessHTML),
		ContentLength: int64(len(livenessHTML)),
	}, nil
}

func (a *API) PostAction(ctx context.Context, request PostActionRequestObject) (PostActionResponseObject, error) {
	logger := a.getLoggerOrBaseLogger(ctx)

	if request.Body == nil {
		logger.WarnContext(ctx, "Nil body for action")

		return PostAction200JSONResponse(errorResponse(registration.NewMalformedRequestError("Must specify a body", nil))), nil
	}
	payload := []byte(*request.Body)

	var body any
	if err := json.Unmarshal(payload, &body); err != nil {
		logger.WarnContext(ctx, "Request body is not valid JSON", "error", err)

		return PostAction200JSONResponse(errorResponse(registration.NewMalformedRequestError("Request body is not valid JSON", err))), nil
	}
	if body == nil {
		logger.WarnContext(ctx, "Request body is null")

		return PostAction200JSONResponse(serverError("request body is null")), nil
	}

	// Arrays, numbers and non-string actions all fall through to Invalid action.
	fields, _ := body.(map[string]any)
	action, _ := fields["action"].(string)

	switch action {
	case actionSubmitRegistration:
		return PostAction200JSONResponse(a.submitRegistration(ctx, payload)), nil
	default:
		logger.InfoContext(ctx, "Rejected unknown action", slog.Any("action", fields["action"]))

		return PostAction200JSONResponse(invalidAction()), nil
	}
}

func (a *API) submitRegistration(ctx context.Context, payload []byte) (resp Response) {
	logger := a.getLoggerOrBaseLogger(ctx)

	var req registration.Request
	if err := json.NewDecoder(bytes.NewReader(payload)).Decode(&req); err != nil {
		logger.WarnContext(ctx, "Failed to decode registration", "error", err)
		return errorResponse(registration.NewMalformedRequestError("Failed to decode registration", err))
	}

	// A panic below here fails this registration rather than the request.
	defer func() {
		if p := recover(); p != nil {
			logger.ErrorContext(ctx, "Registration panicked", slog.Any("panic", p))
			resp = errorResponse(registration.NewInternalError("Registration panicked", fmt.Errorf("%v", p)))
		}
	}()

	registrationID, err := a.registrar.Submit(ctx, req)
	if err != nil {
		return errorResponse(err)
	}

	return registrationSuccess(registrationID)
}
