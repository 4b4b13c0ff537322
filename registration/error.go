package registration

import (
	"fmt"
	"strings"
)

type ErrorReason string

const (
	REASON_MALFORMED_REQUEST            ErrorReason = "MALFORMED_REQUEST"
	REASON_MISSING_REQUIRED_INFORMATION ErrorReason = "MISSING_REQUIRED_INFORMATION"
	REASON_FAILED_TO_SAVE               ErrorReason = "FAILED_TO_SAVE"
	REASON_FAILED_TO_NOTIFY             ErrorReason = "FAILED_TO_NOTIFY"
	REASON_INTERNAL                     ErrorReason = "INTERNAL"
	REASON_ALREADY_EXISTS               ErrorReason = "ALREADY_EXISTS"
	REASON_FAILED_TO_FETCH              ErrorReason = "FAILED_TO_FETCH"
	REASON_INVALID_CURSOR               ErrorReason = "INVALID_CURSOR"
	REASON_NOT_FOUND                    ErrorReason = "NOT_FOUND"
)

type Error struct {
	Reason  ErrorReason
	Message string
	Cause   error
	// Context carries the structured details behind Message, e.g. the missing
	// fields or the recipient of a failed email.
	Context map[string]string
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Reason, e.Message)
	}
	return fmt.Sprintf("%s: %s. Cause: %s", e.Reason, e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newRegistrationError(reason ErrorReason, message string, cause error, context map[string]string) *Error {
	return &Error{
		Reason:  reason,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

func NewMalformedRequestError(message string, cause error) *Error {
	return newRegistrationError(REASON_MALFORMED_REQUEST, message, cause, nil)
}

func NewMissingRequiredInformationError(missingPersonal, missingSports bool) *Error {
	var missing []string
	if missingPersonal {
		missing = append(missing, "personal")
	}
	if missingSports {
		missing = append(missing, "sports")
	}

	return newRegistrationError(REASON_MISSING_REQUIRED_INFORMATION,
		fmt.Sprintf("Missing %s", strings.Join(missing, " and ")),
		nil,
		map[string]string{"missing": strings.Join(missing, ",")},
	)
}

func NewFailedToSaveError(registrationID string, cause error) *Error {
	return newRegistrationError(REASON_FAILED_TO_SAVE,
		fmt.Sprintf("Failed to save registration %s", registrationID),
		cause,
		map[string]string{"registrationId": registrationID},
	)
}

func NewFailedToNotifyError(registrationID string, recipient string, cause error) *Error {
	return newRegistrationError(REASON_FAILED_TO_NOTIFY,
		fmt.Sprintf("Failed to email %s about registration %s", recipient, registrationID),
		cause,
		map[string]string{"registrationId": registrationID, "recipient": recipient},
	)
}

func NewInternalError(message string, cause error) *Error {
	return newRegistrationError(REASON_INTERNAL, message, cause, nil)
}

func NewAlreadyExistsError(registrationID string) *Error {
	return newRegistrationError(REASON_ALREADY_EXISTS,
		fmt.Sprintf("Registration %s already exists", registrationID),
		nil,
		map[string]string{"registrationId": registrationID},
	)
}

func NewFailedToFetchError(message string, cause error) *Error {
	return newRegistrationError(REASON_FAILED_TO_FETCH, message, cause, nil)
}

func NewInvalidCursorError(message string, cause error) *Error {
	return newRegistrationError(REASON_INVALID_CURSOR, message, cause, nil)
}

func NewNotFoundError(registrationID string) *Error {
	return newRegistrationError(REASON_NOT_FOUND,
		fmt.Sprintf("Registration %s not found", registrationID),
		nil,
		map[string]string{"registrationId": registrationID},
	)
}
