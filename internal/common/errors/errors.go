// Package errors provides standardized error handling for the job-marketplace client.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeTransportFailed   ErrorCode = "TRANSPORT_FAILED"
	ErrCodeAPIStatus         ErrorCode = "API_STATUS_ERROR"
	ErrCodeMalformedResponse ErrorCode = "MALFORMED_RESPONSE"

	ErrCodeValidationFailed     ErrorCode = "VALIDATION_FAILED"
	ErrCodeDuplicateApplication ErrorCode = "DUPLICATE_APPLICATION"
	ErrCodeConfirmationDeclined ErrorCode = "CONFIRMATION_DECLINED"

	ErrCodeAuthenticationFailed ErrorCode = "AUTHENTICATION_FAILED"
	ErrCodeSessionStoreFailed   ErrorCode = "SESSION_STORE_FAILED"
)

// ClientError represents a structured application error.
type ClientError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("ClientError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewTransportError wraps a network-level failure. Retryable: the
// request never produced a collaborator response.
func NewTransportError(details string) *ClientError {
	return &ClientError{
		Code:      ErrCodeTransportFailed,
		Message:   "Request could not reach the marketplace backend",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewAPIStatusError carries the collaborator-supplied error message for
// a non-2xx response. Message is what the backend put in its "error"
// body field, or empty when the body was unusable.
func NewAPIStatusError(status int, message string) *ClientError {
	return &ClientError{
		Code:      ErrCodeAPIStatus,
		Message:   message,
		Details:   fmt.Sprintf("status %d", status),
		Retryable: status >= 500,
		Timestamp: time.Now().UTC(),
	}
}

// NewMalformedResponseError marks a 2xx body that failed to decode.
func NewMalformedResponseError(details string) *ClientError {
	return &ClientError{
		Code:      ErrCodeMalformedResponse,
		Message:   "Backend response could not be decoded",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewValidationError creates a non-retryable local validation error.
func NewValidationError(details string) *ClientError {
	return &ClientError{
		Code:      ErrCodeValidationFailed,
		Message:   "Validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDuplicateApplicationError is returned when the session already
// recorded an application for the job. No request is issued.
func NewDuplicateApplicationError(jobID string) *ClientError {
	return &ClientError{
		Code:      ErrCodeDuplicateApplication,
		Message:   "You have already applied to this job",
		Details:   fmt.Sprintf("job %s", jobID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewConfirmationDeclinedError marks a destructive operation the user
// declined at the confirmation gate.
func NewConfirmationDeclinedError(operation string) *ClientError {
	return &ClientError{
		Code:      ErrCodeConfirmationDeclined,
		Message:   "Operation cancelled",
		Details:   operation,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewAuthenticationError covers login/registration failures and
// requests rejected for a missing or expired credential cookie.
func NewAuthenticationError(message string) *ClientError {
	if message == "" {
		message = "Authentication failed"
	}
	return &ClientError{
		Code:      ErrCodeAuthenticationFailed,
		Message:   message,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSessionStoreError wraps a failure of the session state backend.
func NewSessionStoreError(details string) *ClientError {
	return &ClientError{
		Code:      ErrCodeSessionStoreFailed,
		Message:   "Session state could not be read or written",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Inspection Helpers
// ==========================

// CodeOf extracts the ErrorCode from an error chain, or "" if the error
// is not a ClientError.
func CodeOf(err error) ErrorCode {
	var ce *ClientError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}

// UserMessage returns the text shown to the user for err: the
// collaborator-provided message when present, otherwise a generic line
// per error class.
func UserMessage(err error) string {
	var ce *ClientError
	if !errors.As(err, &ce) {
		return "Something went wrong. Please try again."
	}
	if ce.Message != "" {
		return ce.Message
	}
	switch ce.Code {
	case ErrCodeTransportFailed:
		return "Could not reach the server. Check your connection and try again."
	case ErrCodeMalformedResponse:
		return "The server returned an unexpected response."
	default:
		return "Something went wrong. Please try again."
	}
}
