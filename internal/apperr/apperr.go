package apperr

import (
	"fmt"
	"net/http"
	"time"
)

type Code string

const (
	CodeMissingFields       Code = "missing_fields"
	CodeInvalidChallenge    Code = "invalid_challenge"
	CodeDuplicateSubmission Code = "duplicate_submission"
	CodeProfileNotFound     Code = "profile_not_found"
	CodeNicknameTaken       Code = "nickname_taken"
	CodeStorageUnavailable  Code = "storage_unavailable"
	CodeInternal            Code = "internal"
)

// Error is the typed error surfaced to API callers. Message is safe to
// return to the client; wrapped internal detail stays in the logs.
type Error struct {
	Code       Code
	Message    string
	RetryAfter time.Duration
	cause      error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Status maps the error code to an HTTP status for the response.
func (e *Error) Status() int {
	switch e.Code {
	case CodeMissingFields, CodeInvalidChallenge, CodeNicknameTaken:
		return http.StatusBadRequest
	case CodeDuplicateSubmission:
		return http.StatusTooManyRequests
	case CodeProfileNotFound:
		return http.StatusNotFound
	case CodeStorageUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap keeps the underlying cause for logging while exposing only the
// client-safe message.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

// Duplicate builds the rate-limit error carrying the remaining
// cooldown as a retry hint.
func Duplicate(message string, retryAfter time.Duration) *Error {
	return &Error{Code: CodeDuplicateSubmission, Message: message, RetryAfter: retryAfter}
}
