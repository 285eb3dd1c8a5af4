// Package errors defines the structured error type used throughout the
// console service. Every error maps to an HTTP status for the response
// envelope and carries the upstream detail message when the risk backend
// reported one.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes surfaced in response envelopes.
const (
	CodeInvalidRequest = "invalid_request"
	CodeUnauthorized   = "unauthorized"
	CodeForbidden      = "forbidden"
	CodeNotFound       = "not_found"
	CodeUpstream       = "upstream_error"
	CodeInternal       = "internal_error"
)

// AppError is a structured application error.
type AppError struct {
	Code    string
	Status  int
	Message string
	cause   error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for error-chain inspection.
func (e *AppError) Unwrap() error { return e.cause }

// Is matches AppErrors by code, so sentinel comparisons survive WithError and
// WithMessage cloning.
func (e *AppError) Is(target error) bool {
	var appErr *AppError
	if errors.As(target, &appErr) {
		return e.Code == appErr.Code
	}
	return false
}

// WithError returns a copy of e carrying err as its cause.
func (e *AppError) WithError(err error) *AppError {
	clone := *e
	clone.cause = err
	return &clone
}

// WithMessage returns a copy of e with a more specific message.
func (e *AppError) WithMessage(msg string) *AppError {
	clone := *e
	clone.Message = msg
	return &clone
}

// New creates an AppError with an explicit code, status and message.
func New(code string, status int, message string) *AppError {
	return &AppError{Code: code, Status: status, Message: message}
}

// Predefined sentinels.
var (
	// ErrUnauthorized is terminal for the current session: the holder must
	// clear stored credentials and re-authenticate. Never retried.
	ErrUnauthorized = New(CodeUnauthorized, http.StatusUnauthorized, "session is no longer valid")

	ErrForbidden    = New(CodeForbidden, http.StatusForbidden, "insufficient role for this page")
	ErrInvalidInput = New(CodeInvalidRequest, http.StatusBadRequest, "invalid request")
	ErrNotFound     = New(CodeNotFound, http.StatusNotFound, "resource not found")
	ErrUpstream     = New(CodeUpstream, http.StatusBadGateway, "risk backend request failed")
	ErrInternal     = New(CodeInternal, http.StatusInternalServerError, "internal error")
)

// Upstream builds a business failure carrying the backend-provided detail
// message, falling back to a generic message when the backend sent none.
func Upstream(detail string) *AppError {
	if detail == "" {
		return ErrUpstream
	}
	return ErrUpstream.WithMessage(detail)
}

// Validation builds a client-side validation failure; no backend call is made
// for these.
func Validation(msg string) *AppError {
	return ErrInvalidInput.WithMessage(msg)
}

// IsUnauthorized reports whether err is the terminal auth failure.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// AsAppError extracts an AppError from err, wrapping unknown errors as
// internal so every failure has a status and code.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return ErrInternal.WithError(err)
}
