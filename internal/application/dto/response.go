// Package dto defines the JSON envelope the console's own endpoints return
// to the shell script.
package dto

import (
	"html/template"
	"time"

	"github.com/fraudlens/console/internal/view"
	"github.com/fraudlens/console/pkg/errors"
)

// APIResponse is the uniform envelope for fragment and action endpoints.
// Notices ride alongside data so a degraded page can deliver both.
type APIResponse struct {
	Success   bool          `json:"success"`
	Data      interface{}   `json:"data,omitempty"`
	Error     *ErrorDTO     `json:"error,omitempty"`
	Notices   []view.Notice `json:"notices,omitempty"`
	RequestID string        `json:"request_id,omitempty"`
	Timestamp int64         `json:"timestamp"`
}

// ErrorDTO is the wire form of an application error.
type ErrorDTO struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SuccessResponse wraps data in a success envelope.
func SuccessResponse(data interface{}, requestID string) *APIResponse {
	return &APIResponse{
		Success:   true,
		Data:      data,
		RequestID: requestID,
		Timestamp: time.Now().Unix(),
	}
}

// ErrorResponse wraps an error in a failure envelope. Non-application errors
// are reported as internal without leaking their text.
func ErrorResponse(err error, requestID string) *APIResponse {
	resp := &APIResponse{
		Success:   false,
		RequestID: requestID,
		Timestamp: time.Now().Unix(),
	}
	appErr := errors.AsAppError(err)
	resp.Error = &ErrorDTO{Code: appErr.Code, Message: appErr.Message}
	return resp
}

// WithNotices attaches notices to the envelope.
func (r *APIResponse) WithNotices(notices ...view.Notice) *APIResponse {
	r.Notices = append(r.Notices, notices...)
	return r
}

// LoginResult is the body of a successful console login.
type LoginResult struct {
	Redirect string `json:"redirect"`
}

// CreateUserResult reports the outcome of the admin create-user form.
type CreateUserResult struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	UserCode string `json:"user_code"`
}

// FragmentResult carries one rendered HTML fragment plus any chart payloads
// the shell script should (re)draw after swapping it in.
type FragmentResult struct {
	HTML   template.HTML                `json:"html"`
	Charts map[string]view.ChartPayload `json:"charts,omitempty"`
}
