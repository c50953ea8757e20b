// Package errors defines the application error type shared by handlers,
// middleware, and the domain layer. Every error that crosses the API
// boundary carries a machine-readable code and an HTTP status; the
// error-handler middleware turns it into the JSON error envelope.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is the structured error returned to API clients.
type AppError struct {
	Code        string                 `json:"code"`
	Message     string                 `json:"message"`
	HTTPStatus  int                    `json:"-"`
	Params      map[string]interface{} `json:"params,omitempty"`
	FieldErrors []FieldError           `json:"field_errors,omitempty"`
	Err         error                  `json:"-"`
}

// FieldError describes one invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// WithParams attaches interpolation context. Nil-safe so constructors
// can chain it unconditionally.
func (e *AppError) WithParams(params map[string]interface{}) *AppError {
	if e != nil && len(params) > 0 {
		e.Params = params
	}
	return e
}

// WithFieldErrors attaches per-field validation failures.
func (e *AppError) WithFieldErrors(fieldErrors []FieldError) *AppError {
	if e != nil && len(fieldErrors) > 0 {
		e.FieldErrors = fieldErrors
	}
	return e
}

// New builds an AppError with an explicit status.
func New(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// Wrap builds an AppError around an underlying cause.
func Wrap(err error, code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus, Err: err}
}

func NotFound(code, message string) *AppError     { return New(code, message, http.StatusNotFound) }
func BadRequest(code, message string) *AppError   { return New(code, message, http.StatusBadRequest) }
func Unauthorized(code, message string) *AppError { return New(code, message, http.StatusUnauthorized) }
func Forbidden(code, message string) *AppError    { return New(code, message, http.StatusForbidden) }
func Conflict(code, message string) *AppError     { return New(code, message, http.StatusConflict) }

// Internal builds a 500. The underlying cause, if any, should be
// attached with Wrap instead so it reaches the logs.
func Internal(code, message string) *AppError {
	return New(code, message, http.StatusInternalServerError)
}

// IsAppError unwraps err to the first AppError in its chain.
func IsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
