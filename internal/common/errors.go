// Package common holds shared application-level helpers, currently the
// coded error type used across all components.
package common

import (
	"errors"
	"fmt"
)

// AppError is an application-level error carrying a stable code alongside a
// human-readable message and an optional wrapped cause.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewError creates a new coded error.
func NewError(code, message string) error {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// WrapError wraps an underlying error with a code and message.
func WrapError(code, message string, err error) error {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// HasCode reports whether err (or anything it wraps) is an AppError with the
// given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// Error code constants.
const (
	ErrCodeConfig       = "CONFIG_ERROR"
	ErrCodeInvalidInput = "INVALID_INPUT"
	ErrCodeNetwork      = "NETWORK_ERROR"
	ErrCodeFilesystem   = "FILESYSTEM_ERROR"
)
