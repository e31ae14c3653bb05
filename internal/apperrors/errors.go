// Package apperrors defines the error kinds surfaced by the plan and asset
// services and their HTTP status mapping.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the kind of failure
type ErrorType string

const (
	ErrorTypeNotFound           ErrorType = "not_found"
	ErrorTypeInvalidInput       ErrorType = "invalid_input"
	ErrorTypeStorageUnavailable ErrorType = "storage_unavailable"
)

// AppError carries an error kind, a client-safe message and the underlying cause.
type AppError struct {
	Type    ErrorType
	Message string
	Code    int
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a not found error
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: message,
		Code:    http.StatusNotFound,
	}
}

// NewInvalidInputError creates an invalid input error
func NewInvalidInputError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidInput,
		Message: message,
		Code:    http.StatusBadRequest,
	}
}

// NewStorageUnavailableError wraps a document store or filesystem failure.
func NewStorageUnavailableError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeStorageUnavailable,
		Message: message,
		Code:    http.StatusInternalServerError,
		Err:     err,
	}
}

// GetAppError returns the first AppError in err's chain, or nil.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

func IsNotFound(err error) bool {
	return isType(err, ErrorTypeNotFound)
}

func IsInvalidInput(err error) bool {
	return isType(err, ErrorTypeInvalidInput)
}

func IsStorageUnavailable(err error) bool {
	return isType(err, ErrorTypeStorageUnavailable)
}

func isType(err error, t ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == t
}
