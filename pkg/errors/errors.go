package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// Domain errors
	ErrorTypeValidation     ErrorType = "VALIDATION"
	ErrorTypeNotFound       ErrorType = "NOT_FOUND"
	ErrorTypeNotFoundInList ErrorType = "NOT_FOUND_IN_LIST"
	ErrorTypeDuplicate      ErrorType = "DUPLICATE"
	ErrorTypeAuthorization  ErrorType = "AUTHORIZATION"

	// Infrastructure errors
	ErrorTypeStoreRead  ErrorType = "STORE_READ"
	ErrorTypeStoreWrite ErrorType = "STORE_WRITE"

	// Application errors
	ErrorTypeInternal     ErrorType = "INTERNAL"
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"
)

// AppError represents an application-specific error
type AppError struct {
	Type       ErrorType              `json:"type"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	Cause      error                  `json:"-"`
	HTTPStatus int                    `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetails adds error details
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	e.Details = details
	return e
}

// WithCause wraps an underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Cause = err
	return e
}

// Constructor functions for common error types

// NewValidationError creates a validation error
func NewValidationError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewNotFoundError creates a not found error for the named resource
func NewNotFoundError(resource, id string) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Message:    fmt.Sprintf("%s %q not found", resource, id),
		HTTPStatus: http.StatusNotFound,
	}
}

// NewNotFoundInListError creates an error for a list member that is absent
func NewNotFoundInListError(member, list string) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFoundInList,
		Message:    fmt.Sprintf("%q is not in %s", member, list),
		HTTPStatus: http.StatusNotFound,
	}
}

// NewDuplicateError creates an error for a list member that is already present
func NewDuplicateError(member, list string) *AppError {
	return &AppError{
		Type:       ErrorTypeDuplicate,
		Message:    fmt.Sprintf("%q is already in %s", member, list),
		HTTPStatus: http.StatusConflict,
	}
}

// NewAuthorizationError creates an authorization error
func NewAuthorizationError(message string) *AppError {
	if message == "" {
		message = "caller is not the owner"
	}
	return &AppError{
		Type:       ErrorTypeAuthorization,
		Message:    message,
		HTTPStatus: http.StatusForbidden,
	}
}

// NewStoreReadError wraps a failed read against the backing store
func NewStoreReadError(operation string, err error) *AppError {
	return &AppError{
		Type:       ErrorTypeStoreRead,
		Message:    fmt.Sprintf("store read '%s' failed", operation),
		Cause:      err,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// NewStoreWriteError wraps a failed write against the backing store
func NewStoreWriteError(operation string, err error) *AppError {
	return &AppError{
		Type:       ErrorTypeStoreWrite,
		Message:    fmt.Sprintf("store write '%s' failed", operation),
		Cause:      err,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// NewInternalError creates an internal error
func NewInternalError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// NewUnauthorizedError creates an unauthenticated-caller error
func NewUnauthorizedError(message string) *AppError {
	if message == "" {
		message = "unauthorized"
	}
	return &AppError{
		Type:       ErrorTypeUnauthorized,
		Message:    message,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// Helper functions

// GetAppError extracts AppError from an error chain
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == errType
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return IsType(err, ErrorTypeValidation)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return IsType(err, ErrorTypeNotFound)
}

// IsNotFoundInList checks if an error reports an absent list member
func IsNotFoundInList(err error) bool {
	return IsType(err, ErrorTypeNotFoundInList)
}

// IsDuplicate checks if an error reports an already-present list member
func IsDuplicate(err error) bool {
	return IsType(err, ErrorTypeDuplicate)
}

// IsAuthorization checks if an error is an ownership failure
func IsAuthorization(err error) bool {
	return IsType(err, ErrorTypeAuthorization)
}

// IsStoreRead checks if an error is a store read failure
func IsStoreRead(err error) bool {
	return IsType(err, ErrorTypeStoreRead)
}

// IsStoreWrite checks if an error is a store write failure
func IsStoreWrite(err error) bool {
	return IsType(err, ErrorTypeStoreWrite)
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	// If it's already an AppError, add context to message
	if appErr := GetAppError(err); appErr != nil {
		appErr.Message = fmt.Sprintf("%s: %s", message, appErr.Message)
		return appErr
	}

	return NewInternalError(message).WithCause(err)
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...interface{}) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}
