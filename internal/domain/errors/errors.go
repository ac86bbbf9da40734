package errors

import (
	"fmt"
	"net/http"
	"time"

	"paseo/internal/domain/entity"
	"paseo/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Walk-related errors
	ErrWalkNotFound = NewBaseError(
		http.StatusNotFound,
		"WALK_NOT_FOUND",
		"Walk not found",
		"",
	)

	ErrWalkCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"WALK_CREATION_FAILED",
		"Failed to create walk",
		"",
	)

	ErrWalkUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"WALK_UPDATE_FAILED",
		"Failed to update walk",
		"",
	)

	ErrWalkConflict = NewBaseError(
		http.StatusConflict,
		"WALK_CONFLICT",
		"The walk was modified concurrently, please retry",
		"",
	)

	// Receipt-related errors
	ErrReceiptNotFound = NewBaseError(
		http.StatusNotFound,
		"RECEIPT_NOT_FOUND",
		"No receipt exists for this walk",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInvalidCoordinates = NewBaseError(
		http.StatusBadRequest,
		"INVALID_COORDINATES",
		"Latitude must be in [-90, 90] and longitude in [-180, 180]",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// NewIllegalTransitionError builds the client error for a status change that
// the transition table does not allow. The message names both statuses so the
// violated rule is legible to the caller.
func NewIllegalTransitionError(current, target entity.WalkStatus) *BaseError {
	return NewBaseError(
		http.StatusBadRequest,
		"ILLEGAL_TRANSITION",
		fmt.Sprintf("Invalid status transition from '%s' to '%s'",
			current.DisplayName(), target.DisplayName()),
		"",
	)
}

// NewStartWindowError builds the client error for a start attempted outside
// the allowed window around the scheduled start time.
func NewStartWindowError(scheduledStart time.Time, window time.Duration) *BaseError {
	return NewBaseError(
		http.StatusBadRequest,
		"START_OUTSIDE_WINDOW",
		fmt.Sprintf("The walk cannot be started outside its allowed window. It is scheduled for %s (within %s either side)",
			scheduledStart.Format(time.RFC3339), window),
		"",
	)
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
