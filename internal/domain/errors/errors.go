package errors

import (
	"net/http"

	"storerating/internal/errors"
)

// Kind classifies an application error independently of any transport.
type Kind string

const (
	KindNotFound         Kind = "not_found"
	KindConflict         Kind = "conflict"
	KindForbidden        Kind = "forbidden"
	KindUnauthenticated  Kind = "unauthenticated"
	KindValidationFailed Kind = "validation_failed"
	KindInternal         Kind = "internal"
)

// HTTPCode maps the kind to its HTTP status code.
func (k Kind) HTTPCode() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindForbidden:
		return http.StatusForbidden
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindValidationFailed:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Transport-independent classification
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same error code, so copies made by
// WithDetails still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Kind returns the error classification
func (e *BaseError) Kind() Kind {
	return e.kind
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.kind.HTTPCode()
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
		kind:      e.kind,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		KindNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		KindConflict,
		"USER_ALREADY_EXISTS",
		"Email is already registered",
		"",
	)

	ErrUserOwnsStore = NewBaseError(
		KindConflict,
		"USER_OWNS_STORE",
		"User still owns a store",
		"",
	)

	// Store-related errors
	ErrStoreNotFound = NewBaseError(
		KindNotFound,
		"STORE_NOT_FOUND",
		"Store not found",
		"",
	)

	ErrStoreAlreadyOwned = NewBaseError(
		KindConflict,
		"STORE_ALREADY_OWNED",
		"User already owns a store",
		"",
	)

	// Rating-related errors
	ErrRatingNotFound = NewBaseError(
		KindNotFound,
		"RATING_NOT_FOUND",
		"Rating not found",
		"",
	)

	ErrRatingAlreadyExists = NewBaseError(
		KindConflict,
		"RATING_ALREADY_EXISTS",
		"You have already rated this store",
		"",
	)

	ErrRatingOwnershipViolation = NewBaseError(
		KindForbidden,
		"RATING_OWNERSHIP_VIOLATION",
		"You can only modify your own ratings",
		"",
	)

	// Authentication-related errors
	ErrUnauthenticated = NewBaseError(
		KindUnauthenticated,
		"UNAUTHENTICATED",
		"Authentication required",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		KindUnauthenticated,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrInvalidToken = NewBaseError(
		KindUnauthenticated,
		"INVALID_TOKEN",
		"Invalid or expired token",
		"",
	)

	ErrPasswordMismatch = NewBaseError(
		KindValidationFailed,
		"PASSWORD_MISMATCH",
		"Current password is incorrect",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		KindValidationFailed,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		KindInternal,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		KindForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		KindNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		KindConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// KindOf returns the classification of err, or KindInternal when err does not
// wrap an AppError.
func KindOf(err error) Kind {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindInternal
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

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// Kind returns the error classification
func (e *DatabaseExecuteError) Kind() Kind {
	return KindInternal
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
