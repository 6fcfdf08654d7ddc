package errors

import (
	"net/http"
	"strings"

	"affiliate/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() any      // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   any
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string, details any) *BaseError {
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
func (e *BaseError) Details() any {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details any) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches on the business error code so copies made by WithDetails still match the template.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Product-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		nil,
	)

	// Referral-related errors
	ErrReferralCodeNotFound = NewBaseError(
		http.StatusNotFound,
		"REFERRAL_CODE_NOT_FOUND",
		"Referral link is invalid",
		nil,
	)

	// Profile-related errors
	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"User not found",
		nil,
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid request parameters",
		nil,
	)

	ErrMissingFields = NewBaseError(
		http.StatusBadRequest,
		"MISSING_FIELDS",
		"Please fill in all required fields",
		nil,
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Server Error",
		nil,
	)
)

// ValidationError collects every violated rule of a request so they can be reported at once.
type ValidationError struct {
	base     *BaseError
	problems []string
}

// NewValidationError creates an empty validation error based on one of the 400 templates.
func NewValidationError(base *BaseError) *ValidationError {
	return &ValidationError{base: base}
}

// Add records a violated rule.
func (e *ValidationError) Add(problem string) {
	e.problems = append(e.problems, problem)
}

// Addf records a violated rule built from a format string.
func (e *ValidationError) Addf(format string, args ...any) {
	e.Add(errors.Errorf(format, args...).Error())
}

// HasProblems reports whether any rule was violated.
func (e *ValidationError) HasProblems() bool {
	return len(e.problems) > 0
}

// Problems returns the violated rules in the order they were found.
func (e *ValidationError) Problems() []string {
	return append([]string(nil), e.problems...)
}

// OrNil returns the error when at least one rule was violated, otherwise nil.
func (e *ValidationError) OrNil() error {
	if !e.HasProblems() {
		return nil
	}

	return e
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.base.Message() + ": " + strings.Join(e.problems, "; ")
}

// Unwrap exposes the template so errors.Is(err, ErrValidationFailed) works.
func (e *ValidationError) Unwrap() error {
	return e.base
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return e.base.HTTPCode()
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return e.base.ErrorCode()
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return e.base.Message()
}

// Details returns every violated rule
func (e *ValidationError) Details() any {
	return e.Problems()
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
	return errors.Wrap(e.err, e.details).Error()
}

// Unwrap returns the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_ERROR"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Server Error"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() any {
	return e.details
}
