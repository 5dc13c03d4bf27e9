package errors

import (
	"errors"
	"fmt"
	"time"
)

// Application error types organized by category for better error handling

type ErrorType int

// Domain/Business Logic Errors - errors related to business rules and validation
const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation
	ErrorTypeNotFound
	ErrorTypeUnauthorized
	ErrorTypeCooldown

	// Infrastructure Errors - errors related to external systems and services
	ErrorTypeDatabase
	ErrorTypeExternalAPI

	// System/Configuration Errors - errors related to system setup and configuration
	ErrorTypeConfiguration
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeNotFound:
		return "NOT_FOUND_ERROR"
	case ErrorTypeUnauthorized:
		return "UNAUTHORIZED_ERROR"
	case ErrorTypeCooldown:
		return "COOLDOWN_ACTIVE"
	case ErrorTypeDatabase:
		return "DATABASE_ERROR"
	case ErrorTypeExternalAPI:
		return "EXTERNAL_API_ERROR"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Short aliases used throughout the adapters
const (
	ValidationError    = ErrorTypeValidation
	NotFoundError      = ErrorTypeNotFound
	UnauthorizedError  = ErrorTypeUnauthorized
	CooldownError      = ErrorTypeCooldown
	DatabaseError      = ErrorTypeDatabase
	ExternalAPIError   = ErrorTypeExternalAPI
	ConfigurationError = ErrorTypeConfiguration
)

type AppError struct {
	Type    ErrorType
	Message string
	Cause   error

	// RetryAfter is set on cooldown errors.
	RetryAfter time.Duration
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// Domain/Business Logic Error Constructors
func NewValidationError(message string) *AppError {
	return New(ValidationError, message)
}

func NewNotFoundError(message string) *AppError {
	return New(NotFoundError, message)
}

func NewUnauthorizedError(message string) *AppError {
	return New(UnauthorizedError, message)
}

func NewCooldownError(message string, retryAfter time.Duration) *AppError {
	return &AppError{
		Type:       CooldownError,
		Message:    message,
		RetryAfter: retryAfter,
	}
}

// Infrastructure Error Constructors
func NewDatabaseError(message string, cause error) *AppError {
	return Wrap(DatabaseError, message, cause)
}

func NewExternalAPIError(message string, cause error) *AppError {
	return Wrap(ExternalAPIError, message, cause)
}

// System/Configuration Error Constructors
func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ConfigurationError, message, cause)
}

// TypeOf returns the type of the first AppError in the chain
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeUnknown
}

// Helper functions for error type checking
func IsNotFoundError(err error) bool {
	return TypeOf(err) == NotFoundError
}

func IsValidationError(err error) bool {
	return TypeOf(err) == ValidationError
}

func IsUnauthorizedError(err error) bool {
	return TypeOf(err) == UnauthorizedError
}

func IsCooldownError(err error) bool {
	return TypeOf(err) == CooldownError
}

func IsDatabaseError(err error) bool {
	return TypeOf(err) == DatabaseError
}

func IsExternalAPIError(err error) bool {
	return TypeOf(err) == ExternalAPIError
}

func IsConfigurationError(err error) bool {
	return TypeOf(err) == ConfigurationError
}
