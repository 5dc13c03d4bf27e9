package errors

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		setup    func() *AppError
		expected string
	}{
		{
			name: "ErrorWithoutCause",
			setup: func() *AppError {
				return New(ValidationError, "feeling is required")
			},
			expected: "VALIDATION_ERROR: feeling is required",
		},
		{
			name: "ErrorWithCause",
			setup: func() *AppError {
				cause := fmt.Errorf("connection refused")
				return Wrap(DatabaseError, "failed to insert survey response", cause)
			},
			expected: "DATABASE_ERROR: failed to insert survey response (caused by: connection refused)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.setup()
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("timeout")
	err := NewExternalAPIError("open-meteo request failed", cause)
	assert.Equal(t, cause, err.Unwrap())

	assert.Nil(t, NewNotFoundError("no rows").Unwrap())
}

func TestErrorType_String(t *testing.T) {
	tests := map[ErrorType]string{
		ErrorTypeValidation:    "VALIDATION_ERROR",
		ErrorTypeNotFound:      "NOT_FOUND_ERROR",
		ErrorTypeUnauthorized:  "UNAUTHORIZED_ERROR",
		ErrorTypeCooldown:      "COOLDOWN_ACTIVE",
		ErrorTypeDatabase:      "DATABASE_ERROR",
		ErrorTypeExternalAPI:   "EXTERNAL_API_ERROR",
		ErrorTypeConfiguration: "CONFIGURATION_ERROR",
		ErrorTypeUnknown:       "UNKNOWN_ERROR",
	}

	for errType, expected := range tests {
		assert.Equal(t, expected, errType.String())
	}
}

func TestTypeCheckers_WrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("submit draft: %w", NewCooldownError("too soon", time.Hour))

	assert.True(t, IsCooldownError(wrapped))
	assert.False(t, IsValidationError(wrapped))
	assert.Equal(t, ErrorTypeCooldown, TypeOf(wrapped))

	assert.True(t, IsNotFoundError(NewNotFoundError("x")))
	assert.True(t, IsUnauthorizedError(NewUnauthorizedError("x")))
	assert.True(t, IsDatabaseError(NewDatabaseError("x", nil)))
	assert.True(t, IsExternalAPIError(NewExternalAPIError("x", nil)))
	assert.True(t, IsConfigurationError(NewConfigurationError("x", nil)))
	assert.Equal(t, ErrorTypeUnknown, TypeOf(fmt.Errorf("plain")))
}

func TestNewCooldownError_RetryAfter(t *testing.T) {
	err := NewCooldownError("wait", 90*time.Minute)

	assert.Equal(t, CooldownError, err.Type)
	assert.Equal(t, 90*time.Minute, err.RetryAfter)
	assert.Nil(t, err.Cause)
}
