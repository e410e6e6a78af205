package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorTypeString(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		expected  string
	}{
		{ErrorTypeValidation, "VALIDATION_ERROR"},
		{ErrorTypeNotFound, "NOT_FOUND_ERROR"},
		{ErrorTypeAlreadyExists, "ALREADY_EXISTS_ERROR"},
		{ErrorTypeToken, "TOKEN_ERROR"},
		{ErrorTypeDatabase, "DATABASE_ERROR"},
		{ErrorTypeCache, "CACHE_ERROR"},
		{ErrorTypeConfiguration, "CONFIGURATION_ERROR"},
		{ErrorTypeUnknown, "UNKNOWN_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.errorType.String())
		})
	}
}

func TestAppErrorError(t *testing.T) {
	t.Run("WithoutCause", func(t *testing.T) {
		err := NewValidationError("category is required")
		assert.Equal(t, "VALIDATION_ERROR: category is required", err.Error())
	})

	t.Run("WithCause", func(t *testing.T) {
		cause := fmt.Errorf("connection refused")
		err := NewDatabaseError("failed to list vendors", cause)
		assert.Equal(t, "DATABASE_ERROR: failed to list vendors (caused by: connection refused)", err.Error())
	})
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("underlying failure")
	err := NewCacheError("pattern delete failed", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.True(t, stderrors.Is(err, cause))
}

func TestErrorTypeCheckers(t *testing.T) {
	t.Run("MatchingType", func(t *testing.T) {
		assert.True(t, IsValidationError(NewValidationError("bad input")))
		assert.True(t, IsNotFoundError(NewNotFoundError("vendor not found")))
		assert.True(t, IsAlreadyExistsError(NewAlreadyExistsError("slug taken")))
		assert.True(t, IsTokenError(NewTokenError("invite expired")))
		assert.True(t, IsDatabaseError(NewDatabaseError("query failed", nil)))
		assert.True(t, IsCacheError(NewCacheError("store panic", nil)))
		assert.True(t, IsConfigurationError(NewConfigurationError("bad port", nil)))
	})

	t.Run("MismatchedType", func(t *testing.T) {
		assert.False(t, IsNotFoundError(NewValidationError("bad input")))
		assert.False(t, IsValidationError(NewDatabaseError("query failed", nil)))
	})

	t.Run("PlainError", func(t *testing.T) {
		plain := fmt.Errorf("plain error")
		assert.False(t, IsValidationError(plain))
		assert.False(t, IsDatabaseError(plain))
		assert.False(t, IsCacheError(plain))
	})
}
