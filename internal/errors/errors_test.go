package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "user not found", ErrUserNotFound.Error())
	assert.Equal(t, "file already exists with this name in this folder", ErrFileExists.Error())
	assert.Equal(t, "validation error: email - is required", NewValidationError("email", "is required").Error())
	assert.Equal(t, "validation error: body malformed", NewValidationError("", "body malformed").Error())
}

func TestClassifiers(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrFileNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("load file: %w", ErrFileNotFound)))
		assert.False(t, IsNotFound(ErrUserExists))
	})

	t.Run("already exists", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrUserExists))
		assert.False(t, IsAlreadyExists(ErrUserNotFound))
	})

	t.Run("validation", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("field", "bad")))
		assert.False(t, IsValidation(ErrForbidden))
	})

	t.Run("authentication", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrInvalidCredentials))
		assert.True(t, IsAuthentication(ErrSessionActive))
		assert.False(t, IsAuthentication(ErrForbidden))
		// Plain sentinel, deliberately not an AuthenticationError
		assert.False(t, IsAuthentication(ErrNotLoggedIn))
	})

	t.Run("authorization", func(t *testing.T) {
		assert.True(t, IsAuthorization(ErrForbidden))
		assert.True(t, IsAuthorization(ErrFileNotVisible))
		assert.False(t, IsAuthorization(ErrAccountDisabled))
	})
}

func TestErrorsIsOnEntityErrors(t *testing.T) {
	// Same entity matches even through wrapping
	wrapped := fmt.Errorf("signup: %w", ErrUserExists)
	assert.True(t, errors.Is(wrapped, ErrUserExists))

	// Different entities do not match
	assert.False(t, errors.Is(ErrFileNotFound, ErrUserNotFound))
	assert.False(t, errors.Is(ErrFileExists, ErrUserExists))
}
