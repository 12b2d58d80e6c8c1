package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBackendUnavailableWrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewBackendUnavailableError(cause)

	assert.True(t, IsBackendUnavailable(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusServiceUnavailable, GetAppError(err).Code)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestClassificationThroughWrapping(t *testing.T) {
	err := fmt.Errorf("loading bill: %w", NewNotFoundError("Bill"))

	assert.True(t, IsNotFound(err))
	assert.False(t, IsValidation(err))
	assert.Equal(t, "Bill not found", GetAppError(err).Message)
}

func TestFieldValidationError(t *testing.T) {
	err := NewFieldValidationError("amount", "must be positive")

	assert.True(t, IsValidation(err))
	assert.Equal(t, []FieldError{{Field: "amount", Message: "must be positive"}}, err.Errors)
}

func TestGetAppErrorFallsBackToInternal(t *testing.T) {
	appErr := GetAppError(errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	assert.Equal(t, "boom", appErr.Message)
}
