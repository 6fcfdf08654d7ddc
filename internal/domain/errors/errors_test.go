package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_CollectsAllProblems(t *testing.T) {
	verr := NewValidationError(ErrValidationFailed)
	assert.NoError(t, verr.OrNil())

	verr.Add("invalid category")
	verr.Addf("limit must not exceed %d", 100)

	err := verr.OrNil()
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, ErrValidationFailed))
	assert.Equal(t, []string{"invalid category", "limit must not exceed 100"}, verr.Details())
	assert.Equal(t, http.StatusBadRequest, verr.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", verr.ErrorCode())
	assert.Contains(t, err.Error(), "invalid category; limit must not exceed 100")
}

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	err := errors.Wrap(ErrProductNotFound.WithDetails("id=42"), "failed to update product")

	assert.True(t, stderrors.Is(err, ErrProductNotFound))
	assert.False(t, stderrors.Is(err, ErrProfileNotFound))

	var appErr AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "id=42", appErr.Details())
}

func TestDatabaseExecuteError_HidesDriverMessage(t *testing.T) {
	driverErr := stderrors.New("connection refused")
	err := NewDatabaseExecuteError(driverErr, "failed to count products")

	assert.Equal(t, "Server Error", err.Message())
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.True(t, stderrors.Is(err, driverErr))
	assert.Contains(t, err.Error(), "failed to count products: connection refused")
}
