package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "affiliate/internal/delivery/context"
	domainerrors "affiliate/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-42")

	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestSuccessIsBare(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusOK, []string{}))
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestAppError_ValidationDetails(t *testing.T) {
	c, rec := newContext()

	verr := domainerrors.NewValidationError(domainerrors.ErrValidationFailed)
	verr.Add("limit must be a positive integer")
	verr.Add("order must be one of: asc, desc")

	require.NoError(t, AppError(c, errors.Wrap(verr, "list products")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Equal(t, "req-42", body.Meta.RequestID)
	assert.Equal(t, []any{"limit must be a positive integer", "order must be one of: asc, desc"}, body.Error.Details)
}

func TestAppError_ServerErrorHidesDetails(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, AppError(c, domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "insert click")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Server Error", body.Error.Message)
	assert.Nil(t, body.Error.Details)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestAppError_PassesThroughUnknownErrors(t *testing.T) {
	c, rec := newContext()

	err := AppError(c, errors.New("boom"))
	assert.Error(t, err)
	assert.Zero(t, rec.Body.Len())
}
