package handler

import (
	"encoding/json"
	"net/http"

	domainerrors "affiliate/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// bindBody decodes the JSON body only, so query parameters never leak into inputs.
// Decoding failures are reported like any other validation problem.
func bindBody(c echo.Context, dst any) error {
	err := (&echo.DefaultBinder{}).BindBody(c, dst)
	if err == nil {
		return nil
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Code == http.StatusUnsupportedMediaType {
		return err
	}

	problems := domainerrors.NewValidationError(domainerrors.ErrValidationFailed)

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		problems.Addf("%s has an invalid type", typeErr.Field)
	} else {
		problems.Add("request body must be a valid JSON object")
	}

	return problems
}

// optionalQuery returns the first value of a query parameter; absent and empty are both nil.
func optionalQuery(c echo.Context, name string) *string {
	values, ok := c.QueryParams()[name]
	if !ok || len(values) == 0 || values[0] == "" {
		return nil
	}

	value := values[0]

	return &value
}

// presentQuery is optionalQuery for parameters where an empty value is still a supplied value.
func presentQuery(c echo.Context, name string) *string {
	values, ok := c.QueryParams()[name]
	if !ok || len(values) == 0 {
		return nil
	}

	value := values[0]

	return &value
}
