package handlers

import (
	"finance-tracker/internal/errors"
	"finance-tracker/internal/validation"

	"github.com/labstack/echo/v4"
)

// removeRequest carries the id path parameter of a DELETE route
type removeRequest struct {
	ID string `param:"id" validate:"required,record_id"`
}

// bindAndValidate decodes the request into req and runs its validate tags.
// On failure it has already written the 400 response and returns false.
func bindAndValidate(c echo.Context, req interface{}) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, sendInvalidRequest(c, errors.ValidationInvalidFormat, []string{"invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return false, sendInvalidRequest(c, errors.ValidationGeneral, validation.Messages(err))
	}
	return true, nil
}
