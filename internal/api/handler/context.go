package handler

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/user-roles-api/internal/api/middleware"
	"github.com/99minutos/user-roles-api/internal/api/validation"
)

var errBodyNotValidated = errors.New("handler: request body was not validated")

// validatedBody returns the normalized body stored by middleware.ValidateBody.
// A missing body means the route was registered without the middleware,
// which surfaces as an internal error rather than an unchecked write.
func validatedBody(c echo.Context) (validation.Values, error) {
	values, ok := middleware.ValidatedBody(c)
	if !ok {
		return nil, errBodyNotValidated
	}
	return values, nil
}
