package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/99minutos/user-roles-api/internal/api/validation"
)

// BodyKey is the context key under which ValidateBody stores the normalized body.
const BodyKey = "validated_body"

// ValidateBody decodes the request body and checks it against schema before
// the handler runs. Violations are returned as *validation.Error; the handler
// is never invoked for an invalid body.
func ValidateBody(v *validation.Validator, schema validation.Schema) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			input, err := validation.DecodeObject(c.Request().Body)
			if err != nil {
				return err
			}

			values, err := v.Validate(schema, input)
			if err != nil {
				return err
			}

			c.Set(BodyKey, values)
			return next(c)
		}
	}
}

// ValidatedBody returns the values stored by ValidateBody.
func ValidatedBody(c echo.Context) (validation.Values, bool) {
	values, ok := c.Get(BodyKey).(validation.Values)
	return values, ok
}
