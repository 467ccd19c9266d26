package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/user-roles-api/internal/api/handler"
	"github.com/99minutos/user-roles-api/internal/api/validation"
	"github.com/99minutos/user-roles-api/internal/core/domain"
)

const (
	msgValidationFailed = "validation failed"
	msgInternal         = "internal server error"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps validation and domain errors to their HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the envelope {"success": false, "message": "...", "errors": [...]}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, resp := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, handler.ErrorResponse) {
	var ve *validation.Error
	if errors.As(err, &ve) {
		return http.StatusBadRequest, handler.ErrorResponse{Message: msgValidationFailed, Errors: ve.Messages}
	}

	// Echo's own errors (404 from router, 405, recovered panics wrapped by echo, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) && he.Code < http.StatusInternalServerError {
		return he.Code, handler.ErrorResponse{Message: fmt.Sprintf("%v", he.Message)}
	}

	var dup *domain.DuplicateError
	switch {
	case errors.As(err, &dup):
		return http.StatusConflict, handler.ErrorResponse{Message: dup.Error()}
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, handler.ErrorResponse{Message: domain.ErrConflict.Error()}
	case errors.Is(err, domain.ErrNoRoles):
		return http.StatusPreconditionFailed, handler.ErrorResponse{Message: domain.ErrNoRoles.Error()}
	case errors.Is(err, domain.ErrRoleNotFound):
		return http.StatusBadRequest, handler.ErrorResponse{Message: domain.ErrRoleNotFound.Error()}
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, handler.ErrorResponse{Message: msgInternal}
}
