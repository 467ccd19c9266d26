package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AllowOrigins rejects cross-origin requests whose Origin header is not in
// origins with 403. Requests without an Origin header pass, as does every
// origin when the list contains "*".
func AllowOrigins(origins []string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		allowed[o] = struct{}{}
	}
	_, allowAll := allowed["*"]

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			origin := c.Request().Header.Get(echo.HeaderOrigin)
			if origin == "" || allowAll {
				return next(c)
			}
			if _, ok := allowed[origin]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "origin not allowed by CORS policy")
			}
			return next(c)
		}
	}
}
