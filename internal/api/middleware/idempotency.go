package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/user-roles-api/internal/core/ports"
)

const (
	HeaderIdempotencyKey = "Idempotency-Key"
	HeaderReplayed       = "Idempotent-Replayed"

	maxIdempotencyKeyLen = 255
)

// Idempotency replays the stored response when a request repeats an
// Idempotency-Key already seen on the same route. Only 201 responses are
// stored. Requests without the header, or a nil store, pass straight through.
// Store failures are logged and never fail the request.
func Idempotency(store ports.IdempotencyStore, ttl time.Duration, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.Request().Header.Get(HeaderIdempotencyKey)
			if store == nil || key == "" {
				return next(c)
			}
			if len(key) > maxIdempotencyKeyLen {
				return echo.NewHTTPError(http.StatusBadRequest, "Idempotency-Key must not exceed 255 characters")
			}

			ctx := c.Request().Context()
			scope := c.Request().Method + " " + c.Path()

			stored, err := store.Lookup(ctx, scope, key)
			if err != nil {
				log.Warn().Err(err).Str("scope", scope).Msg("idempotency lookup failed")
			}
			if stored != nil {
				c.Response().Header().Set(HeaderReplayed, "true")
				return c.Blob(stored.Status, stored.ContentType, stored.Body)
			}

			res := c.Response()
			capture := &captureWriter{ResponseWriter: res.Writer}
			res.Writer = capture

			if err := next(c); err != nil {
				return err
			}

			if res.Status != http.StatusCreated {
				return nil
			}
			resp := ports.StoredResponse{
				Status:      res.Status,
				ContentType: res.Header().Get(echo.HeaderContentType),
				Body:        capture.body.Bytes(),
			}
			if err := store.Save(ctx, scope, key, resp, ttl); err != nil {
				log.Warn().Err(err).Str("scope", scope).Msg("idempotency save failed")
			}
			return nil
		}
	}
}

// captureWriter tees the response body so it can be stored after the handler returns.
type captureWriter struct {
	http.ResponseWriter
	body bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}
