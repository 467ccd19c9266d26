package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestAllowOrigins(t *testing.T) {
	tests := []struct {
		name     string
		origins  []string
		origin   string
		wantNext bool
	}{
		{name: "listed origin", origins: []string{"http://localhost:5173"}, origin: "http://localhost:5173", wantNext: true},
		{name: "no origin header", origins: []string{"http://localhost:5173"}, origin: "", wantNext: true},
		{name: "wildcard", origins: []string{"*"}, origin: "http://evil.example", wantNext: true},
		{name: "unlisted origin", origins: []string{"http://localhost:5173"}, origin: "http://evil.example", wantNext: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/roles", nil)
			if tt.origin != "" {
				req.Header.Set(echo.HeaderOrigin, tt.origin)
			}
			c := e.NewContext(req, httptest.NewRecorder())

			called := false
			err := AllowOrigins(tt.origins)(func(c echo.Context) error {
				called = true
				return nil
			})(c)

			if called != tt.wantNext {
				t.Fatalf("expected next called=%v, got %v", tt.wantNext, called)
			}
			if tt.wantNext {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusForbidden {
				t.Fatalf("expected 403 HTTPError, got %v", err)
			}
		})
	}
}
