package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/user-roles-api/internal/api/validation"
	"github.com/99minutos/user-roles-api/internal/core/domain"
)

type errorEnvelope struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

func TestHTTPErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   int
		wantMsg    string
		wantErrors int
	}{
		{
			name:       "validation",
			err:        &validation.Error{Messages: []string{"role name is required", "description must be text"}},
			wantCode:   http.StatusBadRequest,
			wantMsg:    "validation failed",
			wantErrors: 2,
		},
		{
			name:     "duplicate",
			err:      fmt.Errorf("create role: %w", domain.Duplicate("role", "name", "Admin")),
			wantCode: http.StatusConflict,
			wantMsg:  "a role with name 'Admin' already exists",
		},
		{
			name:     "no roles",
			err:      domain.ErrNoRoles,
			wantCode: http.StatusPreconditionFailed,
			wantMsg:  "cannot create users until at least one role exists",
		},
		{
			name:     "unknown role",
			err:      fmt.Errorf("find role: %w", domain.ErrRoleNotFound),
			wantCode: http.StatusBadRequest,
			wantMsg:  "role id does not exist",
		},
		{
			name:     "echo not found",
			err:      echo.ErrNotFound,
			wantCode: http.StatusNotFound,
			wantMsg:  "Not Found",
		},
		{
			name:     "unexpected",
			err:      errors.New("mongo: connection reset"),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/api/roles", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			NewHTTPErrorHandler(zerolog.Nop())(tt.err, c)

			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}
			var resp errorEnvelope
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp.Success {
				t.Fatalf("expected success=false")
			}
			if resp.Message != tt.wantMsg {
				t.Fatalf("expected message %q, got %q", tt.wantMsg, resp.Message)
			}
			if len(resp.Errors) != tt.wantErrors {
				t.Fatalf("expected %d errors, got %v", tt.wantErrors, resp.Errors)
			}
		})
	}
}

func TestHTTPErrorHandler_SkipsCommittedResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	_ = c.String(http.StatusOK, "done")

	NewHTTPErrorHandler(zerolog.Nop())(errors.New("late"), c)

	if rec.Body.String() != "done" {
		t.Fatalf("committed response was overwritten: %q", rec.Body.String())
	}
}
