package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/user-roles-api/internal/core/domain"
	"github.com/99minutos/user-roles-api/internal/core/ports"
)

// RoleHandler handles HTTP requests for roles.
type RoleHandler struct {
	service ports.RoleService
}

func NewRoleHandler(service ports.RoleService) *RoleHandler {
	return &RoleHandler{service: service}
}

// List handles GET /roles.
//
// @Summary      List roles
// @Tags         roles
// @Produce      json
// @Success      200  {array}   domain.Role
// @Failure      500  {object}  ErrorResponse
// @Router       /roles [get]
func (h *RoleHandler) List(c echo.Context) error {
	roles, err := h.service.ListRoles(c.Request().Context())
	if err != nil {
		return err
	}
	if roles == nil {
		roles = []*domain.Role{}
	}
	return c.JSON(http.StatusOK, roles)
}

// Create handles POST /roles.
//
// @Summary      Create a role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string             false  "Replays the first successful response for repeated keys"
// @Param        body             body      createRoleRequest  true   "Role (nombre/descripcion accepted as aliases)"
// @Success      201              {object}  createRoleResponse
// @Failure      400              {object}  ErrorResponse
// @Failure      409              {object}  ErrorResponse
// @Failure      500              {object}  ErrorResponse
// @Router       /roles [post]
func (h *RoleHandler) Create(c echo.Context) error {
	body, err := validatedBody(c)
	if err != nil {
		return err
	}

	role, err := h.service.CreateRole(c.Request().Context(), ports.CreateRoleInput{
		Name:        body.Get(fieldName),
		Description: body.Get(fieldDescription),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createRoleResponse{
		Message: "role created successfully",
		Role:    role,
	})
}
