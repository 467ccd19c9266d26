package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/user-roles-api/internal/core/domain"
	"github.com/99minutos/user-roles-api/internal/core/ports"
)

// UserHandler handles HTTP requests for users.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /users.
//
// @Summary      List users
// @Description  Users are returned as stored, with roleId unresolved.
// @Tags         users
// @Produce      json
// @Success      200  {array}   domain.User
// @Failure      500  {object}  ErrorResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	if users == nil {
		users = []*domain.User{}
	}
	return c.JSON(http.StatusOK, users)
}

// Create handles POST /users.
//
// @Summary      Create a user
// @Description  Requires at least one role and an existing roleId. Identification and email must be unused.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string             false  "Replays the first successful response for repeated keys"
// @Param        body             body      createUserRequest  true   "User (nombres/apellidos/identificacion/rolId accepted as aliases)"
// @Success      201              {object}  createUserResponse
// @Failure      400              {object}  ErrorResponse
// @Failure      409              {object}  ErrorResponse
// @Failure      412              {object}  ErrorResponse
// @Failure      500              {object}  ErrorResponse
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	body, err := validatedBody(c)
	if err != nil {
		return err
	}

	user, err := h.service.CreateUser(c.Request().Context(), ports.CreateUserInput{
		FirstNames:     body.Get(fieldFirstNames),
		LastNames:      body.Get(fieldLastNames),
		Identification: body.Get(fieldIdentification),
		Email:          body.Get(fieldEmail),
		RoleID:         body.Get(fieldRoleID),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createUserResponse{
		Message: "user created successfully",
		User:    user,
	})
}

// ListWithRoles handles GET /users/with-roles.
//
// @Summary      List users with their role name
// @Description  Users whose role cannot be resolved report roleName "role not defined".
// @Tags         users
// @Produce      json
// @Success      200  {array}   domain.UserWithRole
// @Failure      500  {object}  ErrorResponse
// @Router       /users/with-roles [get]
func (h *UserHandler) ListWithRoles(c echo.Context) error {
	users, err := h.service.ListUsersWithRoles(c.Request().Context())
	if err != nil {
		return err
	}
	if users == nil {
		users = []domain.UserWithRole{}
	}
	return c.JSON(http.StatusOK, users)
}
