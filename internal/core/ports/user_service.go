package ports

import (
	"context"

	"github.com/99minutos/user-roles-api/internal/core/domain"
)

// CreateUserInput carries a validated, normalized user. Email is already
// lower-cased and RoleID is a 24-character hex store id.
type CreateUserInput struct {
	FirstNames     string
	LastNames      string
	Identification string
	Email          string
	RoleID         string
}

type UserService interface {
	ListUsers(ctx context.Context) ([]*domain.User, error)
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	ListUsersWithRoles(ctx context.Context) ([]domain.UserWithRole, error)
}
