package ports

import (
	"context"

	"github.com/99minutos/user-roles-api/internal/core/domain"
)

// CreateRoleInput carries a validated, normalized role.
type CreateRoleInput struct {
	Name        string
	Description string
}

type RoleService interface {
	ListRoles(ctx context.Context) ([]*domain.Role, error)
	CreateRole(ctx context.Context, input CreateRoleInput) (*domain.Role, error)
}
