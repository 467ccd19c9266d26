package ports

import (
	"context"

	"github.com/99minutos/user-roles-api/internal/core/domain"
)

// RoleRepository defines persistence operations for roles.
type RoleRepository interface {
	List(ctx context.Context) ([]*domain.Role, error)
	Count(ctx context.Context) (int64, error)
	// FindByID returns domain.ErrRoleNotFound when id is unknown or not a valid store id.
	FindByID(ctx context.Context, id string) (*domain.Role, error)
	// FindByName returns domain.ErrRoleNotFound when no role carries name.
	FindByName(ctx context.Context, name string) (*domain.Role, error)
	// FindByIDs resolves every known id in one round trip, keyed by id.
	// Unknown ids are simply absent from the result.
	FindByIDs(ctx context.Context, ids []string) (map[string]*domain.Role, error)
	// Create persists role, filling in ID and timestamps. A unique-index
	// violation is reported as *domain.DuplicateError.
	Create(ctx context.Context, role *domain.Role) error
}
