package ports

import (
	"context"

	"github.com/99minutos/user-roles-api/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	List(ctx context.Context) ([]*domain.User, error)
	// FindByIdentification returns domain.ErrUserNotFound when absent.
	FindByIdentification(ctx context.Context, identification string) (*domain.User, error)
	// FindByEmail returns domain.ErrUserNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create persists user, filling in ID and timestamps. A unique-index
	// violation is reported as *domain.DuplicateError.
	Create(ctx context.Context, user *domain.User) error
}
