package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/99minutos/user-roles-api/internal/pkg/metrics"
	"github.com/99minutos/user-roles-api/internal/core/domain"
	"github.com/99minutos/user-roles-api/internal/core/ports"
)

type UserService struct {
	users  ports.UserRepository
	roles  ports.RoleRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, roles ports.RoleRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, roles: roles, logger: logger}
}

// ListUsers returns every stored user with its role reference unresolved.
func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// CreateUser persists a new user. Checks run in a fixed order and stop at the
// first failure, so the caller always sees the same error for the same state:
//
//  1. at least one role exists            (domain.ErrNoRoles)
//  2. the referenced role exists          (domain.ErrRoleNotFound)
//  3. the identification is unused        (*domain.DuplicateError)
//  4. the email is unused                 (*domain.DuplicateError)
func (s *UserService) CreateUser(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	count, err := s.roles.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("create user: count roles: %w", err)
	}
	if count == 0 {
		return nil, s.reject(metrics.ReasonNoRoles, domain.ErrNoRoles)
	}

	if _, err := s.roles.FindByID(ctx, input.RoleID); err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) {
			return nil, s.reject(metrics.ReasonUnknownRole, err)
		}
		return nil, fmt.Errorf("create user: find role: %w", err)
	}

	if err := s.ensureUnused(ctx, s.users.FindByIdentification, "identification", input.Identification); err != nil {
		return nil, err
	}
	if err := s.ensureUnused(ctx, s.users.FindByEmail, "email", input.Email); err != nil {
		return nil, err
	}

	user := &domain.User{
		FirstNames:     input.FirstNames,
		LastNames:      input.LastNames,
		Identification: input.Identification,
		Email:          input.Email,
		RoleID:         input.RoleID,
	}
	if err := s.users.Create(ctx, user); err != nil {
		var dup *domain.DuplicateError
		if errors.As(err, &dup) {
			return nil, s.reject(duplicateReason(dup.Field), err)
		}
		s.logger.Error().Err(err).Str("identification", input.Identification).Msg("failed to create user")
		return nil, fmt.Errorf("create user: %w", err)
	}

	metrics.UsersCreatedTotal.Inc()
	s.logger.Info().Str("user_id", user.ID).Str("role_id", user.RoleID).Msg("user created")

	return user, nil
}

// ListUsersWithRoles returns each user projected to id, full name and the
// name of its role. Roles are resolved with a single batched lookup; users
// whose role cannot be resolved get domain.RoleNotDefined.
func (s *UserService) ListUsersWithRoles(ctx context.Context) ([]domain.UserWithRole, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users with roles: %w", err)
	}

	seen := make(map[string]struct{}, len(users))
	ids := make([]string, 0, len(users))
	for _, u := range users {
		if _, ok := seen[u.RoleID]; ok {
			continue
		}
		seen[u.RoleID] = struct{}{}
		ids = append(ids, u.RoleID)
	}

	roles, err := s.roles.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list users with roles: resolve roles: %w", err)
	}

	out := make([]domain.UserWithRole, 0, len(users))
	for _, u := range users {
		roleName := domain.RoleNotDefined
		if r, ok := roles[u.RoleID]; ok && r.Name != "" {
			roleName = r.Name
		}
		out = append(out, domain.UserWithRole{
			ID:       u.ID,
			FullName: u.FullName(),
			RoleName: roleName,
		})
	}
	return out, nil
}

type findFunc func(ctx context.Context, value string) (*domain.User, error)

func (s *UserService) ensureUnused(ctx context.Context, find findFunc, field, value string) error {
	_, err := find(ctx, value)
	switch {
	case err == nil:
		return s.reject(duplicateReason(field), domain.Duplicate("user", field, value))
	case errors.Is(err, domain.ErrUserNotFound):
		return nil
	default:
		return fmt.Errorf("create user: find by %s: %w", field, err)
	}
}

func (s *UserService) reject(reason string, err error) error {
	metrics.CreateRejectedTotal.WithLabelValues(metrics.EntityUser, reason).Inc()
	s.logger.Debug().Str("reason", reason).Msg(err.Error())
	return err
}

func duplicateReason(field string) string {
	if field == "email" {
		return metrics.ReasonDuplicateEmail
	}
	return metrics.ReasonDuplicateIdentification
}
