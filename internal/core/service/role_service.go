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

type RoleService struct {
	repo   ports.RoleRepository
	logger zerolog.Logger
}

func NewRoleService(repo ports.RoleRepository, logger zerolog.Logger) *RoleService {
	return &RoleService{repo: repo, logger: logger}
}

// ListRoles returns every stored role.
func (s *RoleService) ListRoles(ctx context.Context) ([]*domain.Role, error) {
	roles, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return roles, nil
}

// CreateRole persists a new role after checking that its name is unused.
// The pre-check gives a precise conflict message; the unique index on name
// still catches concurrent creates and surfaces them as the same conflict.
func (s *RoleService) CreateRole(ctx context.Context, input ports.CreateRoleInput) (*domain.Role, error) {
	_, err := s.repo.FindByName(ctx, input.Name)
	switch {
	case err == nil:
		return nil, s.reject(metrics.ReasonDuplicateName, domain.Duplicate("role", "name", input.Name))
	case !errors.Is(err, domain.ErrRoleNotFound):
		return nil, fmt.Errorf("create role: find by name: %w", err)
	}

	role := &domain.Role{
		Name:        input.Name,
		Description: input.Description,
	}
	if err := s.repo.Create(ctx, role); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, s.reject(metrics.ReasonDuplicateName, err)
		}
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create role")
		return nil, fmt.Errorf("create role: %w", err)
	}

	metrics.RolesCreatedTotal.Inc()
	s.logger.Info().Str("role_id", role.ID).Str("name", role.Name).Msg("role created")

	return role, nil
}

func (s *RoleService) reject(reason string, err error) error {
	metrics.CreateRejectedTotal.WithLabelValues(metrics.EntityRole, reason).Inc()
	s.logger.Debug().Str("reason", reason).Msg(err.Error())
	return err
}
