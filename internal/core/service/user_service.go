package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/plantops/manufacturing-ops/internal/core/domain"
	"github.com/plantops/manufacturing-ops/internal/core/ports"
)

// UserService implements administrative account operations.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies a partial update. Username and password are not part of
// UserUpdate, so they cannot change through this path. Role tags are checked
// before they reach the store.
func (s *UserService) Update(ctx context.Context, id string, update ports.UserUpdate) (*domain.User, error) {
	if update.Empty() {
		return nil, domain.ErrNoFields
	}
	for _, r := range update.Roles {
		if !domain.ValidRole(r) {
			return nil, domain.ErrImmutableField
		}
	}
	return s.repo.Update(ctx, id, update)
}

// Delete removes a user account, guarded in order: the actor may not delete
// themselves, and the last user holding the admin role may not be deleted.
// The count-then-delete sequence is not atomic against concurrent deletes;
// it is a safety net, not a hard guarantee.
func (s *UserService) Delete(ctx context.Context, actor *domain.User, id string) error {
	if actor.ID == id {
		return domain.ErrSelfDeletion
	}

	target, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if target.HasAnyRole(domain.RoleAdmin) {
		n, err := s.repo.CountWithRole(ctx, domain.RoleAdmin)
		if err != nil {
			return err
		}
		if n <= 1 {
			return domain.ErrLastAdmin
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("deleted_user", target.Username).Str("actor", actor.Username).Msg("user deleted")
	return nil
}
