package ports

import (
	"context"

	"github.com/plantops/manufacturing-ops/internal/core/domain"
)

// UserService defines administrative operations over user accounts.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	// Delete removes a user. The actor may not delete their own account, and
	// the last remaining admin can never be deleted.
	Delete(ctx context.Context, actor *domain.User, id string) error
}
