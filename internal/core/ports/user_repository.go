package ports

import (
	"context"

	"github.com/plantops/manufacturing-ops/internal/core/domain"
)

// UserUpdate carries the mutable fields of a user document. Nil pointers are
// left untouched. Username and password hash are deliberately absent: neither
// can be changed through the update path.
type UserUpdate struct {
	Email    *string
	FullName *string
	Roles    []domain.Role
	IsActive *bool
	Disabled *bool
}

// Empty reports whether the update would change nothing.
func (u UserUpdate) Empty() bool {
	return u.Email == nil && u.FullName == nil && u.Roles == nil && u.IsActive == nil && u.Disabled == nil
}

// UserRepository defines persistence for user identities. Create must fail
// with domain.ErrUserExists when the username is already taken; the store's
// unique index on username is the authoritative guard.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	// CountWithRole returns how many users currently hold the given role.
	CountWithRole(ctx context.Context, role domain.Role) (int64, error)
}
