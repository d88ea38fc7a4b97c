package ports

import (
	"context"

	"github.com/plantops/manufacturing-ops/internal/core/domain"
)

// AuthService implements registration and login.
type AuthService interface {
	// Register creates a new account. Roles default to operator when empty.
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies credentials and returns a signed access token.
	Login(ctx context.Context, username, password string) (string, error)
}

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	Username string
	Password string
	Email    string
	FullName string
	Roles    []domain.Role
}
