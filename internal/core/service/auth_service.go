package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/plantops/manufacturing-ops/internal/core/domain"
	"github.com/plantops/manufacturing-ops/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	repo   ports.UserRepository
	tokens *TokenIssuer
	log    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens *TokenIssuer, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, log: log}
}

// Register creates a new account. Missing roles default to operator; unknown
// role tags are rejected. The repository's unique index is the authoritative
// duplicate guard — the FindByUsername pre-check only gives a fast error.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Username == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	roles := input.Roles
	if len(roles) == 0 {
		roles = []domain.Role{domain.RoleOperator}
	}
	for _, r := range roles {
		if !domain.ValidRole(r) {
			return nil, domain.ErrInvalidCredentials
		}
	}

	if _, err := s.repo.FindByUsername(ctx, input.Username); err == nil {
		return nil, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		FullName:     input.FullName,
		PasswordHash: string(hash),
		Roles:        roles,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", created.Username).Msg("user registered")
	return created, nil
}

// Login verifies the credentials and account status and returns a signed
// access token. A missing user and a wrong password are indistinguishable
// from the outside.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	if !user.CanAuthenticate() {
		return "", domain.ErrInactiveAccount
	}

	token, err := s.tokens.Issue(user.Username, user.RoleStrings())
	if err != nil {
		return "", err
	}

	s.log.Info().Str("username", user.Username).Msg("login succeeded")
	return token, nil
}
