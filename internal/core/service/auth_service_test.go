package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/plantops/manufacturing-ops/internal/core/domain"
	"github.com/plantops/manufacturing-ops/internal/core/ports"
)

type stubUserRepo struct {
	users  map[string]*domain.User // keyed by ID
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Roles = append([]domain.Role(nil), u.Roles...)
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}
	copy := cloneUser(user)
	r.nextID++
	copy.ID = "u" + strconv.Itoa(r.nextID)
	r.users[copy.ID] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, update ports.UserUpdate) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if update.Email != nil {
		u.Email = *update.Email
	}
	if update.FullName != nil {
		u.FullName = *update.FullName
	}
	if update.Roles != nil {
		u.Roles = append([]domain.Role(nil), update.Roles...)
	}
	if update.IsActive != nil {
		u.IsActive = *update.IsActive
	}
	if update.Disabled != nil {
		u.Disabled = *update.Disabled
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) CountWithRole(_ context.Context, role domain.Role) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.HasAnyRole(role) {
			n++
		}
	}
	return n, nil
}

func newTestAuthService(repo ports.UserRepository) *AuthService {
	tokens, _ := NewTokenIssuer("test-secret", "HS256", time.Hour)
	return NewAuthService(repo, tokens, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice",
		Password: "pass1234",
		Email:    "alice@example.com",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.PasswordHash == "pass1234" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass1234")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if len(user.Roles) != 1 || user.Roles[0] != domain.RoleOperator {
		t.Fatalf("expected default operator role, got %v", user.Roles)
	}
	if !user.IsActive {
		t.Fatalf("expected new account to be active")
	}
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "bob",
		Password: "pass1234",
		Roles:    []domain.Role{"superuser"},
	})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown role, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "bob", Password: "pass1234"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "bob", Password: "other456"}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "carol",
		Password: "s3cret99",
		Roles:    []domain.Role{domain.RoleAdmin, domain.RoleViewer},
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, err := svc.Login(context.Background(), "carol", "s3cret99")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	claims, err := svc.tokens.Validate(token)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.Subject != "carol" {
		t.Fatalf("subject = %q, want carol", claims.Subject)
	}
	if len(claims.Roles) != 2 || claims.Roles[0] != "admin" {
		t.Fatalf("unexpected roles in token: %v", claims.Roles)
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	_, _ = svc.Register(context.Background(), ports.RegisterInput{Username: "dave", Password: "goodpass"})
	if _, err := svc.Login(context.Background(), "dave", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUserIndistinguishable(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	if _, err := svc.Login(context.Background(), "ghost", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestAuthService_Login_InactiveAccount(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	user, err := svc.Register(context.Background(), ports.RegisterInput{Username: "erin", Password: "pass1234"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	inactive := false
	if _, err := repo.Update(context.Background(), user.ID, ports.UserUpdate{IsActive: &inactive}); err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}

	if _, err := svc.Login(context.Background(), "erin", "pass1234"); !errors.Is(err, domain.ErrInactiveAccount) {
		t.Fatalf("expected ErrInactiveAccount, got %v", err)
	}

	active, disabled := true, true
	if _, err := repo.Update(context.Background(), user.ID, ports.UserUpdate{IsActive: &active, Disabled: &disabled}); err != nil {
		t.Fatalf("disable failed: %v", err)
	}
	if _, err := svc.Login(context.Background(), "erin", "pass1234"); !errors.Is(err, domain.ErrInactiveAccount) {
		t.Fatalf("expected ErrInactiveAccount for disabled user, got %v", err)
	}
}
