package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/plantops/manufacturing-ops/internal/core/domain"
	"github.com/plantops/manufacturing-ops/internal/core/ports"
)

func seedUser(t *testing.T, repo *stubUserRepo, username string, roles ...domain.Role) *domain.User {
	t.Helper()
	u, err := repo.Create(context.Background(), &domain.User{
		Username: username,
		Roles:    roles,
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("seed %s: %v", username, err)
	}
	return u
}

func TestUserService_Delete_SelfDeletion(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	admin := seedUser(t, repo, "root", domain.RoleAdmin)

	if err := svc.Delete(context.Background(), admin, admin.ID); !errors.Is(err, domain.ErrSelfDeletion) {
		t.Fatalf("expected ErrSelfDeletion, got %v", err)
	}
	if _, err := repo.FindByID(context.Background(), admin.ID); err != nil {
		t.Fatalf("account should still exist: %v", err)
	}
}

func TestUserService_Delete_LastAdmin(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	admin := seedUser(t, repo, "root", domain.RoleAdmin)
	other := seedUser(t, repo, "second", domain.RoleAdmin)
	operator := seedUser(t, repo, "worker", domain.RoleOperator)

	// Two admins: deleting one is allowed.
	if err := svc.Delete(context.Background(), admin, other.ID); err != nil {
		t.Fatalf("deleting a non-last admin should succeed: %v", err)
	}

	// One admin left: deleting it is refused, even by another actor.
	if err := svc.Delete(context.Background(), operator, admin.ID); !errors.Is(err, domain.ErrLastAdmin) {
		t.Fatalf("expected ErrLastAdmin, got %v", err)
	}

	// Non-admin accounts are unaffected by the guard.
	if err := svc.Delete(context.Background(), admin, operator.ID); err != nil {
		t.Fatalf("deleting an operator should succeed: %v", err)
	}
}

func TestUserService_Delete_SelfCheckedFirst(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	admin := seedUser(t, repo, "root", domain.RoleAdmin)

	// The actor is also the last admin: self-deletion wins.
	if err := svc.Delete(context.Background(), admin, admin.ID); !errors.Is(err, domain.ErrSelfDeletion) {
		t.Fatalf("expected ErrSelfDeletion before the last-admin check, got %v", err)
	}
}

func TestUserService_Delete_NotFound(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	admin := seedUser(t, repo, "root", domain.RoleAdmin)

	if err := svc.Delete(context.Background(), admin, "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Update_NoFields(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	user := seedUser(t, repo, "alice", domain.RoleOperator)

	if _, err := svc.Update(context.Background(), user.ID, ports.UserUpdate{}); !errors.Is(err, domain.ErrNoFields) {
		t.Fatalf("expected ErrNoFields, got %v", err)
	}
}

func TestUserService_Update_InvalidRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	user := seedUser(t, repo, "alice", domain.RoleOperator)

	if _, err := svc.Update(context.Background(), user.ID, ports.UserUpdate{
		Roles: []domain.Role{"root"},
	}); !errors.Is(err, domain.ErrImmutableField) {
		t.Fatalf("expected ErrImmutableField, got %v", err)
	}
}

func TestUserService_Update_AppliesFields(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	user := seedUser(t, repo, "alice", domain.RoleOperator)

	email := "alice@plant.example"
	updated, err := svc.Update(context.Background(), user.ID, ports.UserUpdate{
		Email: &email,
		Roles: []domain.Role{domain.RoleSupervisor},
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Email != email {
		t.Fatalf("email = %q, want %q", updated.Email, email)
	}
	if len(updated.Roles) != 1 || updated.Roles[0] != domain.RoleSupervisor {
		t.Fatalf("roles = %v, want [supervisor]", updated.Roles)
	}
	if updated.Username != "alice" {
		t.Fatalf("username changed unexpectedly: %q", updated.Username)
	}
}
