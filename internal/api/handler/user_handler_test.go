package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/plantops/manufacturing-ops/internal/api/middleware"
	"github.com/plantops/manufacturing-ops/internal/core/domain"
	"github.com/plantops/manufacturing-ops/internal/core/ports"
)

type stubUserService struct {
	updateFn func(ctx context.Context, id string, update ports.UserUpdate) (*domain.User, error)
	deleteFn func(ctx context.Context, actor *domain.User, id string) error
}

func (s *stubUserService) List(context.Context) ([]*domain.User, error) { return nil, nil }

func (s *stubUserService) GetByID(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubUserService) Update(ctx context.Context, id string, update ports.UserUpdate) (*domain.User, error) {
	return s.updateFn(ctx, id, update)
}

func (s *stubUserService) Delete(ctx context.Context, actor *domain.User, id string) error {
	return s.deleteFn(ctx, actor, id)
}

func TestUserHandler_Me(t *testing.T) {
	e := newEcho()
	handler := NewUserHandler(&stubUserService{})

	req := httptest.NewRequest(http.MethodGet, "/v1/users/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.IdentityKey, &domain.User{ID: "u1", Username: "alice", Roles: []domain.Role{domain.RoleOperator}})

	if err := handler.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var user map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if user["username"] != "alice" {
		t.Fatalf("unexpected payload: %+v", user)
	}
}

func TestUserHandler_Me_NoIdentity(t *testing.T) {
	e := newEcho()
	handler := NewUserHandler(&stubUserService{})

	req := httptest.NewRequest(http.MethodGet, "/v1/users/me", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	if err := handler.Me(c); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestUserHandler_Update_RejectsUsernameAndPassword(t *testing.T) {
	e := newEcho()
	handler := NewUserHandler(&stubUserService{
		updateFn: func(context.Context, string, ports.UserUpdate) (*domain.User, error) {
			t.Fatalf("service should not be reached")
			return nil, nil
		},
	})

	for _, body := range []string{
		`{"username":"newname"}`,
		`{"password":"newpass123"}`,
	} {
		req := httptest.NewRequest(http.MethodPut, "/v1/users/u1", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		c := e.NewContext(req, httptest.NewRecorder())
		c.SetParamNames("id")
		c.SetParamValues("u1")

		if err := handler.Update(c); !errors.Is(err, domain.ErrImmutableField) {
			t.Fatalf("expected ErrImmutableField for body %q, got %v", body, err)
		}
	}
}

func TestUserHandler_Update_MapsRoles(t *testing.T) {
	e := newEcho()
	handler := NewUserHandler(&stubUserService{
		updateFn: func(_ context.Context, id string, update ports.UserUpdate) (*domain.User, error) {
			if id != "u1" {
				t.Fatalf("id = %q", id)
			}
			if len(update.Roles) != 2 || update.Roles[0] != domain.RoleSupervisor {
				t.Fatalf("roles = %v", update.Roles)
			}
			return &domain.User{ID: id, Username: "alice", Roles: update.Roles}, nil
		},
	})

	body := strings.NewReader(`{"roles":["supervisor","viewer"]}`)
	req := httptest.NewRequest(http.MethodPut, "/v1/users/u1", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("u1")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_Delete_PassesActor(t *testing.T) {
	e := newEcho()
	handler := NewUserHandler(&stubUserService{
		deleteFn: func(_ context.Context, actor *domain.User, id string) error {
			if actor.Username != "root" || id != "u2" {
				t.Fatalf("unexpected args: %s %s", actor.Username, id)
			}
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/v1/users/u2", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("u2")
	c.Set(middleware.IdentityKey, &domain.User{ID: "u1", Username: "root", Roles: []domain.Role{domain.RoleAdmin}})

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
