package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/plantops/manufacturing-ops/internal/core/domain"
	"github.com/plantops/manufacturing-ops/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, input ports.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, username, password string) (string, error)
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, error) {
	return s.loginFn(ctx, username, password)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func loginContext(e *echo.Echo, username, password string) (echo.Context, *httptest.ResponseRecorder) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/token", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		loginFn: func(_ context.Context, username, password string) (string, error) {
			if username != "alice" || password != "secret99" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return "token123", nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := loginContext(e, "alice", "secret99")
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["access_token"] != "token123" {
		t.Fatalf("access_token = %q", resp["access_token"])
	}
	if resp["token_type"] != "bearer" {
		t.Fatalf("token_type = %q, want bearer", resp["token_type"])
	}
}

func TestAuthHandler_Login_ErrorsPassThrough(t *testing.T) {
	e := newEcho()
	for _, want := range []error{domain.ErrInvalidCredentials, domain.ErrInactiveAccount} {
		stub := &stubAuthService{
			loginFn: func(context.Context, string, string) (string, error) {
				return "", want
			},
		}
		c, _ := loginContext(e, "alice", "bad")
		if err := NewAuthHandler(stub).Login(c); !errors.Is(err, want) {
			t.Fatalf("expected %v unchanged, got %v", want, err)
		}
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		registerFn: func(_ context.Context, input ports.RegisterInput) (*domain.User, error) {
			if input.Username != "alice" {
				t.Fatalf("unexpected username: %s", input.Username)
			}
			if len(input.Roles) != 1 || input.Roles[0] != domain.RoleViewer {
				t.Fatalf("unexpected roles: %v", input.Roles)
			}
			return &domain.User{ID: "u1", Username: input.Username, Roles: input.Roles, IsActive: true}, nil
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"username":"alice","password":"secret99","email":"a@example.com","roles":["viewer"]}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := handler.Register(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var user map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if user["username"] != "alice" {
		t.Fatalf("unexpected payload: %+v", user)
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Fatalf("password hash must never be serialized")
	}
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	cases := []string{
		`{"username":"al","password":"secret99"}`,          // username too short
		`{"username":"alice","password":"short"}`,          // password too short
		`{"username":"alice","password":"secret99","roles":["root"]}`, // unknown role
		`not-json`,
	}
	for _, body := range cases {
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		err := handler.Register(e.NewContext(req, rec))
		var he *echo.HTTPError
		if !errors.As(err, &he) {
			t.Fatalf("expected HTTP error for body %q, got %v", body, err)
		}
		if he.Code != http.StatusBadRequest && he.Code != http.StatusUnprocessableEntity {
			t.Fatalf("unexpected status %d for body %q", he.Code, body)
		}
	}
}
