package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/plantops/manufacturing-ops/internal/api/metrics"
	"github.com/plantops/manufacturing-ops/internal/core/domain"
	"github.com/plantops/manufacturing-ops/internal/core/ports"
)

// AuthHandler handles login and registration.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Username string   `json:"username" validate:"required,min=3"`
	Password string   `json:"password" validate:"required,min=8"`
	Email    string   `json:"email" validate:"omitempty,email"`
	FullName string   `json:"full_name"`
	Roles    []string `json:"roles" validate:"omitempty,dive,oneof=admin supervisor operator viewer"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Obtain an access token
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "Username"
// @Param        password  formData  string  true  "Password"
// @Success      200  {object}  tokenResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /v1/auth/token [post]
func (h *AuthHandler) Login(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	token, err := h.authService.Login(c.Request().Context(), username, password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		case errors.Is(err, domain.ErrInactiveAccount):
			metrics.LoginsTotal.WithLabelValues("inactive_account").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		FullName: req.FullName,
		Roles:    domain.RolesFromStrings(req.Roles),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, user)
}
