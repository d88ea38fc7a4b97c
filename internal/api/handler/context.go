package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/plantops/manufacturing-ops/internal/api/middleware"
	"github.com/plantops/manufacturing-ops/internal/core/domain"
)

// currentUser extracts the identity injected by the Auth middleware. Its
// presence proves the middleware ran; a handler reached without it is a
// routing mistake, answered like a missing token.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.IdentityKey).(*domain.User)
	if !ok {
		return nil, domain.ErrInvalidToken
	}
	return user, nil
}
