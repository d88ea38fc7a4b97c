package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/plantops/manufacturing-ops/internal/api/metrics"
	"github.com/plantops/manufacturing-ops/internal/core/domain"
	"github.com/plantops/manufacturing-ops/internal/core/ports"
	"github.com/plantops/manufacturing-ops/internal/core/service"
)

// IdentityKey is the context key under which Auth stores the resolved user.
const IdentityKey = "identity"

// Auth validates the bearer token and resolves the live identity. The token's
// embedded role claim is treated as a cache only: the user record is
// re-fetched on every request, so role changes and account deactivation take
// effect before token expiry.
func Auth(tokens *service.TokenIssuer, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_token").Inc()
				return domain.ErrInvalidToken
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_token").Inc()
				return domain.ErrInvalidToken
			}

			claims, err := tokens.Validate(parts[1])
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return domain.ErrInvalidToken
			}

			user, err := users.FindByUsername(c.Request().Context(), claims.Subject)
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("unknown_user").Inc()
				return domain.ErrInvalidToken
			}
			if !user.CanAuthenticate() {
				metrics.AuthRejectionsTotal.WithLabelValues("inactive_account").Inc()
				return domain.ErrInactiveAccount
			}

			c.Set(IdentityKey, user)
			return next(c)
		}
	}
}
