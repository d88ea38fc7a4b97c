package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/plantops/manufacturing-ops/internal/api/metrics"
	"github.com/plantops/manufacturing-ops/internal/core/domain"
)

// RBAC enforces role-based access control against the live identity resolved
// by Auth. The check is an exact-match intersection: the caller must hold at
// least one of the listed roles, with no hierarchy between them.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(IdentityKey).(*domain.User)
			if !ok {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_token").Inc()
				return domain.ErrInvalidToken
			}
			if !user.HasAnyRole(allowedRoles...) {
				metrics.AuthRejectionsTotal.WithLabelValues("insufficient_role").Inc()
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
