package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/pulsedash/dashboard-api/internal/core/domain"
)

// RBAC enforces role-based access control against the claims injected by
// Auth. A caller whose role is not in the allowed set is rejected without
// reaching the handler.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(ClaimsKey).(*domain.Claims)
			if !ok {
				return domain.ErrUnauthenticated
			}
			if _, ok := allowed[claims.Role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
