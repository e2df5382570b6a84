package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/pulsedash/dashboard-api/internal/core/domain"
	"github.com/pulsedash/dashboard-api/internal/core/ports"
)

// ClaimsKey is the echo context key under which Auth stores the verified
// claims.
const ClaimsKey = "claims"

// Auth validates the bearer token and injects typed claims into the request
// context. It always runs before RBAC: a request failing here never reaches
// the role check or the handler.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return domain.ErrUnauthenticated
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return domain.ErrUnauthenticated
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				return domain.ErrInvalidToken
			}

			c.Set(ClaimsKey, claims)
			return next(c)
		}
	}
}
