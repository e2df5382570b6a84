package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/pulsedash/dashboard-api/internal/api/middleware"
	"github.com/pulsedash/dashboard-api/internal/core/domain"
)

// ctxClaims extracts the claims injected by the Auth middleware. Their
// presence proves the middleware ran; a handler reached without them is a
// wiring error and the request is rejected.
func ctxClaims(c echo.Context) (*domain.Claims, error) {
	claims, ok := c.Get(middleware.ClaimsKey).(*domain.Claims)
	if !ok || claims.UserID == "" {
		return nil, domain.ErrUnauthenticated
	}
	return claims, nil
}
