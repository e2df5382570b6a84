package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pulsedash/dashboard-api/internal/core/service"
)

// SeedHandler handles POST /seed — resets the demo dataset. Unauthenticated
// in this design; production deployments should gate it.
type SeedHandler struct {
	seeder *service.SeedService
}

func NewSeedHandler(seeder *service.SeedService) *SeedHandler {
	return &SeedHandler{seeder: seeder}
}

// Seed handles POST /api/seed.
//
// @Summary      Reset the demo dataset
// @Tags         seed
// @Produce      json
// @Success      200  {object}  messageResponse
// @Failure      500  {object}  errorResponse
// @Router       /seed [post]
func (h *SeedHandler) Seed(c echo.Context) error {
	if err := h.seeder.Seed(c.Request().Context()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Database seeded successfully"})
}
