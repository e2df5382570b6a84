package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pulsedash/dashboard-api/internal/core/ports"
)

// StatsHandler serves aggregate stats, the revenue series and the activity
// feed.
type StatsHandler struct {
	stats      ports.StatsService
	activities ports.ActivityService
}

func NewStatsHandler(stats ports.StatsService, activities ports.ActivityService) *StatsHandler {
	return &StatsHandler{stats: stats, activities: activities}
}

// Stats handles GET /stats.
//
// @Summary      Dashboard aggregate stats
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Stats
// @Failure      403  {object}  errorResponse
// @Router       /stats [get]
func (h *StatsHandler) Stats(c echo.Context) error {
	stats, err := h.stats.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Revenue handles GET /revenue.
//
// @Summary      Monthly revenue series
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Revenue
// @Router       /revenue [get]
func (h *StatsHandler) Revenue(c echo.Context) error {
	revenue, err := h.stats.Revenue(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, revenue)
}

// Activities handles GET /activities — the 10 most recent descriptions.
//
// @Summary      Recent activity descriptions
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  string
// @Router       /activities [get]
func (h *StatsHandler) Activities(c echo.Context) error {
	activities, err := h.activities.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activities)
}
