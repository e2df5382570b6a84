package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pulsedash/dashboard-api/internal/core/ports"
)

type createNotificationRequest struct {
	Type    string `json:"type"    validate:"required,oneof=success warning error info"`
	Message string `json:"message" validate:"required"`
}

// NotificationHandler handles notification endpoints.
type NotificationHandler struct {
	service ports.NotificationService
}

func NewNotificationHandler(service ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// List handles GET /notifications — the 20 most recent, newest first.
//
// @Summary      List notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Notification
// @Router       /notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	notifications, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notifications)
}

// Create handles POST /notifications.
//
// @Summary      Create a notification
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createNotificationRequest  true  "Notification"
// @Success      200   {object}  domain.Notification
// @Failure      400   {object}  errorResponse
// @Router       /notifications [post]
func (h *NotificationHandler) Create(c echo.Context) error {
	var req createNotificationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	notification, err := h.service.Create(c.Request().Context(), req.Type, req.Message)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notification)
}

// MarkRead handles PUT /notifications/:id/read. Idempotent: re-reading an
// already-read notification succeeds.
//
// @Summary      Mark a notification as read
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Notification id"
// @Success      200 {object}  domain.Notification
// @Failure      404 {object}  errorResponse
// @Router       /notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	notification, err := h.service.MarkRead(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notification)
}
