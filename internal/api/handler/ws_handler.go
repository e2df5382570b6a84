package handler

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/pulsedash/dashboard-api/internal/infrastructure/push"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The push channel is open to any origin, like the rest of this demo
	// deployment's CORS policy.
	CheckOrigin: func(*http.Request) bool { return true },
}

// WSHandler upgrades GET /ws connections and hands them to the hub.
type WSHandler struct {
	hub *push.Hub
}

func NewWSHandler(hub *push.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

// Subscribe handles GET /ws.
//
// @Summary      Subscribe to the push channel
// @Tags         push
// @Success      101
// @Router       /ws [get]
func (h *WSHandler) Subscribe(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade already wrote the error response.
		return nil
	}

	h.hub.Attach(conn)
	return nil
}
