// Package push implements the change broadcaster: an explicit service object
// owning the set of connected observers. Adding and removing an observer are
// the only points of mutation; publishing fans an event out to every current
// observer with no persistence, no ordering guarantee and no acknowledgment.
package push

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/pulsedash/dashboard-api/internal/api/metrics"
	"github.com/pulsedash/dashboard-api/internal/core/domain"
)

const (
	// sendBuffer is the per-observer queue depth. A full buffer means the
	// observer is too slow; further deliveries to it are dropped.
	sendBuffer = 64

	writeWait = 10 * time.Second
)

// envelope is the wire format of a push event.
type envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

type observer struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub owns the observer registry and fans events out to it.
type Hub struct {
	log zerolog.Logger

	mu        sync.Mutex
	observers map[*observer]struct{}
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		log:       log,
		observers: make(map[*observer]struct{}),
	}
}

// Publish delivers the event to every currently connected observer.
// Fire-and-forget: a slow or disconnected observer never fails the caller.
func (h *Hub) Publish(event domain.Event) {
	data, err := json.Marshal(envelope{Event: event.EventName(), Data: event.EventData()})
	if err != nil {
		h.log.Error().Err(err).Str("event", event.EventName()).Msg("failed to encode event")
		return
	}

	metrics.EventsPublishedTotal.WithLabelValues(event.EventName()).Inc()
	h.fanOut(data)
}

// Forward delivers an already-encoded envelope to local observers. Used by
// the Redis relay for events originating on other instances.
func (h *Hub) Forward(data []byte) {
	h.fanOut(data)
}

func (h *Hub) fanOut(data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for obs := range h.observers {
		select {
		case obs.send <- data:
		default:
			metrics.DroppedEventsTotal.Inc()
		}
	}
}

// ObserverCount returns the number of currently attached observers.
func (h *Hub) ObserverCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.observers)
}

// Attach registers a connection as an observer and starts its read and write
// pumps. It returns immediately; the connection is owned by the hub until it
// drops.
func (h *Hub) Attach(conn *websocket.Conn) {
	obs := &observer{conn: conn, send: make(chan []byte, sendBuffer)}

	h.mu.Lock()
	h.observers[obs] = struct{}{}
	h.mu.Unlock()
	metrics.ConnectedObservers.Inc()
	h.log.Debug().Str("remote", conn.RemoteAddr().String()).Msg("observer attached")

	go h.writePump(obs)
	go h.readPump(obs)
}

// detach removes the observer and closes its connection. Safe to call from
// both pumps; only the first call has any effect.
func (h *Hub) detach(obs *observer) {
	h.mu.Lock()
	_, attached := h.observers[obs]
	delete(h.observers, obs)
	h.mu.Unlock()

	if !attached {
		return
	}
	close(obs.send)
	_ = obs.conn.Close()
	metrics.ConnectedObservers.Dec()
	h.log.Debug().Str("remote", obs.conn.RemoteAddr().String()).Msg("observer detached")
}

func (h *Hub) writePump(obs *observer) {
	for data := range obs.send {
		_ = obs.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := obs.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.detach(obs)
			return
		}
	}
}

// readPump discards inbound messages; its purpose is to detect a dropped
// connection. No per-connection server-side state exists beyond the open
// channel itself, so no further cleanup is required.
func (h *Hub) readPump(obs *observer) {
	for {
		if _, _, err := obs.conn.ReadMessage(); err != nil {
			h.detach(obs)
			return
		}
	}
}
