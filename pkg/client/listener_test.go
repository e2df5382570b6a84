package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestListener_AppliesIncomingEvents(t *testing.T) {
	upgrader := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		defer conn.Close()

		frames := []string{
			`{"event":"userAdded","data":{"id":"u1","name":"Alice","orders":0}}`,
			`{"event":"orderUpdate","data":{"userId":"u1","newOrderCount":1,"message":"New order for Alice"}}`,
		}
		for _, f := range frames {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(f)); err != nil {
				return
			}
		}
		// Keep the connection open until the client goes away.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	l := NewListener("ws" + strings.TrimPrefix(srv.URL, "http"))

	applied := make(chan Event, 2)
	l.OnEvent = func(_ State, ev Event) {
		applied <- ev
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- l.Listen(ctx) }()

	for i := 0; i < 2; i++ {
		select {
		case <-applied:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for event %d", i+1)
		}
	}

	s := l.Snapshot()
	if len(s.Users) != 1 || s.Users[0].Orders != 1 {
		t.Fatalf("unexpected state: %+v", s.Users)
	}
	if !s.StatsDirty {
		t.Fatalf("expected stats flagged dirty after orderUpdate")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("listener did not stop on cancel")
	}
}
