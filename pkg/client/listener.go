package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"
)

// Listener dials the push channel and folds incoming events into a State.
// All state access goes through the listener's mutex; Snapshot returns a
// copy.
type Listener struct {
	url string

	mu    sync.Mutex
	state State

	// OnEvent, when set, is invoked after each applied event with the new
	// state. Called on the read loop goroutine.
	OnEvent func(State, Event)

	// OnError, when set, is invoked for frames that fail to decode. Decode
	// failures do not stop the listener.
	OnError func(error)
}

// NewListener returns a listener for the given websocket URL, e.g.
// "ws://localhost:8080/ws".
func NewListener(url string) *Listener {
	return &Listener{url: url}
}

// SetState replaces the local mirror, typically after a full-list refresh.
func (l *Listener) SetState(s State) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state = s
}

// Snapshot returns a copy of the current state.
func (l *Listener) Snapshot() State {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := l.state
	s.Users = append([]User(nil), l.state.Users...)
	s.Notifications = append([]Notification(nil), l.state.Notifications...)
	s.Activities = append([]string(nil), l.state.Activities...)
	return s
}

// Listen dials the push channel and consumes events until the context is
// cancelled or the connection drops. A dropped connection simply stops
// delivery; the caller decides whether to redial and refresh.
func (l *Listener) Listen(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, l.url, nil)
	if err != nil {
		return fmt.Errorf("client: dial %s: %w", l.url, err)
	}
	defer conn.Close()

	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	for {
		_, frame, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("client: read: %w", err)
		}

		ev, err := Decode(frame)
		if err != nil {
			if l.OnError != nil {
				l.OnError(err)
			}
			continue
		}

		l.mu.Lock()
		l.state = Apply(l.state, ev)
		snapshot := l.state
		l.mu.Unlock()

		if l.OnEvent != nil {
			l.OnEvent(snapshot, ev)
		}
	}
}
