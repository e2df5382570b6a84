package ports

import "github.com/pulsedash/dashboard-api/internal/core/domain"

// Publisher delivers an event to every currently connected observer.
// Delivery is fire-and-forget: no persistence, no ordering guarantee
// relative to the HTTP response, and failures never reach the caller.
type Publisher interface {
	Publish(event domain.Event)
}
