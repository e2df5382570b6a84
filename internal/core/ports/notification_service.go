package ports

import (
	"context"

	"github.com/pulsedash/dashboard-api/internal/core/domain"
)

// NotificationService manages dashboard notifications.
type NotificationService interface {
	// List returns the most recent notifications, newest first (capped).
	List(ctx context.Context) ([]*domain.Notification, error)
	Create(ctx context.Context, notifType, message string) (*domain.Notification, error)
	// MarkRead is idempotent: re-reading an already-read notification
	// succeeds and leaves the flag true.
	MarkRead(ctx context.Context, id string) (*domain.Notification, error)
}
