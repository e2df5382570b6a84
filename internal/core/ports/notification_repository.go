package ports

import (
	"context"

	"github.com/pulsedash/dashboard-api/internal/core/domain"
)

// NotificationRepository defines persistence operations for notifications.
type NotificationRepository interface {
	// ListRecent returns the most recently created notifications, newest
	// first, capped at limit.
	ListRecent(ctx context.Context, limit int) ([]*domain.Notification, error)
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	// MarkRead sets the read flag and returns the updated record. Marking an
	// already-read notification is a no-op that still succeeds.
	MarkRead(ctx context.Context, id string) (*domain.Notification, error)
	DeleteAll(ctx context.Context) error
	InsertMany(ctx context.Context, ns []*domain.Notification) error
}
