package ports

import (
	"context"

	"github.com/pulsedash/dashboard-api/internal/core/domain"
)

// ActivityRepository defines persistence operations for the activity log.
type ActivityRepository interface {
	// ListRecent returns the newest entries first, capped at limit.
	ListRecent(ctx context.Context, limit int) ([]*domain.Activity, error)
	Create(ctx context.Context, a *domain.Activity) (*domain.Activity, error)
	DeleteAll(ctx context.Context) error
	InsertMany(ctx context.Context, as []*domain.Activity) error
}
