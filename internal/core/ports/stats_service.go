package ports

import (
	"context"

	"github.com/pulsedash/dashboard-api/internal/core/domain"
)

// StatsService serves the aggregate dashboard numbers and revenue series.
type StatsService interface {
	Stats(ctx context.Context) (*domain.Stats, error)
	Revenue(ctx context.Context) ([]*domain.Revenue, error)
}

// ActivityService reads and appends activity-log entries.
type ActivityService interface {
	// List returns the most recent activity descriptions, newest first.
	List(ctx context.Context) ([]string, error)
	// Record appends an entry and broadcasts it as a newActivity event.
	Record(ctx context.Context, description string) (*domain.Activity, error)
}
