package ports

import (
	"context"

	"github.com/pulsedash/dashboard-api/internal/core/domain"
)

// RevenueRepository defines persistence operations for revenue figures.
// Rows are written only by seeding.
type RevenueRepository interface {
	List(ctx context.Context) ([]*domain.Revenue, error)
	SumRevenue(ctx context.Context) (float64, error)
	DeleteAll(ctx context.Context) error
	InsertMany(ctx context.Context, rows []*domain.Revenue) error
}
