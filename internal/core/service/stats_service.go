package service

import (
	"context"
	"fmt"

	"github.com/pulsedash/dashboard-api/internal/core/domain"
	"github.com/pulsedash/dashboard-api/internal/core/ports"
)

// StatsService aggregates the dashboard header numbers and serves the
// revenue series.
type StatsService struct {
	users   ports.UserRepository
	revenue ports.RevenueRepository
}

func NewStatsService(users ports.UserRepository, revenue ports.RevenueRepository) *StatsService {
	return &StatsService{users: users, revenue: revenue}
}

func (s *StatsService) Stats(ctx context.Context) (*domain.Stats, error) {
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: count users: %w", err)
	}
	activeUsers, err := s.users.CountByStatus(ctx, domain.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("stats: count active users: %w", err)
	}
	totalOrders, err := s.users.SumOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: sum orders: %w", err)
	}
	totalRevenue, err := s.revenue.SumRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: sum revenue: %w", err)
	}

	return &domain.Stats{
		TotalUsers:   totalUsers,
		ActiveUsers:  activeUsers,
		TotalOrders:  totalOrders,
		TotalRevenue: totalRevenue,
	}, nil
}

func (s *StatsService) Revenue(ctx context.Context) ([]*domain.Revenue, error) {
	return s.revenue.List(ctx)
}
