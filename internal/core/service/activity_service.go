package service

import (
	"context"
	"time"

	"github.com/pulsedash/dashboard-api/internal/core/domain"
	"github.com/pulsedash/dashboard-api/internal/core/ports"
)

const activityListLimit = 10

// ActivityService reads and appends activity-log entries. Record is the
// single point every other service funnels through, so each appended entry
// is broadcast exactly once.
type ActivityService struct {
	repo      ports.ActivityRepository
	publisher ports.Publisher
}

func NewActivityService(repo ports.ActivityRepository, publisher ports.Publisher) *ActivityService {
	return &ActivityService{repo: repo, publisher: publisher}
}

func (s *ActivityService) List(ctx context.Context) ([]string, error) {
	entries, err := s.repo.ListRecent(ctx, activityListLimit)
	if err != nil {
		return nil, err
	}

	descriptions := make([]string, 0, len(entries))
	for _, a := range entries {
		descriptions = append(descriptions, a.Description)
	}
	return descriptions, nil
}

func (s *ActivityService) Record(ctx context.Context, description string) (*domain.Activity, error) {
	created, err := s.repo.Create(ctx, &domain.Activity{
		Description: description,
		Timestamp:   time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(domain.NewActivityEvent{Activity: created})
	return created, nil
}
