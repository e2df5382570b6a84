package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/pulsedash/dashboard-api/internal/core/domain"
	"github.com/pulsedash/dashboard-api/internal/core/ports"
)

// notificationListLimit caps the quantity returned by List, not the quantity
// stored.
const notificationListLimit = 20

// NotificationService manages dashboard notifications.
type NotificationService struct {
	repo      ports.NotificationRepository
	publisher ports.Publisher
	log       zerolog.Logger
}

func NewNotificationService(repo ports.NotificationRepository, publisher ports.Publisher, log zerolog.Logger) *NotificationService {
	return &NotificationService{repo: repo, publisher: publisher, log: log}
}

func (s *NotificationService) List(ctx context.Context) ([]*domain.Notification, error) {
	return s.repo.ListRecent(ctx, notificationListLimit)
}

func (s *NotificationService) Create(ctx context.Context, notifType, message string) (*domain.Notification, error) {
	n := &domain.Notification{
		Type:    notifType,
		Message: message,
		Time:    time.Now().Format("1/2/2006, 3:04:05 PM"),
	}

	created, err := s.repo.Create(ctx, n)
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(domain.NewNotificationEvent{Notification: created})
	return created, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id string) (*domain.Notification, error) {
	updated, err := s.repo.MarkRead(ctx, id)
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(domain.NotificationReadEvent{Notification: updated})
	return updated, nil
}
