package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/pulsedash/dashboard-api/internal/api/metrics"
	"github.com/pulsedash/dashboard-api/internal/core/domain"
	"github.com/pulsedash/dashboard-api/internal/core/ports"
)

const defaultSimulatorInterval = 10 * time.Second

// notificationChance is the per-tick probability of a synthetic notification.
const notificationChance = 0.3

var simulatorNotificationTypes = []string{
	domain.NotificationSuccess,
	domain.NotificationWarning,
	domain.NotificationInfo,
}

var simulatorMessages = []string{
	"New user registration",
	"Order completed",
	"Payment received",
	"System update available",
	"Inventory updated",
}

// Simulator manufactures synthetic mutations on a fixed interval to keep a
// live demo visually active: a random order increment on a random user every
// tick, plus a low-probability random notification. It is best-effort and
// non-critical — every error is swallowed and the loop continues.
type Simulator struct {
	users         ports.UserRepository
	notifications ports.NotificationService
	publisher     ports.Publisher
	interval      time.Duration
	log           zerolog.Logger
}

func NewSimulator(users ports.UserRepository, notifications ports.NotificationService, publisher ports.Publisher, interval time.Duration, log zerolog.Logger) *Simulator {
	if interval <= 0 {
		interval = defaultSimulatorInterval
	}
	return &Simulator{
		users:         users,
		notifications: notifications,
		publisher:     publisher,
		interval:      interval,
		log:           log,
	}
}

// Start launches the tick loop. It stops when ctx is cancelled.
func (s *Simulator) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Tick(ctx)
			}
		}
	}()
}

// Tick performs one round of synthetic mutations. Exported for tests.
func (s *Simulator) Tick(ctx context.Context) {
	if err := s.bumpRandomOrder(ctx); err != nil {
		s.log.Debug().Err(err).Msg("simulator: order bump skipped")
	}

	if rand.Float64() < notificationChance {
		if err := s.randomNotification(ctx); err != nil {
			s.log.Debug().Err(err).Msg("simulator: notification skipped")
		}
	}
}

func (s *Simulator) bumpRandomOrder(ctx context.Context) error {
	user, err := s.users.Random(ctx)
	if err != nil {
		return err
	}

	updated, err := s.users.IncrementOrders(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("increment orders: %w", err)
	}

	s.publisher.Publish(domain.OrderUpdateEvent{
		UserID:        updated.ID,
		NewOrderCount: updated.Orders,
		Message:       fmt.Sprintf("New order for %s", updated.Name),
	})
	metrics.SimulatorMutationsTotal.WithLabelValues("order").Inc()
	return nil
}

func (s *Simulator) randomNotification(ctx context.Context) error {
	notifType := simulatorNotificationTypes[rand.Intn(len(simulatorNotificationTypes))]
	message := simulatorMessages[rand.Intn(len(simulatorMessages))]

	if _, err := s.notifications.Create(ctx, notifType, message); err != nil {
		return err
	}
	metrics.SimulatorMutationsTotal.WithLabelValues("notification").Inc()
	return nil
}
