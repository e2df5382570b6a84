package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/pulsedash/dashboard-api/internal/core/domain"
	"github.com/pulsedash/dashboard-api/internal/core/ports"
)

// SeedService resets all four collections to a known demo dataset. Intended
// for local demos only; production deployments should gate the endpoint.
type SeedService struct {
	users         ports.UserRepository
	notifications ports.NotificationRepository
	revenue       ports.RevenueRepository
	activities    ports.ActivityRepository
	log           zerolog.Logger
}

func NewSeedService(
	users ports.UserRepository,
	notifications ports.NotificationRepository,
	revenue ports.RevenueRepository,
	activities ports.ActivityRepository,
	log zerolog.Logger,
) *SeedService {
	return &SeedService{
		users:         users,
		notifications: notifications,
		revenue:       revenue,
		activities:    activities,
		log:           log,
	}
}

type seedUser struct {
	name, email, password, status, role, phone, address string
	orders                                              int
}

var seedUsers = []seedUser{
	{"John Doe", "john@example.com", "admin123", domain.StatusActive, domain.RoleAdmin, "+1-555-0101", "123 Main St, New York, NY", 12},
	{"Jane Smith", "jane@example.com", "user123", domain.StatusActive, domain.RoleUser, "+1-555-0102", "456 Oak Ave, Los Angeles, CA", 8},
	{"Bob Johnson", "bob@example.com", "user123", domain.StatusInactive, domain.RoleUser, "+1-555-0103", "789 Pine Rd, Chicago, IL", 5},
	{"Alice Brown", "alice@example.com", "manager123", domain.StatusActive, domain.RoleManager, "+1-555-0104", "321 Elm St, Houston, TX", 15},
	{"Charlie Wilson", "charlie@example.com", "user123", domain.StatusPending, domain.RoleUser, "+1-555-0105", "654 Maple Dr, Phoenix, AZ", 3},
	{"Diana Davis", "diana@example.com", "admin123", domain.StatusActive, domain.RoleAdmin, "+1-555-0106", "987 Cedar Ln, Philadelphia, PA", 20},
	{"Edward Miller", "edward@example.com", "user123", domain.StatusInactive, domain.RoleUser, "+1-555-0107", "147 Birch Way, San Antonio, TX", 7},
	{"Fiona Garcia", "fiona@example.com", "manager123", domain.StatusActive, domain.RoleManager, "+1-555-0108", "258 Spruce St, San Diego, CA", 11},
}

var seedNotifications = []struct{ notifType, message string }{
	{domain.NotificationSuccess, "New order received: #5678"},
	{domain.NotificationWarning, "Inventory low for product SKU-1234"},
	{domain.NotificationInfo, "System maintenance scheduled for tonight"},
	{domain.NotificationError, "Payment gateway timeout detected"},
	{domain.NotificationSuccess, "Monthly report generated successfully"},
}

var seedRevenue = []struct {
	month  string
	amount float64
}{
	{"Jan", 32000}, {"Feb", 28000}, {"Mar", 35000},
	{"Apr", 42000}, {"May", 38000}, {"Jun", 45678},
}

var seedActivities = []string{
	"New user registration",
	"Order #1234 completed",
	"Product updated",
	"New review submitted",
	"Payment processed",
}

// Seed clears existing data and inserts the demo dataset. Demo passwords are
// hashed before insert and never logged.
func (s *SeedService) Seed(ctx context.Context) error {
	for name, fn := range map[string]func(context.Context) error{
		"users":         s.users.DeleteAll,
		"notifications": s.notifications.DeleteAll,
		"revenue":       s.revenue.DeleteAll,
		"activities":    s.activities.DeleteAll,
	} {
		if err := fn(ctx); err != nil {
			return fmt.Errorf("seed: clear %s: %w", name, err)
		}
	}

	now := time.Now().UTC()

	users := make([]*domain.User, 0, len(seedUsers))
	for _, su := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.password), bcryptCost)
		if err != nil {
			return fmt.Errorf("seed: hash password: %w", err)
		}
		users = append(users, &domain.User{
			Name:         su.name,
			Email:        su.email,
			PasswordHash: string(hash),
			Status:       su.status,
			Role:         su.role,
			Phone:        su.phone,
			Address:      su.address,
			Orders:       su.orders,
			JoinDate:     now,
		})
	}
	if err := s.users.InsertMany(ctx, users); err != nil {
		return fmt.Errorf("seed: insert users: %w", err)
	}

	notifications := make([]*domain.Notification, 0, len(seedNotifications))
	for _, sn := range seedNotifications {
		notifications = append(notifications, &domain.Notification{
			Type:    sn.notifType,
			Message: sn.message,
			Time:    now.Format("1/2/2006, 3:04:05 PM"),
		})
	}
	if err := s.notifications.InsertMany(ctx, notifications); err != nil {
		return fmt.Errorf("seed: insert notifications: %w", err)
	}

	revenue := make([]*domain.Revenue, 0, len(seedRevenue))
	for _, sr := range seedRevenue {
		revenue = append(revenue, &domain.Revenue{Month: sr.month, Revenue: sr.amount})
	}
	if err := s.revenue.InsertMany(ctx, revenue); err != nil {
		return fmt.Errorf("seed: insert revenue: %w", err)
	}

	activities := make([]*domain.Activity, 0, len(seedActivities))
	for _, desc := range seedActivities {
		activities = append(activities, &domain.Activity{Description: desc, Timestamp: now})
	}
	if err := s.activities.InsertMany(ctx, activities); err != nil {
		return fmt.Errorf("seed: insert activities: %w", err)
	}

	s.log.Info().
		Int("users", len(users)).
		Int("notifications", len(notifications)).
		Int("revenue_rows", len(revenue)).
		Int("activities", len(activities)).
		Msg("database seeded")
	return nil
}
