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

// UserService implements user CRUD. Every successful mutation writes one
// activity-log entry and broadcasts the entity change; the two writes are
// independent and non-atomic.
type UserService struct {
	repo       ports.UserRepository
	activities ports.ActivityService
	publisher  ports.Publisher
	log        zerolog.Logger
}

func NewUserService(repo ports.UserRepository, activities ports.ActivityService, publisher ports.Publisher, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, activities: activities, publisher: publisher, log: log}
}

func (s *UserService) List(ctx context.Context, input ports.ListUsersInput) ([]*domain.User, error) {
	status := input.Status
	if status == "all" {
		status = ""
	}
	return s.repo.List(ctx, ports.ListUsersFilter{Search: input.Search, Status: status})
}

func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}
	status := input.Status
	if status == "" {
		status = domain.StatusActive
	}

	user := &domain.User{
		Name:     input.Name,
		Email:    input.Email,
		Role:     role,
		Status:   status,
		Phone:    input.Phone,
		Address:  input.Address,
		Orders:   input.Orders,
		JoinDate: time.Now().UTC(),
	}
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("create user: hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("user created")
	s.publisher.Publish(domain.UserAddedEvent{User: created})
	s.recordActivity(ctx, fmt.Sprintf("New user %s added", created.Name))
	return created, nil
}

func (s *UserService) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	updated, err := s.repo.Update(ctx, id, ports.UserUpdate{
		Name:    input.Name,
		Email:   input.Email,
		Role:    input.Role,
		Status:  input.Status,
		Phone:   input.Phone,
		Address: input.Address,
		Orders:  input.Orders,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", updated.ID).Msg("user updated")
	s.publisher.Publish(domain.UserUpdatedEvent{User: updated})
	s.recordActivity(ctx, fmt.Sprintf("User %s updated", updated.Name))
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}

	s.log.Info().Str("user_id", id).Msg("user deleted")
	s.publisher.Publish(domain.UserDeletedEvent{ID: id})
	s.recordActivity(ctx, fmt.Sprintf("User %s deleted", deleted.Name))
	return nil
}

// recordActivity appends a log entry; the activity service broadcasts it.
// Failures are logged and swallowed: the primary mutation has already
// committed.
func (s *UserService) recordActivity(ctx context.Context, description string) {
	if _, err := s.activities.Record(ctx, description); err != nil {
		s.log.Warn().Err(err).Str("description", description).Msg("failed to record activity")
	}
}
