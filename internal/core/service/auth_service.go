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

const (
	bcryptCost       = 12
	maxLoginAttempts = 5
	lockDuration     = 30 * time.Minute
)

// AuthService implements login, registration and account self-service.
type AuthService struct {
	users      ports.UserRepository
	activities ports.ActivityService
	tokens     ports.TokenService
	log        zerolog.Logger
}

func NewAuthService(users ports.UserRepository, activities ports.ActivityService, tokens ports.TokenService, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, activities: activities, tokens: tokens, log: log}
}

// Login runs the credential state machine over a single user record:
//
//  1. unknown email → ErrInvalidCredentials (same error as a wrong password)
//  2. lock window still open → ErrAccountLocked, counter untouched
//  3. status not active → ErrAccountNotActive
//  4. password mismatch → counter incremented, lock set at the threshold
//  5. match → counter reset, lock cleared, last-login stamped, token issued
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("login: %w", err)
	}

	now := time.Now().UTC()
	if user.Locked(now) {
		return "", nil, domain.ErrAccountLocked
	}

	if user.Status != domain.StatusActive {
		return "", nil, domain.ErrAccountNotActive
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		attempts := user.LoginAttempts + 1
		state := ports.LoginState{Attempts: attempts}
		if attempts >= maxLoginAttempts {
			until := now.Add(lockDuration)
			state.LockUntil = &until
			s.log.Warn().Str("email", email).Time("lock_until", until).Msg("account locked after repeated failures")
		}
		if err := s.users.SetLoginState(ctx, user.ID, state); err != nil {
			s.log.Error().Err(err).Str("email", email).Msg("failed to persist login attempts")
		}
		return "", nil, domain.ErrInvalidCredentials
	}

	if err := s.users.SetLoginState(ctx, user.ID, ports.LoginState{LastLogin: &now}); err != nil {
		s.log.Error().Err(err).Str("email", email).Msg("failed to persist last login")
	}
	user.LoginAttempts = 0
	user.LockUntil = nil
	user.LastLogin = &now

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, fmt.Errorf("login: issue token: %w", err)
	}

	s.log.Info().Str("email", email).Str("role", user.Role).Msg("login succeeded")
	return token, user, nil
}

// Register creates an account on behalf of an authenticated admin and records
// the change in the activity log.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput, actorName string) (*domain.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
		Status:       domain.StatusActive,
		Phone:        input.Phone,
		Address:      input.Address,
		JoinDate:     time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	if _, err := s.activities.Record(ctx, fmt.Sprintf("New user %s registered by %s", created.Name, actorName)); err != nil {
		s.log.Warn().Err(err).Msg("failed to record registration activity")
	}

	return created, nil
}

// Profile returns the public view of the authenticated user's own record.
func (s *AuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

// ChangePassword verifies the current password before storing a new hash.
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("change password: hash: %w", err)
	}

	hashStr := string(hash)
	if _, err := s.users.Update(ctx, userID, ports.UserUpdate{PasswordHash: &hashStr}); err != nil {
		return fmt.Errorf("change password: %w", err)
	}
	return nil
}
