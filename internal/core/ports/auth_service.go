package ports

import (
	"context"

	"github.com/pulsedash/dashboard-api/internal/core/domain"
)

// RegisterInput carries the fields an admin supplies when creating an account
// through the registration path.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string // defaults to "user" when empty
	Phone    string
	Address  string
}

// AuthService implements login, registration and account self-service.
type AuthService interface {
	// Login runs the credential state machine: lock check, status check,
	// password comparison with attempt counting. On success it returns a
	// signed token and the public user view.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Register creates an account on behalf of an authenticated admin whose
	// display name is actorName.
	Register(ctx context.Context, input RegisterInput, actorName string) (*domain.User, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}
