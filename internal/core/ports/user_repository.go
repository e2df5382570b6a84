package ports

import (
	"context"
	"time"

	"github.com/pulsedash/dashboard-api/internal/core/domain"
)

// ListUsersFilter carries the query parameters for listing users.
type ListUsersFilter struct {
	Search string // optional: case-insensitive substring match on name or email
	Status string // optional: equality filter; empty or "all" = no filter
}

// UserUpdate lists the mutable user fields. Nil pointers are left untouched;
// the identifier is never updatable.
type UserUpdate struct {
	Name         *string
	Email        *string
	PasswordHash *string
	Role         *string
	Status       *string
	Phone        *string
	Address      *string
	Orders       *int
}

// LoginState is the per-attempt bookkeeping persisted by the login flow.
type LoginState struct {
	Attempts  int
	LockUntil *time.Time
	LastLogin *time.Time
}

// UserRepository defines persistence operations for the users collection.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, filter ListUsersFilter) ([]*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) (*domain.User, error)

	// SetLoginState persists the failed-attempt counter, lock and last-login
	// stamps without touching any other field.
	SetLoginState(ctx context.Context, id string, state LoginState) error

	// IncrementOrders adds one to the user's order count and returns the
	// updated record.
	IncrementOrders(ctx context.Context, id string) (*domain.User, error)

	// Random returns one user sampled uniformly, or ErrUserNotFound when the
	// collection is empty.
	Random(ctx context.Context) (*domain.User, error)

	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	SumOrders(ctx context.Context) (int64, error)

	DeleteAll(ctx context.Context) error
	InsertMany(ctx context.Context, users []*domain.User) error
}
