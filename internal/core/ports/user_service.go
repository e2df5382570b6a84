package ports

import (
	"context"

	"github.com/pulsedash/dashboard-api/internal/core/domain"
)

// CreateUserInput carries all data needed to create a user record. Any
// caller-supplied identifier is ignored; the store assigns one.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Status   string
	Phone    string
	Address  string
	Orders   int
}

// UpdateUserInput lists the updatable fields; nil means "leave unchanged".
type UpdateUserInput struct {
	Name    *string
	Email   *string
	Role    *string
	Status  *string
	Phone   *string
	Address *string
	Orders  *int
}

// ListUsersInput carries the list endpoint's query parameters.
type ListUsersInput struct {
	Search string
	Status string
}

// UserService defines CRUD over the users collection. Every successful
// mutation writes one activity-log entry and broadcasts the entity change.
type UserService interface {
	List(ctx context.Context, input ListUsersInput) ([]*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
