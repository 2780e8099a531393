package ports

import (
	"context"

	"github.com/sewline/jobtrack-api/internal/core/domain"
)

// CreateUserInput carries all data needed to create a user account.
type CreateUserInput struct {
	Username string
	Password string
	Role     string
	Actor    string
}

// UserService defines use-case operations for user management.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Delete(ctx context.Context, id, actor string) error
}
