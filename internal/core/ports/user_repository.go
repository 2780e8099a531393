package ports

import (
	"context"

	"github.com/sewline/jobtrack-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	// Delete removes the user with the given id. Returns ErrUserNotFound
	// when no document matched.
	Delete(ctx context.Context, id string) error
}
