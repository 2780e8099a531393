package ports

import (
	"context"

	"github.com/sewline/jobtrack-api/internal/core/domain"
)

// AuthService issues bearer tokens and resolves the current user.
type AuthService interface {
	// Login verifies credentials and returns a signed token plus the user.
	// Fails with ErrInvalidCredentials on unknown username or bad password,
	// and ErrTooManyAttempts when the username is throttled.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// CurrentUser loads the user identified by validated token claims.
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
}
