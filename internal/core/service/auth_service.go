package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/sewline/jobtrack-api/internal/api/metrics"
	"github.com/sewline/jobtrack-api/internal/core/domain"
	"github.com/sewline/jobtrack-api/internal/core/ports"
)

// LoginLimiter abstracts the failed-login throttle (Redis).
type LoginLimiter interface {
	// TooMany reports whether the username has exceeded the attempt budget.
	TooMany(ctx context.Context, username string) (bool, error)
	// Fail records one failed attempt.
	Fail(ctx context.Context, username string) error
	// Reset clears the counter after a successful login.
	Reset(ctx context.Context, username string) error
}

// AuthService implements login and token issuance. Tokens are stateless
// HS256 JWTs; there is no revocation list, logout is client-side token
// deletion and an issued token stays valid until expiry.
type AuthService struct {
	repo      ports.UserRepository
	limiter   LoginLimiter
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, limiter LoginLimiter, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, limiter: limiter, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	// Throttle check. A broken limiter backend must not lock everyone out,
	// so errors degrade to "not throttled".
	if throttled, err := s.limiter.TooMany(ctx, username); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("login limiter check failed, proceeding")
	} else if throttled {
		metrics.LoginsThrottledTotal.Inc()
		return "", nil, domain.ErrTooManyAttempts
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, username)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, username)
		return "", nil, domain.ErrInvalidCredentials
	}

	if err := s.limiter.Reset(ctx, username); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("failed to reset login counter")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("username", user.Username).Str("role", user.Role).Msg("user logged in")

	return token, user, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

func (s *AuthService) recordFailure(ctx context.Context, username string) {
	metrics.LoginsTotal.WithLabelValues("failure").Inc()
	if err := s.limiter.Fail(ctx, username); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("failed to record login failure")
	}
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
