package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/sewline/jobtrack-api/internal/core/domain"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		r.nextID++
		copy.ID = string(rune('a' + r.nextID))
	}
	r.users[copy.Username] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if u, ok := r.users[username]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	for name, u := range r.users {
		if u.ID == id {
			delete(r.users, name)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

type stubLimiter struct {
	throttled bool
	failures  int
	resets    int
	err       error
}

func (l *stubLimiter) TooMany(_ context.Context, _ string) (bool, error) {
	return l.throttled, l.err
}

func (l *stubLimiter) Fail(_ context.Context, _ string) error {
	l.failures++
	return nil
}

func (l *stubLimiter) Reset(_ context.Context, _ string) error {
	l.resets++
	return nil
}

func seedUser(t *testing.T, repo *stubUserRepo, username, password, role string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user, err := repo.Create(context.Background(), &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	limiter := &stubLimiter{}
	svc := NewAuthService(repo, limiter, "secret", time.Hour, zerolog.Nop())

	seeded := seedUser(t, repo, "admin1", "s3cret", domain.RoleAdmin)

	token, user, err := svc.Login(context.Background(), "admin1", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Username != "admin1" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if limiter.resets != 1 {
		t.Fatalf("expected limiter reset, got %d", limiter.resets)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["sub"] != seeded.ID {
		t.Fatalf("expected sub %q, got %v", seeded.ID, claims["sub"])
	}
	if claims["username"] != "admin1" {
		t.Fatalf("expected username claim, got %v", claims["username"])
	}
	if claims["role"] != domain.RoleAdmin {
		t.Fatalf("expected role %s, got %v", domain.RoleAdmin, claims["role"])
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	repo := newStubUserRepo()
	limiter := &stubLimiter{}
	svc := NewAuthService(repo, limiter, "secret", time.Hour, zerolog.Nop())

	seedUser(t, repo, "sup1", "goodpass", domain.RoleSupervisor)

	if _, _, err := svc.Login(context.Background(), "sup1", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if limiter.failures != 1 {
		t.Fatalf("expected failed attempt recorded, got %d", limiter.failures)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, &stubLimiter{}, "secret", time.Hour, zerolog.Nop())

	// Unknown usernames surface as invalid credentials, not a 404, so the
	// response does not leak which usernames exist.
	if _, _, err := svc.Login(context.Background(), "ghost", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, &stubLimiter{}, "secret", time.Hour, zerolog.Nop())

	if _, _, err := svc.Login(context.Background(), "", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	repo := newStubUserRepo()
	limiter := &stubLimiter{throttled: true}
	svc := NewAuthService(repo, limiter, "secret", time.Hour, zerolog.Nop())

	seedUser(t, repo, "sup1", "goodpass", domain.RoleSupervisor)

	if _, _, err := svc.Login(context.Background(), "sup1", "goodpass"); !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthService_Login_LimiterErrorDegrades(t *testing.T) {
	repo := newStubUserRepo()
	limiter := &stubLimiter{err: errors.New("redis down")}
	svc := NewAuthService(repo, limiter, "secret", time.Hour, zerolog.Nop())

	seedUser(t, repo, "sup1", "goodpass", domain.RoleSupervisor)

	// A broken limiter backend must not block logins.
	if _, _, err := svc.Login(context.Background(), "sup1", "goodpass"); err != nil {
		t.Fatalf("expected login to succeed despite limiter error, got %v", err)
	}
}

func TestAuthService_CurrentUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, &stubLimiter{}, "secret", time.Hour, zerolog.Nop())

	seeded := seedUser(t, repo, "att1", "pass", domain.RoleAttendant)

	user, err := svc.CurrentUser(context.Background(), seeded.ID)
	if err != nil {
		t.Fatalf("CurrentUser failed: %v", err)
	}
	if user.Username != "att1" || user.Role != domain.RoleAttendant {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := svc.CurrentUser(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
