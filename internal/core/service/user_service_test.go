package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/sewline/jobtrack-api/internal/core/domain"
	"github.com/sewline/jobtrack-api/internal/core/ports"
)

func TestUserService_Create_Success(t *testing.T) {
	repo := newStubUserRepo()
	audit := &stubAuditSink{}
	svc := NewUserService(repo, audit, zerolog.Nop())

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Username: "sup2",
		Password: "pass123",
		Role:     domain.RoleSupervisor,
		Actor:    "admin1",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleSupervisor {
		t.Fatalf("unexpected role: %s", user.Role)
	}
	if len(audit.events) != 1 || audit.events[0].Entity != "user" || audit.events[0].Action != "create" {
		t.Fatalf("expected create audit event, got %+v", audit.events)
	}
}

func TestUserService_Create_InvalidRole(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), &stubAuditSink{}, zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.CreateUserInput{Username: "x", Password: "p", Role: "Manager"}); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUserService_Create_MissingFields(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), &stubAuditSink{}, zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.CreateUserInput{Role: domain.RoleAdmin}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUserService_Create_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, &stubAuditSink{}, zerolog.Nop())

	in := ports.CreateUserInput{Username: "sup3", Password: "pass", Role: domain.RoleSupervisor}
	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_Delete_RemovesExactlyOne(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, &stubAuditSink{}, zerolog.Nop())

	a, _ := svc.Create(context.Background(), ports.CreateUserInput{Username: "a", Password: "p", Role: domain.RoleAttendant})
	b, _ := svc.Create(context.Background(), ports.CreateUserInput{Username: "b", Password: "p", Role: domain.RoleAttendant})

	if err := svc.Delete(context.Background(), a.ID, "admin1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	users, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(users) != 1 || users[0].ID != b.ID {
		t.Fatalf("expected only %q to remain, got %+v", b.ID, users)
	}
}

func TestUserService_Delete_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), &stubAuditSink{}, zerolog.Nop())

	if err := svc.Delete(context.Background(), "missing", "admin1"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
