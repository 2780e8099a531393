package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/sewline/jobtrack-api/internal/core/domain"
	"github.com/sewline/jobtrack-api/internal/core/ports"
)

type stubUserService struct {
	createFn func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error)
	listFn   func(ctx context.Context) ([]*domain.User, error)
	deleteFn func(ctx context.Context, id, actor string) error
}

func (s *stubUserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	return s.createFn(ctx, input)
}

func (s *stubUserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) Delete(ctx context.Context, id, actor string) error {
	return s.deleteFn(ctx, id, actor)
}

func TestUserHandler_List_OmitsPasswordHash(t *testing.T) {
	stub := &stubUserService{
		listFn: func(ctx context.Context) ([]*domain.User, error) {
			return []*domain.User{
				{ID: "1", Username: "admin1", PasswordHash: "bcrypt-hash", Role: domain.RoleAdmin},
			}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/users", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var users []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &users); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(users) != 1 || users[0]["username"] != "admin1" {
		t.Fatalf("unexpected payload: %+v", users)
	}
	for key := range users[0] {
		if key == "passwordHash" || key == "password_hash" {
			t.Fatalf("password hash leaked in response")
		}
	}
}

func TestUserHandler_Create_Success(t *testing.T) {
	stub := &stubUserService{
		createFn: func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
			if input.Username != "sup2" || input.Role != domain.RoleSupervisor {
				t.Fatalf("unexpected input: %+v", input)
			}
			if input.Actor != "admin1" {
				t.Fatalf("expected actor from claims, got %q", input.Actor)
			}
			return &domain.User{ID: "9", Username: input.Username, Role: input.Role}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/users", `{"username":"sup2","password":"pass123","role":"Supervisor"}`)
	setClaims(c, "user-1", "admin1", domain.RoleAdmin)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestUserHandler_Create_ShortPassword(t *testing.T) {
	stub := &stubUserService{
		createFn: func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewUserHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/users", `{"username":"sup2","password":"abc","role":"Supervisor"}`)
	setClaims(c, "user-1", "admin1", domain.RoleAdmin)

	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestUserHandler_Delete_Success(t *testing.T) {
	stub := &stubUserService{
		deleteFn: func(ctx context.Context, id, actor string) error {
			if id != "9" || actor != "admin1" {
				t.Fatalf("unexpected args: %s %s", id, actor)
			}
			return nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/api/users/9", "")
	c.SetParamNames("id")
	c.SetParamValues("9")
	setClaims(c, "user-1", "admin1", domain.RoleAdmin)

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_Delete_NotFoundPassThrough(t *testing.T) {
	stub := &stubUserService{
		deleteFn: func(ctx context.Context, id, actor string) error {
			return domain.ErrUserNotFound
		},
	}
	h := NewUserHandler(stub)

	c, _ := newTestContext(t, http.MethodDelete, "/api/users/9", "")
	c.SetParamNames("id")
	c.SetParamValues("9")
	setClaims(c, "user-1", "admin1", domain.RoleAdmin)

	if err := h.Delete(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
