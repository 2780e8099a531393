package domain

import (
	"errors"
	"time"
)

// Roles known to the system. Role names are stored verbatim on the user
// document and embedded in token claims, so they must match what the
// front end sends at login.
const (
	RoleAdmin      = "Admin"
	RoleSupervisor = "Supervisor"
	RoleAttendant  = "Floor attendant"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidRole = errors.New("invalid role")
var ErrTooManyAttempts = errors.New("too many login attempts")

// ValidRole reports whether role is one of the known role names.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleSupervisor, RoleAttendant:
		return true
	}
	return false
}

// User models an authenticated actor in the system.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
