package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/sewline/jobtrack-api/internal/core/domain"
	"github.com/sewline/jobtrack-api/internal/core/ports"
)

// UserService implements user management use cases.
type UserService struct {
	repo  ports.UserRepository
	audit ports.AuditSink
	log   zerolog.Logger
}

func NewUserService(repo ports.UserRepository, audit ports.AuditSink, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, audit: audit, log: log}
}

func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if input.Username == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if !domain.ValidRole(input.Role) {
		return nil, domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		PasswordHash: string(hash),
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", created.Username).Str("role", created.Role).Msg("user created")
	s.recordAudit(created.ID, "create", input.Actor)

	return created, nil
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Delete(ctx context.Context, id, actor string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("id", id).Msg("user deleted")
	s.recordAudit(id, "delete", actor)

	return nil
}

func (s *UserService) recordAudit(entityID, action, actor string) {
	s.audit.Enqueue(ports.AuditInput{
		Entity:    "user",
		EntityID:  entityID,
		Action:    action,
		Actor:     actor,
		Timestamp: time.Now().UTC(),
	})
}
