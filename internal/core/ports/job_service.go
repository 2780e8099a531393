package ports

import (
	"context"
	"time"

	"github.com/sewline/jobtrack-api/internal/core/domain"
)

// CreateJobInput carries all data needed to create a new job card.
type CreateJobInput struct {
	JobID      string
	Customer   string
	Quantity   int
	Date       time.Time
	Time       string
	Supervisor string
	// Actor is the username performing the operation (for the audit trail).
	Actor string
}

// UpdateJobInput carries the partial update for an existing job.
// Nil fields are left untouched.
type UpdateJobInput struct {
	Status     *string
	Defect     *string
	Supervisor *string
	Actor      string
}

// JobService defines use-case operations for jobs.
type JobService interface {
	Create(ctx context.Context, input CreateJobInput) (*domain.Job, error)
	List(ctx context.Context) ([]*domain.Job, error)
	Update(ctx context.Context, id string, input UpdateJobInput) (*domain.Job, error)
}
