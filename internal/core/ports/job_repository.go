package ports

import (
	"context"

	"github.com/sewline/jobtrack-api/internal/core/domain"
)

// JobPatch carries the mutable fields of a job update. Nil pointers mean
// "leave unchanged", so the same patch applied twice converges to the same
// document (last-write-wins, no version check).
type JobPatch struct {
	Status     *domain.JobStatus
	Defect     *string
	Supervisor *string
}

// JobRepository defines persistence operations for jobs.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) (*domain.Job, error)
	// List returns all jobs ordered by creation time, newest first.
	List(ctx context.Context) ([]*domain.Job, error)
	// UpdateByID applies patch and returns the updated document.
	// Returns ErrJobNotFound when no document matched.
	UpdateByID(ctx context.Context, id string, patch JobPatch) (*domain.Job, error)
}
