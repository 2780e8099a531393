package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/sewline/jobtrack-api/internal/api/metrics"
	"github.com/sewline/jobtrack-api/internal/core/domain"
	"github.com/sewline/jobtrack-api/internal/core/ports"
)

// JobService implements the job use cases.
type JobService struct {
	repo  ports.JobRepository
	audit ports.AuditSink
	log   zerolog.Logger
}

func NewJobService(repo ports.JobRepository, audit ports.AuditSink, log zerolog.Logger) *JobService {
	return &JobService{repo: repo, audit: audit, log: log}
}

// Create persists a new job card. Status always starts as "In Process";
// the caller cannot set it at creation time.
func (s *JobService) Create(ctx context.Context, input ports.CreateJobInput) (*domain.Job, error) {
	now := time.Now().UTC()

	date := input.Date
	if date.IsZero() {
		date = now
	}

	job := &domain.Job{
		JobID:      input.JobID,
		Customer:   input.Customer,
		Quantity:   input.Quantity,
		Date:       date,
		Time:       input.Time,
		Status:     domain.StatusInProcess,
		Supervisor: input.Supervisor,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.repo.Create(ctx, job)
	if err != nil {
		s.log.Error().Err(err).Str("job_id", input.JobID).Msg("failed to create job")
		return nil, err
	}

	metrics.JobsCreatedTotal.Inc()
	s.log.Info().Str("id", created.ID).Str("job_id", created.JobID).Str("customer", created.Customer).Msg("job created")
	s.recordAudit("job", created.ID, "create", input.Actor)

	return created, nil
}

// List returns all jobs, newest first. Ordering is enforced by the
// repository query.
func (s *JobService) List(ctx context.Context) ([]*domain.Job, error) {
	return s.repo.List(ctx)
}

// Update applies a partial update to the job. Applying the same input
// twice yields the same final document; there is no version check, so
// concurrent updates are last-write-wins.
func (s *JobService) Update(ctx context.Context, id string, input ports.UpdateJobInput) (*domain.Job, error) {
	patch := ports.JobPatch{
		Defect:     input.Defect,
		Supervisor: input.Supervisor,
	}

	if input.Status != nil {
		status := domain.JobStatus(*input.Status)
		if !domain.ValidStatus(status) {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, *input.Status)
		}
		patch.Status = &status
	}

	updated, err := s.repo.UpdateByID(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	if patch.Status != nil {
		metrics.JobStatusUpdatesTotal.WithLabelValues(string(*patch.Status)).Inc()
	}
	s.log.Info().Str("id", updated.ID).Str("job_id", updated.JobID).Str("status", string(updated.Status)).Msg("job updated")
	s.recordAudit("job", updated.ID, "update", input.Actor)

	return updated, nil
}

func (s *JobService) recordAudit(entity, entityID, action, actor string) {
	s.audit.Enqueue(ports.AuditInput{
		Entity:    entity,
		EntityID:  entityID,
		Action:    action,
		Actor:     actor,
		Timestamp: time.Now().UTC(),
	})
}
