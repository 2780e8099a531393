package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/sewline/jobtrack-api/internal/api/metrics"
	"github.com/sewline/jobtrack-api/internal/core/domain"
	"github.com/sewline/jobtrack-api/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that writes events to the audit
// trail collection.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

func (s *auditService) Record(ctx context.Context, in ports.AuditInput) error {
	event := &domain.AuditEvent{
		Entity:    in.Entity,
		EntityID:  in.EntityID,
		Action:    in.Action,
		Actor:     in.Actor,
		Timestamp: in.Timestamp,
	}

	if err := s.repo.Insert(ctx, event); err != nil {
		metrics.AuditEventsErrorsTotal.Inc()
		return fmt.Errorf("record audit event: %w", err)
	}

	metrics.AuditEventsProcessedTotal.WithLabelValues(in.Entity, in.Action).Inc()
	s.log.Debug().Str("entity", in.Entity).Str("entity_id", in.EntityID).Str("action", in.Action).Msg("audit event recorded")

	return nil
}
