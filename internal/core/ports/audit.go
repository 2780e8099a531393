package ports

import (
	"context"
	"time"

	"github.com/sewline/jobtrack-api/internal/core/domain"
)

// AuditInput is the DTO handed to the audit pipeline after a mutation.
type AuditInput struct {
	Entity    string
	EntityID  string
	Action    string
	Actor     string
	Timestamp time.Time
}

// AuditRepository persists audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}

// AuditService processes audit events coming off the dispatcher.
type AuditService interface {
	Record(ctx context.Context, in AuditInput) error
}

// AuditSink is where the job/user services hand off mutation records.
// Implemented by the queue dispatcher; enqueueing must not block the
// request path beyond channel capacity.
type AuditSink interface {
	Enqueue(in AuditInput)
}
