package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/sewline/jobtrack-api/internal/core/domain"
	"github.com/sewline/jobtrack-api/internal/core/ports"
)

type stubAuditRepo struct {
	events []*domain.AuditEvent
	err    error
}

func (r *stubAuditRepo) Insert(_ context.Context, event *domain.AuditEvent) error {
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, event)
	return nil
}

func TestAuditService_Record(t *testing.T) {
	repo := &stubAuditRepo{}
	svc := NewAuditService(repo, zerolog.Nop())

	in := ports.AuditInput{
		Entity:    "job",
		EntityID:  "1",
		Action:    "update",
		Actor:     "sup1",
		Timestamp: time.Now().UTC(),
	}
	if err := svc.Record(context.Background(), in); err != nil {
		t.Fatalf("Record returned error: %v", err)
	}
	if len(repo.events) != 1 {
		t.Fatalf("expected one event, got %d", len(repo.events))
	}
	if repo.events[0].Entity != "job" || repo.events[0].Action != "update" || repo.events[0].Actor != "sup1" {
		t.Fatalf("unexpected event: %+v", repo.events[0])
	}
}

func TestAuditService_Record_RepoError(t *testing.T) {
	repo := &stubAuditRepo{err: errors.New("insert failed")}
	svc := NewAuditService(repo, zerolog.Nop())

	if err := svc.Record(context.Background(), ports.AuditInput{Entity: "user", EntityID: "x", Action: "delete"}); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
