package domain

import "time"

// AuditEvent records a single mutation for the audit trail.
type AuditEvent struct {
	Entity    string    // "job" or "user"
	EntityID  string
	Action    string    // "create", "update", "delete"
	Actor     string    // username taken from the token claims
	Timestamp time.Time
}
