// internal/model/audit_event.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// AuditEvent is the persisted form of a domain event, written
// asynchronously by the events recorder.
type AuditEvent struct {
	ID         uuid.UUID `db:"id" json:"id"`
	TenantSlug string    `db:"tenant_slug" json:"tenantSlug"`
	ActorID    string    `db:"actor_id" json:"actorId"`
	EventType  string    `db:"event_type" json:"eventType"`
	SubjectID  string    `db:"subject_id" json:"subjectId"`
	Detail     string    `db:"detail" json:"detail"`
	OccurredAt time.Time `db:"occurred_at" json:"occurredAt"`
}
