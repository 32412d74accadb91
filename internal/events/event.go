// internal/events/event.go
package events

import "time"

// Event types emitted by the API handlers.
const (
	NoteCreated    = "note.created"
	NoteUpdated    = "note.updated"
	NoteDeleted    = "note.deleted"
	TenantUpgraded = "tenant.upgraded"
)

// Event is a tenant-scoped domain event. It is published best-effort:
// a broker failure degrades the audit trail, never the client request.
type Event struct {
	Type       string    `json:"type"`
	TenantSlug string    `json:"tenantSlug"`
	ActorID    string    `json:"actorId"`
	SubjectID  string    `json:"subjectId,omitempty"`
	Detail     string    `json:"detail,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Publisher sends domain events toward the recorder.
type Publisher interface {
	Publish(e Event) error
}

// NopPublisher drops every event. Used in tests and when no broker is
// configured.
type NopPublisher struct{}

func (NopPublisher) Publish(Event) error { return nil }
