// internal/storage/billing.go
package storage

import (
	"fmt"

	"github.com/google/uuid"

	"tenantnotes/internal/model"
)

// InsertInvoice appends an invoice. Invoices are never updated or
// deleted.
func (s *Storage) InsertInvoice(inv *model.Invoice) error {
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	_, err := s.DB.Exec(`
		INSERT INTO invoices (id, tenant_slug, date, description, amount, status, payment_method, name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, inv.ID, inv.TenantSlug, inv.Date, inv.Description, inv.Amount, inv.Status, inv.PaymentMethod, inv.Name)
	return err
}

// ListInvoices returns the tenant's invoices, newest first.
func (s *Storage) ListInvoices(tenantSlug string) ([]model.Invoice, error) {
	rows, err := s.DB.Query(`
		SELECT id, tenant_slug, date, description, amount, status, payment_method, name
		FROM invoices
		WHERE tenant_slug = $1
		ORDER BY date DESC
	`, tenantSlug)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	invoices := []model.Invoice{}
	for rows.Next() {
		var inv model.Invoice
		if err := rows.Scan(&inv.ID, &inv.TenantSlug, &inv.Date, &inv.Description, &inv.Amount, &inv.Status, &inv.PaymentMethod, &inv.Name); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

func (s *Storage) InsertAuditEvent(e *model.AuditEvent) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	_, err := s.DB.Exec(`
		INSERT INTO audit_events (id, tenant_slug, actor_id, event_type, subject_id, detail, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, e.ID, e.TenantSlug, e.ActorID, e.EventType, e.SubjectID, e.Detail, e.OccurredAt)
	return err
}

// ListAuditEvents returns the tenant's audit trail, newest first.
func (s *Storage) ListAuditEvents(tenantSlug string) ([]model.AuditEvent, error) {
	rows, err := s.DB.Query(`
		SELECT id, tenant_slug, actor_id, event_type, subject_id, detail, occurred_at
		FROM audit_events
		WHERE tenant_slug = $1
		ORDER BY occurred_at DESC
	`, tenantSlug)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	events := []model.AuditEvent{}
	for rows.Next() {
		var e model.AuditEvent
		if err := rows.Scan(&e.ID, &e.TenantSlug, &e.ActorID, &e.EventType, &e.SubjectID, &e.Detail, &e.OccurredAt); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
