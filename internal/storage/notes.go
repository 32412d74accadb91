// internal/storage/notes.go
package storage

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"tenantnotes/internal/model"
)

// InsertNote persists a note, assigning an id if the caller left it zero.
func (s *Storage) InsertNote(n *model.Note) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	_, err := s.DB.Exec(`
		INSERT INTO notes (id, tenant_slug, user_id, title, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, n.ID, n.TenantSlug, n.UserID, n.Title, n.Content, n.CreatedAt, n.UpdatedAt)
	return err
}

// ListNotes returns every note belonging to the tenant.
func (s *Storage) ListNotes(tenantSlug string) ([]model.Note, error) {
	rows, err := s.DB.Query(`
		SELECT id, tenant_slug, user_id, title, content, created_at, updated_at
		FROM notes
		WHERE tenant_slug = $1
		ORDER BY created_at
	`, tenantSlug)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	notes := []model.Note{}
	for rows.Next() {
		var n model.Note
		if err := rows.Scan(&n.ID, &n.TenantSlug, &n.UserID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// GetNote fetches a note by id scoped to the tenant. A note belonging
// to another tenant is indistinguishable from a nonexistent one:
// both return (nil, nil).
func (s *Storage) GetNote(id uuid.UUID, tenantSlug string) (*model.Note, error) {
	var n model.Note
	err := s.DB.QueryRow(`
		SELECT id, tenant_slug, user_id, title, content, created_at, updated_at
		FROM notes
		WHERE id = $1 AND tenant_slug = $2
	`, id, tenantSlug).Scan(&n.ID, &n.TenantSlug, &n.UserID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// UpdateNote writes the mutable fields back by id.
func (s *Storage) UpdateNote(n *model.Note) error {
	_, err := s.DB.Exec(`
		UPDATE notes
		SET title = $1, content = $2, updated_at = $3
		WHERE id = $4
	`, n.Title, n.Content, n.UpdatedAt, n.ID)
	return err
}

func (s *Storage) DeleteNote(id uuid.UUID, tenantSlug string) error {
	_, err := s.DB.Exec(`
		DELETE FROM notes
		WHERE id = $1 AND tenant_slug = $2
	`, id, tenantSlug)
	return err
}

// CountNotes counts the tenant's notes for the quota check.
func (s *Storage) CountNotes(tenantSlug string) (int, error) {
	var count int
	err := s.DB.QueryRow(`
		SELECT COUNT(*) FROM notes WHERE tenant_slug = $1
	`, tenantSlug).Scan(&count)
	return count, err
}
