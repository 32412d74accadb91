// internal/model/note.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	ID         uuid.UUID `db:"id" json:"id"`
	TenantSlug string    `db:"tenant_slug" json:"tenantSlug"`
	UserID     uuid.UUID `db:"user_id" json:"userId"`
	Title      string    `db:"title" json:"title"`
	Content    string    `db:"content" json:"content"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `db:"updated_at" json:"updatedAt"`
}
