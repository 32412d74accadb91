// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Role values carried in JWT claims and checked by the access guard.
type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleMember Role = "Member"
)

type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         Role      `db:"role" json:"role"`
	TenantSlug   string    `db:"tenant_slug" json:"tenantSlug"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}
