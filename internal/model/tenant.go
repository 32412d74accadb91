// internal/model/tenant.go
package model

import "time"

// Subscription plans a tenant can be on.
const (
	PlanFree = "free"
	PlanPro  = "pro"
)

type Tenant struct {
	Slug         string    `db:"slug" json:"slug"`
	Name         string    `db:"name" json:"name"`
	Subscription string    `db:"subscription" json:"subscription"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}
