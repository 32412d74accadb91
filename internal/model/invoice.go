// internal/model/invoice.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Invoice statuses.
const (
	InvoicePaid    = "paid"
	InvoiceFailed  = "failed"
	InvoicePending = "pending"
)

// Invoice is append-only: one row per upgrade event, never mutated.
type Invoice struct {
	ID            uuid.UUID `db:"id" json:"id"`
	TenantSlug    string    `db:"tenant_slug" json:"tenantSlug"`
	Date          time.Time `db:"date" json:"date"`
	Description   string    `db:"description" json:"description"`
	Amount        float64   `db:"amount" json:"amount"`
	Status        string    `db:"status" json:"status"`
	PaymentMethod string    `db:"payment_method" json:"paymentMethod"`
	Name          string    `db:"name" json:"name"`
}
