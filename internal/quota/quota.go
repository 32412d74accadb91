// internal/quota/quota.go
package quota

import (
	"fmt"

	"tenantnotes/internal/model"
)

// FreePlanNoteLimit is the note cap for tenants on the free plan.
const FreePlanNoteLimit = 3

// Store is the slice of the storage layer the checker needs.
type Store interface {
	// GetTenant returns (nil, nil) when no tenant has the slug.
	GetTenant(slug string) (*model.Tenant, error)
	CountNotes(tenantSlug string) (int, error)
}

// Result is the outcome of a quota check. Reason is set only when the
// create is disallowed.
type Result struct {
	Allowed bool
	Reason  string
}

type Checker struct {
	store Store
}

func NewChecker(store Store) *Checker {
	return &Checker{store: store}
}

// Check decides whether the tenant may create another note. Pro tenants
// are allowed unconditionally, without counting. The check is evaluated
// fresh on every create and is best-effort under concurrent creates at
// the limit boundary.
func (c *Checker) Check(tenantSlug string) (Result, error) {
	tenant, err := c.store.GetTenant(tenantSlug)
	if err != nil {
		return Result{}, fmt.Errorf("quota: tenant lookup: %w", err)
	}
	if tenant == nil {
		return Result{Allowed: false, Reason: "Tenant not found"}, nil
	}

	if tenant.Subscription == model.PlanPro {
		return Result{Allowed: true}, nil
	}

	count, err := c.store.CountNotes(tenantSlug)
	if err != nil {
		return Result{}, fmt.Errorf("quota: note count: %w", err)
	}
	if count >= FreePlanNoteLimit {
		return Result{
			Allowed: false,
			Reason:  fmt.Sprintf("Free plan limit reached (%d notes max)", FreePlanNoteLimit),
		}, nil
	}

	return Result{Allowed: true}, nil
}
