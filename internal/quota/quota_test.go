package quota

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"tenantnotes/internal/model"
)

type fakeStore struct {
	tenant *model.Tenant
	count  int
	err    error
}

func (f *fakeStore) GetTenant(slug string) (*model.Tenant, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.tenant, nil
}

func (f *fakeStore) CountNotes(tenantSlug string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.count, nil
}

func TestCheckFreePlan(t *testing.T) {
	tests := []struct {
		name       string
		count      int
		allowed    bool
		wantReason string
	}{
		{"no notes", 0, true, ""},
		{"under limit", 2, true, ""},
		{"at limit", 3, false, "Free plan limit reached (3 notes max)"},
		{"over limit", 4, false, "Free plan limit reached (3 notes max)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewChecker(&fakeStore{
				tenant: &model.Tenant{Slug: "acme", Subscription: model.PlanFree},
				count:  tt.count,
			})
			res, err := c.Check("acme")
			require.NoError(t, err)
			require.Equal(t, tt.allowed, res.Allowed)
			require.Equal(t, tt.wantReason, res.Reason)
		})
	}
}

func TestCheckProPlanIgnoresCount(t *testing.T) {
	c := NewChecker(&fakeStore{
		tenant: &model.Tenant{Slug: "acme", Subscription: model.PlanPro},
		count:  1000,
	})
	res, err := c.Check("acme")
	require.NoError(t, err)
	require.True(t, res.Allowed)
}

func TestCheckTenantNotFound(t *testing.T) {
	c := NewChecker(&fakeStore{})
	res, err := c.Check("missing")
	require.NoError(t, err)
	require.False(t, res.Allowed)
	require.Equal(t, "Tenant not found", res.Reason)
}

func TestCheckStoreError(t *testing.T) {
	c := NewChecker(&fakeStore{err: errors.New("connection reset")})
	_, err := c.Check("acme")
	require.Error(t, err)
}
