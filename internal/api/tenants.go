package api

import (
	"encoding/json"
	"net/http"
	"time"

	"tenantnotes/internal/auth"
	"tenantnotes/internal/billing"
	"tenantnotes/internal/events"
	"tenantnotes/internal/model"
)

const (
	proPlanDescription = "Pro Plan - Monthly Subscription"
	proPlanAmount      = 29.99
)

// @Summary Upgrade the tenant to the Pro plan
// @Tags Tenants
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param slug path string true "Tenant slug"
// @Param body body billing.Details false "Payment details"
// @Success 200 {object} map[string]string
// @Router /tenants/{slug}/upgrade [post]
func (a *API) UpgradeTenant(w http.ResponseWriter, r *http.Request) {
	claims := auth.FromContext(r)

	// The guard already matched the path slug against the claims; data
	// access is scoped by the claims slug from here on.
	tenant, err := a.Storage.GetTenant(claims.TenantSlug)
	if err != nil {
		a.internalError(w, err, "tenants: lookup failed")
		return
	}
	if tenant == nil {
		writeError(w, http.StatusNotFound, "Tenant not found")
		return
	}

	var details billing.Details
	_ = json.NewDecoder(r.Body).Decode(&details) // body is optional

	receipt, err := a.Payments.Process(details)
	if err != nil || !receipt.Success {
		a.internalError(w, err, "tenants: payment processing failed")
		return
	}

	if err := a.Storage.UpgradeTenant(tenant.Slug); err != nil {
		a.internalError(w, err, "tenants: upgrade failed")
		return
	}

	name := details.CardholderName
	if name == "" {
		name = "Unknown"
	}
	invoice := &model.Invoice{
		TenantSlug:    tenant.Slug,
		Date:          time.Now(),
		Description:   proPlanDescription,
		Amount:        proPlanAmount,
		Status:        model.InvoicePaid,
		PaymentMethod: receipt.Reference,
		Name:          name,
	}
	if err := a.Storage.InsertInvoice(invoice); err != nil {
		a.internalError(w, err, "tenants: invoice insert failed")
		return
	}

	a.publish(events.TenantUpgraded, claims, tenant.Slug, proPlanDescription)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Subscription upgraded to Pro"})
}

// @Summary List the tenant's invoices, newest first
// @Tags Tenants
// @Security ApiKeyAuth
// @Produce json
// @Param slug path string true "Tenant slug"
// @Success 200 {array} model.Invoice
// @Router /tenants/{slug}/billing-history [get]
func (a *API) BillingHistory(w http.ResponseWriter, r *http.Request) {
	claims := auth.FromContext(r)

	invoices, err := a.Storage.ListInvoices(claims.TenantSlug)
	if err != nil {
		a.internalError(w, err, "tenants: invoice list failed")
		return
	}
	writeJSON(w, http.StatusOK, invoices)
}

// @Summary List the tenant's audit trail, newest first
// @Tags Tenants
// @Security ApiKeyAuth
// @Produce json
// @Param slug path string true "Tenant slug"
// @Success 200 {array} model.AuditEvent
// @Router /tenants/{slug}/audit-events [get]
func (a *API) AuditEvents(w http.ResponseWriter, r *http.Request) {
	claims := auth.FromContext(r)

	eventsList, err := a.Storage.ListAuditEvents(claims.TenantSlug)
	if err != nil {
		a.internalError(w, err, "tenants: audit list failed")
		return
	}
	writeJSON(w, http.StatusOK, eventsList)
}
