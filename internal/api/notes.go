package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"tenantnotes/internal/auth"
	"tenantnotes/internal/events"
	"tenantnotes/internal/metrics"
	"tenantnotes/internal/model"
)

type noteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// @Summary List the tenant's notes
// @Tags Notes
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} model.Note
// @Router /notes [get]
func (a *API) ListNotes(w http.ResponseWriter, r *http.Request) {
	claims := auth.FromContext(r)

	notes, err := a.Storage.ListNotes(claims.TenantSlug)
	if err != nil {
		a.internalError(w, err, "notes: list failed")
		return
	}
	writeJSON(w, http.StatusOK, notes)
}

// @Summary Create a note
// @Tags Notes
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param body body noteRequest true "Note"
// @Success 201 {object} model.Note
// @Router /notes [post]
func (a *API) CreateNote(w http.ResponseWriter, r *http.Request) {
	claims := auth.FromContext(r)

	res, err := a.Quota.Check(claims.TenantSlug)
	if err != nil {
		a.internalError(w, err, "notes: quota check failed")
		return
	}
	if !res.Allowed {
		metrics.QuotaDenied.WithLabelValues(claims.TenantSlug).Inc()
		writeError(w, http.StatusForbidden, res.Reason)
		return
	}

	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "Title is required")
		return
	}

	userID, err := uuid.Parse(claims.ID)
	if err != nil {
		a.internalError(w, err, "notes: bad user id in claims")
		return
	}

	now := time.Now()
	note := &model.Note{
		TenantSlug: claims.TenantSlug,
		UserID:     userID,
		Title:      req.Title,
		Content:    req.Content,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := a.Storage.InsertNote(note); err != nil {
		a.internalError(w, err, "notes: insert failed")
		return
	}

	metrics.NotesCreated.WithLabelValues(claims.TenantSlug).Inc()
	a.publish(events.NoteCreated, claims, note.ID.String(), note.Title)
	writeJSON(w, http.StatusCreated, note)
}

// @Summary Get a note by id
// @Tags Notes
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Note UUID"
// @Success 200 {object} model.Note
// @Router /notes/{id} [get]
func (a *API) GetNote(w http.ResponseWriter, r *http.Request) {
	claims := auth.FromContext(r)

	note, err := a.fetchNote(r, claims)
	if err != nil {
		a.internalError(w, err, "notes: fetch failed")
		return
	}
	if note == nil {
		writeError(w, http.StatusNotFound, "Note not found")
		return
	}
	writeJSON(w, http.StatusOK, note)
}

// @Summary Update a note
// @Tags Notes
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "Note UUID"
// @Param body body noteRequest true "Fields to update"
// @Success 200 {object} model.Note
// @Router /notes/{id} [put]
func (a *API) UpdateNote(w http.ResponseWriter, r *http.Request) {
	claims := auth.FromContext(r)

	note, err := a.fetchNote(r, claims)
	if err != nil {
		a.internalError(w, err, "notes: fetch failed")
		return
	}
	if note == nil {
		writeError(w, http.StatusNotFound, "Note not found")
		return
	}

	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Partial update: empty fields are left untouched, the timestamp is
	// always refreshed.
	if req.Title != "" {
		note.Title = req.Title
	}
	if req.Content != "" {
		note.Content = req.Content
	}
	note.UpdatedAt = time.Now()

	if err := a.Storage.UpdateNote(note); err != nil {
		a.internalError(w, err, "notes: update failed")
		return
	}

	a.publish(events.NoteUpdated, claims, note.ID.String(), note.Title)
	writeJSON(w, http.StatusOK, note)
}

// @Summary Delete a note
// @Tags Notes
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Note UUID"
// @Success 200 {object} map[string]string
// @Router /notes/{id} [delete]
func (a *API) DeleteNote(w http.ResponseWriter, r *http.Request) {
	claims := auth.FromContext(r)

	note, err := a.fetchNote(r, claims)
	if err != nil {
		a.internalError(w, err, "notes: fetch failed")
		return
	}
	if note == nil {
		writeError(w, http.StatusNotFound, "Note not found")
		return
	}

	if err := a.Storage.DeleteNote(note.ID, claims.TenantSlug); err != nil {
		a.internalError(w, err, "notes: delete failed")
		return
	}

	a.publish(events.NoteDeleted, claims, note.ID.String(), note.Title)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Note deleted"})
}

// fetchNote resolves the path id scoped to the requester's tenant.
// An unparsable id or a note owned by another tenant both come back as
// (nil, nil), indistinguishable from a missing note.
func (a *API) fetchNote(r *http.Request, claims *auth.Claims) (*model.Note, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return nil, nil
	}
	return a.Storage.GetNote(id, claims.TenantSlug)
}
