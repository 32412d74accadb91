package api

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"tenantnotes/internal/auth"
	"tenantnotes/internal/events"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// internalError logs the real failure and answers with a generic
// message so no store detail leaks to the client.
func (a *API) internalError(w http.ResponseWriter, err error, context string) {
	a.Log.Error(context, zap.Error(err))
	writeError(w, http.StatusInternalServerError, "Internal server error")
}

// publish emits a domain event, best-effort. Failures are logged and
// never surfaced to the client.
func (a *API) publish(eventType string, claims *auth.Claims, subjectID, detail string) {
	err := a.Publisher.Publish(events.Event{
		Type:       eventType,
		TenantSlug: claims.TenantSlug,
		ActorID:    claims.ID,
		SubjectID:  subjectID,
		Detail:     detail,
		OccurredAt: time.Now(),
	})
	if err != nil {
		a.Log.Warn("failed to publish event",
			zap.String("type", eventType),
			zap.String("tenant", claims.TenantSlug),
			zap.Error(err))
	}
}
