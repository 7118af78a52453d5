package handlers

import (
	"net/http"

	"memoir/internal/notify"
)

// NotificationHandler exposes the emitter's visible set
type NotificationHandler struct {
	emitter *notify.Emitter
}

func NewNotificationHandler(emitter *notify.Emitter) *NotificationHandler {
	return &NotificationHandler{emitter: emitter}
}

// Active handles GET /api/notifications
func (h *NotificationHandler) Active(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.emitter.Active())
}

// Dismiss handles DELETE /api/notifications/{id}
func (h *NotificationHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	h.emitter.Dismiss(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}
