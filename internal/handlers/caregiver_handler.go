package handlers

import (
	"net/http"
	"strings"

	"memoir/internal/connect"
	"memoir/internal/models"
	"memoir/internal/store"
)

// CaregiverHandler links caregivers to participants by connection code and
// aggregates a dashboard over the connected snapshots
type CaregiverHandler struct {
	store    *store.Store
	provider connect.Provider
}

func NewCaregiverHandler(st *store.Store, provider connect.Provider) *CaregiverHandler {
	return &CaregiverHandler{store: st, provider: provider}
}

type connectRequest struct {
	Code string `json:"code"`
}

// Connect handles POST /api/connections. The resolved user is appended to
// the connected list as a read-only snapshot; the current user's own record
// only gains the link, never the snapshot's data.
func (h *CaregiverHandler) Connect(w http.ResponseWriter, r *http.Request) {
	var req connectRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "Error decoding connection request", err)
		return
	}
	code := strings.TrimSpace(strings.ToLower(req.Code))
	if code == "" {
		respondWithError(w, http.StatusBadRequest, "Connection code is required", "", nil)
		return
	}

	state := h.store.Snapshot()
	if state.CurrentUser.ConnectionCode == code {
		respondWithError(w, http.StatusBadRequest, "That is your own connection code", "", nil)
		return
	}
	for _, u := range state.ConnectedUsers {
		if u.ConnectionCode == code {
			respondWithError(w, http.StatusConflict, "Already connected to that user", "", nil)
			return
		}
	}

	user, err := h.provider.Resolve(code)
	if err != nil {
		respondWithError(w, http.StatusNotFound, "No user found for that code", "Error resolving connection code", err)
		return
	}

	after := h.store.Dispatch(store.ConnectUser{User: user})
	writeJSON(w, http.StatusCreated, after.ConnectedUsers[len(after.ConnectedUsers)-1])
}

// List handles GET /api/connections
func (h *CaregiverHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Snapshot().ConnectedUsers)
}

// dashboardEntry summarizes one connected user's activity
type dashboardEntry struct {
	User                models.User `json:"user"`
	SessionsRecorded    int         `json:"sessionsRecorded"`
	ScoreRecorded       int         `json:"scoreRecorded"`
	ActivitiesCompleted int         `json:"activitiesCompleted"`
	CurrentStreak       int         `json:"currentStreak"`
}

// Dashboard handles GET /api/dashboard. Each entry combines the snapshot's
// own stats with any sessions recorded locally under that user's id.
func (h *CaregiverHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	state := h.store.Snapshot()

	entries := make([]dashboardEntry, 0, len(state.ConnectedUsers))
	for _, user := range state.ConnectedUsers {
		entry := dashboardEntry{
			User:                user,
			ActivitiesCompleted: user.Stats.ActivitiesCompleted,
			CurrentStreak:       user.Stats.CurrentStreak,
		}
		for _, sess := range state.GameSessions {
			if sess.UserID == user.ID {
				entry.SessionsRecorded++
				entry.ScoreRecorded += sess.Score
			}
		}
		entries = append(entries, entry)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"caregiver":   state.CurrentUser,
		"connections": entries,
	})
}
