package handlers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"memoir/internal/models"
	"memoir/internal/store"
)

// ActivityHandler serves the suggested-activity catalog
type ActivityHandler struct {
	store *store.Store
	now   NowFunc
}

func NewActivityHandler(st *store.Store, now NowFunc) *ActivityHandler {
	return &ActivityHandler{store: st, now: now}
}

// List handles GET /api/activities
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Snapshot().Activities)
}

type createActivityRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Difficulty  string `json:"difficulty"`
	Duration    int    `json:"duration"`
}

// Create handles POST /api/activities
func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createActivityRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "Error decoding activity", err)
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		respondWithError(w, http.StatusBadRequest, "Title is required", "", nil)
		return
	}

	activityType := models.ActivityType(req.Type)
	switch activityType {
	case models.ActivityPuzzle, models.ActivityWordGame, models.ActivitySequencing, models.ActivityMemory:
	case "":
		activityType = models.ActivityPuzzle
	default:
		respondWithError(w, http.StatusBadRequest, "Unknown activity type", "", nil)
		return
	}

	difficulty := models.Difficulty(req.Difficulty)
	switch difficulty {
	case models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard:
	case "":
		difficulty = models.DifficultyMedium
	default:
		respondWithError(w, http.StatusBadRequest, "Difficulty must be easy, medium or hard", "", nil)
		return
	}

	activity := models.Activity{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Type:        activityType,
		Difficulty:  difficulty,
		Duration:    req.Duration,
		UserID:      h.store.Snapshot().CurrentUser.ID,
	}

	h.store.Dispatch(store.AddActivity{Activity: activity})
	writeJSON(w, http.StatusCreated, activity)
}

type completeActivityRequest struct {
	Score int `json:"score"`
}

// Complete handles PUT /api/activities/{id}/complete
func (h *ActivityHandler) Complete(w http.ResponseWriter, r *http.Request) {
	var req completeActivityRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "Error decoding completion", err)
		return
	}

	id := r.PathValue("id")
	var found *models.Activity
	for _, a := range h.store.Snapshot().Activities {
		if a.ID == id {
			found = &a
			break
		}
	}
	if found == nil {
		respondWithError(w, http.StatusNotFound, "No such activity", "", nil)
		return
	}

	now := h.now()
	found.Completed = true
	found.CompletedAt = &now
	found.Score = req.Score

	h.store.Dispatch(store.UpdateActivity{Activity: *found})
	writeJSON(w, http.StatusOK, found)
}
