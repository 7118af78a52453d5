package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"memoir/internal/models"
	"memoir/internal/store"
)

// NowFunc supplies the current time to handlers, swappable in tests
type NowFunc func() time.Time

// JournalHandler serves the diary entries
type JournalHandler struct {
	store *store.Store
	now   NowFunc
}

func NewJournalHandler(st *store.Store, now NowFunc) *JournalHandler {
	return &JournalHandler{store: st, now: now}
}

// List handles GET /api/journal
func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Snapshot().JournalEntries)
}

type createJournalRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Tags     []string `json:"tags"`
	IsPublic bool     `json:"isPublic"`
}

// Create handles POST /api/journal
func (h *JournalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createJournalRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "Error decoding journal entry", err)
		return
	}
	if strings.TrimSpace(req.Title) == "" && strings.TrimSpace(req.Content) == "" {
		respondWithError(w, http.StatusBadRequest, "Entry needs a title or content", "", nil)
		return
	}

	entry := models.JournalEntry{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Content:   req.Content,
		Tags:      req.Tags,
		CreatedBy: h.store.Snapshot().CurrentUser.ID,
		CreatedAt: h.now(),
		IsPublic:  req.IsPublic,
	}
	if entry.Tags == nil {
		entry.Tags = []string{}
	}

	h.store.Dispatch(store.AddJournalEntry{Entry: entry})
	writeJSON(w, http.StatusCreated, entry)
}

// Delete handles DELETE /api/journal/{id}
func (h *JournalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.store.Dispatch(store.DeleteJournalEntry{ID: r.PathValue("id")})
	w.WriteHeader(http.StatusNoContent)
}
