package handlers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"memoir/internal/models"
	"memoir/internal/store"
)

// FlashcardHandler serves the memory-aid card collection
type FlashcardHandler struct {
	store *store.Store
	now   NowFunc
}

func NewFlashcardHandler(st *store.Store, now NowFunc) *FlashcardHandler {
	return &FlashcardHandler{store: st, now: now}
}

// List handles GET /api/flashcards
func (h *FlashcardHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Snapshot().Flashcards)
}

type createFlashcardRequest struct {
	Title     string   `json:"title"`
	FrontText string   `json:"frontText"`
	BackText  string   `json:"backText"`
	Category  string   `json:"category"`
	Tags      []string `json:"tags"`
}

// Create handles POST /api/flashcards
func (h *FlashcardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createFlashcardRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "Error decoding flashcard", err)
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		respondWithError(w, http.StatusBadRequest, "Title is required", "", nil)
		return
	}
	category := models.FlashcardCategory(req.Category)
	switch category {
	case models.CategoryFamily, models.CategoryFriends, models.CategoryPlaces,
		models.CategoryMemories, models.CategoryOther:
	case "":
		category = models.CategoryOther
	default:
		respondWithError(w, http.StatusBadRequest, "Unknown category", "", nil)
		return
	}

	state := h.store.Snapshot()
	card := models.Flashcard{
		ID:        uuid.NewString(),
		Title:     strings.TrimSpace(req.Title),
		FrontText: req.FrontText,
		BackText:  req.BackText,
		Category:  category,
		CreatedBy: state.CurrentUser.ID,
		Tags:      req.Tags,
		CreatedAt: h.now(),
	}
	if card.Tags == nil {
		card.Tags = []string{}
	}

	h.store.Dispatch(store.AddFlashcard{Flashcard: card})
	writeJSON(w, http.StatusCreated, card)
}

// Delete handles DELETE /api/flashcards/{id}. Deleting an unknown id is
// not an error; the collection simply stays as it was.
func (h *FlashcardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	h.store.Dispatch(store.DeleteFlashcard{ID: id})
	w.WriteHeader(http.StatusNoContent)
}
