package handlers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"memoir/internal/codes"
	"memoir/internal/models"
	"memoir/internal/persistence"
	"memoir/internal/store"
)

// OnboardingHandler manages profile creation, the onboarding gate, the
// current-user surface and logout
type OnboardingHandler struct {
	store   *store.Store
	adapter *persistence.Adapter
}

func NewOnboardingHandler(st *store.Store, adapter *persistence.Adapter) *OnboardingHandler {
	return &OnboardingHandler{store: st, adapter: adapter}
}

type createProfileRequest struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// CreateProfile handles POST /api/onboarding/profile
func (h *OnboardingHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var req createProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "Error decoding profile request", err)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		respondWithError(w, http.StatusBadRequest, "Name is required", "", nil)
		return
	}
	role := models.Role(req.Role)
	if role != models.RoleParticipant && role != models.RoleCaregiver {
		respondWithError(w, http.StatusBadRequest, "Role must be participant or caregiver", "", nil)
		return
	}

	code, err := codes.Generate()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to create profile", "Error generating connection code", err)
		return
	}

	user := models.User{
		ID:               uuid.NewString(),
		Name:             req.Name,
		Role:             role,
		ProfileCompleted: true,
		ConnectionCode:   code,
		Settings:         models.DefaultSettings(),
	}

	state := h.store.Dispatch(store.SetUser{User: user})
	writeJSON(w, http.StatusCreated, state.CurrentUser)
}

// Complete handles POST /api/onboarding/complete
func (h *OnboardingHandler) Complete(w http.ResponseWriter, r *http.Request) {
	if h.store.Snapshot().CurrentUser == nil {
		respondWithError(w, http.StatusBadRequest, "Create a profile first", "", nil)
		return
	}
	state := h.store.Dispatch(store.SetOnboarded{Onboarded: true})
	writeJSON(w, http.StatusOK, map[string]bool{"onboarded": state.IsOnboarded})
}

// Me handles GET /api/me
func (h *OnboardingHandler) Me(w http.ResponseWriter, r *http.Request) {
	state := h.store.Snapshot()
	writeJSON(w, http.StatusOK, map[string]any{
		"user":        state.CurrentUser,
		"onboarded":   state.IsOnboarded,
		"currentView": state.CurrentView,
	})
}

// UpdateSettings handles PUT /api/me/settings. Fields omitted from the body
// keep their current values.
func (h *OnboardingHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var patch models.UserSettingsPatch
	if err := decodeJSON(r, &patch); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "Error decoding settings", err)
		return
	}

	if patch.ReminderFrequency != "" {
		switch patch.ReminderFrequency {
		case models.FrequencyLow, models.FrequencyMedium, models.FrequencyHigh:
		default:
			respondWithError(w, http.StatusBadRequest, "Reminder frequency must be low, medium or high", "", nil)
			return
		}
	}

	state := h.store.Dispatch(store.UpdateUserSettings{Patch: patch})
	writeJSON(w, http.StatusOK, state.CurrentUser.Settings)
}

type setViewRequest struct {
	View string `json:"view"`
}

// SetView handles PUT /api/view
func (h *OnboardingHandler) SetView(w http.ResponseWriter, r *http.Request) {
	var req setViewRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "Error decoding view request", err)
		return
	}
	if req.View == "" {
		respondWithError(w, http.StatusBadRequest, "View is required", "", nil)
		return
	}
	state := h.store.Dispatch(store.SetCurrentView{View: req.View})
	writeJSON(w, http.StatusOK, map[string]string{"currentView": state.CurrentView})
}

// Logout handles POST /api/logout. It resets the state and wipes the
// persisted slots so the next start boots fresh.
func (h *OnboardingHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.store.Dispatch(store.Logout{})
	h.adapter.Clear()
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}
