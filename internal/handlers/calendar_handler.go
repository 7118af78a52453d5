package handlers

import (
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"memoir/internal/models"
	"memoir/internal/store"
)

var timeOfDayPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// CalendarHandler serves the dated events
type CalendarHandler struct {
	store *store.Store
}

func NewCalendarHandler(st *store.Store) *CalendarHandler {
	return &CalendarHandler{store: st}
}

// List handles GET /api/calendar
func (h *CalendarHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Snapshot().CalendarEvents)
}

type createEventRequest struct {
	Title       string `json:"title"`
	Date        string `json:"date"` // RFC 3339 or YYYY-MM-DD
	Time        string `json:"time"` // HH:MM
	Description string `json:"description"`
	Type        string `json:"type"`
	Location    string `json:"location"`
	Reminder    bool   `json:"reminder"`
}

// Create handles POST /api/calendar
func (h *CalendarHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEventRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "Error decoding calendar event", err)
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		respondWithError(w, http.StatusBadRequest, "Title is required", "", nil)
		return
	}
	if !timeOfDayPattern.MatchString(req.Time) {
		respondWithError(w, http.StatusBadRequest, "Time must be HH:MM", "", nil)
		return
	}

	date, err := parseEventDate(req.Date)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Date must be RFC 3339 or YYYY-MM-DD", "Error parsing event date", err)
		return
	}

	eventType := models.EventType(req.Type)
	switch eventType {
	case models.EventAppointment, models.EventMedication, models.EventActivity, models.EventSocial:
	case "":
		eventType = models.EventActivity
	default:
		respondWithError(w, http.StatusBadRequest, "Unknown event type", "", nil)
		return
	}

	event := models.CalendarEvent{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(req.Title),
		Time:        req.Time,
		Description: req.Description,
		Type:        eventType,
		Location:    req.Location,
		Reminder:    req.Reminder,
		Date:        date,
		CreatedBy:   h.store.Snapshot().CurrentUser.ID,
	}

	h.store.Dispatch(store.AddCalendarEvent{Event: event})
	writeJSON(w, http.StatusCreated, event)
}

// Delete handles DELETE /api/calendar/{id}
func (h *CalendarHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.store.Dispatch(store.DeleteCalendarEvent{ID: r.PathValue("id")})
	w.WriteHeader(http.StatusNoContent)
}

func parseEventDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
