package persistence

import (
	"encoding/json"
	"fmt"
	"log"

	"memoir/internal/models"
	"memoir/internal/store"
)

// Slot keys. Each piece of state lives in its own slot so a failure writing
// one never blocks the others.
const (
	SlotUser           = "memoir-user"
	SlotOnboarded      = "memoir-onboarded"
	SlotFlashcards     = "memoir-flashcards"
	SlotJournalEntries = "memoir-journal-entries"
	SlotCalendarEvents = "memoir-calendar-events"
	SlotGameSessions   = "memoir-game-sessions"
	SlotConnectedUsers = "memoir-connected-users"
	SlotAchievements   = "memoir-achievements"
	SlotActivities     = "memoir-activities"
)

// SlotStore is the key-value surface the adapter persists against
type SlotStore interface {
	GetSlot(key string) (value string, found bool, err error)
	SetSlot(key, value string) error
	DeleteSlot(key string) error
}

// Adapter maps application state to and from slot storage. Every slot is
// written and read independently; a corrupt or missing slot degrades to its
// default rather than failing the whole load.
type Adapter struct {
	slots SlotStore
}

func NewAdapter(slots SlotStore) *Adapter {
	return &Adapter{slots: slots}
}

// Save writes every slot from the given state. Failures are logged per slot
// and do not stop the remaining writes.
func (a *Adapter) Save(s store.State) {
	if s.CurrentUser != nil {
		a.saveJSON(SlotUser, s.CurrentUser)
	} else {
		if err := a.slots.DeleteSlot(SlotUser); err != nil {
			log.Printf("persistence: clearing %s: %v", SlotUser, err)
		}
	}

	onboarded := "false"
	if s.IsOnboarded {
		onboarded = "true"
	}
	if err := a.slots.SetSlot(SlotOnboarded, onboarded); err != nil {
		log.Printf("persistence: writing %s: %v", SlotOnboarded, err)
	}

	a.saveJSON(SlotFlashcards, emptyIfNil(s.Flashcards))
	a.saveJSON(SlotJournalEntries, emptyIfNil(s.JournalEntries))
	a.saveJSON(SlotCalendarEvents, emptyIfNil(s.CalendarEvents))
	a.saveJSON(SlotGameSessions, emptyIfNil(s.GameSessions))
	a.saveJSON(SlotConnectedUsers, emptyIfNil(s.ConnectedUsers))
	a.saveJSON(SlotAchievements, emptyIfNil(s.Achievements))
	a.saveJSON(SlotActivities, emptyIfNil(s.Activities))
}

// Load reconstructs state from storage. The user is restored only when the
// onboarded flag reads exactly "true"; each collection loads independently
// and falls back to empty on absence or parse failure.
func (a *Adapter) Load() store.State {
	s := store.NewState()

	if raw, ok := a.readSlot(SlotOnboarded); ok {
		s.IsOnboarded = raw == "true"
	}

	if s.IsOnboarded {
		var user models.User
		if a.loadJSON(SlotUser, &user) {
			s.CurrentUser = &user
		}
	}

	s.Flashcards = loadSlice[models.Flashcard](a, SlotFlashcards)
	s.JournalEntries = loadSlice[models.JournalEntry](a, SlotJournalEntries)
	s.CalendarEvents = loadSlice[models.CalendarEvent](a, SlotCalendarEvents)
	s.GameSessions = loadSlice[models.GameSession](a, SlotGameSessions)
	s.ConnectedUsers = loadSlice[models.User](a, SlotConnectedUsers)
	s.Achievements = loadSlice[models.Achievement](a, SlotAchievements)
	s.Activities = loadSlice[models.Activity](a, SlotActivities)

	return s
}

// Clear removes every slot, used on logout
func (a *Adapter) Clear() {
	keys := []string{
		SlotUser, SlotOnboarded, SlotFlashcards, SlotJournalEntries,
		SlotCalendarEvents, SlotGameSessions, SlotConnectedUsers,
		SlotAchievements, SlotActivities,
	}
	for _, key := range keys {
		if err := a.slots.DeleteSlot(key); err != nil {
			log.Printf("persistence: clearing %s: %v", key, err)
		}
	}
}

func (a *Adapter) saveJSON(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("persistence: encoding %s: %v", key, err)
		return
	}
	if err := a.slots.SetSlot(key, string(data)); err != nil {
		log.Printf("persistence: writing %s: %v", key, err)
	}
}

// readSlot fetches a slot and normalizes the legacy "undefined" literal,
// which some exports carry for absent values, to absence
func (a *Adapter) readSlot(key string) (string, bool) {
	raw, found, err := a.slots.GetSlot(key)
	if err != nil {
		log.Printf("persistence: reading %s: %v", key, err)
		return "", false
	}
	if !found || raw == "undefined" {
		return "", false
	}
	return raw, true
}

func (a *Adapter) loadJSON(key string, v any) bool {
	raw, ok := a.readSlot(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		log.Printf("persistence: decoding %s: %v", key, fmt.Errorf("invalid stored value: %w", err))
		return false
	}
	return true
}

// loadSlice decodes a collection slot, falling back to an empty slice when
// the slot is absent or unreadable. Decoding goes through a scratch slice so
// a partial parse never leaks into the result.
func loadSlice[T any](a *Adapter, key string) []T {
	var items []T
	if !a.loadJSON(key, &items) || items == nil {
		return []T{}
	}
	return items
}

func emptyIfNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
