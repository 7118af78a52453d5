package store

import "memoir/internal/models"

// State is the complete application state. It is treated as immutable:
// the reducer returns a fresh State and never mutates the one it was given.
type State struct {
	CurrentUser    *models.User           `json:"currentUser"`
	IsOnboarded    bool                   `json:"isOnboarded"`
	CurrentView    string                 `json:"currentView"`
	Flashcards     []models.Flashcard     `json:"flashcards"`
	JournalEntries []models.JournalEntry  `json:"journalEntries"`
	CalendarEvents []models.CalendarEvent `json:"calendarEvents"`
	GameSessions   []models.GameSession   `json:"gameSessions"`
	ConnectedUsers []models.User          `json:"connectedUsers"`
	Achievements   []models.Achievement   `json:"achievements"`
	Activities     []models.Activity      `json:"activities"`
}

// NewState returns the initial empty state
func NewState() State {
	return State{
		CurrentView:    "home",
		Flashcards:     []models.Flashcard{},
		JournalEntries: []models.JournalEntry{},
		CalendarEvents: []models.CalendarEvent{},
		GameSessions:   []models.GameSession{},
		ConnectedUsers: []models.User{},
		Achievements:   []models.Achievement{},
		Activities:     []models.Activity{},
	}
}

// Clone returns a deep enough copy of s for reducer use: collection slices
// are copied so appends never alias, and CurrentUser is copied by value.
// Elements themselves are treated as immutable records and shared.
func (s State) Clone() State {
	next := s
	if s.CurrentUser != nil {
		u := *s.CurrentUser
		next.CurrentUser = &u
	}
	next.Flashcards = append([]models.Flashcard(nil), s.Flashcards...)
	next.JournalEntries = append([]models.JournalEntry(nil), s.JournalEntries...)
	next.CalendarEvents = append([]models.CalendarEvent(nil), s.CalendarEvents...)
	next.GameSessions = append([]models.GameSession(nil), s.GameSessions...)
	next.ConnectedUsers = append([]models.User(nil), s.ConnectedUsers...)
	next.Achievements = append([]models.Achievement(nil), s.Achievements...)
	next.Activities = append([]models.Activity(nil), s.Activities...)
	return next
}
