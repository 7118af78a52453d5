package store

import "memoir/internal/models"

// Action is the closed set of state transitions. The unexported marker
// method keeps the set sealed to this package's declarations.
type Action interface {
	isAction()
}

// SetUser replaces the current user
type SetUser struct {
	User models.User
}

// SetOnboarded marks onboarding as complete or not
type SetOnboarded struct {
	Onboarded bool
}

// AddActivity appends an activity to the catalog
type AddActivity struct {
	Activity models.Activity
}

// UpdateActivity replaces the activity with a matching ID. Unknown IDs are
// a silent no-op.
type UpdateActivity struct {
	Activity models.Activity
}

// AddGameSession appends a finished game session and recomputes the current
// user's aggregate stats from the full session history
type AddGameSession struct {
	Session models.GameSession
}

// AddFlashcard appends a flashcard
type AddFlashcard struct {
	Flashcard models.Flashcard
}

// DeleteFlashcard removes the flashcard with the given ID, if present
type DeleteFlashcard struct {
	ID string
}

// AddJournalEntry appends a journal entry
type AddJournalEntry struct {
	Entry models.JournalEntry
}

// DeleteJournalEntry removes the journal entry with the given ID, if present
type DeleteJournalEntry struct {
	ID string
}

// AddCalendarEvent appends a calendar event
type AddCalendarEvent struct {
	Event models.CalendarEvent
}

// DeleteCalendarEvent removes the calendar event with the given ID, if present
type DeleteCalendarEvent struct {
	ID string
}

// SetCurrentView changes the active view name
type SetCurrentView struct {
	View string
}

// UpdateUserSettings merges a partial settings patch into the current
// user's settings. Omitted fields keep their values. No-op when there is no
// current user.
type UpdateUserSettings struct {
	Patch models.UserSettingsPatch
}

// UpdateUserStats replaces the current user's stats wholesale. No-op when
// there is no current user.
type UpdateUserStats struct {
	Stats models.UserStats
}

// ConnectUser appends a user snapshot to the connected list. The current
// user's own record is never touched.
type ConnectUser struct {
	User models.User
}

// EarnAchievement appends an earned achievement
type EarnAchievement struct {
	Achievement models.Achievement
}

// Logout resets the state to its initial value
type Logout struct{}

func (SetUser) isAction()             {}
func (SetOnboarded) isAction()        {}
func (AddActivity) isAction()         {}
func (UpdateActivity) isAction()      {}
func (AddGameSession) isAction()      {}
func (AddFlashcard) isAction()        {}
func (DeleteFlashcard) isAction()     {}
func (AddJournalEntry) isAction()     {}
func (DeleteJournalEntry) isAction()  {}
func (AddCalendarEvent) isAction()    {}
func (DeleteCalendarEvent) isAction() {}
func (SetCurrentView) isAction()      {}
func (UpdateUserSettings) isAction()  {}
func (UpdateUserStats) isAction()     {}
func (ConnectUser) isAction()         {}
func (EarnAchievement) isAction()     {}
func (Logout) isAction()              {}
