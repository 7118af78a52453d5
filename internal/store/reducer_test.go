package store

import (
	"testing"
	"time"

	"memoir/internal/models"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func reduce(s State, a Action) State {
	return ReduceAt(s, a, testNow)
}

func TestSetUserAndOnboarded(t *testing.T) {
	s := NewState()

	s = reduce(s, SetUser{User: models.User{ID: "u1", Name: "Margaret", Role: models.RoleParticipant}})
	if s.CurrentUser == nil || s.CurrentUser.Name != "Margaret" {
		t.Fatalf("expected current user Margaret, got %+v", s.CurrentUser)
	}
	if s.IsOnboarded {
		t.Error("setting a user should not mark onboarding complete")
	}

	s = reduce(s, SetOnboarded{Onboarded: true})
	if !s.IsOnboarded {
		t.Error("expected onboarded after SetOnboarded")
	}
}

func TestAddAndDeleteFlashcard(t *testing.T) {
	s := NewState()
	s = reduce(s, AddFlashcard{Flashcard: models.Flashcard{ID: "f1", Title: "Granddaughter"}})
	s = reduce(s, AddFlashcard{Flashcard: models.Flashcard{ID: "f2", Title: "Old House"}})

	if len(s.Flashcards) != 2 {
		t.Fatalf("expected 2 flashcards, got %d", len(s.Flashcards))
	}

	s = reduce(s, DeleteFlashcard{ID: "f1"})
	if len(s.Flashcards) != 1 || s.Flashcards[0].ID != "f2" {
		t.Errorf("expected only f2 to remain, got %+v", s.Flashcards)
	}

	// Deleting an unknown ID is a no-op
	before := len(s.Flashcards)
	s = reduce(s, DeleteFlashcard{ID: "missing"})
	if len(s.Flashcards) != before {
		t.Errorf("delete of unknown ID changed the collection")
	}
}

func TestDeleteJournalEntryAndCalendarEvent(t *testing.T) {
	s := NewState()
	s = reduce(s, AddJournalEntry{Entry: models.JournalEntry{ID: "j1"}})
	s = reduce(s, AddCalendarEvent{Event: models.CalendarEvent{ID: "c1"}})

	s = reduce(s, DeleteJournalEntry{ID: "j1"})
	s = reduce(s, DeleteCalendarEvent{ID: "c1"})

	if len(s.JournalEntries) != 0 || len(s.CalendarEvents) != 0 {
		t.Errorf("expected empty collections, got %d entries, %d events",
			len(s.JournalEntries), len(s.CalendarEvents))
	}
}

func TestAddGameSessionRecomputesStats(t *testing.T) {
	s := NewState()
	s = reduce(s, SetUser{User: models.User{ID: "u1", Settings: models.DefaultSettings()}})

	first := testNow.Add(-2 * time.Hour)
	second := testNow.Add(-1 * time.Hour)
	s = reduce(s, AddGameSession{Session: models.GameSession{
		ID: "s1", GameType: models.GamePatternSequence, Score: 40, CompletedAt: first, UserID: "u1",
	}})
	s = reduce(s, AddGameSession{Session: models.GameSession{
		ID: "s2", GameType: models.GameWordSearch, Score: 60, CompletedAt: second, UserID: "u1",
	}})

	stats := s.CurrentUser.Stats
	if stats.ActivitiesCompleted != 2 {
		t.Errorf("ActivitiesCompleted = %d, want 2", stats.ActivitiesCompleted)
	}
	if stats.TotalScore != 100 {
		t.Errorf("TotalScore = %d, want 100", stats.TotalScore)
	}
	if stats.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d, want 1", stats.CurrentStreak)
	}
	if stats.LastActivityDate == nil || !stats.LastActivityDate.Equal(second) {
		t.Errorf("LastActivityDate = %v, want %v", stats.LastActivityDate, second)
	}
}

func TestAddGameSessionWithoutUser(t *testing.T) {
	s := NewState()
	s = reduce(s, AddGameSession{Session: models.GameSession{ID: "s1", Score: 10, CompletedAt: testNow}})

	if len(s.GameSessions) != 1 {
		t.Errorf("session should still be recorded without a current user")
	}
	if s.CurrentUser != nil {
		t.Errorf("no user should have been conjured")
	}
}

func TestUpdateUserSettingsMerge(t *testing.T) {
	s := NewState()
	s = reduce(s, SetUser{User: models.User{ID: "u1", Settings: models.DefaultSettings()}})

	on := true
	s = reduce(s, UpdateUserSettings{Patch: models.UserSettingsPatch{
		FontSize:     "large",
		HighContrast: &on,
	}})

	got := s.CurrentUser.Settings
	if got.FontSize != "large" {
		t.Errorf("FontSize = %q, want large", got.FontSize)
	}
	if !got.HighContrast {
		t.Error("HighContrast should be true")
	}
	if got.ReminderFrequency != models.FrequencyMedium {
		t.Errorf("ReminderFrequency = %q, should be untouched", got.ReminderFrequency)
	}

	// A later patch that omits the booleans leaves them as they are
	s = reduce(s, UpdateUserSettings{Patch: models.UserSettingsPatch{FontSize: "medium"}})
	got = s.CurrentUser.Settings
	if got.FontSize != "medium" {
		t.Errorf("FontSize = %q, want medium", got.FontSize)
	}
	if !got.HighContrast {
		t.Error("omitted HighContrast must keep its previous value")
	}

	// An explicit false still switches the boolean off
	off := false
	s = reduce(s, UpdateUserSettings{Patch: models.UserSettingsPatch{HighContrast: &off}})
	if s.CurrentUser.Settings.HighContrast {
		t.Error("explicit false should disable HighContrast")
	}
}

func TestUpdateUserSettingsWithoutUser(t *testing.T) {
	s := NewState()
	got := reduce(s, UpdateUserSettings{Patch: models.UserSettingsPatch{FontSize: "large"}})
	if got.CurrentUser != nil {
		t.Error("settings update with no user should be a no-op")
	}
}

func TestConnectUser(t *testing.T) {
	s := NewState()
	s = reduce(s, SetUser{User: models.User{ID: "care1", Role: models.RoleCaregiver}})
	s = reduce(s, ConnectUser{User: models.User{ID: "p1", Name: "Harold", Role: models.RoleParticipant}})

	if len(s.ConnectedUsers) != 1 || s.ConnectedUsers[0].ID != "p1" {
		t.Fatalf("expected connected user p1, got %+v", s.ConnectedUsers)
	}
	// Connecting appends a snapshot only; the acting user's record must not
	// change
	if len(s.CurrentUser.CaregiverFor) != 0 {
		t.Errorf("CaregiverFor = %v, want empty", s.CurrentUser.CaregiverFor)
	}
	if s.CurrentUser.ID != "care1" || s.CurrentUser.Role != models.RoleCaregiver {
		t.Errorf("acting user mutated by connect: %+v", s.CurrentUser)
	}
}

func TestUpdateActivity(t *testing.T) {
	s := NewState()
	s = reduce(s, AddActivity{Activity: models.Activity{ID: "a1", Title: "Jigsaw", Completed: false}})

	done := testNow
	s = reduce(s, UpdateActivity{Activity: models.Activity{
		ID: "a1", Title: "Jigsaw", Completed: true, CompletedAt: &done, Score: 85,
	}})

	if !s.Activities[0].Completed || s.Activities[0].Score != 85 {
		t.Errorf("activity not updated: %+v", s.Activities[0])
	}

	// Unknown ID does nothing
	s = reduce(s, UpdateActivity{Activity: models.Activity{ID: "zzz", Title: "Ghost"}})
	if len(s.Activities) != 1 {
		t.Errorf("update of unknown activity should not append")
	}
}

func TestLogoutResetsState(t *testing.T) {
	s := NewState()
	s = reduce(s, SetUser{User: models.User{ID: "u1"}})
	s = reduce(s, SetOnboarded{Onboarded: true})
	s = reduce(s, AddFlashcard{Flashcard: models.Flashcard{ID: "f1"}})
	s = reduce(s, EarnAchievement{Achievement: models.Achievement{ID: "ach1"}})

	s = reduce(s, Logout{})

	if s.CurrentUser != nil {
		t.Error("logout should clear the current user")
	}
	if s.IsOnboarded {
		t.Error("logout should reset onboarding")
	}
	if len(s.Flashcards) != 0 || len(s.Achievements) != 0 {
		t.Error("logout should clear collections")
	}
	if s.CurrentView != "home" {
		t.Errorf("CurrentView = %q, want home", s.CurrentView)
	}
}

func TestReducerDoesNotMutateInput(t *testing.T) {
	s := NewState()
	s = reduce(s, AddFlashcard{Flashcard: models.Flashcard{ID: "f1"}})

	_ = reduce(s, DeleteFlashcard{ID: "f1"})
	if len(s.Flashcards) != 1 {
		t.Error("input state was mutated by the reducer")
	}

	_ = reduce(s, AddFlashcard{Flashcard: models.Flashcard{ID: "f2"}})
	if len(s.Flashcards) != 1 {
		t.Error("append aliased the input state's backing array")
	}
}
