package store

import (
	"time"

	"memoir/internal/models"
)

// ReduceAt applies an action to a state and returns the next state. It is
// pure: the input state is never mutated and no action can fail. Deletes of
// unknown IDs and user updates with no current user are silent no-ops. The
// reference time is only consulted when recomputing streaks.
func ReduceAt(s State, a Action, now time.Time) State {
	next := s.Clone()

	switch act := a.(type) {
	case SetUser:
		u := act.User
		next.CurrentUser = &u

	case SetOnboarded:
		next.IsOnboarded = act.Onboarded

	case AddActivity:
		next.Activities = append(next.Activities, act.Activity)

	case UpdateActivity:
		for i := range next.Activities {
			if next.Activities[i].ID == act.Activity.ID {
				next.Activities[i] = act.Activity
				break
			}
		}

	case AddGameSession:
		next.GameSessions = append(next.GameSessions, act.Session)
		if next.CurrentUser != nil {
			next.CurrentUser.Stats = computeStats(next.GameSessions, next.CurrentUser.ID, now)
		}

	case AddFlashcard:
		next.Flashcards = append(next.Flashcards, act.Flashcard)

	case DeleteFlashcard:
		next.Flashcards = deleteByID(next.Flashcards, act.ID, func(f models.Flashcard) string { return f.ID })

	case AddJournalEntry:
		next.JournalEntries = append(next.JournalEntries, act.Entry)

	case DeleteJournalEntry:
		next.JournalEntries = deleteByID(next.JournalEntries, act.ID, func(e models.JournalEntry) string { return e.ID })

	case AddCalendarEvent:
		next.CalendarEvents = append(next.CalendarEvents, act.Event)

	case DeleteCalendarEvent:
		next.CalendarEvents = deleteByID(next.CalendarEvents, act.ID, func(e models.CalendarEvent) string { return e.ID })

	case SetCurrentView:
		next.CurrentView = act.View

	case UpdateUserSettings:
		if next.CurrentUser != nil {
			next.CurrentUser.Settings = mergeSettings(next.CurrentUser.Settings, act.Patch)
		}

	case UpdateUserStats:
		if next.CurrentUser != nil {
			next.CurrentUser.Stats = act.Stats
		}

	case ConnectUser:
		// The connected user is a read-only snapshot; the acting user's own
		// record stays untouched.
		next.ConnectedUsers = append(next.ConnectedUsers, act.User)

	case EarnAchievement:
		next.Achievements = append(next.Achievements, act.Achievement)

	case Logout:
		return NewState()
	}

	return next
}

// computeStats derives aggregate stats from the user's own session history.
// Sessions recorded under connected users' ids never count toward the
// current user's totals.
func computeStats(sessions []models.GameSession, userID string, now time.Time) models.UserStats {
	var own []models.GameSession
	for _, sess := range sessions {
		if sess.UserID == userID {
			own = append(own, sess)
		}
	}

	stats := models.UserStats{
		ActivitiesCompleted: len(own),
		CurrentStreak:       CurrentStreak(own, now),
	}
	for _, sess := range own {
		stats.TotalScore += sess.Score
	}
	if len(own) > 0 {
		last := own[0].CompletedAt
		for _, sess := range own[1:] {
			if sess.CompletedAt.After(last) {
				last = sess.CompletedAt
			}
		}
		stats.LastActivityDate = &last
	}
	return stats
}

// mergeSettings overlays the set fields of patch onto base. Booleans are
// pointers in the patch so an omitted field never clobbers an explicit
// false-or-true choice already stored.
func mergeSettings(base models.UserSettings, patch models.UserSettingsPatch) models.UserSettings {
	merged := base
	if patch.FontSize != "" {
		merged.FontSize = patch.FontSize
	}
	if patch.HighContrast != nil {
		merged.HighContrast = *patch.HighContrast
	}
	if patch.VoiceEnabled != nil {
		merged.VoiceEnabled = *patch.VoiceEnabled
	}
	if patch.ReminderFrequency != "" {
		merged.ReminderFrequency = patch.ReminderFrequency
	}
	if patch.PreferredActivities != nil {
		merged.PreferredActivities = patch.PreferredActivities
	}
	return merged
}

func deleteByID[T any](items []T, id string, key func(T) string) []T {
	out := items[:0]
	for _, item := range items {
		if key(item) != id {
			out = append(out, item)
		}
	}
	return out
}
