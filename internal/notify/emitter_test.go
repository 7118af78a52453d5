package notify

import (
	"testing"
	"time"

	"memoir/internal/models"
	"memoir/internal/store"
)

func snapshotOf(s store.State) func() store.State {
	return func() store.State { return s }
}

func newTestEmitter(s store.State, now time.Time) (*Emitter, *time.Time) {
	clock := now
	e := NewEmitter(snapshotOf(s))
	e.SetClock(func() time.Time { return clock })
	return e, &clock
}

func TestAchievementDedup(t *testing.T) {
	e, _ := newTestEmitter(store.NewState(), time.Now())

	e.ShowAchievement("First Game Complete!", "You finished your first brain exercise.")
	e.ShowAchievement("First Game Complete!", "You finished your first brain exercise.")

	if got := len(e.Active()); got != 1 {
		t.Errorf("duplicate achievement produced %d notifications, want 1", got)
	}
}

func TestDismissDoesNotResetDedup(t *testing.T) {
	e, _ := newTestEmitter(store.NewState(), time.Now())

	e.ShowAchievement("Streak!", "Three days in a row.")
	e.Dismiss(e.Active()[0].ID)
	e.ShowAchievement("Streak!", "Three days in a row.")

	if got := len(e.Active()); got != 0 {
		t.Errorf("dismissed notification re-raised, got %d active", got)
	}
}

func TestNotificationsExpire(t *testing.T) {
	e, clock := newTestEmitter(store.NewState(), time.Now())

	e.ShowAchievement("Well Done", "You earned it.")
	if len(e.Active()) != 1 {
		t.Fatal("expected one active notification")
	}

	*clock = clock.Add(achievementDuration + time.Second)
	if got := len(e.Active()); got != 0 {
		t.Errorf("expected expiry, got %d active", got)
	}
}

func TestEncouragementRepeats(t *testing.T) {
	e, clock := newTestEmitter(store.NewState(), time.Now())

	e.ShowEncouragement()
	*clock = clock.Add(encouragementDuration + time.Second)
	e.ShowEncouragement()

	if got := len(e.Active()); got != 1 {
		t.Errorf("encouragement should repeat after expiry, got %d active", got)
	}
}

func TestReminderFiresAtScheduledMinute(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 10, 0, time.UTC)
	s := store.NewState()
	s.CurrentUser = &models.User{ID: "u1", Name: "Margaret", Settings: models.DefaultSettings()}
	s.CalendarEvents = []models.CalendarEvent{
		{ID: "e1", Title: "Doctor visit", Time: "14:30", Reminder: true,
			Date: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), CreatedBy: "u1"},
		{ID: "e2", Title: "Lunch", Time: "12:00", Reminder: true,
			Date: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), CreatedBy: "u1"},
		{ID: "e3", Title: "Silent", Time: "14:30", Reminder: false,
			Date: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), CreatedBy: "u1"},
		{ID: "e4", Title: "Someone else's", Time: "14:30", Reminder: true,
			Date: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), CreatedBy: "u2"},
	}

	e, _ := newTestEmitter(s, now)
	e.Poll()

	var reminders []models.Notification
	for _, n := range e.Active() {
		if n.Kind == models.NotificationReminder {
			reminders = append(reminders, n)
		}
	}
	if len(reminders) != 1 || reminders[0].Title != "Reminder: Doctor visit" {
		t.Errorf("got reminders %+v, want exactly the 14:30 doctor visit", reminders)
	}
}

func TestReminderNotRepeatedWithinSameMinute(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 5, 0, time.UTC)
	s := store.NewState()
	s.CurrentUser = &models.User{ID: "u1", Settings: models.DefaultSettings()}
	s.CalendarEvents = []models.CalendarEvent{
		{ID: "e1", Title: "Medication", Time: "14:30", Reminder: true,
			Date: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), CreatedBy: "u1"},
	}

	e, clock := newTestEmitter(s, now)
	e.Poll()
	*clock = clock.Add(20 * time.Second)
	e.Poll()

	count := 0
	for _, n := range e.Active() {
		if n.Kind == models.NotificationReminder {
			count++
		}
	}
	if count != 1 {
		t.Errorf("reminder fired %d times within the same minute, want 1", count)
	}
}

func TestEncouragementSchedule(t *testing.T) {
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	s := store.NewState()
	s.CurrentUser = &models.User{ID: "u1", Settings: models.UserSettings{
		ReminderFrequency: models.FrequencyHigh,
	}}

	e, clock := newTestEmitter(s, now)

	e.Poll() // first poll raises immediately
	*clock = clock.Add(time.Minute)
	e.Poll() // 1 min later: below the 3 min high-frequency interval
	*clock = clock.Add(3 * time.Minute)
	e.Poll() // past the interval

	total := 0
	for _, n := range e.Active() {
		if n.Kind == models.NotificationEncouragement {
			total++
		}
	}
	// First one expired long ago (4s lifetime); only the last survives
	if total != 1 {
		t.Errorf("active encouragement = %d, want 1", total)
	}
}

func TestNoNotificationsWithoutUser(t *testing.T) {
	e, _ := newTestEmitter(store.NewState(), time.Now())
	e.Poll()
	if got := len(e.Active()); got != 0 {
		t.Errorf("poll without a user raised %d notifications", got)
	}
}
