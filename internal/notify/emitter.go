package notify

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"memoir/internal/models"
	"memoir/internal/store"
)

// Display durations per notification kind
const (
	achievementDuration   = 6 * time.Second
	reminderDuration      = 8 * time.Second
	encouragementDuration = 4 * time.Second
	milestoneDuration     = 7 * time.Second
	welcomeDuration       = 5 * time.Second

	welcomeDelay = 2 * time.Second
	pollInterval = time.Minute
)

var encouragementTemplates = []struct {
	title   string
	message string
}{
	{"Keep Going!", "You're doing wonderfully today."},
	{"Great Progress!", "Every activity helps keep your mind sharp."},
	{"Well Done!", "Taking time for yourself is important."},
	{"You've Got This!", "Small steps every day make a big difference."},
}

// Emitter raises transient notifications against the current state. Reminder
// and milestone messages are deduplicated for the lifetime of the process so
// the minute poll never re-raises one already shown; encouragement repeats
// on its own schedule and is exempt.
type Emitter struct {
	mu                sync.Mutex
	snapshot          func() store.State
	active            []models.Notification
	history           map[string]bool
	welcomed          bool
	lastEncouragement time.Time
	now               func() time.Time
	rng               *rand.Rand
}

func NewEmitter(snapshot func() store.State) *Emitter {
	return &Emitter{
		snapshot: snapshot,
		history:  map[string]bool{},
		now:      time.Now,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetClock overrides the emitter's time source
func (e *Emitter) SetClock(now func() time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.now = now
}

// Active returns the notifications that have not yet expired, pruning the
// rest
func (e *Emitter) Active() []models.Notification {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pruneLocked()
	return append([]models.Notification(nil), e.active...)
}

// Dismiss removes a notification from the visible set ahead of its expiry.
// Its dedup history entry survives.
func (e *Emitter) Dismiss(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	kept := e.active[:0]
	for _, n := range e.active {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	e.active = kept
}

// ShowAchievement raises an achievement notification
func (e *Emitter) ShowAchievement(title, message string) {
	e.emit(models.NotificationAchievement, title, message, achievementDuration, true)
}

// ShowMilestone raises a milestone notification
func (e *Emitter) ShowMilestone(title, message string) {
	e.emit(models.NotificationMilestone, title, message, milestoneDuration, true)
}

// ShowReminder raises a reminder with an explicit dedup key
func (e *Emitter) ShowReminder(title, message, dedupKey string) {
	e.emitKeyed(models.NotificationReminder, title, message, reminderDuration, dedupKey)
}

// ShowEncouragement raises a randomly chosen encouragement message. These
// repeat by design, so no dedup applies.
func (e *Emitter) ShowEncouragement() {
	e.mu.Lock()
	tmpl := encouragementTemplates[e.rng.Intn(len(encouragementTemplates))]
	e.mu.Unlock()
	e.emit(models.NotificationEncouragement, tmpl.title, tmpl.message, encouragementDuration, false)
}

// Run polls once a minute, raising due reminders and scheduled
// encouragement until the context is cancelled. The welcome greeting fires
// shortly after startup.
func (e *Emitter) Run(ctx context.Context) {
	welcome := time.NewTimer(welcomeDelay)
	defer welcome.Stop()
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-welcome.C:
			// No user yet means onboarding is still in progress; try again
			if !e.welcomeUser() {
				welcome.Reset(welcomeDelay)
			}
		case <-ticker.C:
			e.poll()
		}
	}
}

// Poll runs one scheduling pass, exposed for direct invocation
func (e *Emitter) Poll() {
	e.poll()
}

func (e *Emitter) poll() {
	state := e.snapshot()
	if state.CurrentUser == nil {
		return
	}
	e.checkReminders(state)
	e.checkEncouragement(state)
}

// checkReminders raises a reminder for each event owned by the current user
// whose reminder flag is set and whose date and HH:MM match now. The dedup
// key binds event, day and minute, so an event fires at most once per
// scheduled minute.
func (e *Emitter) checkReminders(state store.State) {
	e.mu.Lock()
	now := e.now()
	e.mu.Unlock()

	today := now.Format("2006-01-02")
	minute := now.Format("15:04")

	for _, event := range state.CalendarEvents {
		if !event.Reminder || event.CreatedBy != state.CurrentUser.ID {
			continue
		}
		if event.Date.Format("2006-01-02") != today || event.Time != minute {
			continue
		}
		key := fmt.Sprintf("%s-%s-%s", event.ID, today, minute)
		e.ShowReminder("Reminder: "+event.Title, event.Description, key)
	}
}

func (e *Emitter) checkEncouragement(state store.State) {
	interval := encouragementInterval(state.CurrentUser.Settings.ReminderFrequency)

	e.mu.Lock()
	now := e.now()
	due := e.lastEncouragement.IsZero() || now.Sub(e.lastEncouragement) >= interval
	if due {
		e.lastEncouragement = now
	}
	e.mu.Unlock()

	if due {
		e.ShowEncouragement()
	}
}

func encouragementInterval(freq models.ReminderFrequency) time.Duration {
	switch freq {
	case models.FrequencyLow:
		return 10 * time.Minute
	case models.FrequencyHigh:
		return 3 * time.Minute
	default:
		return 5 * time.Minute
	}
}

// welcomeUser greets the current user once per process run. It reports
// whether the greeting has been handled so the caller can stop rescheduling.
func (e *Emitter) welcomeUser() bool {
	state := e.snapshot()
	if state.CurrentUser == nil {
		return false
	}

	e.mu.Lock()
	if e.welcomed {
		e.mu.Unlock()
		return true
	}
	e.welcomed = true
	e.mu.Unlock()

	e.emit(models.NotificationEncouragement,
		"Welcome back, "+state.CurrentUser.Name+"!",
		"Ready for some brain exercises today?",
		welcomeDuration, false)
	return true
}

func (e *Emitter) emit(kind models.NotificationKind, title, message string, d time.Duration, dedup bool) {
	key := ""
	if dedup {
		key = fmt.Sprintf("%s|%s|%s", kind, title, message)
	}
	e.emitKeyed(kind, title, message, d, key)
}

func (e *Emitter) emitKeyed(kind models.NotificationKind, title, message string, d time.Duration, dedupKey string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if dedupKey != "" {
		if e.history[dedupKey] {
			return
		}
		e.history[dedupKey] = true
	}

	now := e.now()
	n := models.Notification{
		ID:        uuid.NewString(),
		Kind:      kind,
		Title:     title,
		Message:   message,
		CreatedAt: now,
		ExpiresAt: now.Add(d),
	}
	e.pruneLocked()
	e.active = append(e.active, n)
	log.Printf("notify: %s: %s", kind, title)
}

func (e *Emitter) pruneLocked() {
	now := e.now()
	kept := e.active[:0]
	for _, n := range e.active {
		if n.ExpiresAt.After(now) {
			kept = append(kept, n)
		}
	}
	e.active = kept
}
