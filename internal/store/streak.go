package store

import (
	"time"

	"memoir/internal/models"
)

const dayKeyFormat = "2006-01-02"

// CurrentStreak returns the number of consecutive calendar days ending today
// that have at least one completed session. The walk starts strictly at
// today: a day without a session, today included, yields zero. In practice
// the streak is recomputed when a session is added, so the day of the
// recomputation always has one.
func CurrentStreak(sessions []models.GameSession, now time.Time) int {
	if len(sessions) == 0 {
		return 0
	}

	days := make(map[string]bool, len(sessions))
	for _, sess := range sessions {
		days[sess.CompletedAt.Format(dayKeyFormat)] = true
	}

	streak := 0
	day := now
	for days[day.Format(dayKeyFormat)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
