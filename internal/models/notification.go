package models

import "time"

// NotificationKind enumerates the transient message classes
type NotificationKind string

const (
	NotificationAchievement   NotificationKind = "achievement"
	NotificationEncouragement NotificationKind = "encouragement"
	NotificationReminder      NotificationKind = "reminder"
	NotificationMilestone     NotificationKind = "milestone"
)

// Notification is a transient user-visible message. It self-expires: after
// ExpiresAt it leaves the visible set, though its dedup history survives.
type Notification struct {
	ID        string           `json:"id"`
	Kind      NotificationKind `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	CreatedAt time.Time        `json:"createdAt"`
	ExpiresAt time.Time        `json:"expiresAt"`
}
