package models

import "time"

// Role identifies whether a user is the monitored participant or a caregiver
type Role string

const (
	RoleParticipant Role = "participant"
	RoleCaregiver   Role = "caregiver"
)

// ReminderFrequency controls how often encouragement messages are raised
type ReminderFrequency string

const (
	FrequencyLow    ReminderFrequency = "low"
	FrequencyMedium ReminderFrequency = "medium"
	FrequencyHigh   ReminderFrequency = "high"
)

// User represents a person using the application. Exactly one user is
// "current" per deployment; additional users appear only as read-only
// connected snapshots on a caregiver's dashboard.
type User struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Role             Role         `json:"role"`
	ProfileCompleted bool         `json:"profileCompleted"`
	ConnectionCode   string       `json:"connectionCode,omitempty"`
	CaregiverFor     []string     `json:"caregiverFor,omitempty"`
	Settings         UserSettings `json:"settings"`
	Stats            UserStats    `json:"stats"`
}

// UserSettings holds accessibility and reminder preferences
type UserSettings struct {
	FontSize            string            `json:"fontSize"`
	HighContrast        bool              `json:"highContrast"`
	VoiceEnabled        bool              `json:"voiceEnabled"`
	ReminderFrequency   ReminderFrequency `json:"reminderFrequency"`
	PreferredActivities []string          `json:"preferredActivities,omitempty"`
}

// UserSettingsPatch is a partial settings update. Nil or zero fields mean
// "leave unchanged"; booleans are pointers so an omitted field is
// distinguishable from an explicit false.
type UserSettingsPatch struct {
	FontSize            string            `json:"fontSize"`
	HighContrast        *bool             `json:"highContrast"`
	VoiceEnabled        *bool             `json:"voiceEnabled"`
	ReminderFrequency   ReminderFrequency `json:"reminderFrequency"`
	PreferredActivities []string          `json:"preferredActivities"`
}

// DefaultSettings returns the settings a freshly created user starts with
func DefaultSettings() UserSettings {
	return UserSettings{
		FontSize:          "medium",
		ReminderFrequency: FrequencyMedium,
	}
}

// UserStats holds the aggregate fields derived from a user's game sessions.
// These are never mutated independently; they are recomputed from the full
// session history whenever a session is added.
type UserStats struct {
	ActivitiesCompleted int        `json:"activitiesCompleted"`
	CurrentStreak       int        `json:"currentStreak"`
	TotalScore          int        `json:"totalScore"`
	LastActivityDate    *time.Time `json:"lastActivityDate,omitempty"`
}
