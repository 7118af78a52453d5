package models

import "time"

// ActivityType enumerates the activity catalog kinds
type ActivityType string

const (
	ActivityPuzzle     ActivityType = "puzzle"
	ActivityWordGame   ActivityType = "word-game"
	ActivitySequencing ActivityType = "sequencing"
	ActivityMemory     ActivityType = "memory"
)

// Activity is a suggested activity from the catalog, trackable to completion
type Activity struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Type        ActivityType `json:"type"`
	Difficulty  Difficulty   `json:"difficulty"`
	Duration    int          `json:"duration"` // minutes
	Completed   bool         `json:"completed"`
	CompletedAt *time.Time   `json:"completedAt,omitempty"`
	Score       int          `json:"score,omitempty"`
	UserID      string       `json:"userId"`
}
