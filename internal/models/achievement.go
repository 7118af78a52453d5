package models

import "time"

// Achievement records a milestone earned by a user
type Achievement struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Earned      bool       `json:"earned"`
	EarnedAt    *time.Time `json:"earnedAt,omitempty"`
	UserID      string     `json:"userId"`
}
