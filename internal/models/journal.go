package models

import "time"

// JournalEntry is a free-text diary entry with the same create/delete-only
// lifecycle as a flashcard
type JournalEntry struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	IsPublic  bool      `json:"isPublic"`
}
