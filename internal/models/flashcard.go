package models

import "time"

// FlashcardCategory enumerates the flashcard groupings
type FlashcardCategory string

const (
	CategoryFamily   FlashcardCategory = "family"
	CategoryFriends  FlashcardCategory = "friends"
	CategoryPlaces   FlashcardCategory = "places"
	CategoryMemories FlashcardCategory = "memories"
	CategoryOther    FlashcardCategory = "other"
)

// Flashcard is a memory-aid card. Cards are created and deleted by explicit
// user action and are immutable once created.
type Flashcard struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	FrontText string            `json:"frontText"`
	BackText  string            `json:"backText"`
	Category  FlashcardCategory `json:"category"`
	CreatedBy string            `json:"createdBy"`
	Tags      []string          `json:"tags"`
	CreatedAt time.Time         `json:"createdAt"`
}
