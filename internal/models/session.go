package models

import "time"

// GameType enumerates the six mini-games
type GameType string

const (
	GamePatternSequence GameType = "pattern-sequence"
	GameNumberSequence  GameType = "number-sequence"
	GameWordSearch      GameType = "word-search"
	GameMemoryMatch     GameType = "memory-match"
	GameWordConnections GameType = "word-connections"
	GameAttentionFocus  GameType = "attention-focus"
)

// Difficulty enumerates the three difficulty levels shared by all games
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// GameSession is the immutable record of one finished game run.
// Sessions are created exactly once and never updated or deleted.
type GameSession struct {
	ID          string     `json:"id"`
	GameType    GameType   `json:"gameType"`
	Difficulty  Difficulty `json:"difficulty"`
	Score       int        `json:"score"`
	Duration    int        `json:"duration"` // seconds
	CompletedAt time.Time  `json:"completedAt"`
	UserID      string     `json:"userId"`
}
