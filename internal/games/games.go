// Package games implements the six cognitive mini-games. Each engine pairs
// a puzzle generator with an answer validator and keeps per-run transient
// state; the run's only durable output is the GameSession the caller records
// when the run ends.
package games

import (
	"math/rand"

	"memoir/internal/models"
)

// TimeBudget returns the run length in seconds for a game at a difficulty
func TimeBudget(game models.GameType, d models.Difficulty) int {
	switch game {
	case models.GamePatternSequence:
		return pick(d, 300, 240, 180)
	case models.GameMemoryMatch:
		return pick(d, 240, 180, 120)
	default:
		return pick(d, 420, 300, 240)
	}
}

func pick(d models.Difficulty, easy, medium, hard int) int {
	switch d {
	case models.DifficultyEasy:
		return easy
	case models.DifficultyHard:
		return hard
	default:
		return medium
	}
}

func shuffle[T any](rng *rand.Rand, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
