package games

import (
	"math/rand"

	"memoir/internal/models"
)

// PatternColors are the buttons a pattern is built from, referenced by index
var PatternColors = []string{"red", "blue", "green", "yellow", "purple", "pink"}

// PatternGame is a color sequence recall game. Each level shows a pattern the
// player must repeat; patterns grow with the level.
type PatternGame struct {
	difficulty models.Difficulty
	rng        *rand.Rand

	Level   int
	Score   int
	pattern []int
}

func NewPatternGame(d models.Difficulty, rng *rand.Rand) *PatternGame {
	return &PatternGame{difficulty: d, rng: rng, Level: 1}
}

// MaxLevel is the level count for a full run
func (g *PatternGame) MaxLevel() int {
	return pick(g.difficulty, 5, 8, 12)
}

// Complete reports whether every level has been cleared
func (g *PatternGame) Complete() bool {
	return g.Level > g.MaxLevel()
}

// NextPattern generates the pattern for the current level. Length grows by
// one every two levels from a difficulty base, capped at 8.
func (g *PatternGame) NextPattern() []int {
	base := pick(g.difficulty, 2, 3, 4)
	length := base + g.Level/2
	if length > 8 {
		length = 8
	}
	g.pattern = make([]int, length)
	for i := range g.pattern {
		g.pattern[i] = g.rng.Intn(len(PatternColors))
	}
	return append([]int(nil), g.pattern...)
}

// Pattern returns the current level's pattern
func (g *PatternGame) Pattern() []int {
	return append([]int(nil), g.pattern...)
}

// Submit checks the player's repetition of the current pattern. A correct
// answer scores level-weighted points and advances the level; a wrong one
// scores nothing and the level repeats with a fresh pattern.
func (g *PatternGame) Submit(guess []int) bool {
	if len(guess) != len(g.pattern) {
		return false
	}
	for i, v := range guess {
		if v != g.pattern[i] {
			return false
		}
	}
	g.Score += g.Level * pick(g.difficulty, 5, 10, 20)
	g.Level++
	return true
}
