package games

import (
	"math/rand"

	"memoir/internal/models"
)

// NumberSequenceGame shows a four-number sequence and asks for the next
// value. Families get harder with difficulty: plain arithmetic on easy;
// arithmetic, Fibonacci-like and multiplicative on medium; squares, powers
// of two and a doubling-plus-one pattern on hard. Answers are accepted
// within a tolerance of 1.
type NumberSequenceGame struct {
	difficulty models.Difficulty
	rng        *rand.Rand

	Level    int
	Score    int
	sequence []int
	next     int
}

func NewNumberSequenceGame(d models.Difficulty, rng *rand.Rand) *NumberSequenceGame {
	return &NumberSequenceGame{difficulty: d, rng: rng, Level: 1}
}

// MaxLevel is the puzzle count for a full run
func (g *NumberSequenceGame) MaxLevel() int {
	return pick(g.difficulty, 8, 12, 16)
}

// Complete reports whether every puzzle has been answered
func (g *NumberSequenceGame) Complete() bool {
	return g.Level > g.MaxLevel()
}

// NextPuzzle generates the sequence for the current level. The expected next
// value is derived from the generated numbers, never stored pattern
// parameters, so the validator and generator cannot drift apart.
func (g *NumberSequenceGame) NextPuzzle() []int {
	switch g.difficulty {
	case models.DifficultyEasy:
		start := g.rng.Intn(10) + 1
		step := g.rng.Intn(3) + 2
		g.sequence = []int{start, start + step, start + 2*step, start + 3*step}
		g.next = g.sequence[3] + step

	case models.DifficultyHard:
		switch g.rng.Intn(3) {
		case 0: // consecutive squares
			start := g.rng.Intn(3) + 2
			g.sequence = []int{start * start, (start + 1) * (start + 1), (start + 2) * (start + 2), (start + 3) * (start + 3)}
			g.next = (start + 4) * (start + 4)
		case 1: // powers of two
			exp := g.rng.Intn(3) + 1
			first := 1 << exp
			g.sequence = []int{first, first * 2, first * 4, first * 8}
			g.next = first * 16
		default: // a, 2a+1, 4a+3, 8a+7: each term doubles and adds one
			a := g.rng.Intn(5) + 2
			g.sequence = []int{a, a*2 + 1, a*4 + 3, a*8 + 7}
			g.next = g.sequence[3]*2 + 1
		}

	default: // medium
		if g.rng.Intn(2) == 0 { // Fibonacci-like
			a := g.rng.Intn(5) + 1
			b := g.rng.Intn(5) + 1
			g.sequence = []int{a, b, a + b, a + 2*b}
			g.next = g.sequence[2] + g.sequence[3]
		} else { // multiplicative
			base := g.rng.Intn(4) + 2
			mult := g.rng.Intn(3) + 2
			g.sequence = []int{base, base * mult, base * mult * mult, base * mult * mult * mult}
			g.next = g.sequence[3] * mult
		}
	}
	return append([]int(nil), g.sequence...)
}

// Sequence returns the current puzzle
func (g *NumberSequenceGame) Sequence() []int {
	return append([]int(nil), g.sequence...)
}

// Submit checks an answer against the expected next value, allowing an
// off-by-one for rounding. Right or wrong, the run moves on to the next
// level; only a correct answer scores.
func (g *NumberSequenceGame) Submit(answer int) (correct bool, expected int) {
	expected = g.next
	diff := answer - expected
	if diff < 0 {
		diff = -diff
	}
	if diff <= 1 {
		g.Score += g.Level * pick(g.difficulty, 25, 50, 75)
		correct = true
	}
	g.Level++
	return correct, expected
}
