package games

import (
	"errors"
	"math/rand"

	"memoir/internal/models"
)

// Field bounds and tick rate for the moving targets
const (
	fieldWidth     = 580
	fieldHeight    = 380
	TickMillis     = 50
	spawnMargin    = 40
	spawnSpanX     = 500
	spawnSpanY     = 300
	velocitySpread = 4
)

// MovingTarget is one circle on the field. Targets are the red ones to
// click; distractors are gray and cost points.
type MovingTarget struct {
	ID       int     `json:"id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	DX       float64 `json:"-"`
	DY       float64 `json:"-"`
	IsTarget bool    `json:"isTarget"`
}

// AttentionGame is a selective attention exercise: click the targets, avoid
// the distractors, advance when the field is cleared of targets.
type AttentionGame struct {
	difficulty models.Difficulty
	rng        *rand.Rand

	Level   int
	Score   int
	Hits    int
	Misses  int
	targets []MovingTarget
}

func NewAttentionGame(d models.Difficulty, rng *rand.Rand) *AttentionGame {
	g := &AttentionGame{difficulty: d, rng: rng, Level: 1}
	g.spawn()
	return g
}

// MaxLevel is the level count for a full run
func (g *AttentionGame) MaxLevel() int {
	return pick(g.difficulty, 10, 15, 20)
}

// Complete reports whether every level has been cleared
func (g *AttentionGame) Complete() bool {
	return g.Level > g.MaxLevel()
}

// Targets returns the current field
func (g *AttentionGame) Targets() []MovingTarget {
	return append([]MovingTarget(nil), g.targets...)
}

// spawn fills the field for the current level. Target count grows with the
// level up to the difficulty cap; the rest of the field is distractors.
func (g *AttentionGame) spawn() {
	total := pick(g.difficulty, 4, 6, 8)
	maxTargets := pick(g.difficulty, 2, 3, 4)
	targetCount := g.Level + 1
	if targetCount > maxTargets {
		targetCount = maxTargets
	}

	g.targets = g.targets[:0]
	for i := 0; i < total; i++ {
		g.targets = append(g.targets, MovingTarget{
			ID:       i,
			X:        g.rng.Float64()*spawnSpanX + spawnMargin,
			Y:        g.rng.Float64()*spawnSpanY + spawnMargin,
			DX:       (g.rng.Float64() - 0.5) * velocitySpread,
			DY:       (g.rng.Float64() - 0.5) * velocitySpread,
			IsTarget: i < targetCount,
		})
	}
}

// Tick advances every circle one step, reflecting off the field edges.
// Positions are clamped so a fast circle never escapes the bounds.
func (g *AttentionGame) Tick() {
	speed := float64(pick(g.difficulty, 1, 2, 3))
	for i := range g.targets {
		t := &g.targets[i]
		t.X += t.DX * speed
		t.Y += t.DY * speed
		if t.X <= 0 || t.X >= fieldWidth {
			t.DX = -t.DX
			t.X = clamp(t.X, 0, fieldWidth)
		}
		if t.Y <= 0 || t.Y >= fieldHeight {
			t.DY = -t.DY
			t.Y = clamp(t.Y, 0, fieldHeight)
		}
	}
}

// Click registers a hit on a circle. A target scores and leaves the field,
// and clearing the last target advances the level with a fresh spawn. A
// distractor costs two points, floored at zero.
func (g *AttentionGame) Click(id int) (hit bool, err error) {
	idx := -1
	for i, t := range g.targets {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, errors.New("no such target")
	}

	if !g.targets[idx].IsTarget {
		g.Misses++
		g.Score -= 2
		if g.Score < 0 {
			g.Score = 0
		}
		return false, nil
	}

	g.Hits++
	g.Score += pick(g.difficulty, 3, 5, 8)
	g.targets = append(g.targets[:idx], g.targets[idx+1:]...)

	remaining := 0
	for _, t := range g.targets {
		if t.IsTarget {
			remaining++
		}
	}
	if remaining == 0 {
		g.Level++
		if !g.Complete() {
			g.spawn()
		} else {
			g.targets = nil
		}
	}
	return true, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
