package games

import (
	"errors"
	"testing"

	"memoir/internal/models"
)

func TestMemoryMatchLayout(t *testing.T) {
	tests := []struct {
		difficulty models.Difficulty
		pairs      int
	}{
		{models.DifficultyEasy, 4},
		{models.DifficultyMedium, 6},
		{models.DifficultyHard, 8},
	}

	for _, tc := range tests {
		t.Run(string(tc.difficulty), func(t *testing.T) {
			g := NewMemoryMatchGame(tc.difficulty, testRand())
			if g.Pairs() != tc.pairs {
				t.Errorf("pairs = %d, want %d", g.Pairs(), tc.pairs)
			}

			counts := map[string]int{}
			for _, c := range g.Cards() {
				counts[c.Symbol]++
			}
			for sym, n := range counts {
				if n != 2 {
					t.Errorf("symbol %s appears %d times, want 2", sym, n)
				}
			}
		})
	}
}

// pairOf finds the two card IDs sharing a symbol
func pairOf(g *MemoryMatchGame) (int, int) {
	bySymbol := map[string][]int{}
	for _, c := range g.Cards() {
		if !c.Matched {
			bySymbol[c.Symbol] = append(bySymbol[c.Symbol], c.ID)
		}
	}
	for _, ids := range bySymbol {
		if len(ids) == 2 {
			return ids[0], ids[1]
		}
	}
	return -1, -1
}

func TestMemoryMatchPairScores(t *testing.T) {
	g := NewMemoryMatchGame(models.DifficultyMedium, testRand())
	a, b := pairOf(g)

	if err := g.Flip(a); err != nil {
		t.Fatal(err)
	}
	if err := g.Flip(b); err != nil {
		t.Fatal(err)
	}
	matched, err := g.Resolve()
	if err != nil || !matched {
		t.Fatalf("Resolve() = (%v, %v), want match", matched, err)
	}
	if g.Score != 10 {
		t.Errorf("score = %d, want 10", g.Score)
	}
	if g.Moves != 1 {
		t.Errorf("moves = %d, want 1", g.Moves)
	}
}

func TestMemoryMatchMismatchFlipsBack(t *testing.T) {
	g := NewMemoryMatchGame(models.DifficultyEasy, testRand())

	cards := g.Cards()
	var first, second int
	first = cards[0].ID
	for _, c := range cards[1:] {
		if c.Symbol != cards[0].Symbol {
			second = c.ID
			break
		}
	}

	g.Flip(first)
	g.Flip(second)
	matched, err := g.Resolve()
	if err != nil || matched {
		t.Fatalf("mismatched pair resolved as match")
	}
	for _, c := range g.Cards() {
		if c.FaceUp {
			t.Error("cards should flip back after a mismatch")
		}
	}
	if g.Score != 0 {
		t.Errorf("mismatch scored %d", g.Score)
	}
}

func TestMemoryMatchThirdFlipBlocked(t *testing.T) {
	g := NewMemoryMatchGame(models.DifficultyEasy, testRand())
	cards := g.Cards()

	g.Flip(cards[0].ID)
	g.Flip(cards[1].ID)
	if err := g.Flip(cards[2].ID); !errors.Is(err, ErrFlipBlocked) {
		t.Errorf("third flip error = %v, want ErrFlipBlocked", err)
	}
}

func TestMemoryMatchDoubleFlipRejected(t *testing.T) {
	g := NewMemoryMatchGame(models.DifficultyEasy, testRand())
	id := g.Cards()[0].ID

	g.Flip(id)
	if err := g.Flip(id); !errors.Is(err, ErrCardFaceUp) {
		t.Errorf("re-flipping a face-up card error = %v, want ErrCardFaceUp", err)
	}
}

func TestMemoryMatchFullRun(t *testing.T) {
	g := NewMemoryMatchGame(models.DifficultyEasy, testRand())

	for !g.Complete() {
		a, b := pairOf(g)
		if a < 0 {
			t.Fatal("unmatched pair not found on incomplete board")
		}
		if err := g.Flip(a); err != nil {
			t.Fatal(err)
		}
		if err := g.Flip(b); err != nil {
			t.Fatal(err)
		}
		if matched, _ := g.Resolve(); !matched {
			t.Fatal("known pair failed to match")
		}
	}

	if g.Score != 4*5 { // 4 easy pairs at 5 points
		t.Errorf("score = %d, want 20", g.Score)
	}

	base := g.Score
	g.TimeBonus(30)
	if g.Score != base+30 {
		t.Errorf("time bonus added %d, want 30", g.Score-base)
	}
}
