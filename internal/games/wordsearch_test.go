package games

import (
	"strings"
	"testing"

	"memoir/internal/models"
)

func TestWordSearchGridShape(t *testing.T) {
	tests := []struct {
		difficulty models.Difficulty
		size       int
	}{
		{models.DifficultyEasy, 8},
		{models.DifficultyMedium, 12},
		{models.DifficultyHard, 16},
	}

	for _, tc := range tests {
		t.Run(string(tc.difficulty), func(t *testing.T) {
			g := NewWordSearchGame(tc.difficulty, testRand())
			grid := g.Grid()
			if len(grid) != tc.size {
				t.Fatalf("grid has %d rows, want %d", len(grid), tc.size)
			}
			for _, row := range grid {
				if len(row) != tc.size {
					t.Fatalf("row %q has length %d, want %d", row, len(row), tc.size)
				}
				for _, ch := range row {
					if ch < 'A' || ch > 'Z' {
						t.Fatalf("grid contains non-letter %q", ch)
					}
				}
			}
		})
	}
}

func TestWordSearchPlacementsReadable(t *testing.T) {
	g := NewWordSearchGame(models.DifficultyMedium, testRand())
	grid := g.Grid()

	for _, p := range g.Placements() {
		var sb strings.Builder
		for _, c := range p.Cells {
			sb.WriteByte(grid[c.Row][c.Col])
		}
		if sb.String() != p.Word {
			t.Errorf("placement of %s reads %s", p.Word, sb.String())
		}
	}
	if len(g.Placements()) == 0 {
		t.Fatal("no words were placed")
	}
}

func TestWordSearchFindByPlacement(t *testing.T) {
	g := NewWordSearchGame(models.DifficultyEasy, testRand())
	p := g.Placements()[0]

	word, ok := g.CheckSelection(p.Cells)
	if !ok || word != p.Word {
		t.Fatalf("CheckSelection = (%q, %v), want (%q, true)", word, ok, p.Word)
	}
	if g.Score != 3 { // easy word value
		t.Errorf("score = %d, want 3", g.Score)
	}

	// Finding the same word again neither matches nor rescores
	if _, ok := g.CheckSelection(p.Cells); ok {
		t.Error("re-finding a word should not match again")
	}
}

func TestWordSearchBackwardSelection(t *testing.T) {
	g := NewWordSearchGame(models.DifficultyEasy, testRand())
	p := g.Placements()[0]

	// Reverse the cell order; the checker sorts, so the read is the same
	reversed := make([]Cell, len(p.Cells))
	for i, c := range p.Cells {
		reversed[len(p.Cells)-1-i] = c
	}
	if word, ok := g.CheckSelection(reversed); !ok || word != p.Word {
		t.Errorf("backward selection of %s not accepted", p.Word)
	}
}

func TestWordSearchWrongSelection(t *testing.T) {
	g := NewWordSearchGame(models.DifficultyEasy, testRand())

	if _, ok := g.CheckSelection([]Cell{{Row: 0, Col: 0}}); ok {
		t.Error("single arbitrary cell should not match a word")
	}
	if _, ok := g.CheckSelection(nil); ok {
		t.Error("empty selection should not match")
	}
	if _, ok := g.CheckSelection([]Cell{{Row: -1, Col: 0}}); ok {
		t.Error("out-of-bounds selection should not match")
	}
}

func TestWordSearchCompletionAndBonus(t *testing.T) {
	g := NewWordSearchGame(models.DifficultyMedium, testRand())

	for _, p := range g.Placements() {
		g.CheckSelection(p.Cells)
	}
	if !g.Complete() {
		t.Fatal("finding every placement should complete the puzzle")
	}

	base := g.Score
	g.TimeBonus(100)
	if g.Score != base+50 {
		t.Errorf("time bonus added %d, want 50", g.Score-base)
	}
}

func TestWordSearchNoBonusWhenIncomplete(t *testing.T) {
	g := NewWordSearchGame(models.DifficultyMedium, testRand())
	g.TimeBonus(100)
	if g.Score != 0 {
		t.Errorf("incomplete puzzle received a time bonus of %d", g.Score)
	}
}
