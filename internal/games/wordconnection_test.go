package games

import (
	"testing"

	"memoir/internal/models"
)

func TestWordConnectionGridHoldsEveryWord(t *testing.T) {
	g := NewWordConnectionGame(models.DifficultyMedium, testRand())

	grid := g.Grid()
	if len(grid) != g.Groups()*4 {
		t.Fatalf("grid has %d words, want %d", len(grid), g.Groups()*4)
	}
	seen := map[string]bool{}
	for _, w := range grid {
		if seen[w] {
			t.Errorf("word %q appears twice in the grid", w)
		}
		seen[w] = true
	}
}

func TestWordConnectionCorrectGroup(t *testing.T) {
	g := NewWordConnectionGame(models.DifficultyEasy, testRand())
	group := g.groups[0]

	category, ok := g.CheckGroup(group.Words)
	if !ok || category != group.Category {
		t.Fatalf("CheckGroup = (%q, %v), want (%q, true)", category, ok, group.Category)
	}
	if g.Score != 10 { // easy group value
		t.Errorf("score = %d, want 10", g.Score)
	}

	// A solved category cannot be claimed again
	if _, ok := g.CheckGroup(group.Words); ok {
		t.Error("re-submitting a solved group should fail")
	}
}

func TestWordConnectionExactSetEquality(t *testing.T) {
	g := NewWordConnectionGame(models.DifficultyEasy, testRand())
	a, b := g.groups[0], g.groups[1]

	// Three from one group plus one from another
	mixed := append(append([]string(nil), a.Words[:3]...), b.Words[0])
	if _, ok := g.CheckGroup(mixed); ok {
		t.Error("mixed selection accepted")
	}

	// Wrong sizes never match
	if _, ok := g.CheckGroup(a.Words[:3]); ok {
		t.Error("three-word selection accepted")
	}
	if _, ok := g.CheckGroup(append(append([]string(nil), a.Words...), b.Words[0])); ok {
		t.Error("five-word selection accepted")
	}

	// Duplicates do not make a set of four
	if _, ok := g.CheckGroup([]string{a.Words[0], a.Words[0], a.Words[1], a.Words[2]}); ok {
		t.Error("selection with a duplicate accepted")
	}
}

func TestWordConnectionPenaltyFloorsAtZero(t *testing.T) {
	g := NewWordConnectionGame(models.DifficultyEasy, testRand())
	a, b := g.groups[0], g.groups[1]
	mixed := append(append([]string(nil), a.Words[:3]...), b.Words[0])

	g.CheckGroup(mixed)
	g.CheckGroup(mixed)
	if g.Score != 0 {
		t.Errorf("score = %d, want floor at 0", g.Score)
	}
	if g.Attempts != 2 {
		t.Errorf("attempts = %d, want 2", g.Attempts)
	}

	// Penalty after scoring subtracts from a positive total
	g.CheckGroup(a.Words)
	g.CheckGroup(mixed[:3]) // size guard: not an attempt
	g.CheckGroup(append(append([]string(nil), b.Words[:3]...), a.Words[0]))
	if g.Score != 8 {
		t.Errorf("score = %d, want 8 after 10 - 2", g.Score)
	}
}

func TestWordConnectionCompletion(t *testing.T) {
	g := NewWordConnectionGame(models.DifficultyHard, testRand())
	for _, group := range g.groups {
		if _, ok := g.CheckGroup(group.Words); !ok {
			t.Fatalf("group %s rejected", group.Category)
		}
	}
	if !g.Complete() {
		t.Error("all groups solved but puzzle not complete")
	}
	if got := len(g.SolvedCategories()); got != g.Groups() {
		t.Errorf("solved %d categories, want %d", got, g.Groups())
	}
}
