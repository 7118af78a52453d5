package games

import (
	"math/rand"
	"sort"
	"strings"

	"memoir/internal/models"
)

var wordSearchSets = map[models.Difficulty][][]string{
	models.DifficultyEasy: {
		{"CAT", "DOG", "SUN", "CAR"},
		{"BOOK", "TREE", "FISH", "BIRD"},
		{"MOON", "STAR", "RAIN", "WIND"},
		{"HAND", "FOOT", "HEAD", "NOSE"},
	},
	models.DifficultyMedium: {
		{"HAPPY", "WATER", "MUSIC", "FRIEND"},
		{"GARDEN", "BRIDGE", "CASTLE", "FLOWER"},
		{"SUMMER", "WINTER", "SPRING", "AUTUMN"},
		{"FAMILY", "SCHOOL", "HOUSE", "STREET"},
	},
	models.DifficultyHard: {
		{"ELEPHANT", "MOUNTAIN", "BUTTERFLY", "ADVENTURE"},
		{"KNOWLEDGE", "BEAUTIFUL", "WONDERFUL", "DISCOVERY"},
		{"COMPUTER", "INTERNET", "KEYBOARD", "MONITOR"},
		{"HOSPITAL", "MEDICINE", "DOCTOR", "PATIENT"},
	},
}

// Cell addresses one grid square
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Placement records where a word was hidden, mainly for tests
type Placement struct {
	Word  string
	Cells []Cell
}

// Word placement axes: across, down, and the down-right diagonal
var wordSearchDirections = [3][2]int{{0, 1}, {1, 0}, {1, 1}}

// WordSearchGame hides a themed word list in a letter grid. Selections are
// validated as straight runs read forward or backward.
type WordSearchGame struct {
	difficulty models.Difficulty

	Score      int
	grid       [][]byte
	words      []string
	found      map[string]bool
	placements []Placement
}

// NewWordSearchGame builds a grid for the difficulty. Each word gets up to
// 100 random placement attempts; a word that cannot be placed without
// conflict is left out of the puzzle.
func NewWordSearchGame(d models.Difficulty, rng *rand.Rand) *WordSearchGame {
	size := pick(d, 8, 12, 16)
	sets := wordSearchSets[d]
	if sets == nil {
		sets = wordSearchSets[models.DifficultyMedium]
	}
	wordSet := sets[rng.Intn(len(sets))]

	g := &WordSearchGame{
		difficulty: d,
		grid:       make([][]byte, size),
		found:      map[string]bool{},
	}
	for i := range g.grid {
		g.grid[i] = make([]byte, size)
	}

	for _, word := range wordSet {
		for attempt := 0; attempt < 100; attempt++ {
			dir := wordSearchDirections[rng.Intn(len(wordSearchDirections))]
			row, col := rng.Intn(size), rng.Intn(size)
			if cells, ok := g.tryPlace(word, row, col, dir); ok {
				g.words = append(g.words, word)
				g.placements = append(g.placements, Placement{Word: word, Cells: cells})
				break
			}
		}
	}

	for i := range g.grid {
		for j := range g.grid[i] {
			if g.grid[i][j] == 0 {
				g.grid[i][j] = byte('A' + rng.Intn(26))
			}
		}
	}
	return g
}

func (g *WordSearchGame) tryPlace(word string, row, col int, dir [2]int) ([]Cell, bool) {
	size := len(g.grid)
	endRow := row + (len(word)-1)*dir[0]
	endCol := col + (len(word)-1)*dir[1]
	if endRow >= size || endCol >= size {
		return nil, false
	}
	cells := make([]Cell, len(word))
	for i := 0; i < len(word); i++ {
		r, c := row+i*dir[0], col+i*dir[1]
		if g.grid[r][c] != 0 && g.grid[r][c] != word[i] {
			return nil, false
		}
		cells[i] = Cell{Row: r, Col: c}
	}
	for i := 0; i < len(word); i++ {
		g.grid[cells[i].Row][cells[i].Col] = word[i]
	}
	return cells, true
}

// Grid returns the letter grid as strings, one per row
func (g *WordSearchGame) Grid() []string {
	rows := make([]string, len(g.grid))
	for i, row := range g.grid {
		rows[i] = string(row)
	}
	return rows
}

// Words returns the hidden word list
func (g *WordSearchGame) Words() []string {
	return append([]string(nil), g.words...)
}

// Found returns the words located so far
func (g *WordSearchGame) Found() []string {
	out := make([]string, 0, len(g.found))
	for _, w := range g.words {
		if g.found[w] {
			out = append(out, w)
		}
	}
	return out
}

// Placements exposes where each word was hidden
func (g *WordSearchGame) Placements() []Placement {
	return append([]Placement(nil), g.placements...)
}

// Complete reports whether every placed word has been found
func (g *WordSearchGame) Complete() bool {
	return len(g.found) == len(g.words) && len(g.words) > 0
}

// CheckSelection validates a cell selection. Cells are sorted by row then
// column and the letters read off; the selection matches a hidden word read
// either direction. Re-finding a word does not score again.
func (g *WordSearchGame) CheckSelection(cells []Cell) (string, bool) {
	if len(cells) == 0 {
		return "", false
	}
	sorted := append([]Cell(nil), cells...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Row != sorted[j].Row {
			return sorted[i].Row < sorted[j].Row
		}
		return sorted[i].Col < sorted[j].Col
	})

	var sb strings.Builder
	size := len(g.grid)
	for _, c := range sorted {
		if c.Row < 0 || c.Row >= size || c.Col < 0 || c.Col >= size {
			return "", false
		}
		sb.WriteByte(g.grid[c.Row][c.Col])
	}
	forward := sb.String()
	backward := reverse(forward)

	for _, w := range g.words {
		if g.found[w] {
			continue
		}
		if w == forward || w == backward {
			g.found[w] = true
			g.Score += pick(g.difficulty, 3, 5, 8)
			return w, true
		}
	}
	return "", false
}

// TimeBonus awards half the remaining seconds once the puzzle is complete
func (g *WordSearchGame) TimeBonus(timeLeft int) {
	if g.Complete() && timeLeft > 0 {
		g.Score += timeLeft / 2
	}
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
