package games

import (
	"math/rand"

	"memoir/internal/models"
)

// WordGroup is one category of four related words
type WordGroup struct {
	Category string   `json:"category"`
	Words    []string `json:"words"`
}

var wordConnectionSets = map[models.Difficulty][][]WordGroup{
	models.DifficultyEasy: {
		{
			{Category: "Colors", Words: []string{"Red", "Blue", "Green", "Yellow"}},
			{Category: "Animals", Words: []string{"Cat", "Dog", "Bird", "Fish"}},
			{Category: "Food", Words: []string{"Apple", "Bread", "Milk", "Egg"}},
		},
		{
			{Category: "Shapes", Words: []string{"Circle", "Square", "Triangle", "Star"}},
			{Category: "Weather", Words: []string{"Sun", "Rain", "Snow", "Wind"}},
			{Category: "Body", Words: []string{"Hand", "Foot", "Head", "Eye"}},
		},
		{
			{Category: "Numbers", Words: []string{"One", "Two", "Three", "Four"}},
			{Category: "Days", Words: []string{"Monday", "Tuesday", "Wednesday", "Thursday"}},
			{Category: "Months", Words: []string{"January", "February", "March", "April"}},
		},
	},
	models.DifficultyMedium: {
		{
			{Category: "Family", Words: []string{"Mother", "Father", "Sister", "Brother"}},
			{Category: "Furniture", Words: []string{"Chair", "Table", "Bed", "Sofa"}},
			{Category: "Vehicles", Words: []string{"Car", "Bus", "Train", "Bike"}},
			{Category: "Fruits", Words: []string{"Apple", "Orange", "Banana", "Grape"}},
		},
		{
			{Category: "Emotions", Words: []string{"Happy", "Sad", "Angry", "Excited"}},
			{Category: "Sports", Words: []string{"Soccer", "Tennis", "Swimming", "Running"}},
			{Category: "Tools", Words: []string{"Hammer", "Screwdriver", "Wrench", "Saw"}},
			{Category: "Clothes", Words: []string{"Shirt", "Pants", "Shoes", "Hat"}},
		},
	},
	models.DifficultyHard: {
		{
			{Category: "Professions", Words: []string{"Doctor", "Teacher", "Engineer", "Artist"}},
			{Category: "Instruments", Words: []string{"Piano", "Guitar", "Violin", "Drums"}},
			{Category: "Countries", Words: []string{"Canada", "France", "Japan", "Brazil"}},
			{Category: "Sciences", Words: []string{"Biology", "Chemistry", "Physics", "Math"}},
			{Category: "Emotions", Words: []string{"Euphoric", "Melancholy", "Anxious", "Serene"}},
		},
		{
			{Category: "Literature", Words: []string{"Novel", "Poetry", "Drama", "Essay"}},
			{Category: "Architecture", Words: []string{"Gothic", "Modern", "Classical", "Baroque"}},
			{Category: "Philosophy", Words: []string{"Ethics", "Logic", "Metaphysics", "Aesthetics"}},
			{Category: "Technology", Words: []string{"Algorithm", "Database", "Network", "Interface"}},
			{Category: "Medicine", Words: []string{"Diagnosis", "Treatment", "Prevention", "Recovery"}},
		},
	},
}

// WordConnectionGame asks the player to sort a shuffled word grid back into
// its hidden categories, four words at a time. The grid order is fixed at
// start and never reshuffles.
type WordConnectionGame struct {
	difficulty models.Difficulty

	Score    int
	Attempts int
	groups   []WordGroup
	grid     []string
	solved   map[string]bool
}

func NewWordConnectionGame(d models.Difficulty, rng *rand.Rand) *WordConnectionGame {
	sets := wordConnectionSets[d]
	if sets == nil {
		sets = wordConnectionSets[models.DifficultyMedium]
	}
	groups := sets[rng.Intn(len(sets))]

	g := &WordConnectionGame{
		difficulty: d,
		groups:     groups,
		solved:     map[string]bool{},
	}
	for _, group := range groups {
		g.grid = append(g.grid, group.Words...)
	}
	shuffle(rng, g.grid)
	return g
}

// Grid returns the static shuffled word layout
func (g *WordConnectionGame) Grid() []string {
	return append([]string(nil), g.grid...)
}

// Groups returns the category count of the puzzle
func (g *WordConnectionGame) Groups() int {
	return len(g.groups)
}

// SolvedCategories lists the categories found so far
func (g *WordConnectionGame) SolvedCategories() []string {
	out := make([]string, 0, len(g.solved))
	for _, group := range g.groups {
		if g.solved[group.Category] {
			out = append(out, group.Category)
		}
	}
	return out
}

// Complete reports whether every category has been found
func (g *WordConnectionGame) Complete() bool {
	return len(g.solved) == len(g.groups)
}

// CheckGroup validates a four-word selection against the unsolved
// categories. The match is exact set equality in both directions, so extra
// or missing words never pass. A wrong four costs two points, floored at
// zero.
func (g *WordConnectionGame) CheckGroup(words []string) (category string, ok bool) {
	if len(words) != 4 {
		return "", false
	}
	selected := map[string]bool{}
	for _, w := range words {
		selected[w] = true
	}
	if len(selected) != 4 {
		return "", false
	}

	for _, group := range g.groups {
		if g.solved[group.Category] {
			continue
		}
		all := true
		for _, w := range group.Words {
			if !selected[w] {
				all = false
				break
			}
		}
		if all {
			g.solved[group.Category] = true
			g.Score += pick(g.difficulty, 10, 15, 25)
			return group.Category, true
		}
	}

	g.Attempts++
	g.Score -= 2
	if g.Score < 0 {
		g.Score = 0
	}
	return "", false
}
