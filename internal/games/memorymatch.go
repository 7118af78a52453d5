package games

import (
	"errors"
	"math/rand"

	"memoir/internal/models"
)

var memorySymbolSets = map[models.Difficulty][][]string{
	models.DifficultyEasy: {
		{"🐶", "🐱", "🐭", "🐹"},
		{"🍎", "🍌", "🍊", "🍇"},
		{"⭐", "🌙", "☀️", "🌈"},
		{"🚗", "🚲", "✈️", "🚢"},
	},
	models.DifficultyMedium: {
		{"🐶", "🐱", "🐭", "🐹", "🐰", "🦊"},
		{"🍎", "🍌", "🍊", "🍇", "🍓", "🥝"},
		{"⭐", "🌙", "☀️", "🌈", "⚡", "🔥"},
		{"🚗", "🚲", "✈️", "🚢", "🚂", "🚁"},
	},
	models.DifficultyHard: {
		{"🐶", "🐱", "🐭", "🐹", "🐰", "🦊", "🐻", "🐼"},
		{"🍎", "🍌", "🍊", "🍇", "🍓", "🥝", "🥭", "🍑"},
		{"⭐", "🌙", "☀️", "🌈", "⚡", "🔥", "❄️", "🌊"},
		{"🚗", "🚲", "✈️", "🚢", "🚂", "🚁", "🚀", "🛸"},
	},
}

var (
	ErrFlipBlocked = errors.New("a pair is awaiting resolution")
	ErrCardFaceUp  = errors.New("card is already face up")
)

// MemoryCard is one face-down card in the layout
type MemoryCard struct {
	ID      int    `json:"id"`
	Symbol  string `json:"-"`
	FaceUp  bool   `json:"faceUp"`
	Matched bool   `json:"matched"`
}

// MemoryMatchGame is a pair-matching game. The flip cycle is strict: two
// cards go face up, Resolve settles them as a match or flips them back, and
// further flips are rejected until then.
type MemoryMatchGame struct {
	difficulty models.Difficulty

	Score   int
	Moves   int
	cards   []MemoryCard
	flipped []int
}

func NewMemoryMatchGame(d models.Difficulty, rng *rand.Rand) *MemoryMatchGame {
	sets := memorySymbolSets[d]
	if sets == nil {
		sets = memorySymbolSets[models.DifficultyMedium]
	}
	symbols := sets[rng.Intn(len(sets))]

	g := &MemoryMatchGame{difficulty: d}
	for i, sym := range symbols {
		g.cards = append(g.cards,
			MemoryCard{ID: i * 2, Symbol: sym},
			MemoryCard{ID: i*2 + 1, Symbol: sym},
		)
	}
	shuffle(rng, g.cards)
	return g
}

// Cards returns the current layout
func (g *MemoryMatchGame) Cards() []MemoryCard {
	return append([]MemoryCard(nil), g.cards...)
}

// Pairs returns the pair count of the layout
func (g *MemoryMatchGame) Pairs() int {
	return len(g.cards) / 2
}

// Complete reports whether every pair has been matched
func (g *MemoryMatchGame) Complete() bool {
	for _, c := range g.cards {
		if !c.Matched {
			return false
		}
	}
	return len(g.cards) > 0
}

// Flip turns a card face up. It fails while two cards await Resolve, and for
// cards already face up or matched.
func (g *MemoryMatchGame) Flip(id int) error {
	if len(g.flipped) == 2 {
		return ErrFlipBlocked
	}
	idx := g.indexOf(id)
	if idx < 0 {
		return errors.New("no such card")
	}
	if g.cards[idx].FaceUp || g.cards[idx].Matched {
		return ErrCardFaceUp
	}
	g.cards[idx].FaceUp = true
	g.flipped = append(g.flipped, idx)
	return nil
}

// Resolve settles the two face-up cards: a matching pair locks and scores,
// a mismatch flips both back. Either way the flip cycle reopens and the
// move counter advances.
func (g *MemoryMatchGame) Resolve() (matched bool, err error) {
	if len(g.flipped) != 2 {
		return false, errors.New("resolve needs two face-up cards")
	}
	first, second := &g.cards[g.flipped[0]], &g.cards[g.flipped[1]]
	if first.Symbol == second.Symbol {
		first.Matched = true
		second.Matched = true
		g.Score += pick(g.difficulty, 5, 10, 15)
		matched = true
	} else {
		first.FaceUp = false
		second.FaceUp = false
	}
	g.flipped = g.flipped[:0]
	g.Moves++
	return matched, nil
}

// TimeBonus awards one point per remaining second once all pairs are matched
func (g *MemoryMatchGame) TimeBonus(timeLeft int) {
	if g.Complete() && timeLeft > 0 {
		g.Score += timeLeft
	}
}

func (g *MemoryMatchGame) indexOf(id int) int {
	for i, c := range g.cards {
		if c.ID == id {
			return i
		}
	}
	return -1
}
