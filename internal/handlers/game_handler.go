package handlers

import (
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"memoir/internal/games"
	"memoir/internal/models"
	"memoir/internal/store"
)

// Notifier is the slice of the notification emitter the game surface needs
type Notifier interface {
	ShowAchievement(title, message string)
	ShowMilestone(title, message string)
}

// gameRun is the transient state of one in-progress game. Runs live only in
// memory; abandoning one loses it, and only the finishing session persists.
type gameRun struct {
	id         string
	gameType   models.GameType
	difficulty models.Difficulty
	startedAt  time.Time
	budget     int

	pattern    *games.PatternGame
	number     *games.NumberSequenceGame
	search     *games.WordSearchGame
	memory     *games.MemoryMatchGame
	connection *games.WordConnectionGame
	attention  *games.AttentionGame
}

func (run *gameRun) score() int {
	switch run.gameType {
	case models.GamePatternSequence:
		return run.pattern.Score
	case models.GameNumberSequence:
		return run.number.Score
	case models.GameWordSearch:
		return run.search.Score
	case models.GameMemoryMatch:
		return run.memory.Score
	case models.GameWordConnections:
		return run.connection.Score
	default:
		return run.attention.Score
	}
}

func (run *gameRun) complete() bool {
	switch run.gameType {
	case models.GamePatternSequence:
		return run.pattern.Complete()
	case models.GameNumberSequence:
		return run.number.Complete()
	case models.GameWordSearch:
		return run.search.Complete()
	case models.GameMemoryMatch:
		return run.memory.Complete()
	case models.GameWordConnections:
		return run.connection.Complete()
	default:
		return run.attention.Complete()
	}
}

// GameHandler manages game runs and records finished sessions
type GameHandler struct {
	store    *store.Store
	notifier Notifier
	now      NowFunc

	mu   sync.Mutex
	runs map[string]*gameRun
}

func NewGameHandler(st *store.Store, notifier Notifier, now NowFunc) *GameHandler {
	return &GameHandler{
		store:    st,
		notifier: notifier,
		now:      now,
		runs:     map[string]*gameRun{},
	}
}

var gameTypesByPath = map[string]models.GameType{
	"pattern":     models.GamePatternSequence,
	"number":      models.GameNumberSequence,
	"wordsearch":  models.GameWordSearch,
	"memory":      models.GameMemoryMatch,
	"connections": models.GameWordConnections,
	"focus":       models.GameAttentionFocus,
}

type startGameRequest struct {
	Difficulty string `json:"difficulty"`
}

// Start handles POST /api/games/{game}/start
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	gameType, ok := gameTypesByPath[r.PathValue("game")]
	if !ok {
		respondWithError(w, http.StatusNotFound, "Unknown game", "", nil)
		return
	}

	var req startGameRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "Error decoding game start", err)
		return
	}
	difficulty := models.Difficulty(req.Difficulty)
	switch difficulty {
	case models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard:
	case "":
		difficulty = models.DifficultyMedium
	default:
		respondWithError(w, http.StatusBadRequest, "Difficulty must be easy, medium or hard", "", nil)
		return
	}

	rng := rand.New(rand.NewSource(h.now().UnixNano()))
	run := &gameRun{
		id:         uuid.NewString(),
		gameType:   gameType,
		difficulty: difficulty,
		startedAt:  h.now(),
		budget:     games.TimeBudget(gameType, difficulty),
	}

	view := map[string]any{
		"runId":      run.id,
		"gameType":   gameType,
		"difficulty": difficulty,
		"timeBudget": run.budget,
	}

	switch gameType {
	case models.GamePatternSequence:
		run.pattern = games.NewPatternGame(difficulty, rng)
		view["pattern"] = run.pattern.NextPattern()
		view["colors"] = games.PatternColors
		view["maxLevel"] = run.pattern.MaxLevel()
	case models.GameNumberSequence:
		run.number = games.NewNumberSequenceGame(difficulty, rng)
		view["sequence"] = run.number.NextPuzzle()
		view["maxLevel"] = run.number.MaxLevel()
	case models.GameWordSearch:
		run.search = games.NewWordSearchGame(difficulty, rng)
		view["grid"] = run.search.Grid()
		view["words"] = run.search.Words()
	case models.GameMemoryMatch:
		run.memory = games.NewMemoryMatchGame(difficulty, rng)
		view["cards"] = run.memory.Cards()
		view["pairs"] = run.memory.Pairs()
	case models.GameWordConnections:
		run.connection = games.NewWordConnectionGame(difficulty, rng)
		view["grid"] = run.connection.Grid()
		view["groups"] = run.connection.Groups()
	case models.GameAttentionFocus:
		run.attention = games.NewAttentionGame(difficulty, rng)
		view["targets"] = run.attention.Targets()
		view["maxLevel"] = run.attention.MaxLevel()
		view["tickMillis"] = games.TickMillis
	}

	h.mu.Lock()
	h.runs[run.id] = run
	h.mu.Unlock()

	writeJSON(w, http.StatusCreated, view)
}

// lookup fetches a run of the expected type, responding with the error
// itself when the run is missing or mismatched
func (h *GameHandler) lookup(w http.ResponseWriter, r *http.Request, gameType models.GameType) *gameRun {
	h.mu.Lock()
	run := h.runs[r.PathValue("id")]
	h.mu.Unlock()
	if run == nil || run.gameType != gameType {
		respondWithError(w, http.StatusNotFound, "No such game run", "", nil)
		return nil
	}
	return run
}

type patternGuessRequest struct {
	Pattern []int `json:"pattern"`
}

// PatternGuess handles POST /api/games/pattern/{id}/guess
func (h *GameHandler) PatternGuess(w http.ResponseWriter, r *http.Request) {
	run := h.lookup(w, r, models.GamePatternSequence)
	if run == nil {
		return
	}
	var req patternGuessRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "Error decoding pattern guess", err)
		return
	}

	h.mu.Lock()
	correct := run.pattern.Submit(req.Pattern)
	resp := map[string]any{
		"correct":  correct,
		"level":    run.pattern.Level,
		"score":    run.pattern.Score,
		"complete": run.pattern.Complete(),
	}
	if !run.pattern.Complete() {
		resp["pattern"] = run.pattern.NextPattern()
	}
	h.mu.Unlock()

	writeJSON(w, http.StatusOK, resp)
}

type numberAnswerRequest struct {
	Answer int `json:"answer"`
}

// NumberAnswer handles POST /api/games/number/{id}/answer
func (h *GameHandler) NumberAnswer(w http.ResponseWriter, r *http.Request) {
	run := h.lookup(w, r, models.GameNumberSequence)
	if run == nil {
		return
	}
	var req numberAnswerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "Error decoding answer", err)
		return
	}

	h.mu.Lock()
	correct, expected := run.number.Submit(req.Answer)
	resp := map[string]any{
		"correct":  correct,
		"expected": expected,
		"level":    run.number.Level,
		"score":    run.number.Score,
		"complete": run.number.Complete(),
	}
	if !run.number.Complete() {
		resp["sequence"] = run.number.NextPuzzle()
	}
	h.mu.Unlock()

	writeJSON(w, http.StatusOK, resp)
}

type wordSearchCheckRequest struct {
	Cells []games.Cell `json:"cells"`
}

// WordSearchCheck handles POST /api/games/wordsearch/{id}/check
func (h *GameHandler) WordSearchCheck(w http.ResponseWriter, r *http.Request) {
	run := h.lookup(w, r, models.GameWordSearch)
	if run == nil {
		return
	}
	var req wordSearchCheckRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "Error decoding selection", err)
		return
	}

	h.mu.Lock()
	word, found := run.search.CheckSelection(req.Cells)
	resp := map[string]any{
		"found":      found,
		"word":       word,
		"foundWords": run.search.Found(),
		"score":      run.search.Score,
		"complete":   run.search.Complete(),
	}
	h.mu.Unlock()

	writeJSON(w, http.StatusOK, resp)
}

type memoryFlipRequest struct {
	CardID int `json:"cardId"`
}

// MemoryFlip handles POST /api/games/memory/{id}/flip
func (h *GameHandler) MemoryFlip(w http.ResponseWriter, r *http.Request) {
	run := h.lookup(w, r, models.GameMemoryMatch)
	if run == nil {
		return
	}
	var req memoryFlipRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "Error decoding flip", err)
		return
	}

	h.mu.Lock()
	err := run.memory.Flip(req.CardID)
	cards := run.memory.Cards()
	h.mu.Unlock()

	if err != nil {
		respondWithError(w, http.StatusConflict, err.Error(), "", nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"cards": cards})
}

// MemoryResolve handles POST /api/games/memory/{id}/resolve
func (h *GameHandler) MemoryResolve(w http.ResponseWriter, r *http.Request) {
	run := h.lookup(w, r, models.GameMemoryMatch)
	if run == nil {
		return
	}

	h.mu.Lock()
	matched, err := run.memory.Resolve()
	resp := map[string]any{
		"matched":  matched,
		"cards":    run.memory.Cards(),
		"moves":    run.memory.Moves,
		"score":    run.memory.Score,
		"complete": run.memory.Complete(),
	}
	h.mu.Unlock()

	if err != nil {
		respondWithError(w, http.StatusConflict, err.Error(), "", nil)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

type connectionCheckRequest struct {
	Words []string `json:"words"`
}

// ConnectionCheck handles POST /api/games/connections/{id}/check
func (h *GameHandler) ConnectionCheck(w http.ResponseWriter, r *http.Request) {
	run := h.lookup(w, r, models.GameWordConnections)
	if run == nil {
		return
	}
	var req connectionCheckRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "Error decoding group", err)
		return
	}

	h.mu.Lock()
	category, ok := run.connection.CheckGroup(req.Words)
	resp := map[string]any{
		"correct":  ok,
		"category": category,
		"solved":   run.connection.SolvedCategories(),
		"attempts": run.connection.Attempts,
		"score":    run.connection.Score,
		"complete": run.connection.Complete(),
	}
	h.mu.Unlock()

	writeJSON(w, http.StatusOK, resp)
}

// FocusTick handles POST /api/games/focus/{id}/tick
func (h *GameHandler) FocusTick(w http.ResponseWriter, r *http.Request) {
	run := h.lookup(w, r, models.GameAttentionFocus)
	if run == nil {
		return
	}

	h.mu.Lock()
	run.attention.Tick()
	targets := run.attention.Targets()
	h.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"targets": targets})
}

type focusClickRequest struct {
	TargetID int `json:"targetId"`
}

// FocusClick handles POST /api/games/focus/{id}/click
func (h *GameHandler) FocusClick(w http.ResponseWriter, r *http.Request) {
	run := h.lookup(w, r, models.GameAttentionFocus)
	if run == nil {
		return
	}
	var req focusClickRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "Error decoding click", err)
		return
	}

	h.mu.Lock()
	hit, err := run.attention.Click(req.TargetID)
	resp := map[string]any{
		"hit":      hit,
		"level":    run.attention.Level,
		"score":    run.attention.Score,
		"hits":     run.attention.Hits,
		"misses":   run.attention.Misses,
		"targets":  run.attention.Targets(),
		"complete": run.attention.Complete(),
	}
	h.mu.Unlock()

	if err != nil {
		respondWithError(w, http.StatusNotFound, err.Error(), "", nil)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Finish handles POST /api/games/runs/{id}/finish. It settles time bonuses,
// records the session, fires milestone notifications and discards the run.
func (h *GameHandler) Finish(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	run := h.runs[r.PathValue("id")]
	if run != nil {
		delete(h.runs, run.id)
	}
	h.mu.Unlock()
	if run == nil {
		respondWithError(w, http.StatusNotFound, "No such game run", "", nil)
		return
	}

	now := h.now()
	elapsed := int(now.Sub(run.startedAt).Seconds())
	if elapsed > run.budget {
		elapsed = run.budget
	}
	timeLeft := run.budget - elapsed

	switch run.gameType {
	case models.GameWordSearch:
		run.search.TimeBonus(timeLeft)
	case models.GameMemoryMatch:
		run.memory.TimeBonus(timeLeft)
	}

	score := run.score()
	resp := map[string]any{
		"score":    score,
		"duration": elapsed,
		"complete": run.complete(),
		"recorded": false,
	}

	state := h.store.Snapshot()
	if state.CurrentUser != nil && score > 0 {
		session := models.GameSession{
			ID:          uuid.NewString(),
			GameType:    run.gameType,
			Difficulty:  run.difficulty,
			Score:       score,
			Duration:    elapsed,
			CompletedAt: now,
			UserID:      state.CurrentUser.ID,
		}
		after := h.store.Dispatch(store.AddGameSession{Session: session})
		h.checkMilestones(after)
		resp["recorded"] = true
		resp["session"] = session
		resp["stats"] = after.CurrentUser.Stats
	}

	writeJSON(w, http.StatusOK, resp)
}

// Sessions handles GET /api/sessions
func (h *GameHandler) Sessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Snapshot().GameSessions)
}

// Achievements handles GET /api/achievements
func (h *GameHandler) Achievements(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Snapshot().Achievements)
}

// Milestones awarded from session history
const (
	achievementFirstSession = "First Steps"
	achievementStreakThree  = "Three Day Streak"
	achievementStreakSeven  = "One Week Strong"
)

func (h *GameHandler) checkMilestones(state store.State) {
	if state.CurrentUser == nil {
		return
	}
	stats := state.CurrentUser.Stats

	if len(state.GameSessions) == 1 {
		h.earn(state, achievementFirstSession, "You completed your first brain exercise!")
	}
	if stats.CurrentStreak == 3 {
		h.earn(state, achievementStreakThree, "Three days of exercises in a row. Keep it up!")
	}
	if stats.CurrentStreak == 7 {
		h.earn(state, achievementStreakSeven, "A full week of daily brain exercises!")
	}
}

// earn records an achievement once and raises its notification
func (h *GameHandler) earn(state store.State, title, description string) {
	for _, a := range state.Achievements {
		if a.Title == title && a.UserID == state.CurrentUser.ID {
			return
		}
	}

	now := h.now()
	h.store.Dispatch(store.EarnAchievement{Achievement: models.Achievement{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Earned:      true,
		EarnedAt:    &now,
		UserID:      state.CurrentUser.ID,
	}})
	h.notifier.ShowAchievement(title, description)
}
