package store

import (
	"sync"
	"time"
)

// Listener is invoked after every dispatch with the new state. It runs
// while the store's lock is held, so dispatches observe a strict order of
// state changes and the listener never sees states out of sequence.
type Listener func(State)

// Store holds the application state and serializes all changes through
// Dispatch. Reads go through Snapshot, which returns a defensive copy.
type Store struct {
	mu       sync.Mutex
	state    State
	listener Listener
	now      func() time.Time
}

// New creates a store seeded with the given state
func New(initial State) *Store {
	return &Store{
		state: initial,
		now:   time.Now,
	}
}

// SetListener registers the single post-dispatch listener, typically the
// persistence adapter's Save
func (s *Store) SetListener(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listener = l
}

// SetClock overrides the store's time source
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// Dispatch applies an action and notifies the listener. Each dispatch runs
// to completion before the next begins.
func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = ReduceAt(s.state, a, s.now())
	next := s.state.Clone()
	if s.listener != nil {
		s.listener(next)
	}
	return next
}

// Snapshot returns a copy of the current state
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}
