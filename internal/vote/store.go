package vote

import "sync"

// Store holds the local (score, vote type) of one votable entity.
type Store struct {
	mu    sync.RWMutex
	state State
}

func NewStore(initial State) *Store {
	initial.Type = initial.Type.Normalize()
	return &Store{state: initial}
}

// State returns a copy of the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// ApplyAuthoritative overwrites local state with server-sourced values.
func (s *Store) ApplyAuthoritative(t Type, score int) {
	s.mu.Lock()
	s.state = State{Type: t.Normalize(), Score: score}
	s.mu.Unlock()
}

// Reconcile applies a vote against the state held at call time.
func (s *Store) Reconcile(incoming Type, increment int) (State, Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, outcome, err := Reconcile(s.state, incoming, increment)
	if err != nil {
		return s.state, outcome, err
	}
	s.state = next
	return next, outcome, nil
}
