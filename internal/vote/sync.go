package vote

import (
	"fmt"
	"sync"
)

// SyncState tells whether local vote state still matches the last
// authoritative props seen.
type SyncState int

const (
	Synced SyncState = iota
	Dirty
)

func (s SyncState) String() string {
	switch s {
	case Synced:
		return "synced"
	case Dirty:
		return "dirty"
	}
	return fmt.Sprintf("SyncState(%d)", int(s))
}

// Record is the serializable form of an Entity, kept between requests.
type Record struct {
	State      State     `json:"state"`
	Observed   Type      `json:"observed"`
	Sync       SyncState `json:"sync"`
	Generation uint64    `json:"generation"`
}

// Entity couples a Store with the prop-change tracker.
//
// A successful local vote moves it to Dirty. Any change of the
// authoritative vote type, compared with the last one observed, overwrites
// the store, moves it back to Synced and bumps Generation so children bound
// under the old generation know to drop their own local state.
type Entity struct {
	store *Store

	mu         sync.Mutex
	observed   Type
	sync       SyncState
	generation uint64
}

// Mount initializes an entity from authoritative props.
func Mount(auth State) *Entity {
	auth.Type = auth.Type.Normalize()
	return &Entity{
		store:    NewStore(auth),
		observed: auth.Type,
		sync:     Synced,
	}
}

// Restore rebuilds an entity from a saved record.
func Restore(rec Record) *Entity {
	return &Entity{
		store:      NewStore(rec.State),
		observed:   rec.Observed.Normalize(),
		sync:       rec.Sync,
		generation: rec.Generation,
	}
}

// Observe feeds fresh authoritative props. It reports whether the vote type
// changed and a forced resync happened. Score-only changes are ignored while
// the vote type is unchanged.
func (e *Entity) Observe(auth State) bool {
	t := auth.Type.Normalize()

	e.mu.Lock()
	defer e.mu.Unlock()

	if t == e.observed {
		return false
	}
	e.store.ApplyAuthoritative(t, auth.Score)
	e.observed = t
	e.sync = Synced
	e.generation++
	return true
}

// Apply reconciles a resolved mutation. Unsuccessful results leave state
// untouched and report Failed.
func (e *Entity) Apply(res Result) (Outcome, error) {
	if !res.Success {
		return Failed, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	_, outcome, err := e.store.Reconcile(res.Type, res.Increment)
	if err != nil {
		return outcome, err
	}
	if outcome == Applied {
		e.sync = Dirty
	}
	return outcome, nil
}

func (e *Entity) State() State {
	return e.store.State()
}

func (e *Entity) Sync() SyncState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sync
}

func (e *Entity) Generation() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.generation
}

// Record snapshots the entity for storage.
func (e *Entity) Record() Record {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Record{
		State:      e.store.State(),
		Observed:   e.observed,
		Sync:       e.sync,
		Generation: e.generation,
	}
}
