package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/martinsuchenak/orbitd/internal/model"
)

var (
	// ErrTerminalNotFound is returned when a terminal id is not in the fleet.
	ErrTerminalNotFound = errors.New("terminal not found")
	// ErrVASNotFound is returned when a VAS id is not on the target terminal.
	ErrVASNotFound = errors.New("vas feature not found")
)

// Listener is called after a terminal mutation commits, with the id of the
// mutated terminal. Listeners run outside the store lock.
type Listener func(terminalID string)

// Store owns the canonical in-memory terminal collection for a server
// session. Reads return snapshots; the only write path is ToggleVASFeature.
type Store struct {
	mu        sync.RWMutex
	terminals []model.Terminal
	index     map[string]int
	listeners []Listener
}

// New builds a store over the given fleet. Terminal ids must be unique.
func New(terminals []model.Terminal) (*Store, error) {
	index := make(map[string]int, len(terminals))
	for i, t := range terminals {
		if _, dup := index[t.ID]; dup {
			return nil, fmt.Errorf("duplicate terminal id %q", t.ID)
		}
		index[t.ID] = i
	}
	return &Store{terminals: terminals, index: index}, nil
}

// GetAll returns the fleet in stable insertion order. The returned slice is
// the caller's to keep but the entries are shared snapshots; callers must not
// mutate them.
func (s *Store) GetAll() []model.Terminal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Terminal, len(s.terminals))
	copy(out, s.terminals)
	return out
}

// Get returns a deep copy of one terminal.
func (s *Store) Get(id string) (*model.Terminal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return nil, ErrTerminalNotFound
	}
	t := s.terminals[i].Clone()
	return &t, nil
}

// Count returns the fleet size.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.terminals)
}

// Subscribe registers a listener for terminal mutations. Not safe to call
// concurrently with mutations; wire listeners up during startup.
func (s *Store) Subscribe(l Listener) {
	s.listeners = append(s.listeners, l)
}

// ToggleVASFeature flips the Enabled flag of one VAS entry. The stored
// terminal is replaced with a fresh record and VAS slice so that previously
// handed-out snapshots are never aliased and shallow change detection works.
// Nothing else on the terminal changes.
func (s *Store) ToggleVASFeature(terminalID, vasID string) (*model.Terminal, error) {
	s.mu.Lock()
	i, ok := s.index[terminalID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrTerminalNotFound
	}

	vasIdx := -1
	for j, vas := range s.terminals[i].VASFeatures {
		if vas.ID == vasID {
			vasIdx = j
			break
		}
	}
	if vasIdx == -1 {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s on %s", ErrVASNotFound, vasID, terminalID)
	}

	updated := s.terminals[i].Clone()
	updated.VASFeatures[vasIdx].Enabled = !updated.VASFeatures[vasIdx].Enabled
	s.terminals[i] = updated

	result := updated.Clone()
	listeners := s.listeners
	s.mu.Unlock()

	for _, l := range listeners {
		l(terminalID)
	}
	return &result, nil
}
