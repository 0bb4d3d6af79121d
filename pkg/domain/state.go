package domain

import "math"

// State is a node of an automaton.
//
// Identity is pointer identity: two States with the same Label are distinct
// members of a StateSet. The Label is informational only.
type State struct {
	// Label is a human readable name used by loaders, renderers and reports.
	Label string

	count uint64
}

// NewState creates a state with a zero activity counter.
func NewState(label string) *State {
	return &State{Label: label}
}

// Increment records one entry into the state.
// Returns ErrCounterOverflow instead of wrapping around.
func (s *State) Increment() error {
	if s.count == math.MaxUint64 {
		return ErrCounterOverflow
	}
	s.count++
	return nil
}

// Reset sets the activity counter back to zero.
func (s *State) Reset() {
	s.count = 0
}

// ActivityCount returns how many times the state was entered since the last reset.
func (s *State) ActivityCount() uint64 {
	return s.count
}

func (s *State) String() string {
	if s == nil {
		return "<nil>"
	}
	return s.Label
}

// StateSet is a set of states keyed by identity.
type StateSet map[*State]struct{}

// NewStateSet builds a set from the given states. Duplicates collapse.
func NewStateSet(states ...*State) StateSet {
	set := make(StateSet, len(states))
	for _, s := range states {
		set[s] = struct{}{}
	}
	return set
}

// Contains reports membership by identity.
func (s StateSet) Contains(state *State) bool {
	_, ok := s[state]
	return ok
}

// Add inserts a state.
func (s StateSet) Add(state *State) {
	s[state] = struct{}{}
}

// Alphabet is the set of input symbols.
type Alphabet map[string]struct{}

// NewAlphabet builds an alphabet from the given symbols.
func NewAlphabet(symbols ...string) Alphabet {
	a := make(Alphabet, len(symbols))
	for _, sym := range symbols {
		a[sym] = struct{}{}
	}
	return a
}

// Contains reports whether symbol is part of the alphabet.
func (a Alphabet) Contains(symbol string) bool {
	_, ok := a[symbol]
	return ok
}
