package domain

// TransitionTable maps a source state to its row of symbol -> destination.
// The table need not be total: any pair missing from it leads to the trap state.
type TransitionTable map[*State]map[string]*State

// Set records source --symbol--> target, allocating the row if needed.
func (t TransitionTable) Set(source *State, symbol string, target *State) {
	row, ok := t[source]
	if !ok {
		row = make(map[string]*State)
		t[source] = row
	}
	row[symbol] = target
}

// Lookup returns the transition for (source, symbol).
// A source without a row and a row without the symbol both yield Trap.
func (t TransitionTable) Lookup(source *State, symbol string) Transition {
	row, ok := t[source]
	if !ok {
		return Trap()
	}
	target, ok := row[symbol]
	if !ok || target == nil {
		return Trap()
	}
	return Goto(target)
}

// Transition is the result of one table lookup: either Goto(state) or Trap.
// The zero value is Trap.
type Transition struct {
	target *State
}

// Goto returns a transition into target.
func Goto(target *State) Transition {
	return Transition{target: target}
}

// Trap returns the transition into the implicit trap state.
func Trap() Transition {
	return Transition{}
}

// IsTrap reports whether the transition leads to the trap state.
func (t Transition) IsTrap() bool {
	return t.target == nil
}

// Target returns the destination state, or nil for Trap.
func (t Transition) Target() *State {
	return t.target
}
