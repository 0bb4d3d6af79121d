package domain

// Result is the outcome of a single evaluation.
type Result struct {
	// Accepted is the decision. Rejection is a normal outcome, not an error.
	Accepted bool

	// Trapped is true when an undefined (state, symbol) pair stopped the walk.
	Trapped bool

	// Consumed is the number of symbols that led to a defined state.
	Consumed int

	// TrapSymbol is the symbol that led into the trap (empty if not trapped).
	TrapSymbol string

	// Final is the last state entered; nil for the empty input.
	Final *State

	// Counts holds the number of entries per state for this evaluation only.
	// States that were never entered are absent.
	Counts map[*State]uint64
}

// Count returns the number of times s was entered during this evaluation.
func (r *Result) Count(s *State) uint64 {
	return r.Counts[s]
}

// TotalEntries returns the sum of all counts.
func (r *Result) TotalEntries() uint64 {
	var total uint64
	for _, c := range r.Counts {
		total += c
	}
	return total
}
