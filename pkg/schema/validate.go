package schema

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/aretw0/dfa/pkg/domain"
)

// ValidateAutomaton checks the five components for consistency:
//   - a start state is present and belongs to states
//   - accept is a subset of states
//   - every table source and destination belongs to states
//   - every table symbol belongs to the alphabet
//   - every alphabet symbol is exactly one code point
//
// Returns nil or an *AggregateError listing every problem found, in a stable order.
func ValidateAutomaton(
	states domain.StateSet,
	alphabet domain.Alphabet,
	table domain.TransitionTable,
	start *domain.State,
	accept domain.StateSet,
) error {
	var errs []*ValidationError
	add := func(code, key, reason string, args ...any) {
		errs = append(errs, &ValidationError{Code: code, Key: key, Reason: fmt.Sprintf(reason, args...)})
	}

	if states.Contains(nil) {
		add(CodeNilState, "states", "state set contains a nil state")
	}

	switch {
	case start == nil:
		add(CodeMissingStart, "start", "start state is required")
	case !states.Contains(start):
		add(CodeStartNotInStates, "start", "state %q is not in the state set", start.Label)
	}

	for s := range accept {
		if !states.Contains(s) {
			add(CodeAcceptNotInState, "accept", "state %q is not in the state set", s.String())
		}
	}

	for sym := range alphabet {
		if utf8.RuneCountInString(sym) != 1 {
			add(CodeInvalidSymbol, "alphabet", "symbol %q must be exactly one character", sym)
		}
	}

	for source, row := range table {
		if !states.Contains(source) {
			add(CodeSourceNotInState, "transition["+source.String()+"]", "source state is not in the state set")
		}
		for sym, target := range row {
			key := fmt.Sprintf("transition[%s][%s]", source.String(), sym)
			if !alphabet.Contains(sym) {
				add(CodeUnknownSymbol, key, "symbol %q is not in the alphabet", sym)
			}
			if target != nil && !states.Contains(target) {
				add(CodeTargetNotInState, key, "target state %q is not in the state set", target.Label)
			}
		}
	}

	if len(errs) == 0 {
		return nil
	}

	sort.SliceStable(errs, func(i, j int) bool {
		if errs[i].Code != errs[j].Code {
			return errs[i].Code < errs[j].Code
		}
		if errs[i].Key != errs[j].Key {
			return errs[i].Key < errs[j].Key
		}
		return errs[i].Reason < errs[j].Reason
	})
	aggr := &AggregateError{Errors: make([]error, 0, len(errs))}
	for _, e := range errs {
		aggr.Errors = append(aggr.Errors, e)
	}
	return aggr
}
