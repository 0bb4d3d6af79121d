package domain

import "errors"

// ErrInvalidAutomaton is returned when the automaton's components are inconsistent,
// e.g. a non-empty input is evaluated without a start state.
var ErrInvalidAutomaton = errors.New("invalid automaton")

// ErrCounterOverflow is returned when an activity counter cannot be incremented further.
var ErrCounterOverflow = errors.New("activity counter overflow")

// ErrReportNotFound is returned when a report ID cannot be found in the store.
var ErrReportNotFound = errors.New("report not found")
