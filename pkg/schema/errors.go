package schema

import (
	"errors"
	"fmt"

	"github.com/aretw0/dfa/pkg/domain"
)

// Validation issue codes.
const (
	CodeMissingStart     = "MISSING_START"
	CodeStartNotInStates = "START_NOT_IN_STATES"
	CodeAcceptNotInState = "ACCEPT_NOT_IN_STATES"
	CodeNilState         = "NIL_STATE"
	CodeSourceNotInState = "SOURCE_NOT_IN_STATES"
	CodeTargetNotInState = "TARGET_NOT_IN_STATES"
	CodeUnknownSymbol    = "UNKNOWN_SYMBOL"
	CodeInvalidSymbol    = "INVALID_SYMBOL"
)

// ValidationError represents a single structural problem.
type ValidationError struct {
	Code   string // One of the Code* constants
	Key    string // Component the problem was found in, e.g. "accept" or "transition[q0][a]"
	Reason string // Human-readable reason for failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Key, e.Reason)
}

// Is makes every ValidationError match domain.ErrInvalidAutomaton.
func (e *ValidationError) Is(target error) bool {
	return target == domain.ErrInvalidAutomaton
}

// AggregateError represents multiple validation failures.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d validation errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

// Is makes the aggregate match domain.ErrInvalidAutomaton.
func (e *AggregateError) Is(target error) bool {
	return target == domain.ErrInvalidAutomaton
}

// Unwrap exposes the individual failures to errors.Is and errors.As.
func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// ValidationErrors returns all validation errors if err is (or wraps) an AggregateError.
// Otherwise returns nil.
func ValidationErrors(err error) []error {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Errors
	}
	return nil
}
