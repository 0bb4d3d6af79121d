package dfa

import (
	"context"
	"io"
	"log/slog"
	"math"
	"sync"
	"unicode/utf8"

	"github.com/aretw0/dfa/internal/runtime"
	"github.com/aretw0/dfa/pkg/domain"
	"github.com/aretw0/dfa/pkg/schema"
)

// Automaton is a deterministic finite automaton.
//
// The components are stored as given and are not copied. Callers must not
// mutate them while an evaluation is running.
type Automaton struct {
	states     domain.StateSet
	alphabet   domain.Alphabet
	transition domain.TransitionTable
	start      *domain.State
	accept     domain.StateSet

	name   string
	hooks  domain.LifecycleHooks
	logger *slog.Logger

	// mu serialises Accepts, which mutates the shared State counters.
	mu sync.Mutex
}

// Option defines a functional option for configuring the Automaton.
type Option func(*Automaton)

// WithName sets a descriptive name used in logs, events and reports.
func WithName(name string) Option {
	return func(a *Automaton) {
		a.name = name
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(a *Automaton) {
		a.hooks = hooks
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Automaton) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// New stores the five components verbatim. No consistency checks are made;
// use NewValidated or Validate for that.
// A nil start is allowed: only the empty input can be evaluated without one.
func New(
	states domain.StateSet,
	alphabet domain.Alphabet,
	transition domain.TransitionTable,
	start *domain.State,
	accept domain.StateSet,
	opts ...Option,
) *Automaton {
	a := &Automaton{
		states:     states,
		alphabet:   alphabet,
		transition: transition,
		start:      start,
		accept:     accept,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.name != "" {
		a.logger = a.logger.With("automaton", a.name)
	}
	return a
}

// NewValidated validates the components before constructing the Automaton.
// The returned error matches domain.ErrInvalidAutomaton.
func NewValidated(
	states domain.StateSet,
	alphabet domain.Alphabet,
	transition domain.TransitionTable,
	start *domain.State,
	accept domain.StateSet,
	opts ...Option,
) (*Automaton, error) {
	if err := schema.ValidateAutomaton(states, alphabet, transition, start, accept); err != nil {
		return nil, err
	}
	return New(states, alphabet, transition, start, accept, opts...), nil
}

// Validate checks the stored components for consistency.
func (a *Automaton) Validate() error {
	return schema.ValidateAutomaton(a.states, a.alphabet, a.transition, a.start, a.accept)
}

// Name returns the descriptive name, if any.
func (a *Automaton) Name() string { return a.name }

// States returns the state set.
func (a *Automaton) States() domain.StateSet { return a.states }

// Alphabet returns the input alphabet.
func (a *Automaton) Alphabet() domain.Alphabet { return a.alphabet }

// AcceptStates returns the set of accept states.
func (a *Automaton) AcceptStates() domain.StateSet { return a.accept }

// TransitionFunction returns the transition table.
func (a *Automaton) TransitionFunction() domain.TransitionTable { return a.transition }

// InitialState returns the start state; nil if none.
func (a *Automaton) InitialState() *domain.State { return a.start }

// Next looks up the transition for (source, symbol).
func (a *Automaton) Next(source *domain.State, symbol string) domain.Transition {
	return a.transition.Lookup(source, symbol)
}

// NextState returns the destination of (source, symbol); nil for the trap state.
func (a *Automaton) NextState(source *domain.State, symbol string) *domain.State {
	return a.Next(source, symbol).Target()
}

// Accepts reports whether input belongs to the language of the automaton.
//
// Every state's activity counter is reset to zero, then incremented each time
// the state is entered. After a trap, counters stop at the last entered state.
// If an error is returned the counters are left as they were at the failure.
func (a *Automaton) Accepts(input string) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for s := range a.states {
		if s != nil {
			s.Reset()
		}
	}

	res, err := a.walk(context.Background(), input, (*domain.State).Increment)
	if err != nil {
		return false, err
	}
	return res.Accepted, nil
}

// AcceptsOptional is Accepts for an input that may be absent.
// A nil input is the empty string.
func (a *Automaton) AcceptsOptional(input *string) (bool, error) {
	if input == nil {
		return a.Accepts("")
	}
	return a.Accepts(*input)
}

// Evaluate decides input without touching the shared State counters.
// The per-state entry counts are returned in the Result.
// It is safe to call Evaluate concurrently on the same Automaton.
func (a *Automaton) Evaluate(ctx context.Context, input string) (*domain.Result, error) {
	counts := make(map[*domain.State]uint64)
	res, err := a.walk(ctx, input, func(s *domain.State) error {
		c := counts[s]
		if c == math.MaxUint64 {
			return domain.ErrCounterOverflow
		}
		counts[s] = c + 1
		return nil
	})
	if err != nil {
		return nil, err
	}
	res.Counts = counts
	return res, nil
}

func (a *Automaton) walk(ctx context.Context, input string, enter runtime.EnterFunc) (*domain.Result, error) {
	m := &runtime.Machine{
		Name:   a.name,
		States: a.states,
		Table:  a.transition,
		Start:  a.start,
		Accept: a.accept,
		Hooks:  a.hooks,
	}

	res, err := m.Walk(ctx, input, enter)
	if err != nil {
		a.logger.Warn("evaluation failed", "input_len", utf8.RuneCountInString(input), "error", err)
		return nil, err
	}
	a.logger.Debug("evaluated",
		"input_len", utf8.RuneCountInString(input),
		"consumed", res.Consumed,
		"accepted", res.Accepted,
		"trapped", res.Trapped,
	)
	return res, nil
}
