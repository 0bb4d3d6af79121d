package dsl

import (
	"errors"
	"fmt"

	"github.com/aretw0/dfa"
	"github.com/aretw0/dfa/pkg/domain"
)

type edge struct {
	from   string
	symbol string
}

// Builder manages the automaton construction.
type Builder struct {
	states   map[string]*StateBuilder
	alphabet domain.Alphabet
	edges    map[edge]string
	order    []edge
	start    *domain.State
	accept   domain.StateSet
	errs     []error
}

// New creates a new automaton builder.
func New() *Builder {
	return &Builder{
		states:   make(map[string]*StateBuilder),
		alphabet: domain.NewAlphabet(),
		edges:    make(map[edge]string),
		accept:   domain.NewStateSet(),
	}
}

// State declares a state by label.
// If the state already exists, it returns the existing builder.
func (b *Builder) State(label string) *StateBuilder {
	if sb, ok := b.states[label]; ok {
		return sb
	}
	sb := &StateBuilder{
		state:   domain.NewState(label),
		builder: b,
	}
	b.states[label] = sb
	return sb
}

// Alphabet declares input symbols, in addition to the ones used by transitions.
func (b *Builder) Alphabet(symbols ...string) *Builder {
	for _, sym := range symbols {
		b.alphabet[sym] = struct{}{}
	}
	return b
}

// Build resolves the transitions and returns a validated Automaton.
func (b *Builder) Build(opts ...dfa.Option) (*dfa.Automaton, error) {
	errs := append([]error(nil), b.errs...)

	states := make(domain.StateSet, len(b.states))
	for _, sb := range b.states {
		states.Add(sb.state)
	}

	table := domain.TransitionTable{}
	for _, e := range b.order {
		target, ok := b.states[b.edges[e]]
		if !ok {
			errs = append(errs, fmt.Errorf("state %q goes to undeclared state %q on %q", e.from, b.edges[e], e.symbol))
			continue
		}
		table.Set(b.states[e.from].state, e.symbol, target.state)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("failed to build automaton: %w", errors.Join(errs...))
	}

	a, err := dfa.NewValidated(states, b.alphabet, table, b.start, b.accept, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build automaton: %w", err)
	}
	return a, nil
}

func (b *Builder) errorf(format string, args ...any) {
	b.errs = append(b.errs, fmt.Errorf(format, args...))
}
