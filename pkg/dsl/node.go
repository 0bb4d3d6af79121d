package dsl

import "github.com/aretw0/dfa/pkg/domain"

// StateBuilder provides a fluent API for configuring a state.
type StateBuilder struct {
	state   *domain.State
	builder *Builder
}

// Start marks the state as the start state.
func (s *StateBuilder) Start() *StateBuilder {
	b := s.builder
	if b.start != nil && b.start != s.state {
		b.errorf("start state already set to %q, cannot set %q", b.start.Label, s.state.Label)
		return s
	}
	b.start = s.state
	return s
}

// Accept marks the state as an accept state.
func (s *StateBuilder) Accept() *StateBuilder {
	s.builder.accept.Add(s.state)
	return s
}

// On adds the transition state --symbol--> target.
// The target is referenced by label and must be declared before Build.
func (s *StateBuilder) On(symbol, target string) *StateBuilder {
	b := s.builder
	key := edge{from: s.state.Label, symbol: symbol}
	if prev, ok := b.edges[key]; ok && prev != target {
		b.errorf("state %q already goes to %q on %q, cannot also go to %q", s.state.Label, prev, symbol, target)
		return s
	}
	if _, ok := b.edges[key]; !ok {
		b.order = append(b.order, key)
	}
	b.edges[key] = target
	b.alphabet[symbol] = struct{}{}
	return s
}

// Ref returns the underlying State, e.g. to read its activity counter.
func (s *StateBuilder) Ref() *domain.State {
	return s.state
}
