package runtime

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/aretw0/dfa/pkg/domain"
)

// EnterFunc is called each time control enters a state.
// The walk aborts with the returned error if it is non-nil.
type EnterFunc func(s *domain.State) error

// Machine is the read-only view of an automaton the walker needs.
type Machine struct {
	Name   string
	States domain.StateSet
	Table  domain.TransitionTable
	Start  *domain.State
	Accept domain.StateSet
	Hooks  domain.LifecycleHooks
}

// Walk consumes input symbol by symbol from the start state.
//
// The empty input is accepted without touching any state.
// An undefined (state, symbol) pair stops the walk and rejects; no further state is entered.
// A byte that is not valid UTF-8 traps the same way.
// Otherwise the decision is membership of the last entered state in the accept set.
func (m *Machine) Walk(ctx context.Context, input string, enter EnterFunc) (*domain.Result, error) {
	if input == "" {
		res := &domain.Result{Accepted: true}
		m.decide(ctx, 0, res)
		return res, nil
	}

	if m.Start == nil {
		return nil, fmt.Errorf("%w: no start state", domain.ErrInvalidAutomaton)
	}
	if !m.States.Contains(m.Start) {
		return nil, fmt.Errorf("%w: start state %q is not in the state set", domain.ErrInvalidAutomaton, m.Start.Label)
	}

	current := m.Start
	if err := m.enter(ctx, current, -1, enter); err != nil {
		return nil, err
	}

	res := &domain.Result{}
	pos := 0
	for i := 0; i < len(input); {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		r, size := utf8.DecodeRuneInString(input[i:])
		symbol := string(r)
		t := domain.Trap()
		if r == utf8.RuneError && size == 1 {
			// An invalid byte is never a symbol, even when U+FFFD is in the alphabet.
			symbol = input[i : i+1]
		} else {
			t = m.Table.Lookup(current, symbol)
		}
		i += size

		if t.IsTrap() {
			res.Trapped = true
			res.TrapSymbol = symbol
			res.Final = current
			m.trap(ctx, current, symbol, pos)
			m.decide(ctx, utf8.RuneCountInString(input), res)
			return res, nil
		}

		next := t.Target()
		if !m.States.Contains(next) {
			return nil, fmt.Errorf("%w: transition %q --%s--> %q leaves the state set",
				domain.ErrInvalidAutomaton, current.Label, symbol, next.Label)
		}
		if err := m.enter(ctx, next, pos, enter); err != nil {
			return nil, err
		}
		current = next
		res.Consumed++
		pos++
	}

	res.Final = current
	res.Accepted = m.Accept.Contains(current)
	m.decide(ctx, pos, res)
	return res, nil
}

func (m *Machine) enter(ctx context.Context, s *domain.State, pos int, enter EnterFunc) error {
	if err := enter(s); err != nil {
		return fmt.Errorf("entering state %q: %w", s.Label, err)
	}
	if m.Hooks.OnStateEnter != nil {
		m.Hooks.OnStateEnter(ctx, &domain.StateEvent{
			EventBase: m.base(domain.EventStateEnter),
			State:     s,
			Label:     s.Label,
			Position:  pos,
		})
	}
	return nil
}

func (m *Machine) trap(ctx context.Context, from *domain.State, symbol string, pos int) {
	if m.Hooks.OnTrap == nil {
		return
	}
	m.Hooks.OnTrap(ctx, &domain.TrapEvent{
		EventBase: m.base(domain.EventTrap),
		From:      from.Label,
		Symbol:    symbol,
		Position:  pos,
	})
}

func (m *Machine) decide(ctx context.Context, length int, res *domain.Result) {
	if m.Hooks.OnDecision == nil {
		return
	}
	m.Hooks.OnDecision(ctx, &domain.DecisionEvent{
		EventBase:   m.base(domain.EventDecision),
		InputLength: length,
		Accepted:    res.Accepted,
		Trapped:     res.Trapped,
	})
}

func (m *Machine) base(t domain.EventType) domain.EventBase {
	return domain.EventBase{
		Timestamp: time.Now(),
		Type:      t,
		Automaton: m.Name,
	}
}
