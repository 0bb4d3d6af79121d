package runtime_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/dfa/internal/runtime"
	"github.com/aretw0/dfa/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMachine() (*runtime.Machine, *domain.State, *domain.State) {
	q0, q1 := domain.NewState("q0"), domain.NewState("q1")
	table := domain.TransitionTable{}
	table.Set(q0, "0", q0)
	table.Set(q0, "1", q1)
	table.Set(q1, "0", q1)
	table.Set(q1, "1", q0)
	return &runtime.Machine{
		Name:   "odd-ones",
		States: domain.NewStateSet(q0, q1),
		Table:  table,
		Start:  q0,
		Accept: domain.NewStateSet(q1),
	}, q0, q1
}

func TestWalk_VisitOrder(t *testing.T) {
	m, q0, q1 := newMachine()

	var visited []*domain.State
	res, err := m.Walk(context.Background(), "1101", func(s *domain.State) error {
		visited = append(visited, s)
		return nil
	})
	require.NoError(t, err)
	assert.True(t, res.Accepted)
	assert.Equal(t, []*domain.State{q0, q1, q0, q0, q1}, visited)
	assert.Equal(t, 4, res.Consumed)
	assert.Same(t, q1, res.Final)
}

func TestWalk_EmptyInputVisitsNothing(t *testing.T) {
	m, _, _ := newMachine()
	m.Start = nil

	res, err := m.Walk(context.Background(), "", func(*domain.State) error {
		t.Fatal("no state should be entered")
		return nil
	})
	require.NoError(t, err)
	assert.True(t, res.Accepted)
}

func TestWalk_TrapStopsVisiting(t *testing.T) {
	m, q0, _ := newMachine()

	calls := 0
	res, err := m.Walk(context.Background(), "0x111", func(*domain.State) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.False(t, res.Accepted)
	assert.True(t, res.Trapped)
	assert.Equal(t, "x", res.TrapSymbol)
	assert.Same(t, q0, res.Final)
	assert.Equal(t, 1, res.Consumed)
	assert.Equal(t, 2, calls)
}

func TestWalk_EnterErrorAborts(t *testing.T) {
	m, _, _ := newMachine()
	boom := errors.New("boom")

	calls := 0
	_, err := m.Walk(context.Background(), "111", func(*domain.State) error {
		calls++
		if calls == 2 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
}

func TestWalk_HookPositions(t *testing.T) {
	m, _, _ := newMachine()

	var positions []int
	var trapAt int
	var decided *domain.DecisionEvent
	m.Hooks = domain.LifecycleHooks{
		OnStateEnter: func(_ context.Context, e *domain.StateEvent) { positions = append(positions, e.Position) },
		OnTrap:       func(_ context.Context, e *domain.TrapEvent) { trapAt = e.Position },
		OnDecision:   func(_ context.Context, e *domain.DecisionEvent) { decided = e },
	}

	_, err := m.Walk(context.Background(), "10z", func(*domain.State) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, []int{-1, 0, 1}, positions)
	assert.Equal(t, 2, trapAt)
	require.NotNil(t, decided)
	assert.Equal(t, 3, decided.InputLength)
	assert.True(t, decided.Trapped)
	assert.Equal(t, "odd-ones", decided.Automaton)
	assert.Equal(t, domain.EventDecision, decided.Type)
}

func TestWalk_InvalidUTF8Traps(t *testing.T) {
	q0 := domain.NewState("q0")
	table := domain.TransitionTable{}
	table.Set(q0, "\uFFFD", q0)
	m := &runtime.Machine{
		States: domain.NewStateSet(q0),
		Table:  table,
		Start:  q0,
		Accept: domain.NewStateSet(q0),
	}

	calls := 0
	res, err := m.Walk(context.Background(), "\xff\xfe", func(*domain.State) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.False(t, res.Accepted)
	assert.True(t, res.Trapped)
	assert.Equal(t, "\xff", res.TrapSymbol)
	assert.Equal(t, 0, res.Consumed)
	assert.Equal(t, 1, calls)

	// A well-formed U+FFFD is an ordinary symbol.
	res, err = m.Walk(context.Background(), "\uFFFD\uFFFD", func(*domain.State) error { return nil })
	require.NoError(t, err)
	assert.True(t, res.Accepted)
	assert.Equal(t, 2, res.Consumed)
}
