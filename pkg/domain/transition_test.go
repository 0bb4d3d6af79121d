package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransitionTable_Lookup(t *testing.T) {
	q0, q1 := NewState("q0"), NewState("q1")
	table := TransitionTable{}
	table.Set(q0, "a", q1)

	tr := table.Lookup(q0, "a")
	assert.False(t, tr.IsTrap())
	assert.Same(t, q1, tr.Target())

	assert.True(t, table.Lookup(q0, "b").IsTrap(), "unmapped symbol")
	assert.True(t, table.Lookup(q1, "a").IsTrap(), "source without a row")
	assert.Nil(t, table.Lookup(q1, "a").Target())
}

func TestTransitionTable_NilTargetIsTrap(t *testing.T) {
	q0 := NewState("q0")
	table := TransitionTable{q0: {"a": nil}}
	assert.True(t, table.Lookup(q0, "a").IsTrap())
}

func TestTransition_ZeroValueIsTrap(t *testing.T) {
	var tr Transition
	assert.True(t, tr.IsTrap())
	assert.True(t, Trap().IsTrap())
	assert.False(t, Goto(NewState("x")).IsTrap())
}
