package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReport(t *testing.T) {
	q0, q1 := NewState("q0"), NewState("q1")
	res := &Result{
		Accepted: true,
		Consumed: 1,
		Final:    q1,
		Counts:   map[*State]uint64{q0: 1, q1: 1},
	}

	input := "a"
	r := NewReport("demo", &input, res)
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "demo", r.Automaton)
	assert.Equal(t, "a", *r.Input)
	assert.Equal(t, "q1", r.Final)
	assert.Equal(t, map[string]uint64{"q0": 1, "q1": 1}, r.Counts)
	assert.False(t, r.CreatedAt.IsZero())

	input = "changed"
	assert.Equal(t, "a", *r.Input, "input is copied")
}

func TestNewReport_AbsentInput(t *testing.T) {
	r := NewReport("", nil, &Result{Accepted: true})
	assert.Nil(t, r.Input)
	assert.Empty(t, r.Final)
	assert.Empty(t, r.Counts)
}

func TestNewReport_SharedLabelsAreSummed(t *testing.T) {
	a, b := NewState("dup"), NewState("dup")
	r := NewReport("", nil, &Result{Counts: map[*State]uint64{a: 2, b: 3}})
	assert.Equal(t, uint64(5), r.Counts["dup"])
}
