package schema

import (
	"errors"
	"testing"

	"github.com/aretw0/dfa/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAutomaton_Success(t *testing.T) {
	q0, q1 := domain.NewState("q0"), domain.NewState("q1")
	table := domain.TransitionTable{}
	table.Set(q0, "a", q1)

	err := ValidateAutomaton(
		domain.NewStateSet(q0, q1),
		domain.NewAlphabet("a", "b"),
		table,
		q0,
		domain.NewStateSet(q1),
	)
	assert.NoError(t, err)
}

func TestValidateAutomaton_EmptyAcceptIsValid(t *testing.T) {
	q0 := domain.NewState("q0")
	err := ValidateAutomaton(domain.NewStateSet(q0), domain.NewAlphabet(), domain.TransitionTable{}, q0, domain.NewStateSet())
	assert.NoError(t, err)
}

func TestValidateAutomaton_Failures(t *testing.T) {
	q0 := domain.NewState("q0")
	stranger := domain.NewState("x")

	tests := []struct {
		name     string
		states   domain.StateSet
		alphabet domain.Alphabet
		table    func() domain.TransitionTable
		start    *domain.State
		accept   domain.StateSet
		code     string
	}{
		{
			name:   "missing start",
			states: domain.NewStateSet(q0),
			start:  nil,
			code:   CodeMissingStart,
		},
		{
			name:   "start outside states",
			states: domain.NewStateSet(q0),
			start:  stranger,
			code:   CodeStartNotInStates,
		},
		{
			name:   "accept outside states",
			states: domain.NewStateSet(q0),
			start:  q0,
			accept: domain.NewStateSet(stranger),
			code:   CodeAcceptNotInState,
		},
		{
			name:     "multi character symbol",
			states:   domain.NewStateSet(q0),
			alphabet: domain.NewAlphabet("ab"),
			start:    q0,
			code:     CodeInvalidSymbol,
		},
		{
			name:     "symbol outside alphabet",
			states:   domain.NewStateSet(q0),
			alphabet: domain.NewAlphabet("a"),
			table: func() domain.TransitionTable {
				tt := domain.TransitionTable{}
				tt.Set(q0, "z", q0)
				return tt
			},
			start: q0,
			code:  CodeUnknownSymbol,
		},
		{
			name:     "target outside states",
			states:   domain.NewStateSet(q0),
			alphabet: domain.NewAlphabet("a"),
			table: func() domain.TransitionTable {
				tt := domain.TransitionTable{}
				tt.Set(q0, "a", stranger)
				return tt
			},
			start: q0,
			code:  CodeTargetNotInState,
		},
		{
			name:     "source outside states",
			states:   domain.NewStateSet(q0),
			alphabet: domain.NewAlphabet("a"),
			table: func() domain.TransitionTable {
				tt := domain.TransitionTable{}
				tt.Set(stranger, "a", q0)
				return tt
			},
			start: q0,
			code:  CodeSourceNotInState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := domain.TransitionTable{}
			if tt.table != nil {
				table = tt.table()
			}
			err := ValidateAutomaton(tt.states, tt.alphabet, table, tt.start, tt.accept)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidAutomaton))

			issues := ValidationErrors(err)
			require.Len(t, issues, 1)
			var ve *ValidationError
			require.True(t, errors.As(issues[0], &ve))
			assert.Equal(t, tt.code, ve.Code)
		})
	}
}

func TestValidateAutomaton_CollectsAllIssues(t *testing.T) {
	q0 := domain.NewState("q0")
	stranger := domain.NewState("x")

	err := ValidateAutomaton(
		domain.NewStateSet(q0),
		domain.NewAlphabet("aa"),
		domain.TransitionTable{},
		nil,
		domain.NewStateSet(stranger),
	)
	require.Error(t, err)

	issues := ValidationErrors(err)
	require.Len(t, issues, 3)
	// Sorted by code
	assert.Contains(t, issues[0].Error(), CodeAcceptNotInState)
	assert.Contains(t, issues[1].Error(), CodeInvalidSymbol)
	assert.Contains(t, issues[2].Error(), CodeMissingStart)
	assert.Contains(t, err.Error(), "3 validation errors")
}

func TestValidationErrors_NonAggregate(t *testing.T) {
	assert.Nil(t, ValidationErrors(errors.New("boom")))
}
