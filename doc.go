/*
Package dfa simulates deterministic finite automata.

An Automaton is assembled from five components: a set of states, an alphabet,
a transition table, a start state and a set of accept states. It decides
whether an input string belongs to the language it recognizes.

# Concept

The transition table need not be total. Any (state, symbol) pair missing from
the table leads to an implicit trap state: the walk stops and the input is
rejected. Rejection is a normal outcome and is never reported as an error.

The empty input is accepted unconditionally, whether or not the start state is
an accept state.

Two evaluation styles are offered:

  - Accepts resets and increments the activity counter carried by every State.
    Calls on the same Automaton are serialised.
  - Evaluate leaves States untouched and returns the per-state counts in a
    domain.Result. It is safe for concurrent use.

# Usage

	q0, q1, q2 := domain.NewState("q0"), domain.NewState("q1"), domain.NewState("q2")

	table := domain.TransitionTable{}
	table.Set(q0, "a", q1)
	table.Set(q1, "b", q2)

	a, err := dfa.NewValidated(
		domain.NewStateSet(q0, q1, q2),
		domain.NewAlphabet("a", "b"),
		table,
		q0,
		domain.NewStateSet(q2),
	)
	if err != nil {
		log.Fatal(err)
	}

	ok, err := a.Accepts("ab") // true
	fmt.Println(ok, q1.ActivityCount()) // true 1

Automata can also be assembled with the pkg/dsl builder or loaded from YAML/JSON
definitions with pkg/adapters/file.
*/
package dfa
