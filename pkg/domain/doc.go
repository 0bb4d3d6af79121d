/*
Package domain contains the core domain models of the DFA engine.

It defines the fundamental entities of the automaton, such as States, the
transition table, and the outcome of an evaluation. This package is kept pure
and free of external dependencies like I/O or persistence, following Hexagonal
Architecture principles.

# Key Entities

  - State: An identity-bearing node with an activity counter.
  - TransitionTable: The (state, symbol) -> state mapping. Missing pairs denote the implicit trap state.
  - Transition: A total view over one table lookup (Goto or Trap).
  - Result: The outcome of one evaluation, carrying private per-state counts.
  - Report: A serializable snapshot of a Result, keyed by label, for stores and tooling.
*/
package domain
