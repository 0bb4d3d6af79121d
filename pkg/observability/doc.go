/*
Package observability turns automaton lifecycle events into Prometheus metrics.

	m := observability.NewMetrics(prometheus.DefaultRegisterer)
	a := dfa.New(states, alphabet, table, start, accept,
		dfa.WithName("ab"),
		dfa.WithLifecycleHooks(m.Hooks()),
	)

Exposed series:

  - dfa_state_entries_total{automaton, state}
  - dfa_evaluations_total{automaton, outcome} with outcome accepted, rejected or trapped
  - dfa_input_symbols{automaton} (histogram of input lengths)
*/
package observability
