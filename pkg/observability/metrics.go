package observability

import (
	"context"

	"github.com/aretw0/dfa/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeTrapped  = "trapped"
)

// Metrics holds the collectors fed by Hooks.
type Metrics struct {
	StateEntries *prometheus.CounterVec
	Evaluations  *prometheus.CounterVec
	InputSymbols *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil registerer skips registration, which is convenient in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		StateEntries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dfa_state_entries_total",
				Help: "Total number of state entries",
			},
			[]string{"automaton", "state"},
		),
		Evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dfa_evaluations_total",
				Help: "Total number of evaluations by outcome",
			},
			[]string{"automaton", "outcome"},
		),
		InputSymbols: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dfa_input_symbols",
				Help:    "Length of evaluated inputs in symbols",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
			[]string{"automaton"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.StateEntries, m.Evaluations, m.InputSymbols)
	}
	return m
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStateEnter: func(_ context.Context, e *domain.StateEvent) {
			m.StateEntries.WithLabelValues(e.Automaton, e.Label).Inc()
		},
		OnDecision: func(_ context.Context, e *domain.DecisionEvent) {
			m.Evaluations.WithLabelValues(e.Automaton, outcome(e)).Inc()
			m.InputSymbols.WithLabelValues(e.Automaton).Observe(float64(e.InputLength))
		},
	}
}

func outcome(e *domain.DecisionEvent) string {
	switch {
	case e.Accepted:
		return OutcomeAccepted
	case e.Trapped:
		return OutcomeTrapped
	default:
		return OutcomeRejected
	}
}

// Chain combines several hook sets; each callback runs in the given order.
func Chain(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStateEnter: func(ctx context.Context, e *domain.StateEvent) {
			for _, h := range hooks {
				if h.OnStateEnter != nil {
					h.OnStateEnter(ctx, e)
				}
			}
		},
		OnTrap: func(ctx context.Context, e *domain.TrapEvent) {
			for _, h := range hooks {
				if h.OnTrap != nil {
					h.OnTrap(ctx, e)
				}
			}
		},
		OnDecision: func(ctx context.Context, e *domain.DecisionEvent) {
			for _, h := range hooks {
				if h.OnDecision != nil {
					h.OnDecision(ctx, e)
				}
			}
		},
	}
}
