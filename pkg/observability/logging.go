package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/dfa/pkg/domain"
)

// LogHooks returns lifecycle hooks that log every event at Debug level.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStateEnter: func(ctx context.Context, e *domain.StateEvent) {
			logger.DebugContext(ctx, "state_enter", "automaton", e.Automaton, "state", e.Label, "position", e.Position)
		},
		OnTrap: func(ctx context.Context, e *domain.TrapEvent) {
			logger.DebugContext(ctx, "trap", "automaton", e.Automaton, "from", e.From, "symbol", e.Symbol, "position", e.Position)
		},
		OnDecision: func(ctx context.Context, e *domain.DecisionEvent) {
			logger.DebugContext(ctx, "decision", "automaton", e.Automaton, "accepted", e.Accepted, "trapped", e.Trapped)
		},
	}
}
