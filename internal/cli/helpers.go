package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/dfa"
	"github.com/aretw0/dfa/internal/config"
	"github.com/aretw0/dfa/pkg/adapters/file"
	"github.com/aretw0/dfa/pkg/adapters/memory"
	"github.com/aretw0/dfa/pkg/adapters/redis"
	"github.com/aretw0/dfa/pkg/domain"
	"github.com/aretw0/dfa/pkg/ports"
)

// LoadAutomaton reads a definition file and builds a validated automaton.
func LoadAutomaton(path string, logger *slog.Logger, hooks domain.LifecycleHooks) (*dfa.Automaton, error) {
	def, err := file.Load(path)
	if err != nil {
		return nil, err
	}
	a, _, err := def.Build(dfa.WithLogger(logger), dfa.WithLifecycleHooks(hooks))
	if err != nil {
		return nil, fmt.Errorf("invalid definition %s: %w", path, err)
	}
	return a, nil
}

// NewStore creates the report store selected by cfg.
// The returned close function must be called when the store is no longer needed.
func NewStore(cfg *config.Config) (ports.ReportStore, func() error) {
	switch cfg.Store.Backend {
	case config.BackendRedis:
		store := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
			redis.WithTTL(cfg.Redis.TTL),
			redis.WithPrefix(cfg.Redis.Prefix),
		)
		return store, store.Close
	default:
		return memory.NewStore(), func() error { return nil }
	}
}
