package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/dfa/internal/cli"
	"github.com/aretw0/dfa/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the automaton over HTTP",
	Long:  `Exposes evaluation, graph and report endpoints as a JSON API, plus Prometheus metrics on /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		path, _ := cmd.Flags().GetString("file")

		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		metrics := observability.NewMetrics(reg)

		a, err := cli.LoadAutomaton(path, logger, observability.Chain(metrics.Hooks(), observability.LogHooks(logger)))
		if err != nil {
			return err
		}

		store, closeStore := cli.NewStore(cfg)
		defer func() {
			if err := closeStore(); err != nil {
				logger.Warn("failed to close store", "error", err)
			}
		}()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Info("serving automaton", "name", a.Name(), "store", cfg.Store.Backend)
		return cli.Serve(ctx, cfg.HTTP.Addr, cli.NewServerHandler(a, store, reg, logger), logger)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("file", "f", "automaton.yaml", "Automaton definition file")
	serveCmd.Flags().String("http-addr", ":8080", "Address to listen on")
	serveCmd.Flags().String("store-backend", "memory", "Report store backend (memory, redis)")
	serveCmd.Flags().String("redis-addr", "localhost:6379", "Redis address")
	serveCmd.Flags().String("redis-password", "", "Redis password")
	serveCmd.Flags().Int("redis-db", 0, "Redis database")
	serveCmd.Flags().Duration("redis-ttl", 0, "Report expiration (0 keeps reports forever)")
	serveCmd.Flags().String("redis-prefix", "dfa:report:", "Redis key prefix")
}
