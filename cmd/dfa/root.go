package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/dfa/internal/config"
	"github.com/aretw0/dfa/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dfa",
	Short: "dfa evaluates deterministic finite automata",
	Long: `dfa loads an automaton definition (YAML or JSON), decides acceptance of input strings
and reports how many times each state was entered.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to a config file (YAML, JSON or TOML)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
}

// setup loads configuration for cmd and builds the logger it asks for.
func setup(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path, cmd.Flags())
	if err != nil {
		return nil, nil, err
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logging.NewWithWriter(os.Stderr, level), nil
}
