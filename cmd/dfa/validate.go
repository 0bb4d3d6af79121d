package main

import (
	"fmt"

	"github.com/aretw0/dfa/internal/cli"
	"github.com/aretw0/dfa/pkg/domain"
	"github.com/aretw0/dfa/pkg/schema"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check an automaton definition for structural errors",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		path, _ := cmd.Flags().GetString("file")
		if !cmd.Flags().Changed("file") && len(args) > 0 {
			path = args[0]
		}

		a, err := cli.LoadAutomaton(path, logger, domain.LifecycleHooks{})
		if err != nil {
			for _, ve := range schema.ValidationErrors(err) {
				fmt.Fprintf(cmd.ErrOrStderr(), "  - %s\n", ve.Error())
			}
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d states, %d symbols)\n", path, len(a.States()), len(a.Alphabet()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().StringP("file", "f", "automaton.yaml", "Automaton definition file")
}
