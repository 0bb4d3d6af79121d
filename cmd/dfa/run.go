package main

import (
	"github.com/aretw0/dfa/internal/cli"
	"github.com/aretw0/dfa/internal/presentation/tui"
	"github.com/aretw0/dfa/pkg/domain"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [input...]",
	Short: "Decide acceptance for each input",
	Long: `Evaluates every argument against the automaton and prints ACCEPT or REJECT per input.
Rejection is not a failure; the command only exits non-zero when the definition is invalid.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		path, _ := cmd.Flags().GetString("file")
		absent, _ := cmd.Flags().GetBool("absent")
		report, _ := cmd.Flags().GetBool("report")

		a, err := cli.LoadAutomaton(path, logger, domain.LifecycleHooks{})
		if err != nil {
			return err
		}

		_, err = cli.RunInputs(cmd.Context(), cmd.OutOrStdout(), a, args, cli.RunOptions{
			Absent: absent || len(args) == 0,
			Report: report,
			Render: tui.NewRenderer(),
		})
		return err
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringP("file", "f", "automaton.yaml", "Automaton definition file")
	runCmd.Flags().Bool("absent", false, "Also evaluate the absent input")
	runCmd.Flags().Bool("report", false, "Print the per-state activity counts")
}
