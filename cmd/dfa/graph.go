package main

import (
	"github.com/aretw0/dfa/internal/cli"
	"github.com/aretw0/dfa/pkg/domain"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the automaton as a Mermaid diagram",
	Long:  `Outputs a Mermaid diagram (graph LR) of the automaton. With --input, the diagram is annotated with the states entered while evaluating it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		path, _ := cmd.Flags().GetString("file")

		a, err := cli.LoadAutomaton(path, logger, domain.LifecycleHooks{})
		if err != nil {
			return err
		}

		var input *string
		if cmd.Flags().Changed("input") {
			in, _ := cmd.Flags().GetString("input")
			input = &in
		}
		return cli.WriteGraph(cmd.Context(), cmd.OutOrStdout(), a, input)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().StringP("file", "f", "automaton.yaml", "Automaton definition file")
	graphCmd.Flags().String("input", "", "Overlay the activity of evaluating this input")
}
