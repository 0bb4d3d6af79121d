package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/dfa"
	"github.com/aretw0/dfa/internal/presentation/graph"
	"github.com/aretw0/dfa/internal/presentation/tui"
	"github.com/aretw0/dfa/pkg/domain"
)

// RunOptions controls how RunInputs presents results.
type RunOptions struct {
	// Absent evaluates the absent input before the given inputs.
	Absent bool
	// Report prints a markdown table of activity counts after each verdict.
	Report bool
	// Render transforms the markdown report (e.g. glamour). Nil prints it raw.
	Render func(string) (string, error)
}

// RunInputs evaluates every input and writes one verdict per line to w.
// It returns the reports in input order. Rejection is not an error.
func RunInputs(ctx context.Context, w io.Writer, a *dfa.Automaton, inputs []string, opts RunOptions) ([]*domain.Report, error) {
	var queue []*string
	if opts.Absent {
		queue = append(queue, nil)
	}
	for i := range inputs {
		queue = append(queue, &inputs[i])
	}

	reports := make([]*domain.Report, 0, len(queue))
	for _, in := range queue {
		value := ""
		if in != nil {
			value = *in
		}
		res, err := a.Evaluate(ctx, value)
		if err != nil {
			return reports, err
		}

		report := domain.NewReport(a.Name(), in, res)
		reports = append(reports, report)

		tui.PrintVerdict(w, in, res.Accepted, res.Trapped, res.Consumed, res.TrapSymbol)
		if opts.Report {
			md := tui.ReportMarkdown(report)
			if opts.Render != nil {
				if rendered, err := opts.Render(md); err == nil {
					md = rendered
				}
			}
			fmt.Fprintln(w, md)
		}
	}
	return reports, nil
}

// WriteGraph writes the Mermaid graph of a. When input is not nil the counts of
// evaluating it are overlaid.
func WriteGraph(ctx context.Context, w io.Writer, a *dfa.Automaton, input *string) error {
	var overlay *graph.GraphOverlay
	if input != nil {
		res, err := a.Evaluate(ctx, *input)
		if err != nil {
			return err
		}
		overlay = graph.OverlayFromResult(res)
	}
	_, err := io.WriteString(w, graph.GenerateMermaid(a, overlay))
	return err
}
