package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/dfa/pkg/domain"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// Without a terminal renderer (e.g. style detection failed) the markdown is returned as is.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)
	if err != nil {
		return func(markdown string) (string, error) { return markdown, nil }
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// ReportMarkdown formats an evaluation report as a markdown table of activity counts.
// Rows are sorted by state label.
func ReportMarkdown(r *domain.Report) string {
	var sb strings.Builder

	title := r.Automaton
	if title == "" {
		title = "automaton"
	}
	input := "_absent_"
	if r.Input != nil {
		input = fmt.Sprintf("`%q`", *r.Input)
	}
	verdict := "rejected"
	if r.Accepted {
		verdict = "accepted"
	}

	sb.WriteString(fmt.Sprintf("## %s\n\n", title))
	sb.WriteString(fmt.Sprintf("Input %s was **%s**", input, verdict))
	if r.Trapped {
		sb.WriteString(fmt.Sprintf(" by the trap state after %d symbols", r.Consumed))
	}
	sb.WriteString(".\n\n")

	labels := make([]string, 0, len(r.Counts))
	for label := range r.Counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	sb.WriteString("| State | Entries |\n|---|---:|\n")
	for _, label := range labels {
		marker := ""
		if label == r.Final {
			marker = " (final)"
		}
		sb.WriteString(fmt.Sprintf("| %s%s | %d |\n", label, marker, r.Counts[label]))
	}
	return sb.String()
}
