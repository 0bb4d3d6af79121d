package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/dfa"
	"github.com/aretw0/dfa/pkg/domain"
)

// GraphOverlay contains evaluation data to visualize on the graph.
type GraphOverlay struct {
	// Counts maps states to how often they were entered.
	Counts map[*domain.State]uint64
	// Current is the last state entered, if any.
	Current *domain.State
	// Trapped marks that the walk fell into the trap state from Current.
	Trapped    bool
	TrapSymbol string
}

// OverlayFromResult builds an overlay from an evaluation result.
func OverlayFromResult(res *domain.Result) *GraphOverlay {
	return &GraphOverlay{
		Counts:     res.Counts,
		Current:    res.Final,
		Trapped:    res.Trapped,
		TrapSymbol: res.TrapSymbol,
	}
}

// GenerateMermaid produces a Mermaid flowchart syntax string for the automaton.
// It applies semantic styling:
// - Start: ((Circle))
// - Accept: (((Double circle)))
// - Default: (Rounded)
// Transitions sharing source and target are merged into one edge labelled "a, b".
// States are emitted in label order so the output is stable.
func GenerateMermaid(a *dfa.Automaton, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	states := SortedStates(a.States())
	ids := make(map[*domain.State]string, len(states))
	for i, s := range states {
		ids[s] = fmt.Sprintf("s%d", i)
	}

	for _, s := range states {
		opener, closer := "(", ")"
		switch {
		case a.AcceptStates().Contains(s):
			opener, closer = "(((", ")))"
		case s == a.InitialState():
			opener, closer = "((", "))"
		}

		label := escape(s.Label)
		if overlay != nil {
			if c, ok := overlay.Counts[s]; ok {
				label = fmt.Sprintf("%s <br/> ×%d", label, c)
			}
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", ids[s], opener, label, closer))
	}

	if start := a.InitialState(); start != nil {
		if id, ok := ids[start]; ok {
			sb.WriteString("    _start[ ] --> " + id + "\n")
			sb.WriteString("    style _start fill:none,stroke:none\n")
		}
	}

	table := a.TransitionFunction()
	for _, s := range states {
		row := table[s]
		bySymbol := make(map[*domain.State][]string)
		for sym, target := range row {
			if target == nil {
				continue
			}
			bySymbol[target] = append(bySymbol[target], sym)
		}
		for _, target := range SortedStates(keys(bySymbol)) {
			targetID, ok := ids[target]
			if !ok {
				continue
			}
			syms := bySymbol[target]
			sort.Strings(syms)
			sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", ids[s], escape(strings.Join(syms, ", ")), targetID))
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		for _, s := range states {
			if overlay.Counts[s] > 0 && s != overlay.Current {
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", ids[s]))
			}
		}
		if id, ok := ids[overlay.Current]; ok && overlay.Current != nil {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", id))
			if overlay.Trapped {
				sb.WriteString("    _trap{{\"trap\"}}\n")
				sb.WriteString(fmt.Sprintf("    %s -. \"%s\" .-> _trap\n", id, escape(overlay.TrapSymbol)))
				sb.WriteString("    style _trap fill:#ffcdd2,stroke:#c62828,color:#000\n")
			}
		}
	}

	return sb.String()
}

// SortedStates returns the states of set ordered by label.
func SortedStates(set domain.StateSet) []*domain.State {
	out := make([]*domain.State, 0, len(set))
	for s := range set {
		if s != nil {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

func keys(m map[*domain.State][]string) domain.StateSet {
	set := make(domain.StateSet, len(m))
	for s := range m {
		set.Add(s)
	}
	return set
}

func escape(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
