package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// Verdict formats the decision for one input as a colored line.
//
//	ACCEPT "ab"
//	REJECT "ba" (trap on 'b' after 0 symbols)
func Verdict(input *string, accepted, trapped bool, consumed int, trapSymbol string) string {
	p := termenv.ColorProfile()

	shown := "<absent>"
	if input != nil {
		shown = fmt.Sprintf("%q", *input)
	}

	if accepted {
		return fmt.Sprintf("%s %s", termenv.String("ACCEPT").Foreground(p.Color("#22c55e")).Bold(), shown)
	}
	line := fmt.Sprintf("%s %s", termenv.String("REJECT").Foreground(p.Color("#ef4444")).Bold(), shown)
	if trapped {
		line += termenv.String(fmt.Sprintf(" (trap on '%s' after %d symbols)", trapSymbol, consumed)).Faint().String()
	}
	return line
}

// PrintVerdict writes Verdict to w followed by a newline.
func PrintVerdict(w io.Writer, input *string, accepted, trapped bool, consumed int, trapSymbol string) {
	fmt.Fprintln(w, Verdict(input, accepted, trapped, consumed, trapSymbol))
}
