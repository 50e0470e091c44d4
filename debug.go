package acmatch

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// DumpStyles holds the lipgloss styles used by Dump. Adapted from the
// teacher's output.Styles (internal/output/color.go): same
// NewDumpStyles/NoDumpStyles split between a colored and a plain
// variant, repurposed from match highlighting to automaton-graph
// highlighting.
type DumpStyles struct {
	NodeID lipgloss.Style
	Fail   lipgloss.Style
	Match  lipgloss.Style
}

// NewDumpStyles returns the default colored styles.
func NewDumpStyles() DumpStyles {
	return DumpStyles{
		NodeID: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),          // green
		Fail:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")),          // cyan
		Match:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true), // bold red
	}
}

// NoDumpStyles returns styles with no coloring, for non-terminal output.
func NoDumpStyles() DumpStyles {
	return DumpStyles{
		NodeID: lipgloss.NewStyle(),
		Fail:   lipgloss.NewStyle(),
		Match:  lipgloss.NewStyle(),
	}
}

// Dump writes a human-readable graph of the automaton to w: for each
// node, a header line with its fail link and depth, then one line per
// outgoing edge (self-loops omitted), then a line listing any matches
// that terminate there. Intended for debugging small automatons; it is not
// part of the query contract and its output format is not stable.
func (a *Automaton) Dump(w io.Writer, styles DumpStyles) {
	for id := range a.nodes {
		n := &a.nodes[id]
		fmt.Fprintf(w, "%s fail=%s depth=%d\n",
			styles.NodeID.Render(fmt.Sprintf("node(%d)", id)),
			styles.Fail.Render(fmt.Sprintf("%d", n.fail)),
			n.depth,
		)
		for b := 0; b < 256; b++ {
			if t := n.transition[b]; t != idFail && int(t) != id {
				fmt.Fprintf(w, "  -(%q)-> node(%d)\n", byte(b), t)
			}
		}
		if len(n.matches) > 0 {
			fmt.Fprintf(w, "  %s\n", styles.Match.Render(fmt.Sprintf("matches=%v", n.matches)))
		}
	}
}
