// Package display formats acmatch query results for cmd/acdemo. None of
// this is part of the library's contract; it exists to give the demo
// binary the same text/JSON/color output shape gogrep gives its users,
// adapted from file-and-line results to single in-memory texts.
package display

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sys/unix"
)

// Styles holds the lipgloss styles used to highlight matches in text
// output. Adapted from internal/output/color.go's Styles.
type Styles struct {
	Match lipgloss.Style
}

// NewStyles returns the default colored styles.
func NewStyles() Styles {
	return Styles{
		Match: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true), // bold red
	}
}

// NoStyles returns styles with no coloring, for non-terminal output.
func NoStyles() Styles {
	return Styles{Match: lipgloss.NewStyle()}
}

// IsTerminal reports whether fd refers to a terminal, via ioctl(TCGETS).
func IsTerminal(fd uintptr) bool {
	_, err := unix.IoctlGetTermios(int(fd), unix.TCGETS)
	return err == nil
}

// StdoutIsTerminal reports whether stdout is a terminal.
func StdoutIsTerminal() bool {
	return IsTerminal(os.Stdout.Fd())
}
