package cli

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	addStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	delStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// colorEnabled reports whether styled output should be produced: stdout is
// a terminal and --no-color was not given.
func colorEnabled(noColor bool) bool {
	if noColor {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// styleHeading styles a section heading when color is enabled.
func styleHeading(s string, color bool) string {
	if !color {
		return s
	}
	return headingStyle.Render(s)
}

// styleDiff colorizes the added/removed lines of a rendered diff.
func styleDiff(diff string, color bool) string {
	if !color {
		return diff
	}
	lines := strings.Split(diff, "\n")
	for i, l := range lines {
		switch {
		case strings.HasPrefix(l, "+"):
			lines[i] = addStyle.Render(l)
		case strings.HasPrefix(l, "-"):
			lines[i] = delStyle.Render(l)
		case strings.HasPrefix(l, "@@"):
			lines[i] = dimStyle.Render(l)
		}
	}
	return strings.Join(lines, "\n")
}
