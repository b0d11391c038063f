package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	stepStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4CCBF1"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4DCA7D"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F5C800"))
)

// isTerminal reports whether w is an interactive terminal with colour allowed
func isTerminal(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func render(enabled bool, style lipgloss.Style, msg string) string {
	if !enabled {
		return msg
	}
	return style.Render(msg)
}
