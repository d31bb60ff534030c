package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Styles holds the lipgloss styles for the extension report.
type Styles struct {
	Header    lipgloss.Style
	Extension lipgloss.Style
	Size      lipgloss.Style
	Share     lipgloss.Style
	Other     lipgloss.Style
	enabled   bool
}

// NewStyles creates the default color styles. The renderer decides the color
// profile; pass nil to use the one detected for stdout.
func NewStyles(r *lipgloss.Renderer) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Styles{
		Header:    r.NewStyle().Bold(true),
		Extension: r.NewStyle().Foreground(lipgloss.Color("5")), // magenta
		Size:      r.NewStyle().Foreground(lipgloss.Color("2")), // green
		Share:     r.NewStyle().Foreground(lipgloss.Color("6")), // cyan
		Other:     r.NewStyle().Faint(true),
		enabled:   true,
	}
}

// NoStyles returns styles with no coloring.
func NoStyles() Styles {
	return Styles{}
}

// ForcedRenderer returns a stdout renderer that emits ANSI colors even when
// stdout is not a terminal.
func ForcedRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(os.Stdout)
	r.SetColorProfile(termenv.ANSI256)
	return r
}

func (s Styles) render(st lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return st.Render(text)
}

// IsTerminal reports whether fd is a terminal.
func IsTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// StdoutIsTerminal returns true if stdout is a terminal.
func StdoutIsTerminal() bool {
	return IsTerminal(os.Stdout.Fd())
}
