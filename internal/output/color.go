package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/sys/unix"
)

// Styles holds the lipgloss styles for output formatting.
// When Enabled is false fragments are written verbatim.
type Styles struct {
	Enabled   bool
	Source    lipgloss.Style
	LineNum   lipgloss.Style
	Separator lipgloss.Style
	Match     lipgloss.Style
}

// NewStyles creates the default color styles rendered for w.
// If force is set, ANSI colors are used even when w is not a terminal.
func NewStyles(w io.Writer, force bool) Styles {
	r := lipgloss.NewRenderer(w)
	if force {
		r.SetColorProfile(termenv.ANSI)
	}
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	return Styles{
		Enabled:   true,
		Source:    base.Foreground(lipgloss.Color("5")),            // magenta
		LineNum:   base.Foreground(lipgloss.Color("2")),            // green
		Separator: base.Foreground(lipgloss.Color("6")),            // cyan
		Match:     base.Foreground(lipgloss.Color("1")).Bold(true), // bold red
	}
}

// NoStyles returns styles with no coloring.
func NoStyles() Styles {
	return Styles{}
}

// style returns the style for a fragment kind and whether it applies.
func (s Styles) style(k Kind) (lipgloss.Style, bool) {
	if !s.Enabled {
		return lipgloss.Style{}, false
	}
	switch k {
	case KindSource:
		return s.Source, true
	case KindLineNum:
		return s.LineNum, true
	case KindSeparator:
		return s.Separator, true
	case KindMatch:
		return s.Match, true
	}
	return lipgloss.Style{}, false
}

// IsTerminal checks if the given file descriptor is a terminal using ioctl.
func IsTerminal(fd uintptr) bool {
	_, err := unix.IoctlGetTermios(int(fd), unix.TCGETS)
	return err == nil
}

