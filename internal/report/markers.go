package report

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/htmlscrub/htmlscrub/internal/scrub"
)

var kindStyles = map[scrub.AttributeKind]lipgloss.Style{
	scrub.Src:  lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Underline(true),
	scrub.Href: lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Underline(true),
	scrub.Cite: lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Italic(true),
}

// ShowMarkers replaces every captured attribute in scrubbed output with
// format applied to its kind and value. With color the replacement is styled
// per kind.
func ShowMarkers(scrubbed []byte, format string, color bool) []byte {
	return scrub.Render(scrubbed, func(a scrub.Attribute) string {
		s := fmt.Sprintf(format, a.Kind, a.Value)
		if color {
			s = kindStyles[a.Kind].Render(s)
		}
		return s
	})
}

// IsTerminal reports whether w is a terminal. Only *os.File writers can be.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
