package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the cellsweep banner.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{"  *-*  cellsweep", "#34d399"},
		{"  -**  suspend, query, resume", "#10b981"},
		{"  **-  v" + strings.TrimSpace(version), "#059669"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}

// Colorize paints live cells of a rendered grid for the given profile.
// Use termenv.Ascii to get the text back unchanged.
func Colorize(frame string, p termenv.Profile) string {
	alive := p.String("*").Foreground(p.Color("#34d399")).Bold().String()
	empty := p.String("-").Foreground(p.Color("#4b5563")).String()

	var b strings.Builder
	for _, r := range frame {
		switch r {
		case '*':
			b.WriteString(alive)
		case '-':
			b.WriteString(empty)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
