package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)

	return func(markdown string) (string, error) {
		if err != nil {
			return markdown, err
		}
		return r.Render(markdown)
	}
}

// Summary is the outcome of a run, shown after the last frame.
type Summary struct {
	Pattern     string
	Height      int
	Width       int
	Generations int
	Population  int
	Births      int
	Deaths      int
	Stable      bool
}

// Markdown formats s as a markdown table.
func (s Summary) Markdown() string {
	var b strings.Builder
	name := s.Pattern
	if name == "" {
		name = "custom"
	}
	fmt.Fprintf(&b, "## Run summary: %s\n\n", name)
	b.WriteString("| metric | value |\n")
	b.WriteString("|---|---|\n")
	fmt.Fprintf(&b, "| grid | %dx%d |\n", s.Height, s.Width)
	fmt.Fprintf(&b, "| generations | %d |\n", s.Generations)
	fmt.Fprintf(&b, "| population | %d |\n", s.Population)
	fmt.Fprintf(&b, "| births | %d |\n", s.Births)
	fmt.Fprintf(&b, "| deaths | %d |\n", s.Deaths)
	if s.Stable {
		b.WriteString("\nThe last generation is identical to the one before it.\n")
	}
	return b.String()
}
