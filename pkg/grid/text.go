package grid

import (
	"fmt"
	"strings"

	"github.com/aretw0/cellsweep/pkg/domain"
)

// String renders one line per row, each terminated by a newline.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.height * (g.width + 1))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			b.WriteByte(byte(g.cells[y*g.width+x]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Rows returns the grid as one string per row.
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	for y := range rows {
		row := make([]byte, g.width)
		for x := range row {
			row[x] = byte(g.cells[y*g.width+x])
		}
		rows[y] = string(row)
	}
	return rows
}

// Parse builds a grid from text in the format produced by String.
// Blank lines and surrounding whitespace are ignored; all rows must have the same width.
func Parse(text string) (*Grid, error) {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty grid text", domain.ErrInvalidDimensions)
	}

	width := len([]rune(rows[0]))
	g, err := New(len(rows), width)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", domain.ErrDimensionMismatch, y, len(runes), width)
		}
		for x, r := range runes {
			state, err := domain.ParseCellState(r)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", y, x, err)
			}
			g.Write(y, x, state)
		}
	}
	return g, nil
}
