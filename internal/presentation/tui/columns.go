package tui

import (
	"strconv"
	"strings"
)

// ColumnPrinter lays out several multi-line frames side by side, with the index of
// each frame centred above it and columns separated by " | ".
type ColumnPrinter struct {
	columns []string
}

// Append adds a frame as the next column.
func (p *ColumnPrinter) Append(frame string) {
	p.columns = append(p.columns, frame)
}

// Len returns the number of columns.
func (p *ColumnPrinter) Len() int {
	return len(p.columns)
}

func (p *ColumnPrinter) String() string {
	if len(p.columns) == 0 {
		return ""
	}

	lines := make([][]string, len(p.columns))
	widths := make([]int, len(p.columns))
	height := 0
	for i, col := range p.columns {
		lines[i] = strings.Split(strings.TrimRight(col, "\n"), "\n")
		for _, l := range lines[i] {
			widths[i] = max(widths[i], len(l))
		}
		widths[i] = max(widths[i], len(strconv.Itoa(i)))
		height = max(height, len(lines[i]))
	}

	rows := make([]string, height+1)
	for j := range rows {
		var b strings.Builder
		for i := range p.columns {
			if i > 0 {
				b.WriteString(" | ")
			}
			var cell string
			if j == 0 {
				cell = center(strconv.Itoa(i), widths[i])
			} else if j-1 < len(lines[i]) {
				cell = lines[i][j-1]
			}
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", widths[i]-len(cell)))
		}
		rows[j] = strings.TrimRight(b.String(), " ")
	}
	return strings.Join(rows, "\n")
}

func center(s string, width int) string {
	pad := (width - len(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}
