package tui

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestColumnPrinter(t *testing.T) {
	var p ColumnPrinter
	assert.Equal(t, "", p.String())

	p.Append("-*-\n-*-\n-*-\n")
	p.Append("---\n***\n---\n")

	want := " 0  |  1\n" +
		"-*- | ---\n" +
		"-*- | ***\n" +
		"-*- | ---"
	assert.Equal(t, want, p.String())
	assert.Equal(t, 2, p.Len())
}

func TestColumnPrinter_RaggedColumns(t *testing.T) {
	var p ColumnPrinter
	p.Append("*\n*\n")
	p.Append("**\n")

	want := "0 | 1\n" +
		"* | **\n" +
		"* |"
	assert.Equal(t, want, p.String())
}

func TestColorize_Ascii(t *testing.T) {
	frame := "-*-\n"
	assert.Equal(t, frame, Colorize(frame, termenv.Ascii))
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "1.2.3\n")
	assert.Contains(t, buf.String(), "cellsweep")
	assert.Contains(t, buf.String(), "v1.2.3")
}

func TestSummary_Markdown(t *testing.T) {
	md := Summary{Pattern: "blinker", Height: 5, Width: 5, Generations: 2, Population: 3, Births: 4, Deaths: 4}.Markdown()
	assert.Contains(t, md, "## Run summary: blinker")
	assert.Contains(t, md, "| grid | 5x5 |")
	assert.Contains(t, md, "| births | 4 |")
	assert.NotContains(t, md, "identical")

	md = Summary{Stable: true}.Markdown()
	assert.Contains(t, md, "custom")
	assert.Contains(t, md, "identical")
}
