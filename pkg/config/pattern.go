package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/cellsweep/pkg/domain"
	"github.com/aretw0/cellsweep/pkg/grid"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Pattern describes an initial grid and how long to run it.
//
// Cells come from Rows (grid text, '*' alive and '-' empty), from Alive (a list of
// [y, x] pairs), or both. When Rows is set and Height/Width are zero, the grid takes
// the size of Rows.
type Pattern struct {
	Name        string  `mapstructure:"name" yaml:"name" json:"name"`
	Description string  `mapstructure:"description" yaml:"description,omitempty" json:"description,omitempty"`
	Height      int     `mapstructure:"height" yaml:"height,omitempty" json:"height,omitempty"`
	Width       int     `mapstructure:"width" yaml:"width,omitempty" json:"width,omitempty"`
	Generations int     `mapstructure:"generations" yaml:"generations,omitempty" json:"generations,omitempty"`
	Alive       [][]int `mapstructure:"alive" yaml:"alive,omitempty" json:"alive,omitempty"`
	Rows        string  `mapstructure:"rows" yaml:"rows,omitempty" json:"rows,omitempty"`
}

// LoadPattern reads a pattern file. Files ending in .json are parsed as JSON,
// anything else as YAML.
func LoadPattern(path string) (Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Pattern{}, fmt.Errorf("failed to read pattern: %w", err)
	}
	p, err := ParsePattern(data, filepath.Ext(path))
	if err != nil {
		return Pattern{}, fmt.Errorf("%s: %w", path, err)
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return p, nil
}

// ParsePattern decodes a pattern document. ext selects the format (".json" or YAML).
func ParsePattern(data []byte, ext string) (Pattern, error) {
	raw := map[string]any{}
	if strings.EqualFold(ext, ".json") {
		if err := json.Unmarshal(data, &raw); err != nil {
			return Pattern{}, fmt.Errorf("failed to parse pattern json: %w", err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Pattern{}, fmt.Errorf("failed to parse pattern yaml: %w", err)
		}
	}
	return Decode(raw)
}

// Decode converts a generic map (from YAML, JSON or a tool call) into a Pattern.
func Decode(raw map[string]any) (Pattern, error) {
	var p Pattern
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &p,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Pattern{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return Pattern{}, fmt.Errorf("invalid pattern: %w", err)
	}
	return p, p.Validate()
}

// Validate checks sizes and coordinates without building the grid.
func (p Pattern) Validate() error {
	if p.Rows == "" && (p.Height <= 0 || p.Width <= 0) {
		return fmt.Errorf("%w: pattern %q needs rows or a positive height and width", domain.ErrInvalidDimensions, p.Name)
	}
	if p.Height < 0 || p.Width < 0 {
		return fmt.Errorf("%w: %dx%d", domain.ErrInvalidDimensions, p.Height, p.Width)
	}
	if p.Height > 0 && p.Width > 0 {
		if err := grid.CheckDimensions(p.Height, p.Width); err != nil {
			return fmt.Errorf("pattern %q: %w", p.Name, err)
		}
	}
	if p.Generations < 0 {
		return fmt.Errorf("pattern %q: generations must not be negative", p.Name)
	}
	for i, c := range p.Alive {
		if len(c) != 2 {
			return fmt.Errorf("pattern %q: alive[%d] must be a [y, x] pair", p.Name, i)
		}
	}
	return nil
}

// Grid builds the initial grid described by the pattern.
func (p Pattern) Grid() (*grid.Grid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var rows *grid.Grid
	if p.Rows != "" {
		var err error
		if rows, err = grid.Parse(p.Rows); err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p.Name, err)
		}
	}

	height, width := p.Height, p.Width
	if rows != nil {
		if height == 0 {
			height = rows.Height()
		}
		if width == 0 {
			width = rows.Width()
		}
		if rows.Height() > height || rows.Width() > width {
			return nil, fmt.Errorf("%w: rows are %dx%d, pattern is %dx%d", domain.ErrDimensionMismatch,
				rows.Height(), rows.Width(), height, width)
		}
	}

	g, err := grid.New(height, width)
	if err != nil {
		return nil, err
	}
	if rows != nil {
		g.Seed(rows.Alive()...)
	}
	for _, c := range p.Alive {
		if !g.Contains(c[0], c[1]) {
			return nil, fmt.Errorf("%w: alive cell (%d,%d) outside %dx%d", domain.ErrDimensionMismatch, c[0], c[1], height, width)
		}
		g.Write(c[0], c[1], domain.Alive)
	}
	return g, nil
}
