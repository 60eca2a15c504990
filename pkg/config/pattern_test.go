package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/cellsweep/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPattern_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "glider.yaml")
	content := []byte(`
height: 5
width: 9
generations: 10
alive:
  - [0, 3]
  - [1, 4]
  - [2, 2]
  - [2, 3]
  - [2, 4]
`)
	require.NoError(t, os.WriteFile(path, content, 0644))

	p, err := LoadPattern(path)
	require.NoError(t, err)
	assert.Equal(t, "glider", p.Name)
	assert.Equal(t, 10, p.Generations)

	g, err := p.Grid()
	require.NoError(t, err)
	assert.Equal(t, "---*-----\n----*----\n--***----\n---------\n---------\n", g.String())
}

func TestLoadPattern_JSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blinker.json")
	content := []byte(`{"name": "horizontal", "rows": "---\n***\n---", "generations": "2"}`)
	require.NoError(t, os.WriteFile(path, content, 0644))

	p, err := LoadPattern(path)
	require.NoError(t, err)
	assert.Equal(t, "horizontal", p.Name)
	assert.Equal(t, 2, p.Generations)

	g, err := p.Grid()
	require.NoError(t, err)
	assert.Equal(t, 3, g.Population())
	assert.Equal(t, 3, g.Height())
}

func TestLoadPattern_Missing(t *testing.T) {
	_, err := LoadPattern(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		want error
	}{
		{"no size", map[string]any{"name": "x"}, domain.ErrInvalidDimensions},
		{"unknown key", map[string]any{"height": 2, "width": 2, "colour": "red"}, nil},
		{"bad pair", map[string]any{"height": 2, "width": 2, "alive": []any{[]any{1}}}, nil},
		{"too many cells", map[string]any{"height": 4611686018427387904, "width": 3}, domain.ErrInvalidDimensions},
		{"negative generations", map[string]any{"height": 2, "width": 2, "generations": -1}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.raw)
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestPattern_Grid(t *testing.T) {
	p := Pattern{Name: "padded", Rows: "**\n**", Height: 4, Width: 4, Alive: [][]int{{3, 3}}}
	g, err := p.Grid()
	require.NoError(t, err)
	assert.Equal(t, "**--\n**--\n----\n---*\n", g.String())

	p = Pattern{Name: "outside", Height: 2, Width: 2, Alive: [][]int{{2, 0}}}
	_, err = p.Grid()
	assert.ErrorIs(t, err, domain.ErrDimensionMismatch)

	p = Pattern{Name: "too small", Rows: "***", Width: 2}
	_, err = p.Grid()
	assert.ErrorIs(t, err, domain.ErrDimensionMismatch)
}
