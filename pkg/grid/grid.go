// Package grid provides the toroidal cell storage read and written by the driver.
package grid

import (
	"fmt"

	"github.com/aretw0/cellsweep/pkg/domain"
)

// MaxCells bounds height*width for any grid.
const MaxCells = 1 << 22

// Grid is a fixed-size two dimensional board with wrap-around indexing.
// A zero Grid is not usable; create one with New.
type Grid struct {
	height int
	width  int
	cells  []domain.CellState
}

// New creates a height x width grid with every cell Empty.
func New(height, width int) (*Grid, error) {
	if err := CheckDimensions(height, width); err != nil {
		return nil, err
	}
	cells := make([]domain.CellState, height*width)
	for i := range cells {
		cells[i] = domain.Empty
	}
	return &Grid{height: height, width: width, cells: cells}, nil
}

// CheckDimensions reports whether a height x width grid can be created.
// Both sides must be positive and the cell count must not exceed MaxCells.
func CheckDimensions(height, width int) error {
	if height <= 0 || width <= 0 {
		return fmt.Errorf("%w: %dx%d", domain.ErrInvalidDimensions, height, width)
	}
	// Divide instead of multiplying so huge sides cannot overflow.
	if height > MaxCells/width {
		return fmt.Errorf("%w: %dx%d exceeds %d cells", domain.ErrInvalidDimensions, height, width, MaxCells)
	}
	return nil
}

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Dimensions returns height and width.
func (g *Grid) Dimensions() (int, int) { return g.height, g.width }

// Contains reports whether (y, x) lies inside the grid without wrapping.
func (g *Grid) Contains(y, x int) bool {
	return y >= 0 && y < g.height && x >= 0 && x < g.width
}

// Read returns the state at (y, x), wrapping both coordinates.
func (g *Grid) Read(y, x int) domain.CellState {
	return g.cells[g.index(y, x)]
}

// Write sets the state at (y, x), wrapping both coordinates.
func (g *Grid) Write(y, x int, state domain.CellState) {
	g.cells[g.index(y, x)] = state
}

func (g *Grid) index(y, x int) int {
	return wrap(y, g.height)*g.width + wrap(x, g.width)
}

// wrap is a modulo whose result is always in [0, n).
func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]domain.CellState, len(g.cells))
	copy(cells, g.cells)
	return &Grid{height: g.height, width: g.width, cells: cells}
}

// Equal reports whether both grids have the same size and contents.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.height != other.height || g.width != other.width {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c.IsAlive() {
			n++
		}
	}
	return n
}

// Alive lists the coordinates of live cells in row-major order.
func (g *Grid) Alive() []domain.Coord {
	var out []domain.Coord
	for i, c := range g.cells {
		if c.IsAlive() {
			out = append(out, domain.Coord{Y: i / g.width, X: i % g.width})
		}
	}
	return out
}

// Seed marks every listed coordinate Alive.
func (g *Grid) Seed(coords ...domain.Coord) {
	for _, c := range coords {
		g.Write(c.Y, c.X, domain.Alive)
	}
}
