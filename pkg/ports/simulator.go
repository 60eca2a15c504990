package ports

import (
	"context"

	"github.com/aretw0/cellsweep/pkg/grid"
)

// Simulator advances a grid one generation at a time.
// Implementations are not safe for concurrent use; adapters serialise access.
type Simulator interface {
	// Step advances one generation and returns the new grid.
	Step(ctx context.Context) (*grid.Grid, error)

	// Run advances n generations and returns every intermediate grid.
	Run(ctx context.Context, n int) ([]*grid.Grid, error)

	// Grid returns the current generation. Callers must not modify it.
	Grid() *grid.Grid

	// Generation returns the number of generations advanced so far.
	Generation() int

	// Reset restarts from a copy of g at generation zero.
	Reset(g *grid.Grid) error
}
