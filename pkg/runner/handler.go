package runner

import (
	"context"

	"github.com/aretw0/cellsweep/pkg/domain"
	"github.com/aretw0/cellsweep/pkg/grid"
)

// Frame is one generation as reported to an OutputHandler.
type Frame struct {
	Generation int             `json:"generation"`
	Height     int             `json:"height"`
	Width      int             `json:"width"`
	Population int             `json:"population"`
	Rows       []string        `json:"rows"`
	Changes    []domain.Change `json:"changes,omitempty"`

	Grid *grid.Grid `json:"-"`
}

// NewFrame builds the frame for g at the given generation.
func NewFrame(generation int, g *grid.Grid, changes []domain.Change) Frame {
	return Frame{
		Generation: generation,
		Height:     g.Height(),
		Width:      g.Width(),
		Population: g.Population(),
		Rows:       g.Rows(),
		Changes:    changes,
		Grid:       g,
	}
}

// OutputHandler defines the strategy for presenting generations.
type OutputHandler interface {
	// Frame presents one generation.
	Frame(ctx context.Context, f Frame) error

	// Close flushes anything the handler buffered.
	Close(ctx context.Context) error
}
