package routine

import (
	"fmt"

	"github.com/aretw0/cellsweep/pkg/domain"
)

// GenerationSweeper steps every cell of a height x width grid in row-major order,
// emits domain.GenerationComplete and starts over. It never finishes.
//
// Between generations the sweeper stays suspended on GenerationComplete; resuming it
// with nil begins the next sweep at (0, 0).
type GenerationSweeper struct {
	height     int
	width      int
	index      int
	cell       *CellStepper
	generation int
}

// NewGenerationSweeper returns a sweeper suspended on the first query of cell (0, 0).
func NewGenerationSweeper(height, width int) (*GenerationSweeper, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", domain.ErrInvalidDimensions, height, width)
	}
	s := &GenerationSweeper{height: height, width: width}
	s.cell = NewCellStepper(s.coordAt(0))
	return s, nil
}

// Done always reports false.
func (s *GenerationSweeper) Done() bool {
	return false
}

func (s *GenerationSweeper) Pending() domain.Message {
	if s.cell == nil {
		return domain.GenerationComplete
	}
	return s.cell.Pending()
}

func (s *GenerationSweeper) Resume(value any) error {
	if s.cell == nil {
		if err := expectNothing(domain.GenerationComplete, value); err != nil {
			return err
		}
		s.index = 0
		s.generation++
		s.cell = NewCellStepper(s.coordAt(0))
		return nil
	}

	if err := s.cell.Resume(value); err != nil {
		return err
	}
	if s.cell.Done() {
		s.index++
		if s.index < s.height*s.width {
			s.cell = NewCellStepper(s.coordAt(s.index))
		} else {
			s.cell = nil
		}
	}
	return nil
}

// Rewind abandons the sweep in progress and suspends again on the first query
// of cell (0, 0) without counting a new generation. Drivers call it after a
// failed generation so the next call starts from a clean sweep.
func (s *GenerationSweeper) Rewind() {
	s.index = 0
	s.cell = NewCellStepper(s.coordAt(0))
}

// Dimensions returns the grid size the sweeper is bound to.
func (s *GenerationSweeper) Dimensions() (int, int) {
	return s.height, s.width
}

// Generation returns how many sweeps have been started before the current one.
func (s *GenerationSweeper) Generation() int {
	return s.generation
}

func (s *GenerationSweeper) coordAt(i int) domain.Coord {
	return domain.Coord{Y: i / s.width, X: i % s.width}
}
