package routine

import (
	"fmt"

	"github.com/aretw0/cellsweep/pkg/domain"
)

type stepPhase int

const (
	phaseSelf stepPhase = iota
	phaseNeighbors
	phaseTransition
	phaseDone
)

// CellStepper computes the next state of one cell: it queries the cell itself,
// delegates to a NeighborCounter, applies domain.Next and emits the transition.
type CellStepper struct {
	coord    domain.Coord
	phase    stepPhase
	state    domain.CellState
	neighbor *NeighborCounter
	next     domain.CellState
}

// NewCellStepper returns a stepper suspended on the query for coord itself.
func NewCellStepper(coord domain.Coord) *CellStepper {
	return &CellStepper{coord: coord}
}

func (s *CellStepper) Done() bool {
	return s.phase == phaseDone
}

func (s *CellStepper) Pending() domain.Message {
	switch s.phase {
	case phaseSelf:
		return domain.StateQuery{Coord: s.coord}
	case phaseNeighbors:
		return s.neighbor.Pending()
	case phaseTransition:
		return domain.StateTransition{Coord: s.coord, State: s.next}
	}
	return nil
}

func (s *CellStepper) Resume(value any) error {
	switch s.phase {
	case phaseSelf:
		state, err := expectState(s.Pending(), value)
		if err != nil {
			return err
		}
		s.state = state
		s.neighbor = NewNeighborCounter(s.coord)
		s.phase = phaseNeighbors

	case phaseNeighbors:
		if err := s.neighbor.Resume(value); err != nil {
			return err
		}
		if s.neighbor.Done() {
			s.next = domain.Next(s.state, s.neighbor.Count())
			s.neighbor = nil
			s.phase = phaseTransition
		}

	case phaseTransition:
		if err := expectNothing(s.Pending(), value); err != nil {
			return err
		}
		s.phase = phaseDone

	default:
		return fmt.Errorf("%w: cell stepper %v", domain.ErrRoutineComplete, s.coord)
	}
	return nil
}

// Coord returns the cell this stepper updates.
func (s *CellStepper) Coord() domain.Coord {
	return s.coord
}
