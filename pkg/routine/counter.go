package routine

import (
	"fmt"

	"github.com/aretw0/cellsweep/pkg/domain"
)

// NeighborCounter queries the eight neighbours of a cell in compass order and
// counts how many are alive.
type NeighborCounter struct {
	origin   domain.Coord
	step     int
	received [len(domain.Compass)]domain.CellState
	count    int
}

// NewNeighborCounter returns a counter suspended on the North query of origin.
func NewNeighborCounter(origin domain.Coord) *NeighborCounter {
	return &NeighborCounter{origin: origin}
}

func (c *NeighborCounter) Done() bool {
	return c.step == len(domain.Compass)
}

func (c *NeighborCounter) Pending() domain.Message {
	if c.Done() {
		return nil
	}
	return domain.StateQuery{Coord: c.origin.Neighbor(domain.Compass[c.step])}
}

func (c *NeighborCounter) Resume(value any) error {
	if c.Done() {
		return fmt.Errorf("%w: neighbor counter %v", domain.ErrRoutineComplete, c.origin)
	}
	state, err := expectState(c.Pending(), value)
	if err != nil {
		return err
	}
	c.received[c.step] = state
	c.step++
	if c.Done() {
		for _, s := range c.received {
			if s.IsAlive() {
				c.count++
			}
		}
	}
	return nil
}

// Count returns the number of live neighbours. It is only meaningful once Done.
func (c *NeighborCounter) Count() int {
	return c.count
}
