package grid

import (
	"fmt"

	"github.com/aretw0/cellsweep/pkg/domain"
)

// Diff lists the cells whose state differs between before and after, in row-major order.
func Diff(before, after *Grid) ([]domain.Change, error) {
	if before.height != after.height || before.width != after.width {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d", domain.ErrDimensionMismatch,
			before.height, before.width, after.height, after.width)
	}

	var changes []domain.Change
	for i := range after.cells {
		if before.cells[i] == after.cells[i] {
			continue
		}
		changes = append(changes, domain.Change{
			Coord: domain.Coord{Y: i / after.width, X: i % after.width},
			From:  before.cells[i],
			To:    after.cells[i],
		})
	}
	return changes, nil
}
