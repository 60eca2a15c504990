package routine

import (
	"fmt"

	"github.com/aretw0/cellsweep/pkg/domain"
)

// Routine is a suspended computation waiting on a single message.
type Routine interface {
	// Done reports whether the routine has finished. A finished routine has no pending message.
	Done() bool

	// Pending returns the message the routine is suspended on, or nil once Done.
	Pending() domain.Message

	// Resume delivers the answer to the pending message and advances to the next suspension point.
	Resume(value any) error
}

// Dimensioned is implemented by routines bound to a fixed grid size.
type Dimensioned interface {
	Dimensions() (height, width int)
}

// expectState checks a resumption value for a pending StateQuery.
func expectState(pending domain.Message, value any) (domain.CellState, error) {
	state, ok := value.(domain.CellState)
	if !ok {
		return 0, fmt.Errorf("%w: %v pending, got %T", domain.ErrOutOfOrderResume, pending, value)
	}
	return state, nil
}

// expectNothing checks a resumption value for a pending StateTransition or GenerationComplete.
func expectNothing(pending domain.Message, value any) error {
	if value != nil {
		return fmt.Errorf("%w: %v pending, got %T", domain.ErrOutOfOrderResume, pending, value)
	}
	return nil
}
