/*
Package routine implements the Game of Life update rule as suspendable state machines.

A routine never touches the grid. It exposes the message it is waiting on through
Pending, and the driver answers by calling Resume with the requested value:

  - StateQuery: resume with the domain.CellState found at that coordinate.
  - StateTransition: resume with nil once the transition has been recorded.
  - GenerationComplete: resume with nil to start the next sweep.

Routines nest by delegation. A GenerationSweeper holds the CellStepper of the cell
being updated, which in turn holds a NeighborCounter while neighbours are queried.
The outer routine forwards Pending and Resume to its current child until the child
is done, so the driver only ever sees the flat stream of messages.

# Usage

	sweep, _ := routine.NewGenerationSweeper(g.Height(), g.Width())
	for msg := sweep.Pending(); msg != domain.GenerationComplete; msg = sweep.Pending() {
		switch m := msg.(type) {
		case domain.StateQuery:
			_ = sweep.Resume(g.Read(m.Y, m.X))
		case domain.StateTransition:
			next.Write(m.Y, m.X, m.State)
			_ = sweep.Resume(nil)
		}
	}
*/
package routine
