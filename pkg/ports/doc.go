/*
Package ports defines the interfaces the outer surfaces depend on.

# Key Interfaces

  - Simulator: a stepping Game of Life session, implemented by cellsweep.Simulation
    and consumed by the runner and the HTTP adapter.

The tests subpackage holds RunRoutineContract, a suite any routine.Routine
implementation should pass. It is kept apart so that production binaries
importing ports do not link the testing packages.
*/
package ports
