/*
Package runtime contains the driver that executes the sweep protocol against a grid.

The driver repeatedly reads the pending message of a routine.Routine and answers it:
queries are served from the source grid, transitions are written to a new target
grid, and GenerationComplete ends the call. Source and target are never the same
grid, so every cell of a generation is computed from the previous one.
*/
package runtime
