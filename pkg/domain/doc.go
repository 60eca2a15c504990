/*
Package domain contains the core vocabulary of the cellsweep engine.

It defines the cell states, coordinates and the messages exchanged between the
update routines and the driver that owns the grid. This package is kept pure and
free of storage or I/O, so the update logic can be reasoned about without a grid.

# Key Entities

  - CellState: one of the two valid states, Alive or Empty.
  - Coord: a (row, column) pair, never bounds-checked at this layer.
  - StateQuery: a request for the current state of a cell.
  - StateTransition: the next state of a cell, produced once per generation.
  - GenerationComplete: the sentinel emitted after a full sweep.
*/
package domain
