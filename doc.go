/*
Package cellsweep advances a toroidal Game of Life one generation at a time.

The update rule is written as suspendable routines that never touch the grid. They
hand the driver a request for a cell's state, wait for the answer, and finally hand
back the next state of the cell. The driver owns the grids: it answers every query
from the current generation and records every transition into the next one.

# Concept

A Simulation keeps one persistent sweep routine for the lifetime of the grid. Each
call to Step resumes that routine until it reports the end of a generation, so the
sweep picks up exactly where it stopped.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/cellsweep"
		"github.com/aretw0/cellsweep/pkg/grid"
	)

	func main() {
		g, err := grid.Parse("-----\n-----\n-***-\n-----\n-----\n")
		if err != nil {
			log.Fatal(err)
		}

		sim, err := cellsweep.New(g)
		if err != nil {
			log.Fatal(err)
		}

		for i := 0; i < 2; i++ {
			next, err := sim.Step(context.Background())
			if err != nil {
				log.Fatal(err)
			}
			fmt.Print(next)
		}
	}
*/
package cellsweep
