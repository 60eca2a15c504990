/*
Package runner implements the execution loop and output orchestration for a Simulation.

It acts as the bridge between the engine and the outside world. The runner advances
the simulation one generation at a time, reports each generation as a Frame to a
pluggable OutputHandler and stops on the configured generation count, on context
cancellation, or on SIGINT/SIGTERM.

# Key Components

  - Runner: the main loop.
  - OutputHandler: decouples how frames are presented (text, NDJSON, columns).
  - TextHandler: one grid per generation, optionally coloured.
  - JSONHandler: one JSON object per line.
  - ColumnsHandler: all frames side by side, printed on Close.

# Usage

	r := runner.NewRunner(
		runner.WithGenerations(10),
		runner.WithHandler(runner.NewTextHandler(os.Stdout)),
	)

	res, err := r.Run(ctx, sim)
	if err != nil {
		log.Fatal(err)
	}
*/
package runner
