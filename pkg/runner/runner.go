package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/cellsweep/pkg/grid"
	"github.com/aretw0/cellsweep/pkg/ports"
)

// Runner handles the execution loop of a Simulation using the provided handler.
type Runner struct {
	// Handler presents every frame. If nil, a TextHandler on Stdout is used.
	Handler OutputHandler

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Generations is the number of generations to advance. Zero runs until interrupted.
	Generations int

	// Interval is the pause between generations.
	Interval time.Duration

	// IncludeInitial reports the starting grid as the first frame.
	IncludeInitial bool
}

// Result summarises a finished run.
type Result struct {
	Generations int
	Population  int
	Births      int
	Deaths      int
	// Stable is true when the last generation equals the one before it.
	Stable bool
	Final  *grid.Grid
}

// NewRunner creates a new Runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run advances sim until the generation budget is spent or ctx is cancelled.
// An interruption is not an error: the partial Result is returned with a nil error.
func (r *Runner) Run(ctx context.Context, sim ports.Simulator) (Result, error) {
	handler := r.resolveHandler()
	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	signals := NewSignalManager(ctx)
	defer signals.Stop()
	runCtx := signals.Context()

	prev := sim.Grid()
	res := Result{Final: prev, Population: prev.Population()}

	if r.IncludeInitial {
		if err := handler.Frame(runCtx, NewFrame(sim.Generation(), prev, nil)); err != nil {
			return res, fmt.Errorf("output error: %w", err)
		}
	}

	for i := 0; r.Generations == 0 || i < r.Generations; i++ {
		if i > 0 && r.Interval > 0 {
			if err := sleep(runCtx, r.Interval); err != nil {
				break
			}
		}
		if runCtx.Err() != nil {
			break
		}

		next, err := sim.Step(runCtx)
		if err != nil {
			return res, err
		}
		changes, err := grid.Diff(prev, next)
		if err != nil {
			return res, err
		}

		for _, c := range changes {
			if c.To.IsAlive() {
				res.Births++
			} else {
				res.Deaths++
			}
		}
		res.Generations++
		res.Population = next.Population()
		res.Stable = len(changes) == 0
		res.Final = next

		if err := handler.Frame(runCtx, NewFrame(sim.Generation(), next, changes)); err != nil {
			return res, fmt.Errorf("output error: %w", err)
		}
		logger.Debug("frame rendered", "generation", sim.Generation(), "changes", len(changes))
		prev = next
	}

	if runCtx.Err() != nil {
		logger.Info("run interrupted", "generations", res.Generations)
	}
	if err := handler.Close(context.Background()); err != nil {
		return res, fmt.Errorf("output error: %w", err)
	}
	return res, nil
}

// resolveHandler ensures a valid OutputHandler is set.
func (r *Runner) resolveHandler() OutputHandler {
	if r.Handler != nil {
		return r.Handler
	}
	r.Handler = NewTextHandler(nil)
	return r.Handler
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// IsInterrupted reports whether err comes from a cancelled or expired context.
func IsInterrupted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
