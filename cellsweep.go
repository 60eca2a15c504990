package cellsweep

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/cellsweep/internal/runtime"
	"github.com/aretw0/cellsweep/pkg/domain"
	"github.com/aretw0/cellsweep/pkg/grid"
	"github.com/aretw0/cellsweep/pkg/routine"
)

// Simulation is the high-level entry point of the library.
// It owns the current grid, the persistent sweep routine and the driver.
// A Simulation is not safe for concurrent use.
type Simulation struct {
	engine     *runtime.Engine
	sweep      *routine.GenerationSweeper
	current    *grid.Grid
	generation int
	hooks      domain.LifecycleHooks
	logger     *slog.Logger
	Name       string
}

// Option defines a functional option for configuring the Simulation.
type Option func(*Simulation)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Simulation) {
		s.hooks = hooks
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Simulation) {
		s.logger = logger
	}
}

// WithName labels the simulation, e.g. with the pattern it was seeded from.
func WithName(name string) Option {
	return func(s *Simulation) {
		s.Name = name
	}
}

// New creates a simulation seeded with a copy of initial.
func New(initial *grid.Grid, opts ...Option) (*Simulation, error) {
	if initial == nil {
		return nil, fmt.Errorf("%w: nil initial grid", domain.ErrInvalidDimensions)
	}

	sim := &Simulation{}
	for _, opt := range opts {
		opt(sim)
	}

	// Ensure logger is initialized (so we don't pass nil to runtime)
	if sim.logger == nil {
		sim.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if sim.Name != "" {
		sim.logger = sim.logger.With("pattern", sim.Name)
	}

	sweep, err := routine.NewGenerationSweeper(initial.Height(), initial.Width())
	if err != nil {
		return nil, err
	}

	sim.sweep = sweep
	sim.current = initial.Clone()
	sim.engine = runtime.NewEngine(
		runtime.WithLogger(sim.logger),
		runtime.WithLifecycleHooks(sim.hooks),
	)
	return sim, nil
}

// Step advances the simulation by one generation and returns the new grid.
// On error the simulation keeps its previous grid and the sweep is rewound,
// so a later Step retries the same generation.
func (s *Simulation) Step(ctx context.Context) (*grid.Grid, error) {
	next, err := s.engine.RunGeneration(ctx, s.current, s.sweep)
	if err != nil {
		s.sweep.Rewind()
		s.logger.Warn("generation failed, sweep rewound", "generation", s.generation+1, "error", err)
		return nil, fmt.Errorf("generation %d: %w", s.generation+1, err)
	}
	s.current = next
	s.generation++
	return next, nil
}

// Run advances n generations and returns every produced grid in order.
// It stops early when ctx is cancelled between generations.
func (s *Simulation) Run(ctx context.Context, n int) ([]*grid.Grid, error) {
	out := make([]*grid.Grid, 0, n)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		next, err := s.Step(ctx)
		if err != nil {
			return out, err
		}
		out = append(out, next)
	}
	return out, nil
}

// Grid returns the current generation. Callers must not modify it.
func (s *Simulation) Grid() *grid.Grid {
	return s.current
}

// Generation returns the number of generations advanced so far.
func (s *Simulation) Generation() int {
	return s.generation
}

// Reset replaces the current grid with a copy of g and restarts from generation zero.
// The grid may have different dimensions; a new sweep routine is bound to it.
func (s *Simulation) Reset(g *grid.Grid) error {
	if g == nil {
		return fmt.Errorf("%w: nil grid", domain.ErrInvalidDimensions)
	}
	sweep, err := routine.NewGenerationSweeper(g.Height(), g.Width())
	if err != nil {
		return err
	}
	s.sweep = sweep
	s.current = g.Clone()
	s.generation = 0
	s.logger.Debug("simulation reset", "height", g.Height(), "width", g.Width())
	return nil
}
