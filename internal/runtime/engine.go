package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/cellsweep/pkg/domain"
	"github.com/aretw0/cellsweep/pkg/grid"
	"github.com/aretw0/cellsweep/pkg/routine"
)

// Engine is the driver: the only component that touches grid storage.
// It answers the queries of a sweep routine from the source grid and records
// its transitions into a fresh target grid.
type Engine struct {
	logger *slog.Logger
	hooks  domain.LifecycleHooks
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// NewEngine creates a driver.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RunGeneration advances source by one generation using sweep and returns the new grid.
//
// The sweep is persistent: if it is parked on GenerationComplete from a previous call,
// it is resumed past the sentinel first. On error the partially written target is
// returned alongside the error and must be discarded by the caller.
func (e *Engine) RunGeneration(ctx context.Context, source *grid.Grid, sweep routine.Routine) (*grid.Grid, error) {
	height, width := source.Dimensions()
	if d, ok := sweep.(routine.Dimensioned); ok {
		sh, sw := d.Dimensions()
		if sh != height || sw != width {
			return nil, fmt.Errorf("%w: sweep is %dx%d, grid is %dx%d", domain.ErrDimensionMismatch, sh, sw, height, width)
		}
	}

	target, err := grid.New(height, width)
	if err != nil {
		return nil, err
	}

	if sweep.Pending() == domain.GenerationComplete {
		if err := sweep.Resume(nil); err != nil {
			return nil, err
		}
	}

	generation := 0
	if g, ok := sweep.(interface{ Generation() int }); ok {
		generation = g.Generation()
	}

	started := time.Now()
	e.fireGeneration(ctx, e.hooks.OnGenerationStart, &domain.GenerationEvent{
		EventBase:  domain.EventBase{Timestamp: started, Type: domain.EventGenerationStart},
		Generation: generation,
		Height:     height,
		Width:      width,
	})

	stats := sweepStats{written: make([]bool, height*width)}
	for msg := sweep.Pending(); ; msg = sweep.Pending() {
		var value any

		switch m := msg.(type) {
		case domain.StateQuery:
			stats.queries++
			value = source.Read(m.Y, m.X)

		case domain.StateTransition:
			if !target.Contains(m.Y, m.X) {
				return target, fmt.Errorf("%w: transition at %v outside %dx%d grid", domain.ErrDimensionMismatch, m.Coord, height, width)
			}
			idx := m.Y*width + m.X
			if stats.written[idx] {
				return target, fmt.Errorf("%w: second transition for %v", domain.ErrProtocolViolation, m.Coord)
			}
			stats.written[idx] = true
			stats.transitions++

			from := source.Read(m.Y, m.X)
			target.Write(m.Y, m.X, m.State)
			stats.record(from, m.State)

			if e.hooks.OnTransition != nil {
				e.hooks.OnTransition(ctx, &domain.TransitionEvent{
					EventBase:  domain.EventBase{Timestamp: time.Now(), Type: domain.EventTransition},
					Generation: generation,
					Coord:      m.Coord,
					From:       from,
					To:         m.State,
				})
			}

		default:
			if msg != domain.GenerationComplete {
				return target, fmt.Errorf("%w: unexpected message %T", domain.ErrProtocolViolation, msg)
			}
			if stats.transitions != height*width {
				return target, fmt.Errorf("%w: generation complete after %d of %d cells", domain.ErrProtocolViolation, stats.transitions, height*width)
			}

			elapsed := time.Since(started)
			e.logger.Debug("generation complete",
				"generation", generation,
				"queries", stats.queries,
				"births", stats.births,
				"deaths", stats.deaths,
				"duration", elapsed,
			)
			e.fireGeneration(ctx, e.hooks.OnGenerationComplete, &domain.GenerationEvent{
				EventBase:   domain.EventBase{Timestamp: time.Now(), Type: domain.EventGenerationComplete},
				Generation:  generation,
				Height:      height,
				Width:       width,
				Queries:     stats.queries,
				Transitions: stats.transitions,
				Births:      stats.births,
				Deaths:      stats.deaths,
				Population:  stats.population,
				Duration:    elapsed,
			})
			return target, nil
		}

		if err := sweep.Resume(value); err != nil {
			return target, err
		}
	}
}

func (e *Engine) fireGeneration(ctx context.Context, hook func(context.Context, *domain.GenerationEvent), ev *domain.GenerationEvent) {
	if hook != nil {
		hook(ctx, ev)
	}
}

type sweepStats struct {
	written     []bool
	queries     int
	transitions int
	births      int
	deaths      int
	population  int
}

// record counts one transition. Population is derived here so the driver
// never reads back from the target grid.
func (s *sweepStats) record(from, to domain.CellState) {
	if to.IsAlive() {
		s.population++
	}
	switch {
	case !from.IsAlive() && to.IsAlive():
		s.births++
	case from.IsAlive() && !to.IsAlive():
		s.deaths++
	}
}
