package runner

import (
	"log/slog"
	"time"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithHandler configures the OutputHandler.
func WithHandler(handler OutputHandler) Option {
	return func(r *Runner) {
		r.Handler = handler
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithGenerations sets how many generations to advance (0 = until interrupted).
func WithGenerations(n int) Option {
	return func(r *Runner) {
		r.Generations = n
	}
}

// WithInterval sets the pause between generations.
func WithInterval(d time.Duration) Option {
	return func(r *Runner) {
		r.Interval = d
	}
}

// WithInitialFrame reports the starting grid before the first generation.
func WithInitialFrame() Option {
	return func(r *Runner) {
		r.IncludeInitial = true
	}
}
