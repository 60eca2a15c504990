package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/cellsweep/pkg/domain"
)

// LoggingHooks logs the start and end of every generation.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnGenerationStart: func(ctx context.Context, e *domain.GenerationEvent) {
			logger.DebugContext(ctx, "generation_start", "generation", e.Generation)
		},
		OnGenerationComplete: func(ctx context.Context, e *domain.GenerationEvent) {
			logger.InfoContext(ctx, "generation_complete",
				"generation", e.Generation,
				"population", e.Population,
				"births", e.Births,
				"deaths", e.Deaths,
			)
		},
	}
}

// Combine merges hook sets; each callback runs the non-nil callbacks of all sets in order.
func Combine(sets ...domain.LifecycleHooks) domain.LifecycleHooks {
	var starts, completes []func(context.Context, *domain.GenerationEvent)
	var transitions []func(context.Context, *domain.TransitionEvent)
	for _, h := range sets {
		if h.OnGenerationStart != nil {
			starts = append(starts, h.OnGenerationStart)
		}
		if h.OnTransition != nil {
			transitions = append(transitions, h.OnTransition)
		}
		if h.OnGenerationComplete != nil {
			completes = append(completes, h.OnGenerationComplete)
		}
	}

	var out domain.LifecycleHooks
	if len(starts) > 0 {
		out.OnGenerationStart = func(ctx context.Context, e *domain.GenerationEvent) {
			for _, f := range starts {
				f(ctx, e)
			}
		}
	}
	if len(transitions) > 0 {
		out.OnTransition = func(ctx context.Context, e *domain.TransitionEvent) {
			for _, f := range transitions {
				f(ctx, e)
			}
		}
	}
	if len(completes) > 0 {
		out.OnGenerationComplete = func(ctx context.Context, e *domain.GenerationEvent) {
			for _, f := range completes {
				f(ctx, e)
			}
		}
	}
	return out
}
