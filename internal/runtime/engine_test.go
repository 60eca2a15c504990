package runtime_test

import (
	"context"
	"testing"

	"github.com/aretw0/cellsweep/internal/runtime"
	"github.com/aretw0/cellsweep/pkg/domain"
	"github.com/aretw0/cellsweep/pkg/grid"
	"github.com/aretw0/cellsweep/pkg/routine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, text string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(text)
	require.NoError(t, err)
	return g
}

func newSweep(t *testing.T, g *grid.Grid) *routine.GenerationSweeper {
	t.Helper()
	s, err := routine.NewGenerationSweeper(g.Height(), g.Width())
	require.NoError(t, err)
	return s
}

func TestRunGeneration_Blinker(t *testing.T) {
	horizontal := mustParse(t, `
-----
-----
-***-
-----
-----
`)
	vertical := mustParse(t, `
-----
--*--
--*--
--*--
-----
`)
	engine := runtime.NewEngine()
	sweep := newSweep(t, horizontal)
	ctx := context.Background()

	next, err := engine.RunGeneration(ctx, horizontal, sweep)
	require.NoError(t, err)
	assert.Equal(t, vertical.String(), next.String())

	back, err := engine.RunGeneration(ctx, next, sweep)
	require.NoError(t, err)
	assert.Equal(t, horizontal.String(), back.String())

	// Source grids are never written.
	assert.Equal(t, vertical.String(), next.String())
}

func TestRunGeneration_BlockIsStable(t *testing.T) {
	block := mustParse(t, `
------
------
--**--
--**--
------
------
`)
	engine := runtime.NewEngine()
	next, err := engine.RunGeneration(context.Background(), block, newSweep(t, block))
	require.NoError(t, err)
	assert.True(t, block.Equal(next))
}

func TestRunGeneration_EmptyStaysEmpty(t *testing.T) {
	g, err := grid.New(4, 4)
	require.NoError(t, err)

	engine := runtime.NewEngine()
	sweep := newSweep(t, g)
	for i := 0; i < 5; i++ {
		g, err = engine.RunGeneration(context.Background(), g, sweep)
		require.NoError(t, err)
		assert.Equal(t, 0, g.Population(), "generation %d", i+1)
	}
}

func TestRunGeneration_IsolatedCellDies(t *testing.T) {
	g := mustParse(t, "-----\n-----\n--*--\n-----\n-----\n")
	next, err := runtime.NewEngine().RunGeneration(context.Background(), g, newSweep(t, g))
	require.NoError(t, err)
	assert.Equal(t, 0, next.Population())
}

func TestRunGeneration_WrapsAroundEdges(t *testing.T) {
	// Neighbours across the left/right edge: both die, nothing is born.
	g := mustParse(t, "-----\n-----\n*---*\n-----\n-----\n")
	next, err := runtime.NewEngine().RunGeneration(context.Background(), g, newSweep(t, g))
	require.NoError(t, err)
	assert.Equal(t, 0, next.Population())

	// A blinker split across the same edge.
	g = mustParse(t, "-----\n-----\n**--*\n-----\n-----\n")
	next, err = runtime.NewEngine().RunGeneration(context.Background(), g, newSweep(t, g))
	require.NoError(t, err)
	assert.Equal(t, "-----\n*----\n*----\n*----\n-----\n", next.String())
}

func TestRunGeneration_VisitsEveryCellOnceInRowMajorOrder(t *testing.T) {
	g := mustParse(t, "*--\n-*-\n--*\n-**\n")

	var order []domain.Coord
	var completed *domain.GenerationEvent
	hooks := domain.LifecycleHooks{
		OnTransition: func(_ context.Context, e *domain.TransitionEvent) {
			order = append(order, e.Coord)
		},
		OnGenerationComplete: func(_ context.Context, e *domain.GenerationEvent) {
			completed = e
		},
	}

	engine := runtime.NewEngine(runtime.WithLifecycleHooks(hooks))
	_, err := engine.RunGeneration(context.Background(), g, newSweep(t, g))
	require.NoError(t, err)

	var want []domain.Coord
	for y := 0; y < 4; y++ {
		for x := 0; x < 3; x++ {
			want = append(want, domain.Coord{Y: y, X: x})
		}
	}
	assert.Equal(t, want, order)

	require.NotNil(t, completed)
	assert.Equal(t, 12, completed.Transitions)
	assert.Equal(t, 12*9, completed.Queries)
	assert.Equal(t, 0, completed.Generation)
}

func TestRunGeneration_GenerationCounterAdvances(t *testing.T) {
	g, _ := grid.New(3, 3)

	var gens []int
	engine := runtime.NewEngine(runtime.WithLifecycleHooks(domain.LifecycleHooks{
		OnGenerationStart: func(_ context.Context, e *domain.GenerationEvent) {
			gens = append(gens, e.Generation)
		},
	}))
	sweep := newSweep(t, g)
	for i := 0; i < 3; i++ {
		var err error
		g, err = engine.RunGeneration(context.Background(), g, sweep)
		require.NoError(t, err)
	}
	assert.Equal(t, []int{0, 1, 2}, gens)
}

func TestRunGeneration_DimensionMismatch(t *testing.T) {
	g, _ := grid.New(3, 3)
	sweep, err := routine.NewGenerationSweeper(3, 4)
	require.NoError(t, err)

	next, err := runtime.NewEngine().RunGeneration(context.Background(), g, sweep)
	assert.ErrorIs(t, err, domain.ErrDimensionMismatch)
	assert.Nil(t, next)

	// Nothing was consumed from the sweep.
	assert.Equal(t, domain.StateQuery{Coord: domain.Coord{}}, sweep.Pending())
}
