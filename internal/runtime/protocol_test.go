package runtime_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/cellsweep/internal/runtime"
	"github.com/aretw0/cellsweep/pkg/domain"
	"github.com/aretw0/cellsweep/pkg/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bogus is a message shape the driver does not know.
type bogus struct{}

func (bogus) Kind() domain.MessageKind { return "bogus" }

// scripted replays a fixed list of messages, one per resume.
type scripted struct {
	msgs    []domain.Message
	pos     int
	resumes []any
	failAt  int
}

func (s *scripted) Done() bool { return s.pos >= len(s.msgs) }

func (s *scripted) Pending() domain.Message {
	if s.Done() {
		return domain.GenerationComplete
	}
	return s.msgs[s.pos]
}

func (s *scripted) Resume(v any) error {
	s.resumes = append(s.resumes, v)
	if s.failAt > 0 && len(s.resumes) == s.failAt {
		return errOutOfOrder
	}
	s.pos++
	return nil
}

var errOutOfOrder = errors.New("stub rejected resume")

func allTransitions(h, w int) []domain.Message {
	var out []domain.Message
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out = append(out, domain.StateTransition{Coord: domain.Coord{Y: y, X: x}, State: domain.Empty})
		}
	}
	return out
}

func TestRunGeneration_ProtocolViolation(t *testing.T) {
	g, _ := grid.New(2, 2)

	tests := []struct {
		name string
		msgs []domain.Message
	}{
		{"unknown message kind", []domain.Message{domain.StateQuery{}, bogus{}}},
		{"nil message", []domain.Message{nil}},
		{"duplicate transition", append(allTransitions(2, 2)[:1], allTransitions(2, 2)...)},
		{"complete before every cell", allTransitions(2, 2)[:3]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &scripted{msgs: tt.msgs}
			_, err := runtime.NewEngine().RunGeneration(context.Background(), g, stub)
			assert.ErrorIs(t, err, domain.ErrProtocolViolation)
		})
	}
}

func TestRunGeneration_TransitionOutOfRange(t *testing.T) {
	g, _ := grid.New(2, 2)
	stub := &scripted{msgs: []domain.Message{
		domain.StateTransition{Coord: domain.Coord{Y: 2, X: 0}, State: domain.Alive},
	}}

	_, err := runtime.NewEngine().RunGeneration(context.Background(), g, stub)
	assert.ErrorIs(t, err, domain.ErrDimensionMismatch)
}

func TestRunGeneration_ResumeValues(t *testing.T) {
	g, _ := grid.New(1, 1)
	g.Write(0, 0, domain.Alive)

	stub := &scripted{msgs: []domain.Message{
		domain.StateQuery{Coord: domain.Coord{Y: 5, X: 3}},
		domain.StateTransition{Coord: domain.Coord{}, State: domain.Alive},
	}}
	next, err := runtime.NewEngine().RunGeneration(context.Background(), g, stub)
	require.NoError(t, err)

	assert.Equal(t, []any{domain.Alive, nil}, stub.resumes)
	assert.Equal(t, domain.Alive, next.Read(0, 0))
}

func TestRunGeneration_ResumeErrorIsSurfaced(t *testing.T) {
	g, _ := grid.New(1, 1)
	stub := &scripted{
		msgs:   []domain.Message{domain.StateQuery{}, domain.StateQuery{}},
		failAt: 2,
	}

	_, err := runtime.NewEngine().RunGeneration(context.Background(), g, stub)
	assert.ErrorIs(t, err, errOutOfOrder)
}

func TestRunGeneration_EventCountsComeFromTransitions(t *testing.T) {
	source := mustParse(t, "*-\n--\n")
	msgs := []domain.Message{
		domain.StateQuery{Coord: domain.Coord{Y: 1, X: 1}},
		domain.StateTransition{Coord: domain.Coord{Y: 0, X: 0}, State: domain.Empty},
		domain.StateTransition{Coord: domain.Coord{Y: 0, X: 1}, State: domain.Alive},
		domain.StateTransition{Coord: domain.Coord{Y: 1, X: 0}, State: domain.Alive},
		domain.StateTransition{Coord: domain.Coord{Y: 1, X: 1}, State: domain.CellState('?')},
	}

	var got *domain.GenerationEvent
	eng := runtime.NewEngine(runtime.WithLifecycleHooks(domain.LifecycleHooks{
		OnGenerationComplete: func(_ context.Context, e *domain.GenerationEvent) { got = e },
	}))
	next, err := eng.RunGeneration(context.Background(), source, &scripted{msgs: msgs})
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, 2, got.Population)
	assert.Equal(t, next.Population(), got.Population)
	assert.Equal(t, 2, got.Births)
	assert.Equal(t, 1, got.Deaths)
	assert.Equal(t, 1, got.Queries)
	assert.Equal(t, 4, got.Transitions)
}
