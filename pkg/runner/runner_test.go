package runner

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/cellsweep"
	"github.com/aretw0/cellsweep/pkg/domain"
	"github.com/aretw0/cellsweep/pkg/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const blinker = "-----\n-----\n-***-\n-----\n-----\n"

func newBlinker(t *testing.T) *cellsweep.Simulation {
	t.Helper()
	g, err := grid.Parse(blinker)
	require.NoError(t, err)
	sim, err := cellsweep.New(g)
	require.NoError(t, err)
	return sim
}

func TestRunner_TextHandler(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(
		WithGenerations(2),
		WithHandler(NewTextHandler(&out)),
	)

	res, err := r.Run(context.Background(), newBlinker(t))
	require.NoError(t, err)

	want := "generation 1 (population 3)\n" +
		"-----\n--*--\n--*--\n--*--\n-----\n\n" +
		"generation 2 (population 3)\n" +
		blinker + "\n"
	assert.Equal(t, want, out.String())

	assert.Equal(t, 2, res.Generations)
	assert.Equal(t, 4, res.Births)
	assert.Equal(t, 4, res.Deaths)
	assert.Equal(t, 3, res.Population)
	assert.False(t, res.Stable)
	assert.Equal(t, blinker, res.Final.String())
}

func TestRunner_JSONHandler(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(
		WithGenerations(1),
		WithInitialFrame(),
		WithHandler(NewJSONHandler(&out)),
	)

	_, err := r.Run(context.Background(), newBlinker(t))
	require.NoError(t, err)

	var frames []Frame
	scanner := bufio.NewScanner(&out)
	for scanner.Scan() {
		var f Frame
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &f))
		frames = append(frames, f)
	}
	require.Len(t, frames, 2)

	assert.Equal(t, 0, frames[0].Generation)
	assert.Empty(t, frames[0].Changes)
	assert.Equal(t, 1, frames[1].Generation)
	assert.Equal(t, []string{"-----", "--*--", "--*--", "--*--", "-----"}, frames[1].Rows)
	require.Len(t, frames[1].Changes, 4)
	assert.Equal(t, domain.Change{
		Coord: domain.Coord{Y: 1, X: 2}, From: domain.Empty, To: domain.Alive,
	}, frames[1].Changes[0])
}

func TestRunner_ColumnsHandler(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(
		WithGenerations(1),
		WithInitialFrame(),
		WithHandler(NewColumnsHandler(&out)),
	)

	_, err := r.Run(context.Background(), newBlinker(t))
	require.NoError(t, err)

	want := strings.Join([]string{
		"  0   |   1",
		"----- | -----",
		"----- | --*--",
		"-***- | --*--",
		"----- | --*--",
		"----- | -----",
	}, "\n") + "\n"
	assert.Equal(t, want, out.String())
}

func TestRunner_StableResult(t *testing.T) {
	g, _ := grid.New(3, 3)
	sim, err := cellsweep.New(g)
	require.NoError(t, err)

	res, err := NewRunner(WithGenerations(3), WithHandler(NewJSONHandler(&bytes.Buffer{}))).Run(context.Background(), sim)
	require.NoError(t, err)
	assert.True(t, res.Stable)
	assert.Equal(t, 3, res.Generations)
}

func TestRunner_UnboundedStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	r := NewRunner(
		WithGenerations(0),
		WithInterval(5*time.Millisecond),
		WithHandler(NewJSONHandler(&bytes.Buffer{})),
	)

	res, err := r.Run(ctx, newBlinker(t))
	require.NoError(t, err)
	assert.Greater(t, res.Generations, 0)
}

type failingHandler struct{}

func (failingHandler) Frame(context.Context, Frame) error { return errors.New("disk full") }
func (failingHandler) Close(context.Context) error        { return nil }

func TestRunner_HandlerErrorIsReturned(t *testing.T) {
	_, err := NewRunner(WithGenerations(1), WithHandler(failingHandler{})).Run(context.Background(), newBlinker(t))
	assert.ErrorContains(t, err, "disk full")
}

func TestIsInterrupted(t *testing.T) {
	assert.True(t, IsInterrupted(context.Canceled))
	assert.True(t, IsInterrupted(context.DeadlineExceeded))
	assert.False(t, IsInterrupted(errors.New("other")))
}
