package tests

import (
	"testing"

	"github.com/aretw0/cellsweep/pkg/domain"
	"github.com/aretw0/cellsweep/pkg/routine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// maxContractSteps bounds how long the contract drives a routine.
const maxContractSteps = 1 << 16

// RunRoutineContract runs a suite of tests to verify that a Routine implementation
// adheres to the suspend/resume protocol. newRoutine must return a fresh routine
// on every call. Queries are answered with Empty; the run stops when the routine
// finishes or parks on GenerationComplete.
func RunRoutineContract(t *testing.T, newRoutine func() routine.Routine) {
	t.Run("Pending until done", func(t *testing.T) {
		r := newRoutine()
		steps := drive(t, r)
		assert.Positive(t, steps, "routine should suspend at least once")
		if r.Done() {
			assert.Nil(t, r.Pending(), "finished routine should have no pending message")
		} else {
			assert.Equal(t, domain.GenerationComplete, r.Pending())
		}
	})

	t.Run("Rejects out of order resume", func(t *testing.T) {
		r := newRoutine()
		require.False(t, r.Done())
		pending := r.Pending()
		require.NotNil(t, pending)

		err := r.Resume(wrongAnswer(pending))
		assert.ErrorIs(t, err, domain.ErrOutOfOrderResume)
		assert.Equal(t, pending, r.Pending(), "failed resume must not advance")
	})

	t.Run("Finished routine", func(t *testing.T) {
		r := newRoutine()
		drive(t, r)
		if !r.Done() {
			t.Skip("routine parks instead of finishing")
		}
		assert.ErrorIs(t, r.Resume(nil), domain.ErrRoutineComplete)
		assert.ErrorIs(t, r.Resume(domain.Empty), domain.ErrRoutineComplete)
	})

	t.Run("Every transition is answered once", func(t *testing.T) {
		r := newRoutine()
		seen := make(map[domain.Coord]bool)
		for i := 0; i < maxContractSteps && !r.Done(); i++ {
			msg := r.Pending()
			if msg == domain.GenerationComplete {
				break
			}
			if tr, ok := msg.(domain.StateTransition); ok {
				assert.False(t, seen[tr.Coord], "duplicate transition for %v", tr.Coord)
				seen[tr.Coord] = true
			}
			require.NoError(t, r.Resume(answer(msg)))
		}
	})
}

// drive resumes r until it finishes or parks, returning the number of resumes.
func drive(t *testing.T, r routine.Routine) int {
	t.Helper()
	steps := 0
	for ; steps < maxContractSteps && !r.Done(); steps++ {
		msg := r.Pending()
		require.NotNil(t, msg, "unfinished routine returned a nil message")
		if msg == domain.GenerationComplete {
			return steps
		}
		require.NoError(t, r.Resume(answer(msg)))
	}
	require.Less(t, steps, maxContractSteps, "routine did not finish")
	return steps
}

func answer(msg domain.Message) any {
	if _, ok := msg.(domain.StateQuery); ok {
		return domain.Empty
	}
	return nil
}

func wrongAnswer(msg domain.Message) any {
	if _, ok := msg.(domain.StateQuery); ok {
		return nil
	}
	return domain.Alive
}
