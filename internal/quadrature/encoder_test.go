package quadrature

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type line struct {
	value  uint64
	writes int
}

func (l *line) Set(v uint64) {
	l.value = v
	l.writes++
}

func TestNew_AssertsOutputsImmediately(t *testing.T) {
	tests := []struct {
		phase  int
		wantA  uint64
		wantB  uint64
		wantPh int
	}{
		{phase: 0, wantA: 1, wantB: 1, wantPh: 0},
		{phase: 1, wantA: 1, wantB: 0, wantPh: 1},
		{phase: 2, wantA: 0, wantB: 0, wantPh: 2},
		{phase: 3, wantA: 0, wantB: 1, wantPh: 3},
		{phase: 7, wantA: 0, wantB: 1, wantPh: 3},
		{phase: -1, wantA: 0, wantB: 1, wantPh: 3},
	}
	for _, tt := range tests {
		a, b := &line{}, &line{}
		e := New(a, b, tt.phase)

		assert.Equal(t, tt.wantPh, e.Phase())
		assert.Equal(t, tt.wantA, a.value, "phase %d line A", tt.phase)
		assert.Equal(t, tt.wantB, b.value, "phase %d line B", tt.phase)
		assert.Equal(t, 1, a.writes)
		assert.Equal(t, 1, b.writes)
	}
}

func TestStep_InvalidDirection(t *testing.T) {
	a, b := &line{}, &line{}
	e := New(a, b, RestPhase)

	for _, dir := range []int{0, 2, -2} {
		assert.Error(t, e.Step(dir))
	}
	assert.Equal(t, RestPhase, e.Phase())
	assert.Equal(t, 1, a.writes)
}

func TestUpDown(t *testing.T) {
	a, b := &line{}, &line{}
	e := New(a, b, RestPhase)

	e.Up()
	assert.Equal(t, 1, e.Phase())
	e.Down()
	e.Down()
	assert.Equal(t, 3, e.Phase())
}

func TestStep_PhaseIsSumOfDirections(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for trial := 0; trial < 50; trial++ {
		a, b := &line{}, &line{}
		initial := r.Intn(4)
		e := New(a, b, initial)

		sum := 0
		for n := 0; n < 100; n++ {
			dir := 1
			if r.Intn(2) == 0 {
				dir = -1
			}
			prevA, prevB := a.value, b.value

			require.NoError(t, e.Step(dir))
			sum += dir

			want := mod4(initial + sum)
			require.Equal(t, want, e.Phase())

			// Never stale: both lines match the table right after the step
			require.Equal(t, Cycle[want], a.value)
			require.Equal(t, Cycle[(want+1)%4], b.value)

			// Gray code: exactly one line changes per step
			changed := 0
			if prevA != a.value {
				changed++
			}
			if prevB != b.value {
				changed++
			}
			require.Equal(t, 1, changed)
		}
	}
}

func TestFullTurnReturnsToRest(t *testing.T) {
	a, b := &line{}, &line{}
	e := New(a, b, RestPhase)

	for i := 0; i < 4; i++ {
		e.Down()
	}
	assert.Equal(t, RestPhase, e.Phase())
	assert.Equal(t, uint64(0), a.value)
	assert.Equal(t, uint64(0), b.value)
	assert.Equal(t, 5, a.writes)
}
