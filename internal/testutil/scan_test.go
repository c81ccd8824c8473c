package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/pongbench/internal/sim"
)

func newSource(t *testing.T, rows [16]uint16, gap int) (*sim.Kernel, *sim.Clock, *ScanSource) {
	t.Helper()
	k := sim.NewKernel()
	src := NewScanSource(k, rows)
	src.RowGap = gap
	clk, err := k.StartClock(ScanClock, 10, 5)
	require.NoError(t, err)
	return k, clk, src
}

func TestScanSource_FrameLength(t *testing.T) {
	ctx := context.Background()
	_, clk, src := newSource(t, [16]uint16{}, 0)

	require.NoError(t, clk.ClockCycles(ctx, 520))
	assert.Equal(t, 1, src.Frames())

	_, clk, src = newSource(t, [16]uint16{}, 3)
	require.NoError(t, clk.ClockCycles(ctx, 8+16*35))
	assert.Equal(t, 1, src.Frames())
}

func TestScanSource_Strobe(t *testing.T) {
	ctx := context.Background()
	_, clk, src := newSource(t, [16]uint16{}, 0)

	for cycle := 0; cycle < 8; cycle++ {
		require.NoError(t, clk.RisingEdge(ctx))
		assert.Equal(t, cycle < 4, src.FrameStart.Bool(), "cycle %d", cycle)
		assert.Equal(t, uint64(16), src.Row.Value())
	}
}

func TestScanSource_RowBits(t *testing.T) {
	ctx := context.Background()
	rows := [16]uint16{0: 0b1010_0000_0000_0101}
	_, clk, src := newSource(t, rows, 0)

	require.NoError(t, clk.ClockCycles(ctx, 8))
	for c := 0; c < 16; c++ {
		for half := 0; half < 2; half++ {
			require.NoError(t, clk.RisingEdge(ctx))
			assert.Equal(t, uint64(0), src.Row.Value())
			assert.Equal(t, uint64(rows[0]>>uint(c))&1, src.Data.Value(), "column %d", c)
			assert.Equal(t, half == 0, src.ColClock.Bool())
			assert.Equal(t, c == 0 && half == 0, src.RowClock.Bool())
		}
	}
}
