package dut

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanAt_Blanking(t *testing.T) {
	g := newGame(DefaultDebounceWidth, DefaultGameDivider)

	for pos := 0; pos < BlankCycles; pos++ {
		o := scanAt(pos, g)
		assert.Equal(t, pos < StrobeCycles, o.frameStart, "pos %d", pos)
		assert.False(t, o.rowClock)
		assert.False(t, o.colClock)
		assert.Equal(t, blankRow, o.row)
		assert.Equal(t, blankRow, o.corrected)
	}
}

func TestScanAt_RowAndColumnClocks(t *testing.T) {
	g := newGame(DefaultDebounceWidth, DefaultGameDivider)

	for r := 0; r < ScreenRows; r++ {
		base := BlankCycles + r*RowCycles
		for sub := 0; sub < RowCycles; sub++ {
			o := scanAt(base+sub, g)
			assert.Equal(t, sub == 0, o.rowClock)
			assert.Equal(t, sub%2 == 0, o.colClock)
			assert.Equal(t, r, o.row)
			assert.False(t, o.frameStart)
		}
	}
}

func TestScanAt_InterleavedRowsAndReversedColumns(t *testing.T) {
	g := newGame(DefaultDebounceWidth, DefaultGameDivider)

	at := func(r, c, phase int) scanOutputs {
		return scanAt(BlankCycles+r*RowCycles+c*2+phase, g)
	}

	// Ball at screen (8, 8): scan row 9, column 15-8
	assert.Equal(t, 8, at(9, 7, 0).corrected)
	assert.True(t, at(9, 7, 0).data)
	assert.True(t, at(9, 7, 1).data, "data is held for both column phases")
	assert.False(t, at(9, 8, 0).data)
	assert.False(t, at(8, 7, 0).data)

	// Left paddle (x = 0) is the last column; rows 6..9 are scan rows 7, 6, 9, 8
	for _, r := range []int{6, 7, 8, 9} {
		assert.True(t, at(r, 15, 0).data, "left paddle scan row %d", r)
		assert.True(t, at(r, 0, 0).data, "right paddle scan row %d", r)
	}
	assert.False(t, at(5, 15, 0).data)
	assert.False(t, at(10, 0, 0).data)
}

func TestScanner_Wraps(t *testing.T) {
	g := newGame(DefaultDebounceWidth, DefaultGameDivider)
	var s scanner

	for i := 0; i < FrameCycles; i++ {
		s.posedge(g)
	}
	assert.Equal(t, 0, s.pos)
	assert.True(t, s.posedge(g).frameStart)
}
