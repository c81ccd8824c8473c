package testutil

import "github.com/roach88/pongbench/internal/sim"

// Wire names declared by NewScanSource.
const (
	ScanClock      = "clock"
	ScanFrameStart = "frame_start"
	ScanRowClock   = "row_clock"
	ScanColClock   = "col_clock"
	ScanData       = "data"
	ScanRow        = "row"
)

// Scan-out timing, in clock cycles. Matches the behavioral model.
const (
	scanRows     = 16
	scanCols     = 16
	blankCycles  = 8
	strobeCycles = 4
)

// ScanSource replays a fixed table through the scan-out protocol. Scan row r
// emits Rows[r], bit c on column c. It starts scanning on the first clock
// edge and repeats the frame forever.
//
// RowGap inserts extra idle cycles after every row, with the row counter
// held at the blank value, to stress row synchronization.
type ScanSource struct {
	Rows   [scanRows]uint16
	RowGap int

	FrameStart, RowClock, ColClock, Data, Row *sim.Wire

	pos    int
	frames int
}

// NewScanSource declares the scan wires on k and attaches a source to the
// clock wire. The clock is not started.
func NewScanSource(k *sim.Kernel, rows [scanRows]uint16) *ScanSource {
	s := &ScanSource{
		Rows:       rows,
		FrameStart: k.Wire(ScanFrameStart, 1),
		RowClock:   k.Wire(ScanRowClock, 1),
		ColClock:   k.Wire(ScanColClock, 1),
		Data:       k.Wire(ScanData, 1),
		Row:        k.Wire(ScanRow, 5),
	}
	s.Row.Set(scanRows)
	k.OnPosedge(k.Wire(ScanClock, 1), s)
	return s
}

// Frames returns how many complete frames have been emitted.
func (s *ScanSource) Frames() int { return s.frames }

func (s *ScanSource) rowCycles() int { return scanCols*2 + s.RowGap }

func (s *ScanSource) frameCycles() int { return blankCycles + scanRows*s.rowCycles() }

// Posedge implements sim.Process.
func (s *ScanSource) Posedge() {
	s.emit(s.pos)
	s.pos++
	if s.pos == s.frameCycles() {
		s.pos = 0
		s.frames++
	}
}

func (s *ScanSource) emit(pos int) {
	if pos < blankCycles {
		s.FrameStart.SetBool(pos < strobeCycles)
		s.RowClock.Set(0)
		s.ColClock.Set(0)
		s.Data.Set(0)
		s.Row.Set(scanRows)
		return
	}
	s.FrameStart.Set(0)

	rel := pos - blankCycles
	r, sub := rel/s.rowCycles(), rel%s.rowCycles()
	if sub >= scanCols*2 {
		s.RowClock.Set(0)
		s.ColClock.Set(0)
		s.Data.Set(0)
		s.Row.Set(scanRows)
		return
	}

	c := sub / 2
	s.RowClock.SetBool(sub == 0)
	s.ColClock.SetBool(sub%2 == 0)
	s.Data.Set(uint64(s.Rows[r]>>uint(c)) & 1)
	s.Row.Set(uint64(r))
}
