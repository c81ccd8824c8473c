package dut

// Scan-out timing, in clock cycles.
const (
	ScreenRows   = 16
	ScreenCols   = 16
	BlankCycles  = 8
	StrobeCycles = 4
	RowCycles    = ScreenCols * 2
	FrameCycles  = BlankCycles + ScreenRows*RowCycles

	// blankRow is the value of the row counters outside the visible rows.
	blankRow = ScreenRows
)

type scanOutputs struct {
	frameStart bool
	rowClock   bool
	colClock   bool
	data       bool
	row        int
	corrected  int
}

// scanner walks the frame one cycle per clock.
type scanner struct {
	pos int
}

func (s *scanner) reset() { s.pos = 0 }

// posedge returns the outputs for the current position and advances.
func (s *scanner) posedge(g *game) scanOutputs {
	out := scanAt(s.pos, g)
	s.pos = (s.pos + 1) % FrameCycles
	return out
}

func scanAt(pos int, g *game) scanOutputs {
	if pos < BlankCycles {
		return scanOutputs{
			frameStart: pos < StrobeCycles,
			row:        blankRow,
			corrected:  blankRow,
		}
	}

	rel := pos - BlankCycles
	r := rel / RowCycles
	sub := rel % RowCycles
	c := sub / 2
	y := r ^ 1

	return scanOutputs{
		rowClock:  sub == 0,
		colClock:  sub%2 == 0,
		data:      g.pixel(ScreenCols-1-c, y),
		row:       r,
		corrected: y,
	}
}
