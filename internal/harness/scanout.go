package harness

import (
	"context"
	"errors"
	"fmt"

	"github.com/roach88/pongbench/internal/screen"
)

// Strategy selects how CaptureFrame synchronizes to row boundaries.
type Strategy string

const (
	// StrategyEdge waits for a rising edge of the row clock before each row.
	StrategyEdge Strategy = "edge"
	// StrategyCounter polls the scan row counter until it equals the row
	// index, bounded by the port's row budget.
	StrategyCounter Strategy = "counter"
)

// DefaultRowBudget bounds the per-row counter wait.
const DefaultRowBudget = 1024

// ParseStrategy maps a scenario string to a Strategy. Empty selects edge.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case "", StrategyEdge:
		return StrategyEdge, nil
	case StrategyCounter:
		return StrategyCounter, nil
	}
	return "", fmt.Errorf("unknown capture strategy %q", s)
}

// ScanPort groups the scan-out signals of the design under test.
type ScanPort struct {
	Clock      Clock  // system clock, polled by the counter strategy
	FrameStart Signal // high during the inter-frame strobe
	RowClock   Signal // rises at the start of each row
	ColClock   Signal // rises before columns 1..15
	Data       Signal // serial pixel bit
	Row        Signal // scan row counter, read by the counter strategy
	RowBudget  int    // per-row wait budget; zero means DefaultRowBudget
}

// slot maps a scan row to its frame row. Rows are scanned pairwise swapped:
// scan row r lands in frame row r^1.
func slot(r int) int {
	return r ^ 1
}

// CaptureFrame reassembles one frame from the serial scan-out.
//
// It waits for the frame strobe to fall, then reads 16 rows of 16 bits.
// Column c of scan row r is OR'd into frame row r^1 at bit c. The returned
// frame is a value copy and is not shared with later captures.
func CaptureFrame(ctx context.Context, edges Edges, port ScanPort, strategy Strategy) (screen.Frame, error) {
	if port.FrameStart == nil || port.ColClock == nil || port.Data == nil {
		return screen.Frame{}, errors.New("scan port: frame_start, col_clock and data are required")
	}
	switch strategy {
	case "", StrategyEdge:
		if port.RowClock == nil {
			return screen.Frame{}, errors.New("scan port: edge capture requires row_clock")
		}
		return captureEdge(ctx, edges, port)
	case StrategyCounter:
		if port.Clock == nil || port.Row == nil {
			return screen.Frame{}, errors.New("scan port: counter capture requires clock and row")
		}
		return captureCounter(ctx, edges, port)
	}
	return screen.Frame{}, fmt.Errorf("unknown capture strategy %q", strategy)
}

func captureEdge(ctx context.Context, edges Edges, port ScanPort) (screen.Frame, error) {
	var buf screen.Frame
	if err := edges.FallingEdge(ctx, port.FrameStart); err != nil {
		return screen.Frame{}, fmt.Errorf("await frame start: %w", err)
	}
	for r := 0; r < screen.Rows; r++ {
		if err := edges.RisingEdge(ctx, port.RowClock); err != nil {
			return screen.Frame{}, fmt.Errorf("await row %d: %w", r, err)
		}
		for c := 0; c < screen.Cols; c++ {
			if c > 0 {
				if err := edges.RisingEdge(ctx, port.ColClock); err != nil {
					return screen.Frame{}, fmt.Errorf("await row %d column %d: %w", r, c, err)
				}
			}
			buf[slot(r)] |= uint16(port.Data.Value()&1) << uint(c)
		}
	}
	return buf, nil
}

// captureCounter reads a bit and then awaits the column clock for all 16
// columns, so each row ends one column edge into the next row. The following
// counter poll absorbs that edge.
func captureCounter(ctx context.Context, edges Edges, port ScanPort) (screen.Frame, error) {
	budget := port.RowBudget
	if budget == 0 {
		budget = DefaultRowBudget
	}

	var buf screen.Frame
	if err := edges.FallingEdge(ctx, port.FrameStart); err != nil {
		return screen.Frame{}, fmt.Errorf("await frame start: %w", err)
	}
	for r := 0; r < screen.Rows; r++ {
		if _, err := WaitForValue(ctx, port.Clock, port.Row, uint64(r), budget); err != nil {
			return screen.Frame{}, fmt.Errorf("await row %d: %w", r, err)
		}
		for c := 0; c < screen.Cols; c++ {
			buf[slot(r)] |= uint16(port.Data.Value()&1) << uint(c)
			if err := edges.RisingEdge(ctx, port.ColClock); err != nil {
				return screen.Frame{}, fmt.Errorf("await row %d column %d: %w", r, c, err)
			}
		}
	}
	return buf, nil
}
