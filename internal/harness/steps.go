package harness

import (
	"context"
	"fmt"
	"strings"

	"github.com/roach88/pongbench/internal/screen"
)

// execute runs one step. Failures come back as *TimeoutError,
// *screen.MismatchError or *AssertionError.
func (h *Harness) execute(ctx context.Context, st Step) error {
	switch st.Op {
	case OpPowerUp:
		return h.powerUp(ctx, st)
	case OpAwaitActive:
		return h.awaitActive(ctx)
	case OpAwaitEdge:
		return h.awaitEdge(ctx, st)
	case OpSet:
		return h.set(st)
	case OpCycles:
		if err := h.clock.ClockCycles(ctx, st.Count); err != nil {
			return err
		}
		h.trace(st.Op, fmt.Sprintf("count=%d", st.Count))
		return nil
	case OpAssertEq:
		return h.assertEq(st)
	case OpMove:
		return h.move(ctx, st)
	case OpWaitValue:
		return h.waitValue(ctx, st)
	case OpSample:
		return h.sample(st)
	case OpCapture:
		return h.capture(ctx, st)
	case OpAssertIn:
		return h.assertIn(st)
	case OpAssertPixel:
		return h.assertPixel(st)
	case OpAssertDiffers:
		return h.assertDiffers(st)
	}
	return fmt.Errorf("unknown op %q", st.Op)
}

// powerUp holds RSTB low, raises the four rails one at a time and
// releases RSTB after the settle period.
func (h *Harness) powerUp(ctx context.Context, st Step) error {
	spacing := orDefault(st.Spacing, DefaultRailSpacing)
	settle := orDefault(st.Settle, DefaultResetSettle)

	rstb, err := h.line(RoleRSTB)
	if err != nil {
		return err
	}
	var rails []Line
	for _, role := range []string{RolePower1, RolePower2, RolePower3, RolePower4} {
		l, err := h.line(role)
		if err != nil {
			return err
		}
		rails = append(rails, l)
	}

	rstb.Set(0)
	for _, rail := range rails {
		rail.Set(0)
	}
	for i, rail := range rails {
		if err := h.clock.ClockCycles(ctx, spacing); err != nil {
			return err
		}
		rail.Set(1)
		h.logger.Debug("power rail up", "rail", i+1, "cycle", h.clock.Cycles())
	}
	if err := h.clock.ClockCycles(ctx, settle); err != nil {
		return err
	}
	rstb.Set(1)

	h.logger.Info("power up complete", "cycle", h.clock.Cycles())
	h.trace(OpPowerUp, fmt.Sprintf("spacing=%d settle=%d", spacing, settle))
	return nil
}

// awaitActive waits for the wrapper to activate and for the reset pulse
// that follows to complete.
func (h *Harness) awaitActive(ctx context.Context) error {
	active, err := h.line(RoleActive)
	if err != nil {
		return err
	}
	reset, err := h.line(RoleReset)
	if err != nil {
		return err
	}
	if err := h.backend.RisingEdge(ctx, active); err != nil {
		return err
	}
	if err := h.backend.RisingEdge(ctx, reset); err != nil {
		return err
	}
	if err := h.backend.FallingEdge(ctx, reset); err != nil {
		return err
	}
	h.logger.Info("design active", "cycle", h.clock.Cycles())
	h.trace(OpAwaitActive, "")
	return nil
}

func (h *Harness) awaitEdge(ctx context.Context, st Step) error {
	sig, err := h.line(st.Signal)
	if err != nil {
		return err
	}
	if st.Edge == "falling" {
		err = h.backend.FallingEdge(ctx, sig)
	} else {
		err = h.backend.RisingEdge(ctx, sig)
	}
	if err != nil {
		return err
	}
	h.trace(st.Op, fmt.Sprintf("%s %s", st.Signal, st.Edge))
	return nil
}

func (h *Harness) set(st Step) error {
	l, err := h.line(st.Signal)
	if err != nil {
		return err
	}
	v, _, err := h.literal(st)
	if err != nil {
		return err
	}
	l.Set(v)
	h.trace(st.Op, fmt.Sprintf("%s=%d", st.Signal, v))
	return nil
}

func (h *Harness) assertEq(st Step) error {
	l, err := h.line(st.Signal)
	if err != nil {
		return err
	}
	want, width, err := h.literal(st)
	if err != nil {
		return err
	}
	got := l.Value()
	if got != want {
		return &AssertionError{
			Type:     st.Op,
			Expected: fmt.Sprintf("%s = %s", st.Signal, formatLiteral(want, width)),
			Actual:   fmt.Sprintf("%s = %s", st.Signal, formatLiteral(got, width)),
		}
	}
	h.trace(st.Op, fmt.Sprintf("%s=%s", st.Signal, formatLiteral(got, width)))
	return nil
}

// move steps the encoders Count times, waiting Settle cycles after each
// step. Settle defaults to four debounce windows.
func (h *Harness) move(ctx context.Context, st Step) error {
	settle := orDefault(st.Settle, (1<<debounceWidth(h.scenario))*4)
	left, right := direction(st.Left), direction(st.Right)

	for i := 0; i < st.Count; i++ {
		if left != 0 {
			if err := h.left.Step(left); err != nil {
				return err
			}
		}
		if right != 0 {
			if err := h.right.Step(right); err != nil {
				return err
			}
		}
		if err := h.clock.ClockCycles(ctx, settle); err != nil {
			return err
		}
	}
	h.logger.Debug("controllers moved", "steps", st.Count,
		"left_phase", h.left.Phase(), "right_phase", h.right.Phase())
	h.trace(st.Op, fmt.Sprintf("count=%d left=%s right=%s settle=%d", st.Count, st.Left, st.Right, settle))
	return nil
}

func (h *Harness) waitValue(ctx context.Context, st Step) error {
	l, err := h.line(st.Signal)
	if err != nil {
		return err
	}
	target, _, err := h.literal(st)
	if err != nil {
		return err
	}
	if _, err := WaitForValue(ctx, h.clock, l, target, st.Budget); err != nil {
		return err
	}
	h.trace(st.Op, fmt.Sprintf("%s=%d", st.Signal, target))
	return nil
}

func (h *Harness) sample(st Step) error {
	l, err := h.line(st.Signal)
	if err != nil {
		return err
	}
	v := l.Value()
	h.result.Vars[st.Var] = v
	h.trace(st.Op, fmt.Sprintf("%s=%d", st.Var, v))
	return nil
}

func (h *Harness) capture(ctx context.Context, st Step) error {
	strategy, err := ParseStrategy(st.Strategy)
	if err != nil {
		return err
	}
	port, err := h.scanPort(st.Budget)
	if err != nil {
		return err
	}

	frame, err := CaptureFrame(ctx, h.backend, port, strategy)
	if err != nil {
		return err
	}
	h.result.Frames = append(h.result.Frames, frame)
	h.logger.Debug("frame captured", "strategy", strategy, "digest", screen.Digest(frame), "frame", frame.String())
	h.trace(st.Op, fmt.Sprintf("strategy=%s digest=%s", strategy, screen.Digest(frame)))

	if st.Expect == "" {
		return nil
	}
	expected, err := screen.ParsePattern(st.Expect)
	if err != nil {
		return err
	}
	return screen.AssertEqual(expected, frame)
}

func (h *Harness) scanPort(budget int) (ScanPort, error) {
	port := ScanPort{Clock: h.clock, RowBudget: budget}
	for _, b := range []struct {
		role string
		dst  *Signal
	}{
		{RoleFrameStart, &port.FrameStart},
		{RoleRowClock, &port.RowClock},
		{RoleColClock, &port.ColClock},
		{RoleData, &port.Data},
		{RoleRow, &port.Row},
	} {
		l, err := h.line(b.role)
		if err != nil {
			return ScanPort{}, err
		}
		*b.dst = l
	}
	return port, nil
}

func (h *Harness) assertIn(st Step) error {
	got, err := h.vars(st.Vars, 0)
	if err != nil {
		return err
	}
	for _, tuple := range st.OneOf {
		if equalTuple(tuple, got) {
			h.trace(st.Op, fmt.Sprintf("%s=%v", strings.Join(st.Vars, ","), got))
			return nil
		}
	}
	return &AssertionError{
		Type:     st.Op,
		Expected: fmt.Sprintf("(%s) in %v", strings.Join(st.Vars, ", "), st.OneOf),
		Actual:   fmt.Sprintf("%v", got),
	}
}

// assertPixel checks that the pixel at (vars[0], vars[1]) >> shift is lit in
// the most recent capture.
func (h *Harness) assertPixel(st Step) error {
	frame, ok := h.result.LastFrame()
	if !ok {
		return fmt.Errorf("no frame captured")
	}
	xy, err := h.vars(st.Vars, st.Shift)
	if err != nil {
		return err
	}
	x, y := int(xy[0]), int(xy[1])
	if x >= screen.Cols || y >= screen.Rows || !frame.Pixel(x, y) {
		return &AssertionError{
			Type:     st.Op,
			Expected: fmt.Sprintf("pixel (%d, %d) lit", x, y),
			Actual:   "pixel dark\n" + frame.String(),
		}
	}
	h.trace(st.Op, fmt.Sprintf("x=%d y=%d", x, y))
	return nil
}

func (h *Harness) assertDiffers(st Step) error {
	l, err := h.line(st.Signal)
	if err != nil {
		return err
	}
	prev, err := h.variable(st.Var)
	if err != nil {
		return err
	}
	if got := l.Value(); got == prev {
		return &AssertionError{
			Type:     st.Op,
			Expected: fmt.Sprintf("%s != %d", st.Signal, prev),
			Actual:   fmt.Sprintf("%s = %d", st.Signal, got),
		}
	}
	h.trace(st.Op, fmt.Sprintf("%s!=%s", st.Signal, st.Var))
	return nil
}

// literal resolves a step's value, bits or var>>shift. Width is the bit
// literal's width, or 0 for decimal values.
func (h *Harness) literal(st Step) (uint64, int, error) {
	switch {
	case st.Value != nil:
		return *st.Value, 0, nil
	case st.Bits != "":
		return screen.ParseBits(st.Bits)
	case st.Var != "":
		v, err := h.variable(st.Var)
		return v >> uint(st.Shift), 0, err
	}
	return 0, 0, fmt.Errorf("step has no value")
}

func (h *Harness) variable(name string) (uint64, error) {
	v, ok := h.result.Vars[name]
	if !ok {
		return 0, fmt.Errorf("variable %q was never sampled", name)
	}
	return v, nil
}

func (h *Harness) vars(names []string, shift int) ([]uint64, error) {
	out := make([]uint64, len(names))
	for i, n := range names {
		v, err := h.variable(n)
		if err != nil {
			return nil, err
		}
		out[i] = v >> uint(shift)
	}
	return out, nil
}

func equalTuple(a, b []uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func formatLiteral(v uint64, width int) string {
	if width == 0 {
		return fmt.Sprintf("%d", v)
	}
	return screen.FormatBits(v, width)
}

func direction(d string) int {
	switch d {
	case DirUp:
		return -1
	case DirDown:
		return 1
	}
	return 0
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
