package harness

import (
	"errors"
	"fmt"
	"strings"

	"github.com/roach88/pongbench/internal/screen"
)

// ErrUnknownSignal is returned when a signal name cannot be resolved.
var ErrUnknownSignal = errors.New("unknown signal")

// TimeoutError is returned when a bounded wait exhausts its tick budget.
type TimeoutError struct {
	Signal   string // name of the polled signal
	Target   uint64 // value waited for
	MaxTicks int    // clock edges consumed
	Last     uint64 // value seen on the final edge
}

// Error implements the error interface.
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s did not reach value %d within %d clock ticks (last value %d)",
		e.Signal, e.Target, e.MaxTicks, e.Last)
}

// IsTimeout reports whether err is or wraps a *TimeoutError.
func IsTimeout(err error) bool {
	var te *TimeoutError
	return errors.As(err, &te)
}

// AssertionError is a plain assertion failure carrying the compared values.
type AssertionError struct {
	Type     string // step op that asserted
	Expected string
	Actual   string
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s", e.Actual)
	return buf.String()
}

// IsFailure reports whether err is a test failure (Timeout, ScreenMismatch
// or an assertion) rather than a harness fault. Failures end the scenario
// and mark the result failed; faults abort Run with an error.
func IsFailure(err error) bool {
	var ae *AssertionError
	return IsTimeout(err) || screen.IsMismatch(err) || errors.As(err, &ae)
}
