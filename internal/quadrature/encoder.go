// Package quadrature models the two-line output of a manually turned rotary
// encoder.
//
// Both lines follow the same 4-entry cycle table, line B one phase ahead of
// line A, so exactly one line changes per step:
//
//	phase  0 1 2 3
//	A      1 1 0 0
//	B      1 0 0 1
package quadrature

import "fmt"

// Cycle is the per-line output table.
var Cycle = [4]uint64{1, 1, 0, 0}

// RestPhase is the starting phase of a controller at rest.
const RestPhase = 2

// Driver is a writable digital line.
type Driver interface {
	Set(v uint64)
}

// Encoder drives two lines from a single phase counter.
type Encoder struct {
	a, b  Driver
	phase int
}

// New binds the encoder to its lines and asserts both outputs for phase.
func New(a, b Driver, phase int) *Encoder {
	e := &Encoder{a: a, b: b, phase: mod4(phase)}
	e.assert()
	return e
}

// Phase returns the current phase index in [0, 4).
func (e *Encoder) Phase() int { return e.phase }

// Outputs returns the values currently asserted on lines A and B.
func (e *Encoder) Outputs() (a, b uint64) {
	return Cycle[e.phase], Cycle[(e.phase+1)%4]
}

// Step moves the phase by direction (-1 or +1) and re-asserts both lines.
func (e *Encoder) Step(direction int) error {
	if direction != -1 && direction != 1 {
		return fmt.Errorf("quadrature: invalid direction %d", direction)
	}
	e.phase = mod4(e.phase + direction)
	e.assert()
	return nil
}

// Up steps the encoder backwards.
func (e *Encoder) Up() { _ = e.Step(-1) }

// Down steps the encoder forwards.
func (e *Encoder) Down() { _ = e.Step(1) }

// assert writes both lines together; they never change independently.
func (e *Encoder) assert() {
	a, b := e.Outputs()
	e.a.Set(a)
	e.b.Set(b)
}

func mod4(n int) int {
	return ((n % 4) + 4) % 4
}
