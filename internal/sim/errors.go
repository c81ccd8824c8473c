package sim

import "errors"

var (
	// ErrNoClock is returned when time must advance but no clock is running.
	// Awaiting in that state would block forever.
	ErrNoClock = errors.New("sim: no clock running")

	// ErrUnknownWire is returned by Lookup for names the kernel does not know.
	ErrUnknownWire = errors.New("sim: unknown wire")

	// ErrClockRunning is returned when a wire already has a clock driving it.
	ErrClockRunning = errors.New("sim: clock already running")
)
