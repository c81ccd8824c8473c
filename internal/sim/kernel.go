package sim

import (
	"context"
	"fmt"
)

// Process is evaluated once on every rising edge of the clock it is attached
// to. It reads its inputs and assigns its outputs in place.
type Process interface {
	Posedge()
}

// ProcessFunc adapts a function to Process.
type ProcessFunc func()

// Posedge calls f.
func (f ProcessFunc) Posedge() { f() }

// Observer receives the edges of every step, in wire declaration order.
// The changes slice is reused by the kernel and must not be retained.
type Observer interface {
	Observe(now Time, changes []Change)
}

// Kernel is a single-threaded, cycle-stepped simulator.
//
// Kernel is not safe for concurrent use. A scenario owns its kernel for the
// whole run and discards it afterwards.
type Kernel struct {
	now       Time
	steps     int64
	wires     map[string]*Wire
	order     []*Wire
	clocks    []*Clock
	procs     map[*Wire][]Process
	observers []Observer
	changes   []Change
}

// NewKernel creates an empty kernel at time 0.
func NewKernel() *Kernel {
	return &Kernel{
		wires: make(map[string]*Wire),
		procs: make(map[*Wire][]Process),
	}
}

// Wire declares a wire, or returns the existing one with that name.
// Redeclaring a wire with a different width panics.
func (k *Kernel) Wire(name string, width int) *Wire {
	if w, ok := k.wires[name]; ok {
		if w.width != width {
			panic(fmt.Sprintf("sim: wire %s redeclared with width %d (was %d)", name, width, w.width))
		}
		return w
	}
	w := newWire(name, width)
	k.wires[name] = w
	k.order = append(k.order, w)
	return w
}

// Lookup returns the wire with the given hierarchical name.
func (k *Kernel) Lookup(name string) (*Wire, error) {
	w, ok := k.wires[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownWire, name)
	}
	return w, nil
}

// Wires returns all wires in declaration order.
func (k *Kernel) Wires() []*Wire {
	out := make([]*Wire, len(k.order))
	copy(out, k.order)
	return out
}

// OnPosedge attaches p to the rising edges of clk.
// Processes on the same clock run in attachment order.
func (k *Kernel) OnPosedge(clk *Wire, p Process) {
	k.procs[clk] = append(k.procs[clk], p)
}

// Observe registers an observer for every subsequent step.
func (k *Kernel) Observe(o Observer) {
	k.observers = append(k.observers, o)
}

// Now returns the current simulation time.
func (k *Kernel) Now() Time { return k.now }

// Steps returns the number of steps taken so far.
func (k *Kernel) Steps() int64 { return k.steps }

// StartClock begins free-running toggling of the named wire.
//
// The wire is driven low immediately; the first rising edge comes after the
// low phase (period - high). high must lie strictly between 0 and period.
func (k *Kernel) StartClock(name string, period, high Time) (*Clock, error) {
	w, err := k.Lookup(name)
	if err != nil {
		return nil, err
	}
	if w.width != 1 {
		return nil, fmt.Errorf("sim: clock %s: wire must be 1 bit wide, got %d", name, w.width)
	}
	if period <= 1 || high <= 0 || high >= period {
		return nil, fmt.Errorf("sim: clock %s: invalid period %d / high %d", name, period, high)
	}
	for _, c := range k.clocks {
		if c.wire == w {
			return nil, fmt.Errorf("%w: %s", ErrClockRunning, name)
		}
	}

	c := &Clock{
		k:      k,
		wire:   w,
		period: period,
		high:   high,
		next:   k.now + period - high,
	}
	w.value = 0
	k.clocks = append(k.clocks, c)
	return c, nil
}

// Step advances time to the next clock toggle and evaluates it.
func (k *Kernel) Step() error {
	if len(k.clocks) == 0 {
		return ErrNoClock
	}

	next := k.clocks[0].next
	for _, c := range k.clocks[1:] {
		if c.next < next {
			next = c.next
		}
	}

	// Snapshot: anything written before this point is not an edge
	for _, w := range k.order {
		w.start = w.value
	}
	k.now = next

	var rose [4]*Wire
	risen := rose[:0]
	for _, c := range k.clocks {
		if c.next == next && c.toggle() {
			risen = append(risen, c.wire)
		}
	}
	for _, clk := range risen {
		for _, p := range k.procs[clk] {
			p.Posedge()
		}
	}

	k.changes = k.changes[:0]
	for _, w := range k.order {
		if w.value != w.start {
			k.changes = append(k.changes, Change{Wire: w, Old: w.start, New: w.value})
		}
	}
	k.steps++

	for _, o := range k.observers {
		o.Observe(k.now, k.changes)
	}
	return nil
}

// Await steps the kernel until a change of the step satisfies match.
// The step that satisfies match is consumed; nothing after it is.
func (k *Kernel) Await(ctx context.Context, match func(Change) bool) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := k.Step(); err != nil {
			return err
		}
		for _, c := range k.changes {
			if match(c) {
				return nil
			}
		}
	}
}

// RisingEdge suspends until the next 0 to 1 transition of w.
func (k *Kernel) RisingEdge(ctx context.Context, w *Wire) error {
	return k.Await(ctx, func(c Change) bool { return c.Wire == w && c.Rose() })
}

// FallingEdge suspends until the next 1 to 0 transition of w.
func (k *Kernel) FallingEdge(ctx context.Context, w *Wire) error {
	return k.Await(ctx, func(c Change) bool { return c.Wire == w && c.Fell() })
}
