package sim

import "fmt"

// Time is simulation time in kernel ticks.
type Time int64

// Wire is a named digital signal of 1 to 64 bits.
//
// A wire is a non-owning handle: the kernel owns it, one party writes it and
// everyone else reads it.
type Wire struct {
	name  string
	width int
	mask  uint64
	value uint64
	start uint64 // value at the start of the current step
}

func newWire(name string, width int) *Wire {
	if width < 1 || width > 64 {
		panic(fmt.Sprintf("sim: wire %s: width %d out of range", name, width))
	}
	mask := ^uint64(0)
	if width < 64 {
		mask = 1<<uint(width) - 1
	}
	return &Wire{name: name, width: width, mask: mask}
}

// Name returns the hierarchical name of the wire.
func (w *Wire) Name() string { return w.name }

// Width returns the number of bits.
func (w *Wire) Width() int { return w.width }

// Value returns the current value.
func (w *Wire) Value() uint64 { return w.value }

// Bool reports whether bit 0 is set.
func (w *Wire) Bool() bool { return w.value&1 == 1 }

// Set assigns v truncated to the wire's width.
func (w *Wire) Set(v uint64) { w.value = v & w.mask }

// SetBool assigns 1 or 0.
func (w *Wire) SetBool(b bool) {
	if b {
		w.value = 1
		return
	}
	w.value = 0
}

func (w *Wire) String() string {
	return fmt.Sprintf("%s=%0*b", w.name, w.width, w.value)
}

// Change is a value transition of one wire during one step.
type Change struct {
	Wire *Wire
	Old  uint64
	New  uint64
}

// Rose reports a 0 to 1 transition of bit 0.
func (c Change) Rose() bool { return c.Old&1 == 0 && c.New&1 == 1 }

// Fell reports a 1 to 0 transition of bit 0.
func (c Change) Fell() bool { return c.Old&1 == 1 && c.New&1 == 0 }
