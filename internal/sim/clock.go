package sim

import "context"

// Clock toggles a wire with a fixed period and duty split.
//
// Clock is created by Kernel.StartClock and lives as long as its kernel.
type Clock struct {
	k      *Kernel
	wire   *Wire
	period Time
	high   Time
	next   Time // time of the next toggle
	cycles int64
}

// toggle flips the clock wire and schedules the next transition.
// Returns true on a rising transition.
func (c *Clock) toggle() bool {
	if c.wire.value == 0 {
		c.wire.value = 1
		c.next += c.high
		c.cycles++
		return true
	}
	c.wire.value = 0
	c.next += c.period - c.high
	return false
}

// Name returns the name of the driven wire.
func (c *Clock) Name() string { return c.wire.name }

// Value returns the current level of the clock.
func (c *Clock) Value() uint64 { return c.wire.value }

// Wire returns the driven wire.
func (c *Clock) Wire() *Wire { return c.wire }

// Period returns the clock period in ticks.
func (c *Clock) Period() Time { return c.period }

// Cycles returns the number of rising edges so far.
func (c *Clock) Cycles() int64 { return c.cycles }

// RisingEdge suspends until the next rising edge of the clock.
func (c *Clock) RisingEdge(ctx context.Context) error {
	return c.k.RisingEdge(ctx, c.wire)
}

// FallingEdge suspends until the next falling edge of the clock.
func (c *Clock) FallingEdge(ctx context.Context) error {
	return c.k.FallingEdge(ctx, c.wire)
}

// ClockCycles suspends until n rising edges have elapsed.
// Called right after a rising edge, that is exactly n full periods.
func (c *Clock) ClockCycles(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		if err := c.RisingEdge(ctx); err != nil {
			return err
		}
	}
	return nil
}
