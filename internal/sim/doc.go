// Package sim implements the deterministic simulation kernel the harness runs
// against.
//
// The kernel owns a set of named wires, the clocks that toggle them and the
// processes that evaluate on clock rising edges. Time advances only when a
// caller awaits an edge, so a scenario and the design it drives form a single
// cooperative task sequence:
//
//	k := sim.NewKernel()
//	clk := k.Wire("clock", 1)
//	k.OnPosedge(clk, design)
//	c, _ := k.StartClock("clock", 25000, 12500)
//	_ = c.ClockCycles(ctx, 8)
//
// ARCHITECTURE:
//
// Step Semantics:
// 1. Time jumps to the earliest pending clock toggle
// 2. Every wire's value is snapshotted
// 3. Due clocks toggle; posedge processes of the clocks that rose evaluate once
// 4. Changes against the snapshot become this step's edges
// 5. Observers and the pending await see the edges
//
// Values assigned between steps (by the harness) are part of the snapshot,
// so they never show up as edges. Each wire has exactly one writer by
// construction; the kernel does not enforce it and takes no locks.
package sim
