// Package dut is a behavioral model of the design under test: a 16x16 Pong
// game behind a chip wrapper.
//
// The model exists so the harness has a concrete peer to drive. It is built
// from a single posedge process on the "clock" wire and exposes the same
// hierarchical signal names as the gate-level simulation it stands in for
// (see names.go).
//
// # Wrapper
//
// The wrapper stays idle until all four power rails and RSTB are high. It then
// counts BootCycles (firmware bring-up), raises "active", waits ResetDelay
// cycles and pulses the game's reset for ResetWidth cycles. The game and the
// scan-out run from the first cycle after that pulse.
//
// # Game
//
//   - Paddles are 4 rows tall in a 16-bit register (bit n = row n) and start
//     at rows 6..9. Each controller's two quadrature lines pass through a
//     debounce filter of 2**DebounceWidth samples; four quarter steps in the
//     same direction move the paddle one row.
//   - The ball lives on a 32x32 grid and is drawn at (x/2, y/2). Start
//     launches it in one of eight directions picked by a 16-bit LFSR. Every
//     GameDivider cycles an accumulator adds difficulty*127; a carry out of
//     16 bits moves the ball one grid step.
//
// # Scan-out
//
// A frame is 8 blanking cycles (frame_start high for the first 4) followed by
// 16 rows of 32 cycles. Row r emits screen row r^1 (pairs swapped), one
// column per 2 cycles, column c carrying pixel x = 15-c. row_clock and
// col_clock both rise on the first cycle of a row.
package dut
