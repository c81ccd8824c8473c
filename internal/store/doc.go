// Package store provides SQLite-backed storage for scenario runs.
//
// Each run is stored with:
//   - Runs: verdict, failure messages, cycle count and start time
//   - Frames: every captured frame, as rendered rows plus digest
//   - Events: the per-step trace
//
// Runs are written once, in a single transaction, and are immutable after.
// Rewriting an existing run ID is a no-op.
//
// Frames are indexed by digest, so a frame seen in one run can be looked up
// across all runs. This is how regressions between runs are spotted.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
