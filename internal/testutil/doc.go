// Package testutil provides deterministic helpers for tests: a stepping
// wall clock, a fixed run ID generator and a synthetic scan-out source.
package testutil
