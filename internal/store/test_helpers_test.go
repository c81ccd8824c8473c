package store

import (
	"path/filepath"
	"testing"
	"time"
)

// createTestStore creates a new file-backed store for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

var testEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// createTestRun creates a passing run with one frame and two events.
func createTestRun(id, scenario string, startOffset time.Duration) Run {
	rows := make([]string, 16)
	for i := range rows {
		rows[i] = "0000000000000000"
	}
	rows[8] = "1000000010000001"

	return Run{
		ID:        id,
		Scenario:  scenario,
		Pass:      true,
		Cycles:    1040,
		StartedAt: testEpoch.Add(startOffset),
		Frames: []Frame{
			{Seq: 0, Rows: rows, Digest: "digest-" + scenario},
		},
		Events: []Event{
			{Seq: 1, Cycle: 32, Op: "power_up", Detail: "spacing=8 settle=80"},
			{Seq: 2, Cycle: 258, Op: "await_active"},
		},
	}
}
