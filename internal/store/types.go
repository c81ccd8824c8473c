package store

import "time"

// Run is one recorded scenario execution.
type Run struct {
	ID        string
	Scenario  string
	Pass      bool
	Errors    []string
	Cycles    int64
	StartedAt time.Time

	// Frames and Events are populated by ReadRun; ListRuns leaves them nil.
	Frames []Frame
	Events []Event
}

// Frame is one captured frame, stored as rendered rows.
type Frame struct {
	Seq    int
	Rows   []string
	Digest string
}

// Event is one trace entry of a run.
type Event struct {
	Seq    int64
	Cycle  int64
	Op     string
	Detail string
}
