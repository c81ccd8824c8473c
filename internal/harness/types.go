package harness

import "github.com/roach88/pongbench/internal/screen"

// Result contains the outcome of running a scenario.
type Result struct {
	Scenario string            `json:"scenario"`
	RunID    string            `json:"run_id"`
	Pass     bool              `json:"pass"`
	Errors   []string          `json:"errors,omitempty"`
	Trace    []TraceEvent      `json:"trace"`
	Frames   []screen.Frame    `json:"-"`
	Vars     map[string]uint64 `json:"vars,omitempty"`
	Cycles   int64             `json:"cycles"`
}

// TraceEvent records one executed step.
type TraceEvent struct {
	Seq    int64  `json:"seq"`
	Cycle  int64  `json:"cycle"`
	Op     string `json:"op"`
	Detail string `json:"detail,omitempty"`
}

// NewResult creates a passing result for the named scenario.
func NewResult(scenario string) *Result {
	return &Result{
		Scenario: scenario,
		Pass:     true,
		Vars:     make(map[string]uint64),
	}
}

// AddError records a failure and marks the result failed.
func (r *Result) AddError(msg string) {
	r.Pass = false
	r.Errors = append(r.Errors, msg)
}

// LastFrame returns the most recent capture.
func (r *Result) LastFrame() (screen.Frame, bool) {
	if len(r.Frames) == 0 {
		return screen.Frame{}, false
	}
	return r.Frames[len(r.Frames)-1], true
}
