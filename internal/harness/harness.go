package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/roach88/pongbench/internal/dut"
	"github.com/roach88/pongbench/internal/quadrature"
	"github.com/roach88/pongbench/internal/screen"
	"github.com/roach88/pongbench/internal/store"
)

// Defaults for scenario fields left at zero.
const (
	DefaultDebounceWidth   = 2
	DefaultControllerPhase = quadrature.RestPhase
	DefaultRailSpacing     = 8
	DefaultResetSettle     = 80
)

// Options configures a run.
type Options struct {
	// Logger receives step progress. Nil discards.
	Logger *slog.Logger

	// Store, when set, records the run with its frames and trace.
	Store *store.Store

	// RunIDs issues the run ID. Nil uses UUIDv7Generator.
	RunIDs RunIDGenerator

	// Now stamps the stored run. Nil uses time.Now.
	Now func() time.Time
}

// Harness executes one scenario against one backend.
type Harness struct {
	backend  Backend
	scenario *Scenario
	names    map[string]string
	lines    map[string]Line
	clock    Clock
	left     *quadrature.Encoder
	right    *quadrature.Encoder
	result   *Result
	logger   *slog.Logger
	seq      int64
}

// Run executes a scenario and returns the result.
//
// Execution flow:
// 1. Validate the scenario and start the system clock
// 2. Create encoders at the rest phase if any step moves a controller
// 3. Execute steps in order, stopping at the first failure
// 4. Record the run in opts.Store, if set
//
// Failures are reported through Result; only harness faults return an error.
func Run(ctx context.Context, backend Backend, scenario *Scenario, opts Options) (*Result, error) {
	if err := validateScenario(scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	ids := opts.RunIDs
	if ids == nil {
		ids = UUIDv7Generator{}
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	result := NewResult(scenario.Name)
	result.RunID = ids.Generate()
	startedAt := now()

	h := &Harness{
		backend:  backend,
		scenario: scenario,
		names:    DefaultNames(),
		lines:    make(map[string]Line),
		result:   result,
		logger:   logger.With("scenario", scenario.Name, "run_id", result.RunID),
	}
	for role, name := range scenario.Signals {
		h.names[role] = name
	}

	if err := h.start(); err != nil {
		return nil, fmt.Errorf("failed to start scenario: %w", err)
	}

	h.logger.Info("scenario started", "steps", len(scenario.Steps))
	for i, step := range scenario.Steps {
		err := h.execute(ctx, step)
		if err == nil {
			continue
		}
		if !IsFailure(err) {
			return nil, fmt.Errorf("step %d (%s): %w", i, step.Op, err)
		}
		h.logger.Warn("step failed", "step", i, "op", step.Op, "error", err)
		result.AddError(fmt.Sprintf("step %d (%s): %v", i, step.Op, err))
		break
	}
	result.Cycles = h.clock.Cycles()
	h.logger.Info("scenario finished", "pass", result.Pass, "cycles", result.Cycles)

	if opts.Store != nil {
		if err := record(ctx, opts.Store, result, startedAt); err != nil {
			return nil, fmt.Errorf("failed to record run: %w", err)
		}
	}

	return result, nil
}

// RunModel runs a scenario against a fresh instance of the behavioral Pong
// model, configured with the scenario's debounce width.
func RunModel(ctx context.Context, scenario *Scenario, opts Options) (*Result, error) {
	d := dut.New(dut.Options{DebounceWidth: uint(debounceWidth(scenario))})
	return Run(ctx, NewSimBackend(d.Kernel()), scenario, opts)
}

// start brings up the clock and, when needed, the controller encoders.
func (h *Harness) start() error {
	cfg := h.scenario.Clock
	high := cfg.High
	if high == 0 {
		high = cfg.Period / 2
	}
	clk, err := h.backend.StartClock(h.name(RoleClock), cfg.Period, high)
	if err != nil {
		return err
	}
	h.clock = clk

	if !h.needsEncoders() {
		return nil
	}
	phase := DefaultControllerPhase
	if h.scenario.ControllerPhase != nil {
		phase = *h.scenario.ControllerPhase
	}
	h.left, err = h.encoder(RolePlayer1A, RolePlayer1B, phase)
	if err != nil {
		return err
	}
	h.right, err = h.encoder(RolePlayer2A, RolePlayer2B, phase)
	return err
}

func (h *Harness) needsEncoders() bool {
	for _, st := range h.scenario.Steps {
		if st.Op == OpMove {
			return true
		}
	}
	return false
}

func (h *Harness) encoder(roleA, roleB string, phase int) (*quadrature.Encoder, error) {
	a, err := h.line(roleA)
	if err != nil {
		return nil, err
	}
	b, err := h.line(roleB)
	if err != nil {
		return nil, err
	}
	return quadrature.New(a, b, phase), nil
}

// name resolves a role to a hierarchical name. Unknown roles pass through.
func (h *Harness) name(role string) string {
	if n, ok := h.names[role]; ok {
		return n
	}
	return role
}

func (h *Harness) line(role string) (Line, error) {
	if l, ok := h.lines[role]; ok {
		return l, nil
	}
	l, err := h.backend.Lookup(h.name(role))
	if err != nil {
		return nil, err
	}
	h.lines[role] = l
	return l, nil
}

func (h *Harness) trace(op, detail string) {
	h.seq++
	h.result.Trace = append(h.result.Trace, TraceEvent{
		Seq:    h.seq,
		Cycle:  h.clock.Cycles(),
		Op:     op,
		Detail: detail,
	})
}

func debounceWidth(s *Scenario) int {
	if s.DebounceWidth != nil {
		return *s.DebounceWidth
	}
	return DefaultDebounceWidth
}

func record(ctx context.Context, st *store.Store, r *Result, startedAt time.Time) error {
	run := store.Run{
		ID:        r.RunID,
		Scenario:  r.Scenario,
		Pass:      r.Pass,
		Errors:    r.Errors,
		Cycles:    r.Cycles,
		StartedAt: startedAt,
	}
	for i, f := range r.Frames {
		run.Frames = append(run.Frames, store.Frame{
			Seq:    i,
			Rows:   screen.Render(f),
			Digest: screen.Digest(f),
		})
	}
	for _, ev := range r.Trace {
		run.Events = append(run.Events, store.Event{
			Seq:    ev.Seq,
			Cycle:  ev.Cycle,
			Op:     ev.Op,
			Detail: ev.Detail,
		})
	}
	return st.WriteRun(ctx, run)
}
