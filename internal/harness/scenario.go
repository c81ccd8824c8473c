package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/pongbench/internal/screen"
)

// Scenario defines a verification scenario.
// Steps run in order against a single simulation; the first failing step
// ends the run.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario checks.
	Description string `yaml:"description"`

	// Clock configures the system clock, in simulation time units.
	Clock ClockConfig `yaml:"clock"`

	// DebounceWidth is the design's debounce parameter. Moves wait
	// 2**DebounceWidth * 4 cycles between steps unless told otherwise.
	DebounceWidth *int `yaml:"debounce_width,omitempty"`

	// ControllerPhase is the initial phase of both encoders.
	ControllerPhase *int `yaml:"controller_phase,omitempty"`

	// Signals overrides the hierarchical name behind a role.
	Signals map[string]string `yaml:"signals,omitempty"`

	// Steps is the scenario body.
	Steps []Step `yaml:"steps"`
}

// ClockConfig sets the period and high time of the system clock.
// High defaults to half the period.
type ClockConfig struct {
	Period int64 `yaml:"period"`
	High   int64 `yaml:"high,omitempty"`
}

// Step is one scenario operation. Which fields apply depends on Op.
type Step struct {
	// Op selects the operation; see the Op constants.
	Op string `yaml:"op"`

	// Signal is a role or hierarchical name.
	Signal string `yaml:"signal,omitempty"`

	// Edge is "rising" or "falling" (await_edge).
	Edge string `yaml:"edge,omitempty"`

	// Value and Bits give a literal (set, assert_eq, wait_value).
	Value *uint64 `yaml:"value,omitempty"`
	Bits  string  `yaml:"bits,omitempty"`

	// Count is a number of cycles (cycles) or encoder steps (move).
	Count int `yaml:"count,omitempty"`

	// Spacing and Settle are cycle counts for power_up and move.
	Spacing int `yaml:"spacing,omitempty"`
	Settle  int `yaml:"settle,omitempty"`

	// Left and Right are "up" or "down" (move).
	Left  string `yaml:"left,omitempty"`
	Right string `yaml:"right,omitempty"`

	// Var names a sampled variable (sample, wait_value, assert_differs).
	Var string `yaml:"var,omitempty"`

	// Shift right-shifts variables before use (wait_value, assert_pixel).
	Shift int `yaml:"shift,omitempty"`

	// Budget bounds waits: ticks for wait_value, per-row ticks for capture.
	Budget int `yaml:"budget,omitempty"`

	// Strategy is "edge" or "counter" (capture).
	Strategy string `yaml:"strategy,omitempty"`

	// Expect is the expected 16x16 pattern (capture).
	Expect string `yaml:"expect,omitempty"`

	// Vars lists sampled variables (assert_in, assert_pixel).
	Vars []string `yaml:"vars,omitempty"`

	// OneOf lists acceptable tuples for Vars (assert_in).
	OneOf [][]uint64 `yaml:"one_of,omitempty"`
}

// Step operations.
const (
	OpPowerUp       = "power_up"
	OpAwaitActive   = "await_active"
	OpAwaitEdge     = "await_edge"
	OpSet           = "set"
	OpCycles        = "cycles"
	OpAssertEq      = "assert_eq"
	OpMove          = "move"
	OpWaitValue     = "wait_value"
	OpSample        = "sample"
	OpCapture       = "capture"
	OpAssertIn      = "assert_in"
	OpAssertPixel   = "assert_pixel"
	OpAssertDiffers = "assert_differs"
)

// Encoder directions.
const (
	DirUp   = "up"
	DirDown = "down"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or violates the scenario schema.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses and validates a scenario document.
func ParseScenario(data []byte) (*Scenario, error) {
	// Strict decoding catches typos like "setle:" before the schema runs
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateSchema(data); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Clock.Period <= 1 {
		return fmt.Errorf("clock.period must be greater than 1")
	}

	if s.Clock.High < 0 || s.Clock.High >= s.Clock.Period {
		return fmt.Errorf("clock.high must lie between 0 and the period")
	}

	if s.DebounceWidth != nil && (*s.DebounceWidth < 1 || *s.DebounceWidth > 8) {
		return fmt.Errorf("debounce_width must be 1..8, got %d", *s.DebounceWidth)
	}

	if s.ControllerPhase != nil && (*s.ControllerPhase < 0 || *s.ControllerPhase > 3) {
		return fmt.Errorf("controller_phase must be 0..3, got %d", *s.ControllerPhase)
	}

	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		if err := validateStep(step); err != nil {
			return fmt.Errorf("step %d (%s): %w", i, step.Op, err)
		}
	}

	return nil
}

func validateStep(st Step) error {
	switch st.Op {
	case OpPowerUp, OpAwaitActive:
		return nil

	case OpAwaitEdge:
		if st.Signal == "" {
			return fmt.Errorf("signal is required")
		}
		if st.Edge != "rising" && st.Edge != "falling" {
			return fmt.Errorf("edge must be rising or falling, got %q", st.Edge)
		}

	case OpSet, OpAssertEq:
		if st.Signal == "" {
			return fmt.Errorf("signal is required")
		}
		return validateLiteral(st, false)

	case OpCycles:
		if st.Count <= 0 {
			return fmt.Errorf("count must be positive")
		}

	case OpMove:
		if st.Count <= 0 {
			return fmt.Errorf("count must be positive")
		}
		if st.Left == "" && st.Right == "" {
			return fmt.Errorf("left or right direction is required")
		}
		for _, d := range []string{st.Left, st.Right} {
			if d != "" && d != DirUp && d != DirDown {
				return fmt.Errorf("direction must be up or down, got %q", d)
			}
		}

	case OpWaitValue:
		if st.Signal == "" {
			return fmt.Errorf("signal is required")
		}
		if st.Budget <= 0 {
			return fmt.Errorf("budget must be positive")
		}
		return validateLiteral(st, true)

	case OpSample:
		if st.Signal == "" || st.Var == "" {
			return fmt.Errorf("signal and var are required")
		}

	case OpCapture:
		if _, err := ParseStrategy(st.Strategy); err != nil {
			return err
		}
		if st.Budget < 0 {
			return fmt.Errorf("budget must not be negative")
		}
		if st.Expect != "" {
			if _, err := screen.ParsePattern(st.Expect); err != nil {
				return err
			}
		}

	case OpAssertIn:
		if len(st.Vars) == 0 || len(st.OneOf) == 0 {
			return fmt.Errorf("vars and one_of are required")
		}
		for _, tuple := range st.OneOf {
			if len(tuple) != len(st.Vars) {
				return fmt.Errorf("one_of tuple %v does not match %d vars", tuple, len(st.Vars))
			}
		}

	case OpAssertPixel:
		if len(st.Vars) != 2 {
			return fmt.Errorf("vars must name x and y")
		}

	case OpAssertDiffers:
		if st.Signal == "" || st.Var == "" {
			return fmt.Errorf("signal and var are required")
		}

	default:
		return fmt.Errorf("unknown op %q", st.Op)
	}
	return nil
}

// validateLiteral requires exactly one of value, bits (and var when allowed).
func validateLiteral(st Step, allowVar bool) error {
	n := 0
	if st.Value != nil {
		n++
	}
	if st.Bits != "" {
		if _, _, err := screen.ParseBits(st.Bits); err != nil {
			return err
		}
		n++
	}
	if allowVar && st.Var != "" {
		n++
	}
	if n != 1 {
		if allowVar {
			return fmt.Errorf("exactly one of value, bits or var is required")
		}
		return fmt.Errorf("exactly one of value or bits is required")
	}
	return nil
}
