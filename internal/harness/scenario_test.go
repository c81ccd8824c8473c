package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadScenario_Valid(t *testing.T) {
	path := writeScenario(t, `
name: rails
description: Power up and wait for activation
clock:
  period: 25000
  high: 10000
debounce_width: 3
signals:
  active: top.active
steps:
  - op: power_up
    spacing: 4
  - op: await_active
  - op: assert_eq
    signal: lpaddle
    bits: "0b0000_0011_1100_0000"
  - op: move
    count: 2
    left: down
`)

	s, err := LoadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, "rails", s.Name)
	assert.Equal(t, int64(25000), s.Clock.Period)
	assert.Equal(t, int64(10000), s.Clock.High)
	require.NotNil(t, s.DebounceWidth)
	assert.Equal(t, 3, *s.DebounceWidth)
	assert.Equal(t, "top.active", s.Signals["active"])
	require.Len(t, s.Steps, 4)
	assert.Equal(t, OpPowerUp, s.Steps[0].Op)
	assert.Equal(t, 4, s.Steps[0].Spacing)
	assert.Equal(t, DirDown, s.Steps[3].Left)
}

func TestLoadScenario_FileNotFound(t *testing.T) {
	_, err := LoadScenario("/nonexistent/scenario.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestLoadScenario_UnknownField(t *testing.T) {
	path := writeScenario(t, `
name: typo
description: misspelled field
clock:
  period: 100
steps:
  - op: move
    count: 1
    left: up
    setle: 4
`)

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestParseScenario_SchemaRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "unknown op",
			doc: `
name: bad
description: d
clock: {period: 100}
steps:
  - op: jump
`,
		},
		{
			name: "bad direction",
			doc: `
name: bad
description: d
clock: {period: 100}
steps:
  - op: move
    count: 1
    left: sideways
`,
		},
		{
			name: "bad strategy",
			doc: `
name: bad
description: d
clock: {period: 100}
steps:
  - op: capture
    strategy: poll
`,
		},
		{
			name: "non-binary bits",
			doc: `
name: bad
description: d
clock: {period: 100}
steps:
  - op: set
    signal: difficulty
    bits: "1012"
`,
		},
		{
			name: "period too small",
			doc: `
name: bad
description: d
clock: {period: 1}
steps:
  - op: power_up
`,
		},
		{
			name: "no steps",
			doc: `
name: bad
description: d
clock: {period: 100}
steps: []
`,
		},
		{
			name: "upper case name",
			doc: `
name: Bad
description: d
clock: {period: 100}
steps:
  - op: power_up
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid scenario")
		})
	}
}

func TestParseScenario_StepValidation(t *testing.T) {
	tests := []struct {
		name string
		step string
		want string
	}{
		{"wait without budget", "{op: wait_value, signal: row, value: 3}", "budget must be positive"},
		{"set without value", "{op: set, signal: start}", "exactly one of value or bits"},
		{"set with both", "{op: set, signal: start, value: 1, bits: \"1\"}", "exactly one of value or bits"},
		{"move without direction", "{op: move, count: 3}", "left or right direction is required"},
		{"cycles without count", "{op: cycles}", "count must be positive"},
		{"tuple arity", "{op: assert_in, vars: [x, y], one_of: [[1]]}", "does not match 2 vars"},
		{"pixel arity", "{op: assert_pixel, vars: [x]}", "vars must name x and y"},
		{"short pattern", "{op: capture, expect: \"0101\"}", "capture"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := "name: s\ndescription: d\nclock: {period: 100}\nsteps:\n  - " + tt.step + "\n"
			_, err := ParseScenario([]byte(doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestBuiltin_AllParse(t *testing.T) {
	names := BuiltinNames()
	assert.Equal(t, []string{"ball_movement", "paddle_idle", "paddle_screen", "paddle_screen_counter"}, names)

	for _, name := range names {
		s, err := Builtin(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, s.Name)
	}
}

func TestBuiltin_Unknown(t *testing.T) {
	_, err := Builtin("tennis")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown built-in scenario")
}
