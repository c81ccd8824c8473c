package harness

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// FrameSnapshot renders every frame of a result as text: a header line
// with the scenario name, then each frame preceded by its index.
func FrameSnapshot(scenarioName string, r *Result) []byte {
	var buf strings.Builder
	fmt.Fprintf(&buf, "scenario: %s\n", scenarioName)
	for i, f := range r.Frames {
		fmt.Fprintf(&buf, "frame %d\n", i)
		buf.WriteString(f.String())
	}
	return []byte(buf.String())
}

// RunWithGolden runs a scenario against the behavioral model and compares
// its captured frames against a golden file.
// The golden file is stored in testdata/golden/{scenario.Name}.golden
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns the result so callers can make further assertions. A harness
// fault is returned as an error; a failed scenario is not.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := RunModel(context.Background(), scenario, Options{})
	if err != nil {
		return nil, err
	}
	AssertGolden(t, scenario.Name, result)
	return result, nil
}

// AssertGolden compares a result's frames against testdata/golden/{name}.golden.
func AssertGolden(t *testing.T, name string, result *Result) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, FrameSnapshot(name, result))
}
