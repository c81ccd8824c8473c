package harness

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunWithGolden_Builtins(t *testing.T) {
	for _, name := range []string{"paddle_idle", "paddle_screen", "paddle_screen_counter"} {
		t.Run(name, func(t *testing.T) {
			s, err := Builtin(name)
			require.NoError(t, err)

			// Regenerate with: go test ./internal/harness -run TestRunWithGolden -update
			result, err := RunWithGolden(t, s)
			require.NoError(t, err)
			require.True(t, result.Pass, "errors: %v", result.Errors)
		})
	}
}

func TestFrameSnapshot_Empty(t *testing.T) {
	got := FrameSnapshot("nothing", NewResult("nothing"))
	require.Equal(t, "scenario: nothing\n", string(got))
}
