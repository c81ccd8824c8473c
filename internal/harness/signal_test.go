package harness

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/pongbench/internal/dut"
	"github.com/roach88/pongbench/internal/sim"
)

func TestDefaultNames_ResolveOnModel(t *testing.T) {
	d := dut.New(dut.Options{})
	b := NewSimBackend(d.Kernel())

	for role, name := range DefaultNames() {
		l, err := b.Lookup(name)
		require.NoError(t, err, "role %s", role)
		assert.Equal(t, name, l.Name())
	}
}

func TestDefaultNames_MatchModel(t *testing.T) {
	names := DefaultNames()
	assert.Equal(t, dut.Active, names[RoleActive])
	assert.Equal(t, dut.Reset, names[RoleReset])
	assert.Equal(t, dut.LPaddle, names[RoleLPaddle])
	assert.Equal(t, dut.RScore, names[RoleRScore])
	assert.Equal(t, dut.CorrectedRow, names[RoleCorrectedRow])
	assert.Len(t, names, 26)
}

func TestSimBackend_UnknownSignal(t *testing.T) {
	b := NewSimBackend(sim.NewKernel())

	_, err := b.Lookup("nope")
	require.ErrorIs(t, err, ErrUnknownSignal)

	_, err = b.StartClock("nope", 10, 5)
	require.Error(t, err)
}

// namedSignal is a Signal that is not a kernel wire; the backend resolves it
// by name.
type namedSignal string

func (n namedSignal) Name() string  { return string(n) }
func (n namedSignal) Value() uint64 { return 0 }

func TestSimBackend_ResolvesForeignSignalByName(t *testing.T) {
	k := sim.NewKernel()
	clkWire := k.Wire("clk", 1)
	b := NewSimBackend(k)
	_, err := b.StartClock("clk", 10, 5)
	require.NoError(t, err)

	require.NoError(t, b.RisingEdge(context.Background(), namedSignal("clk")))
	assert.Equal(t, uint64(1), clkWire.Value())

	err = b.FallingEdge(context.Background(), namedSignal("missing"))
	require.ErrorIs(t, err, ErrUnknownSignal)
}
