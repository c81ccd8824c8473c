package harness

import "context"

// Signal is a read-only handle to a signal owned by the design.
type Signal interface {
	Name() string
	Value() uint64
}

// Line is a signal the harness may assign.
type Line interface {
	Signal
	Set(v uint64)
}

// Clock is a running clock.
type Clock interface {
	Signal
	RisingEdge(ctx context.Context) error
	FallingEdge(ctx context.Context) error
	ClockCycles(ctx context.Context, n int) error
	Cycles() int64
}

// Edges awaits transitions of arbitrary signals.
type Edges interface {
	RisingEdge(ctx context.Context, s Signal) error
	FallingEdge(ctx context.Context, s Signal) error
}

// Backend is the simulation a scenario runs against: signal lookup by
// hierarchical name, clock creation and edge awaits.
type Backend interface {
	Edges
	Lookup(name string) (Line, error)
	StartClock(name string, period, high int64) (Clock, error)
}

// Signal roles. Steps refer to signals by role; a scenario's signals map
// overrides the hierarchical name behind a role. Names that are not roles
// are looked up as-is.
const (
	RoleClock        = "clock"
	RoleRSTB         = "rstb"
	RolePower1       = "power1"
	RolePower2       = "power2"
	RolePower3       = "power3"
	RolePower4       = "power4"
	RoleStart        = "start"
	RoleDifficulty   = "difficulty"
	RolePlayer1A     = "player1_a"
	RolePlayer1B     = "player1_b"
	RolePlayer2A     = "player2_a"
	RolePlayer2B     = "player2_b"
	RoleActive       = "active"
	RoleReset        = "reset"
	RoleLPaddle      = "lpaddle"
	RoleRPaddle      = "rpaddle"
	RoleLScore       = "lscore"
	RoleRScore       = "rscore"
	RoleBallX        = "x"
	RoleBallY        = "y"
	RoleFrameStart   = "frame_start"
	RoleRowClock     = "row_clock"
	RoleColClock     = "col_clock"
	RoleData         = "data"
	RoleRow          = "row"
	RoleCorrectedRow = "corrected_row"
)

const (
	wrapperPath = "uut.mprj.pong_wrapper"
	pongPath    = wrapperPath + ".pong0"
	screenPath  = pongPath + ".screen0"
)

// DefaultNames maps every role to its name in the chip-level simulation.
func DefaultNames() map[string]string {
	return map[string]string{
		RoleClock:        "clock",
		RoleRSTB:         "RSTB",
		RolePower1:       "power1",
		RolePower2:       "power2",
		RolePower3:       "power3",
		RolePower4:       "power4",
		RoleStart:        "start",
		RoleDifficulty:   "difficulty",
		RolePlayer1A:     "player1_a",
		RolePlayer1B:     "player1_b",
		RolePlayer2A:     "player2_a",
		RolePlayer2B:     "player2_b",
		RoleActive:       wrapperPath + ".active",
		RoleReset:        pongPath + ".reset",
		RoleLPaddle:      pongPath + ".game0.lpaddle",
		RoleRPaddle:      pongPath + ".game0.rpaddle",
		RoleLScore:       pongPath + ".game0.lscore",
		RoleRScore:       pongPath + ".game0.rscore",
		RoleBallX:        pongPath + ".x",
		RoleBallY:        pongPath + ".y",
		RoleFrameStart:   screenPath + ".frame_start",
		RoleRowClock:     screenPath + ".row_clock",
		RoleColClock:     screenPath + ".col_clock",
		RoleData:         screenPath + ".data",
		RoleRow:          screenPath + ".row",
		RoleCorrectedRow: screenPath + ".corrected_row",
	}
}
