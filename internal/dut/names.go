package dut

// Hierarchical signal names.
const (
	Clock      = "clock"
	RSTB       = "RSTB"
	Power1     = "power1"
	Power2     = "power2"
	Power3     = "power3"
	Power4     = "power4"
	Start      = "start"
	Difficulty = "difficulty"
	Player1A   = "player1_a"
	Player1B   = "player1_b"
	Player2A   = "player2_a"
	Player2B   = "player2_b"

	Wrapper = "uut.mprj.pong_wrapper"
	Active  = Wrapper + ".active"

	Pong    = Wrapper + ".pong0"
	Reset   = Pong + ".reset"
	BallX   = Pong + ".x"
	BallY   = Pong + ".y"
	LPaddle = Pong + ".game0.lpaddle"
	RPaddle = Pong + ".game0.rpaddle"
	LScore  = Pong + ".game0.lscore"
	RScore  = Pong + ".game0.rscore"

	Screen       = Pong + ".screen0"
	FrameStart   = Screen + ".frame_start"
	RowClock     = Screen + ".row_clock"
	ColClock     = Screen + ".col_clock"
	Data         = Screen + ".data"
	Row          = Screen + ".row"
	CorrectedRow = Screen + ".corrected_row"
)
