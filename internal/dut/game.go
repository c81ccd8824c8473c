package dut

const (
	paddleHeight = 4
	paddleRest   = 6
	paddleMax    = 16 - paddleHeight
	gridSize     = 32
	ballCenter   = gridSize / 2
	lfsrSeed     = 0xACE1
)

// directions indexed by the low three LFSR bits. (0, 0) is never chosen.
var directions = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// game is the Pong state machine, one update per clock.
type game struct {
	divider int
	left    decoder
	right   decoder

	lpad, rpad     int // top row of each paddle
	x, y           int
	dx, dy         int
	running        bool
	acc            uint16
	div            int
	lfsr           uint16
	lscore, rscore int
}

func newGame(debounceWidth uint, divider int) *game {
	g := &game{
		divider: divider,
		left:    newDecoder(debounceWidth),
		right:   newDecoder(debounceWidth),
	}
	g.reset(gameInputs{})
	return g
}

type gameInputs struct {
	p1a, p1b   bool
	p2a, p2b   bool
	start      bool
	difficulty uint64
}

func (g *game) reset(in gameInputs) {
	g.left.reset(in.p1a, in.p1b)
	g.right.reset(in.p2a, in.p2b)
	g.lpad, g.rpad = paddleRest, paddleRest
	g.lscore, g.rscore = 0, 0
	g.lfsr = lfsrSeed
	g.div = 0
	g.serve()
}

// serve parks the ball in the center and waits for start.
func (g *game) serve() {
	g.x, g.y = ballCenter, ballCenter
	g.dx, g.dy = 0, 0
	g.running = false
	g.acc = 0
}

func (g *game) posedge(in gameInputs) {
	g.lfsr = stepLFSR(g.lfsr)

	g.lpad = clampPaddle(g.lpad + g.left.sample(in.p1a, in.p1b))
	g.rpad = clampPaddle(g.rpad + g.right.sample(in.p2a, in.p2b))

	if in.start && !g.running {
		d := directions[g.lfsr&7]
		g.dx, g.dy = d[0], d[1]
		g.running = true
		g.acc = 0
	}

	g.div++
	if g.div < g.divider {
		return
	}
	g.div = 0
	if !g.running {
		return
	}

	sum := uint32(g.acc) + uint32(in.difficulty)*127
	g.acc = uint16(sum)
	if sum > 0xFFFF {
		g.moveBall()
	}
}

func (g *game) moveBall() {
	nx, ny := g.x+g.dx, g.y+g.dy

	switch {
	case ny <= 0:
		ny, g.dy = 0, 1
	case ny >= gridSize-1:
		ny, g.dy = gridSize-1, -1
	}

	switch {
	case nx <= 1:
		if !covers(g.lpad, ny/2) {
			g.rscore = (g.rscore + 1) & 0xF
			g.serve()
			return
		}
		nx, g.dx = 2, 1
	case nx >= gridSize-2:
		if !covers(g.rpad, ny/2) {
			g.lscore = (g.lscore + 1) & 0xF
			g.serve()
			return
		}
		nx, g.dx = gridSize-3, -1
	}

	g.x, g.y = nx, ny
}

// pixel reports whether screen position (x, y) is lit. x = 0 is the left
// paddle column, x = 15 the right one.
func (g *game) pixel(x, y int) bool {
	switch {
	case x == 0 && covers(g.lpad, y):
		return true
	case x == 15 && covers(g.rpad, y):
		return true
	}
	return x == g.x/2 && y == g.y/2
}

func paddleBits(top int) uint64 {
	return uint64(1<<paddleHeight-1) << uint(top)
}

func covers(top, row int) bool {
	return row >= top && row < top+paddleHeight
}

func clampPaddle(top int) int {
	if top < 0 {
		return 0
	}
	if top > paddleMax {
		return paddleMax
	}
	return top
}

// stepLFSR advances a 16-bit Fibonacci LFSR (taps 16, 14, 13, 11).
func stepLFSR(v uint16) uint16 {
	b := (v >> 0) ^ (v >> 2) ^ (v >> 3) ^ (v >> 5)
	return v>>1 | (b&1)<<15
}
