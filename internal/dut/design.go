package dut

import "github.com/roach88/pongbench/internal/sim"

// Options tunes the model. Zero values take the defaults below.
type Options struct {
	// BootCycles is the number of powered cycles before "active" rises.
	BootCycles int
	// ResetDelay is the gap between "active" rising and the reset pulse.
	ResetDelay int
	// ResetWidth is the length of the reset pulse.
	ResetWidth int
	// DebounceWidth sets the debounce window to 2**DebounceWidth samples.
	DebounceWidth uint
	// GameDivider is the number of clocks per ball-physics tick.
	GameDivider int
}

// Defaults.
const (
	DefaultBootCycles    = 200
	DefaultResetDelay    = 16
	DefaultResetWidth    = 8
	DefaultDebounceWidth = 2
	DefaultGameDivider   = 3
)

func (o Options) withDefaults() Options {
	if o.BootCycles <= 0 {
		o.BootCycles = DefaultBootCycles
	}
	if o.ResetDelay <= 0 {
		o.ResetDelay = DefaultResetDelay
	}
	if o.ResetWidth <= 0 {
		o.ResetWidth = DefaultResetWidth
	}
	if o.DebounceWidth == 0 {
		o.DebounceWidth = DefaultDebounceWidth
	}
	if o.GameDivider <= 0 {
		o.GameDivider = DefaultGameDivider
	}
	return o
}

// Design is the model bound to its own kernel.
type Design struct {
	k    *sim.Kernel
	opts Options

	clock, rstb      *sim.Wire
	power            [4]*sim.Wire
	start            *sim.Wire
	difficulty       *sim.Wire
	p1a, p1b         *sim.Wire
	p2a, p2b         *sim.Wire
	active, reset    *sim.Wire
	x, y             *sim.Wire
	lpaddle, rpaddle *sim.Wire
	lscore, rscore   *sim.Wire

	frameStart, rowClock, colClock, data *sim.Wire
	row, corrected                       *sim.Wire

	boot int
	game *game
	scan scanner
}

// New creates a fresh kernel with the design attached to its clock wire.
// The clock itself is not started; that is the harness's job.
func New(opts Options) *Design {
	opts = opts.withDefaults()
	k := sim.NewKernel()

	d := &Design{
		k:    k,
		opts: opts,

		clock: k.Wire(Clock, 1),
		rstb:  k.Wire(RSTB, 1),
		power: [4]*sim.Wire{
			k.Wire(Power1, 1),
			k.Wire(Power2, 1),
			k.Wire(Power3, 1),
			k.Wire(Power4, 1),
		},
		start:      k.Wire(Start, 1),
		difficulty: k.Wire(Difficulty, 4),
		p1a:        k.Wire(Player1A, 1),
		p1b:        k.Wire(Player1B, 1),
		p2a:        k.Wire(Player2A, 1),
		p2b:        k.Wire(Player2B, 1),

		active:  k.Wire(Active, 1),
		reset:   k.Wire(Reset, 1),
		x:       k.Wire(BallX, 5),
		y:       k.Wire(BallY, 5),
		lpaddle: k.Wire(LPaddle, 16),
		rpaddle: k.Wire(RPaddle, 16),
		lscore:  k.Wire(LScore, 4),
		rscore:  k.Wire(RScore, 4),

		frameStart: k.Wire(FrameStart, 1),
		rowClock:   k.Wire(RowClock, 1),
		colClock:   k.Wire(ColClock, 1),
		data:       k.Wire(Data, 1),
		row:        k.Wire(Row, 5),
		corrected:  k.Wire(CorrectedRow, 5),

		game: newGame(opts.DebounceWidth, opts.GameDivider),
	}
	d.row.Set(blankRow)
	d.corrected.Set(blankRow)
	d.publishGame()

	k.OnPosedge(d.clock, d)
	return d
}

// Kernel returns the kernel the design is attached to.
func (d *Design) Kernel() *sim.Kernel { return d.k }

// Options returns the effective options.
func (d *Design) Options() Options { return d.opts }

func (d *Design) powered() bool {
	for _, p := range d.power {
		if !p.Bool() {
			return false
		}
	}
	return d.rstb.Bool()
}

// Posedge implements sim.Process.
func (d *Design) Posedge() {
	if !d.powered() {
		d.boot = 0
		d.active.Set(0)
		d.reset.Set(0)
		return
	}

	pulseStart := d.opts.BootCycles + d.opts.ResetDelay
	ready := pulseStart + d.opts.ResetWidth + 1
	if d.boot < ready {
		d.boot++
	}

	d.active.SetBool(d.boot >= d.opts.BootCycles)
	inReset := d.boot > pulseStart && d.boot < ready
	d.reset.SetBool(inReset)

	if d.boot < ready {
		if inReset {
			d.game.reset(d.inputs())
			d.scan.reset()
			d.publishScan(scanOutputs{row: blankRow, corrected: blankRow})
			d.publishGame()
		}
		return
	}

	d.game.posedge(d.inputs())
	d.publishGame()
	d.publishScan(d.scan.posedge(d.game))
}

func (d *Design) inputs() gameInputs {
	return gameInputs{
		p1a:        d.p1a.Bool(),
		p1b:        d.p1b.Bool(),
		p2a:        d.p2a.Bool(),
		p2b:        d.p2b.Bool(),
		start:      d.start.Bool(),
		difficulty: d.difficulty.Value(),
	}
}

func (d *Design) publishGame() {
	g := d.game
	d.lpaddle.Set(paddleBits(g.lpad))
	d.rpaddle.Set(paddleBits(g.rpad))
	d.x.Set(uint64(g.x))
	d.y.Set(uint64(g.y))
	d.lscore.Set(uint64(g.lscore))
	d.rscore.Set(uint64(g.rscore))
}

func (d *Design) publishScan(o scanOutputs) {
	d.frameStart.SetBool(o.frameStart)
	d.rowClock.SetBool(o.rowClock)
	d.colClock.SetBool(o.colClock)
	d.data.SetBool(o.data)
	d.row.Set(uint64(o.row))
	d.corrected.Set(uint64(o.corrected))
}
