package dut

// debouncer passes a raw input through once it has differed from the
// current stable value for 2**width consecutive samples.
type debouncer struct {
	width  uint
	stable bool
	count  int
}

func (d *debouncer) reset(raw bool) {
	d.stable = raw
	d.count = 0
}

func (d *debouncer) sample(raw bool) bool {
	if raw == d.stable {
		d.count = 0
		return d.stable
	}
	d.count++
	if d.count >= 1<<d.width {
		d.stable = raw
		d.count = 0
	}
	return d.stable
}

// grayIndex maps debounced (a, b) to the position in the quadrature cycle
// 00 -> 01 -> 11 -> 10.
var grayIndex = [2][2]int{
	{0, 1},
	{3, 2},
}

// decoder turns a debounced quadrature pair into detent moves.
type decoder struct {
	a, b    debouncer
	state   int
	quarter int
}

func newDecoder(width uint) decoder {
	return decoder{a: debouncer{width: width}, b: debouncer{width: width}}
}

func (q *decoder) reset(a, b bool) {
	q.a.reset(a)
	q.b.reset(b)
	q.state = grayIndex[bit(a)][bit(b)]
	q.quarter = 0
}

// sample returns +1 or -1 when a full detent (four quarter steps in the same
// direction) completes, 0 otherwise. Double steps are ignored.
func (q *decoder) sample(a, b bool) int {
	s := grayIndex[bit(q.a.sample(a))][bit(q.b.sample(b))]
	delta := (s - q.state + 4) % 4
	q.state = s

	switch delta {
	case 1:
		q.quarter++
	case 3:
		q.quarter--
	default:
		return 0
	}

	switch q.quarter {
	case 4:
		q.quarter = 0
		return 1
	case -4:
		q.quarter = 0
		return -1
	}
	return 0
}

func bit(b bool) int {
	if b {
		return 1
	}
	return 0
}
