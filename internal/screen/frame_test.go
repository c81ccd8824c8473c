package screen

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const idleText = `
	0000000000000000
	0000000000000000
	0000000000000000
	0000000000000000
	0000000000000000
	0000000000000000
	1000000000000001
	1000000000000001
	1000000010000001
	1000000000000001
	0000000000000000
	0000000000000000
	0000000000000000
	0000000000000000
	0000000000000000
	0000000000000000
`

func newGolden(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestRender_FixedWidthBinary(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for trial := 0; trial < 20; trial++ {
		var f Frame
		for i := range f {
			f[i] = uint16(r.Intn(1 << 16))
		}

		first := Render(f)
		second := Render(f)
		require.Equal(t, first, second)
		require.Len(t, first, Rows)

		for i, line := range first {
			require.Len(t, line, Cols)
			require.Empty(t, strings.Trim(line, "01"))
			assert.Equal(t, f[i], Pattern(first).Frame()[i])
		}
	}
}

func TestRender_MSBFirst(t *testing.T) {
	var f Frame
	f[0] = 1 << 15
	f[1] = 1
	f[2] = 0b0000000010000000

	lines := Render(f)
	assert.Equal(t, "1000000000000000", lines[0])
	assert.Equal(t, "0000000000000001", lines[1])
	assert.Equal(t, "0000000010000000", lines[2])

	assert.True(t, f.Pixel(0, 0))
	assert.True(t, f.Pixel(15, 1))
	assert.True(t, f.Pixel(8, 2))
	assert.False(t, f.Pixel(7, 2))
	assert.False(t, f.Pixel(-1, 0))
	assert.False(t, f.Pixel(0, Rows))
}

func TestPrint_MatchesGolden(t *testing.T) {
	f := MustParsePattern(idleText).Frame()

	var buf bytes.Buffer
	require.NoError(t, Print(&buf, f))
	newGolden(t).Assert(t, "idle_frame", buf.Bytes())
}

func TestDigest_StableAndDistinct(t *testing.T) {
	a := MustParsePattern(idleText).Frame()
	b := a
	b[8] = 0

	assert.Equal(t, Digest(a), Digest(a))
	assert.Len(t, Digest(a), 40)
	assert.NotEqual(t, Digest(a), Digest(b))
}
