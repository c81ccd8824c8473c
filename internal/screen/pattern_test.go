package screen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePattern_Dedents(t *testing.T) {
	p, err := ParsePattern(idleText)
	require.NoError(t, err)
	require.Len(t, p, Rows)
	assert.Equal(t, "1000000010000001", p[8])
	assert.Equal(t, uint16(0b1000000010000001), p.Frame()[8])
}

func TestParsePattern_Errors(t *testing.T) {
	row := strings.Repeat("0", Cols)
	rows := func(n int) []string {
		out := make([]string, n)
		for i := range out {
			out[i] = row
		}
		return out
	}

	tests := []struct {
		name string
		text string
		want string
	}{
		{"too few rows", strings.Join(rows(15), "\n"), "15 rows"},
		{"too many rows", strings.Join(rows(17), "\n"), "17 rows"},
		{"short row", strings.Join(append(rows(15), "0101"), "\n"), "width 4"},
		{"not binary", strings.Join(append(rows(15), "000000000000000x"), "\n"), "not binary"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePattern(tt.text)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	assert.Panics(t, func() { MustParsePattern("") })
}

func TestParseBits(t *testing.T) {
	tests := []struct {
		in    string
		want  uint64
		width int
	}{
		{"0000001111000000", 0b0000001111000000, 16},
		{"0b1010", 10, 4},
		{"0000_0011_1100_0000", 0b0000001111000000, 16},
		{"1", 1, 1},
	}
	for _, tt := range tests {
		v, w, err := ParseBits(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, v, tt.in)
		assert.Equal(t, tt.width, w, tt.in)
	}

	for _, bad := range []string{"", "0b", "012", strings.Repeat("1", 65)} {
		_, _, err := ParseBits(bad)
		assert.Error(t, err, bad)
	}

	assert.Equal(t, "0000001111000000", FormatBits(0b1111000000, 16))
}
