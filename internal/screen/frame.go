// Package screen holds captured frames and compares them against expected
// patterns.
//
// A frame is 16 rows of 16 packed bits. Rows are rendered most significant
// bit first, so bit 15 is the leftmost character:
//
//	0000000010000000  <- bit 7 set
package screen

import (
	"crypto/sha1"
	"fmt"
	"io"
	"strings"
)

// Frame dimensions.
const (
	Rows = 16
	Cols = 16
)

// Frame is one captured screen.
type Frame [Rows]uint16

// Render returns each row as a zero-padded base-2 string of width Cols.
func Render(f Frame) []string {
	lines := make([]string, Rows)
	for i, row := range f {
		lines[i] = fmt.Sprintf("%0*b", Cols, row)
	}
	return lines
}

// String renders the frame as newline-terminated rows.
func (f Frame) String() string {
	return strings.Join(Render(f), "\n") + "\n"
}

// Pixel reports whether the character at column x (0 = leftmost) of row y
// is lit. Out-of-range coordinates are never lit.
func (f Frame) Pixel(x, y int) bool {
	if x < 0 || x >= Cols || y < 0 || y >= Rows {
		return false
	}
	return f[y]>>uint(Cols-1-x)&1 == 1
}

// Digest returns the SHA-1 of the rendered frame, in hex.
// Equal frames have equal digests across runs.
func Digest(f Frame) string {
	return fmt.Sprintf("%x", sha1.Sum([]byte(f.String())))
}

// Print writes the rendered frame to w.
func Print(w io.Writer, f Frame) error {
	_, err := io.WriteString(w, f.String())
	return err
}
