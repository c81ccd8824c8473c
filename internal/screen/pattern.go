package screen

import (
	"fmt"
	"strconv"
	"strings"
)

// Pattern is an expected frame as literal binary rows.
type Pattern []string

// ParsePattern reads a literal block of Rows binary rows. Common leading
// indentation and blank lines around the block are ignored.
func ParsePattern(text string) (Pattern, error) {
	var rows Pattern
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}

	if len(rows) != Rows {
		return nil, fmt.Errorf("pattern has %d rows, want %d", len(rows), Rows)
	}
	for i, row := range rows {
		if len(row) != Cols {
			return nil, fmt.Errorf("pattern row %d: width %d, want %d", i, len(row), Cols)
		}
		if strings.Trim(row, "01") != "" {
			return nil, fmt.Errorf("pattern row %d: %q is not binary", i, row)
		}
	}
	return rows, nil
}

// MustParsePattern is ParsePattern for literals known to be valid.
func MustParsePattern(text string) Pattern {
	p, err := ParsePattern(text)
	if err != nil {
		panic(err)
	}
	return p
}

// Frame converts the pattern to a frame.
func (p Pattern) Frame() Frame {
	var f Frame
	for i, row := range p {
		if i >= Rows {
			break
		}
		v, _ := strconv.ParseUint(row, 2, Cols)
		f[i] = uint16(v)
	}
	return f
}

// String renders the pattern as newline-terminated rows.
func (p Pattern) String() string {
	return strings.Join(p, "\n") + "\n"
}

// ParseBits parses a fixed-width, MSB-first binary literal such as
// "0000001111000000". An optional 0b prefix and _ separators are accepted.
// It returns the value and the literal's width in bits.
func ParseBits(s string) (uint64, int, error) {
	digits := strings.ReplaceAll(strings.TrimPrefix(s, "0b"), "_", "")
	if digits == "" || len(digits) > 64 {
		return 0, 0, fmt.Errorf("invalid binary literal %q", s)
	}
	v, err := strconv.ParseUint(digits, 2, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid binary literal %q: %w", s, err)
	}
	return v, len(digits), nil
}

// FormatBits renders v as a zero-padded binary literal of the given width.
func FormatBits(v uint64, width int) string {
	return fmt.Sprintf("%0*b", width, v)
}
