package screen

import (
	"errors"
	"fmt"
	"strings"
)

// MismatchError reports a captured frame that differs from the expected one.
// Error() renders both frames side by side for visual diffing.
type MismatchError struct {
	Expected []string
	Actual   []string
	Rows     []int // indices of the differing rows
}

// Error implements the error interface.
func (e *MismatchError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "screen mismatch: %d of %d rows differ\n", len(e.Rows), Rows)
	fmt.Fprintf(&buf, "    %-*s  %s\n", Cols, "expected", "actual")

	differs := make(map[int]bool, len(e.Rows))
	for _, r := range e.Rows {
		differs[r] = true
	}
	for i := 0; i < Rows; i++ {
		marker := " "
		if differs[i] {
			marker = "!"
		}
		fmt.Fprintf(&buf, "%s%2d %-*s  %s\n", marker, i, Cols, cell(e.Expected, i), cell(e.Actual, i))
	}
	return buf.String()
}

// cell returns rows[i], or "" past the end of a short block.
func cell(rows []string, i int) string {
	if i < len(rows) {
		return rows[i]
	}
	return ""
}

// IsMismatch reports whether err is or wraps a *MismatchError.
func IsMismatch(err error) bool {
	var me *MismatchError
	return errors.As(err, &me)
}

// AssertEqual compares every row of the frame against the expected pattern
// and returns a *MismatchError listing all differing rows.
func AssertEqual(expected Pattern, f Frame) error {
	actual := Render(f)

	var rows []int
	for i := 0; i < Rows; i++ {
		if i >= len(expected) || expected[i] != actual[i] {
			rows = append(rows, i)
		}
	}
	if len(rows) == 0 && len(expected) == Rows {
		return nil
	}

	return &MismatchError{
		Expected: append([]string(nil), expected...),
		Actual:   actual,
		Rows:     rows,
	}
}
