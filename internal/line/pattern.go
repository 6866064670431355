// Package line implements the per-line deduction algorithms: possibility
// enumeration, intersection-based deduction, and overlap (core fill)
// arithmetic. A line is a row or a column; the two are treated uniformly.
package line

import (
	"strings"

	"github.com/gabrielcarioca/nanogram-solver/internal/domain"
)

// Pattern is one legal filling of a line, one bit per cell. Bit 0 is the
// leftmost cell of a row or the topmost cell of a column. Patterns are
// values; they are produced and discarded within a single deduction call.
type Pattern uint64

// Mask returns a Pattern with the low `length` bits set.
func Mask(length int) Pattern {
	if length >= 64 {
		return ^Pattern(0)
	}
	return Pattern(1)<<uint(length) - 1
}

// Masks converts a line of cells into known-filled and known-empty bitmasks.
func Masks(cells []domain.Cell) (filled, empty Pattern) {
	for i, c := range cells {
		switch c {
		case domain.Filled:
			filled |= Pattern(1) << uint(i)
		case domain.Empty:
			empty |= Pattern(1) << uint(i)
		}
	}
	return filled, empty
}

// String renders the low `length` bits as 0/1 text, leftmost cell first.
// Test helper quality; not used by the solving path.
func (p Pattern) String(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		if p&(Pattern(1)<<uint(i)) != 0 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
