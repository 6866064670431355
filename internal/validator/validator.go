package validator

import (
	"context"

	"github.com/gabrielcarioca/nanogram-solver/internal/domain"
)

// FastValidator checks grids against clues by extracting run lengths.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// LineComplete reports whether the line has no Unknown cells.
func LineComplete(cells []domain.Cell) bool {
	for _, c := range cells {
		if c == domain.Unknown {
			return false
		}
	}
	return true
}

// LineRuns converts a fully-known line into its run lengths.
// [Empty,Filled,Filled,Empty,Filled] -> [2,1].
func LineRuns(cells []domain.Cell) []int {
	runs := []int{}
	n := 0
	for _, c := range cells {
		if c == domain.Filled {
			n++
		} else if n > 0 {
			runs = append(runs, n)
			n = 0
		}
	}
	if n > 0 {
		runs = append(runs, n)
	}
	return runs
}

// LineSatisfies reports whether the line is fully known and its filled
// runs, read in order, equal the clue exactly.
func LineSatisfies(cells []domain.Cell, runs []int) bool {
	if !LineComplete(cells) {
		return false
	}
	got := LineRuns(cells)
	if len(got) != len(runs) {
		return false
	}
	for i := range got {
		if got[i] != runs[i] {
			return false
		}
	}
	return true
}

// GridComplete reports whether every cell is decided.
func GridComplete(g *domain.Grid) bool {
	for _, c := range g.Cells {
		if c == domain.Unknown {
			return false
		}
	}
	return true
}

// Solved reports whether the grid is complete and every row and column
// satisfies its clue.
func Solved(p *domain.Puzzle, g *domain.Grid) bool {
	if g.Size != p.Size || !GridComplete(g) {
		return false
	}
	buf := make([]domain.Cell, p.Size)
	for r := 0; r < p.Size; r++ {
		g.Row(r, buf)
		if !LineSatisfies(buf, p.Rows[r]) {
			return false
		}
	}
	for c := 0; c < p.Size; c++ {
		g.Col(c, buf)
		if !LineSatisfies(buf, p.Cols[c]) {
			return false
		}
	}
	return true
}

// Solved implements ports.Validator.
func (v *FastValidator) Solved(p *domain.Puzzle, g *domain.Grid) bool {
	return Solved(p, g)
}

// Validate reports the fully-known lines that fail their clue. Lines that
// still contain Unknown cells are not counted as failures.
func (v *FastValidator) Validate(ctx context.Context, p *domain.Puzzle, g *domain.Grid) (bool, []domain.LineRef, error) {
	conflicts := make([]domain.LineRef, 0, 4)
	buf := make([]domain.Cell, p.Size)
	for r := 0; r < p.Size; r++ {
		g.Row(r, buf)
		if LineComplete(buf) && !LineSatisfies(buf, p.Rows[r]) {
			conflicts = append(conflicts, domain.LineRef{Axis: domain.AxisRow, Index: r})
		}
	}
	for c := 0; c < p.Size; c++ {
		g.Col(c, buf)
		if LineComplete(buf) && !LineSatisfies(buf, p.Cols[c]) {
			conflicts = append(conflicts, domain.LineRef{Axis: domain.AxisCol, Index: c})
		}
	}
	return len(conflicts) == 0, conflicts, nil
}
