package solver

import (
	"context"
	"errors"

	"github.com/gabrielcarioca/nanogram-solver/internal/domain"
)

// search resolves a stalled grid by guessing. It picks one Unknown cell,
// tries Filled then Empty on an independent copy of the grid, re-runs
// propagation on each branch, and recurses on branches that stall again.
// Every recursion decides at least one more cell, so depth is bounded by
// the cell count. Returns ErrUnsolvable when every branch contradicts.
func (r *run) search(ctx context.Context, g *domain.Grid) (*domain.Grid, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	row, col, ok := pickCell(g)
	if !ok {
		// Complete grids are reported Solved or Contradiction by
		// propagation before search is entered.
		return nil, ErrUnsolvable
	}

	for _, v := range [2]domain.Cell{domain.Filled, domain.Empty} {
		r.guesses++
		branch := g.Clone()
		branch.Set(row, col, v)
		out, err := r.propagate(ctx, branch)
		if err != nil {
			return nil, err
		}
		switch out {
		case outcomeSolved:
			return branch, nil
		case outcomeStalled:
			solved, err := r.search(ctx, branch)
			if err == nil {
				return solved, nil
			}
			if !errors.Is(err, ErrUnsolvable) {
				return nil, err
			}
		}
		// Contradiction: discard the branch copy, try the other value.
	}
	return nil, ErrUnsolvable
}

// pickCell selects the first Unknown cell of the row with the fewest
// Unknown cells, a cheap stand-in for the fewest-candidates heuristic that
// keeps branching deterministic.
func pickCell(g *domain.Grid) (row, col int, ok bool) {
	bestRow, bestCount := -1, g.Size+1
	for r := 0; r < g.Size; r++ {
		n := 0
		for c := 0; c < g.Size; c++ {
			if g.At(r, c) == domain.Unknown {
				n++
			}
		}
		if n > 0 && n < bestCount {
			bestRow, bestCount = r, n
		}
	}
	if bestRow < 0 {
		return 0, 0, false
	}
	for c := 0; c < g.Size; c++ {
		if g.At(bestRow, c) == domain.Unknown {
			return bestRow, c, true
		}
	}
	return 0, 0, false
}
