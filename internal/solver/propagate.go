package solver

import (
	"context"
	"sync"

	"github.com/gabrielcarioca/nanogram-solver/internal/domain"
	"github.com/gabrielcarioca/nanogram-solver/internal/line"
	"github.com/gabrielcarioca/nanogram-solver/internal/validator"
)

// outcome is the terminal state of one propagation fixed-point run.
type outcome int

const (
	outcomeSolved        outcome = iota // complete and every clue satisfied
	outcomeStalled                      // fixed point, incomplete, no contradiction
	outcomeContradiction                // some line has no legal filling
)

// propagate iterates deduction rounds until the grid is solved, a line
// contradicts, or a round produces no change. Each round applies the
// clue-only overlap masks to every row and column, then the
// possibility-intersection deduction to every row and column.
func (r *run) propagate(ctx context.Context, g *domain.Grid) (outcome, error) {
	if r.infeasible {
		return outcomeContradiction, nil
	}
	for {
		if err := ctx.Err(); err != nil {
			return outcomeStalled, err
		}
		changed, ok := r.round(g)
		if !ok {
			return outcomeContradiction, nil
		}
		if validator.Solved(r.p, g) {
			return outcomeSolved, nil
		}
		if !changed {
			return outcomeStalled, nil
		}
	}
}

// round runs one deduction round: the clue-only overlap masks on every
// row and column, then the possibility intersection on every row and
// column. ok is false when some line has no legal filling.
func (r *run) round(g *domain.Grid) (changed, ok bool) {
	r.rounds++

	for i := 0; i < r.p.Size; i++ {
		if r.applyForced(g, domain.LineRef{Axis: domain.AxisRow, Index: i}, r.rowForced[i]) {
			changed = true
		}
		if r.applyForced(g, domain.LineRef{Axis: domain.AxisCol, Index: i}, r.colForced[i]) {
			changed = true
		}
	}

	ok, ch := r.possibilityPass(g, domain.AxisRow)
	if !ok {
		return changed, false
	}
	changed = changed || ch
	ok, ch = r.possibilityPass(g, domain.AxisCol)
	if !ok {
		return changed, false
	}
	return changed || ch, true
}

// applyForced writes forced Filled marks onto cells that are still Unknown.
// A forced cell already marked Empty is left alone; the possibility pass
// will find that line's possibility set empty and report the contradiction.
func (r *run) applyForced(g *domain.Grid, ref domain.LineRef, forced line.Pattern) bool {
	changed := false
	for i := 0; i < r.p.Size; i++ {
		if forced&(line.Pattern(1)<<uint(i)) == 0 {
			continue
		}
		if g.LineAt(ref, i) == domain.Unknown {
			g.SetLine(ref, i, domain.Filled)
			changed = true
		}
	}
	return changed
}

// deduction is the result of one line's possibility intersection.
type deduction struct {
	mustFill  line.Pattern
	mustEmpty line.Pattern
	count     int
}

// possibilityPass deduces every line of one axis concurrently, then merges
// the results into the grid serially. Lines of one axis touch disjoint
// cells only through reads, so the fan-out needs no locking beyond the
// shared possibility cache. ok is false when some line contradicts.
func (r *run) possibilityPass(g *domain.Grid, axis domain.Axis) (ok, changed bool) {
	size := r.p.Size
	clues := r.p.Rows
	if axis == domain.AxisCol {
		clues = r.p.Cols
	}

	results := make([]deduction, size)
	var wg sync.WaitGroup
	for i := 0; i < size; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			buf := make([]domain.Cell, size)
			g.Line(domain.LineRef{Axis: axis, Index: i}, buf)
			filled, empty := line.Masks(buf)
			mf, me, n := r.cache.Deduce(size, clues[i], filled, empty)
			results[i] = deduction{mustFill: mf, mustEmpty: me, count: n}
		}(i)
	}
	wg.Wait()

	for i, d := range results {
		r.nodes += d.count
		if d.count == 0 {
			return false, changed
		}
		ref := domain.LineRef{Axis: axis, Index: i}
		for j := 0; j < size; j++ {
			if g.LineAt(ref, j) != domain.Unknown {
				continue
			}
			bit := line.Pattern(1) << uint(j)
			switch {
			case d.mustFill&bit != 0:
				g.SetLine(ref, j, domain.Filled)
				changed = true
			case d.mustEmpty&bit != 0:
				g.SetLine(ref, j, domain.Empty)
				changed = true
			}
		}
	}
	return true, changed
}
