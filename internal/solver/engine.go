package solver

import (
	"context"
	"errors"
	"time"

	"github.com/gabrielcarioca/nanogram-solver/internal/domain"
	"github.com/gabrielcarioca/nanogram-solver/internal/line"
	"github.com/gabrielcarioca/nanogram-solver/internal/ports"
)

// ErrUnsolvable reports that no cell assignment satisfies all clues.
var ErrUnsolvable = errors.New("puzzle is unsolvable")

// Engine solves puzzles by line-by-line constraint propagation to a fixed
// point, falling back to branch-and-bound guessing when propagation stalls.
type Engine struct {
	cache *line.Cache
}

func NewEngine() *Engine { return &Engine{cache: line.NewCache()} }

// Solve returns a fully decided grid satisfying every clue, or
// ErrUnsolvable. It never returns a partially decided grid.
func (e *Engine) Solve(ctx context.Context, p *domain.Puzzle) (*domain.Grid, ports.Stats, error) {
	start := time.Now()
	if err := p.Check(); err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}

	r := newRun(e.cache, p)
	solved, err := r.solve(ctx, domain.NewGrid(p.Size))
	st := ports.Stats{
		Nodes:    r.nodes,
		Rounds:   r.rounds,
		Guesses:  r.guesses,
		Duration: time.Since(start),
	}
	if err != nil {
		return nil, st, err
	}
	return solved, st, nil
}

// run carries the per-solve state: the read-only puzzle, the possibility
// cache, counters, and the clue-only overlap masks shared by every branch.
type run struct {
	p     *domain.Puzzle
	cache *line.Cache

	// Overlap deduction depends only on the clue, so the forced masks are
	// computed once and re-applied each round.
	rowForced  []line.Pattern
	colForced  []line.Pattern
	infeasible bool // some clue cannot fit its line at all

	nodes   int
	rounds  int
	guesses int
}

func newRun(cache *line.Cache, p *domain.Puzzle) *run {
	r := &run{
		p:         p,
		cache:     cache,
		rowForced: make([]line.Pattern, p.Size),
		colForced: make([]line.Pattern, p.Size),
	}
	for i := 0; i < p.Size; i++ {
		forced, ok := line.Overlap(p.Size, p.Rows[i])
		if !ok {
			r.infeasible = true
			return r
		}
		r.rowForced[i] = forced
		if forced, ok = line.Overlap(p.Size, p.Cols[i]); !ok {
			r.infeasible = true
			return r
		}
		r.colForced[i] = forced
	}
	return r
}

func (r *run) solve(ctx context.Context, g *domain.Grid) (*domain.Grid, error) {
	out, err := r.propagate(ctx, g)
	if err != nil {
		return nil, err
	}
	switch out {
	case outcomeSolved:
		return g, nil
	case outcomeContradiction:
		return nil, ErrUnsolvable
	}
	return r.search(ctx, g)
}
