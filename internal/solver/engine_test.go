package solver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gabrielcarioca/nanogram-solver/internal/domain"
	"github.com/gabrielcarioca/nanogram-solver/internal/validator"
)

// puzzleFromPicture derives a puzzle and its expected grid from rows of
// '#' (filled) and '.' (empty) characters.
func puzzleFromPicture(t *testing.T, picture []string) (*domain.Puzzle, *domain.Grid) {
	t.Helper()
	size := len(picture)
	g := domain.NewGrid(size)
	for r, row := range picture {
		if len(row) != size {
			t.Fatalf("picture row %d has length %d, want %d", r, len(row), size)
		}
		for c, ch := range row {
			if ch == '#' {
				g.Set(r, c, domain.Filled)
			} else {
				g.Set(r, c, domain.Empty)
			}
		}
	}
	rows := make([][]int, size)
	cols := make([][]int, size)
	buf := make([]domain.Cell, size)
	for i := 0; i < size; i++ {
		g.Row(i, buf)
		rows[i] = validator.LineRuns(buf)
		g.Col(i, buf)
		cols[i] = validator.LineRuns(buf)
	}
	p, err := domain.NewPuzzle(size, rows, cols)
	if err != nil {
		t.Fatalf("NewPuzzle: %v", err)
	}
	return p, g
}

func TestSolveByPropagationOnly(t *testing.T) {
	p, want := puzzleFromPicture(t, []string{
		"#####",
		"#...#",
		"#.#.#",
		"#...#",
		"#####",
	})
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	g, st, err := NewEngine().Solve(ctx, p)
	if err != nil {
		t.Fatalf("Solve failed: %v (nodes=%d rounds=%d)", err, st.Nodes, st.Rounds)
	}
	if st.Guesses != 0 {
		t.Fatalf("propagation-only puzzle needed %d guesses", st.Guesses)
	}
	for i, c := range g.Cells {
		if c != want.Cells[i] {
			t.Fatalf("cell %d = %v, want %v", i, c, want.Cells[i])
		}
	}
	if !validator.Solved(p, g) {
		t.Fatal("result does not satisfy the clues")
	}
	t.Logf("solved in %v, nodes=%d rounds=%d", st.Duration, st.Nodes, st.Rounds)
}

func TestSolveRequiresSearch(t *testing.T) {
	// Every line of a 2x2 grid with clue [1] admits two fillings, so
	// propagation decides nothing; search must finish it.
	p, err := domain.NewPuzzle(2,
		[][]int{{1}, {1}},
		[][]int{{1}, {1}},
	)
	if err != nil {
		t.Fatalf("NewPuzzle: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	g, st, err := NewEngine().Solve(ctx, p)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if st.Guesses == 0 {
		t.Fatal("expected at least one guess")
	}
	if !validator.Solved(p, g) {
		t.Fatal("result does not satisfy the clues")
	}
	t.Logf("solved with %d guesses, %d rounds", st.Guesses, st.Rounds)
}

func TestSolveUnsolvable(t *testing.T) {
	// Rows force every cell filled; columns demand single cells.
	p, err := domain.NewPuzzle(2,
		[][]int{{2}, {2}},
		[][]int{{1}, {1}},
	)
	if err != nil {
		t.Fatalf("NewPuzzle: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	g, _, err := NewEngine().Solve(ctx, p)
	if !errors.Is(err, ErrUnsolvable) {
		t.Fatalf("got (%v, %v), want ErrUnsolvable", g, err)
	}
	if g != nil {
		t.Fatal("unsolvable puzzle must not return a grid")
	}
}

func TestSolveInfeasibleClue(t *testing.T) {
	// Runs [2,2] need 5 cells; the line has 3.
	p, err := domain.NewPuzzle(3,
		[][]int{{2, 2}, {1}, {1}},
		[][]int{{1}, {1}, {1}},
	)
	if err != nil {
		t.Fatalf("NewPuzzle: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if _, _, err := NewEngine().Solve(ctx, p); !errors.Is(err, ErrUnsolvable) {
		t.Fatalf("got %v, want ErrUnsolvable", err)
	}
}

func TestSolveRejectsMalformedPuzzle(t *testing.T) {
	ctx := context.Background()
	bad := &domain.Puzzle{Size: 3, Rows: [][]int{{1}}, Cols: [][]int{{1}, {1}, {1}}}
	if _, _, err := NewEngine().Solve(ctx, bad); !errors.Is(err, domain.ErrInvalidPuzzle) {
		t.Fatalf("got %v, want ErrInvalidPuzzle", err)
	}
}

func TestSolveHonorsCancellation(t *testing.T) {
	p, _ := puzzleFromPicture(t, []string{
		"#####",
		"#...#",
		"#.#.#",
		"#...#",
		"#####",
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := NewEngine().Solve(ctx, p); !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
}

func TestSolveLargerPicture(t *testing.T) {
	p, _ := puzzleFromPicture(t, []string{
		"..........",
		".##....##.",
		"####..####",
		"##########",
		".########.",
		"..######..",
		"...####...",
		"....##....",
		"..........",
		"....##....",
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	g, st, err := NewEngine().Solve(ctx, p)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if !validator.Solved(p, g) {
		t.Fatal("result does not satisfy the clues")
	}
	t.Logf("solved in %v, nodes=%d rounds=%d guesses=%d", st.Duration, st.Nodes, st.Rounds, st.Guesses)
}

// Re-running propagation at a fixed point must not change the grid, and
// the set of decided cells must never shrink between rounds.
func TestPropagateFixedPointIdempotent(t *testing.T) {
	p, err := domain.NewPuzzle(2,
		[][]int{{1}, {1}},
		[][]int{{1}, {1}},
	)
	if err != nil {
		t.Fatalf("NewPuzzle: %v", err)
	}
	e := NewEngine()
	r := newRun(e.cache, p)
	g := domain.NewGrid(p.Size)
	ctx := context.Background()

	out, perr := r.propagate(ctx, g)
	if perr != nil || out != outcomeStalled {
		t.Fatalf("got (%v,%v), want a stalled fixed point", out, perr)
	}
	before := g.Unknowns()
	out, perr = r.propagate(ctx, g)
	if perr != nil || out != outcomeStalled {
		t.Fatalf("second run: got (%v,%v), want a stalled fixed point", out, perr)
	}
	if after := g.Unknowns(); after != before {
		t.Fatalf("unknowns changed at fixed point: %d -> %d", before, after)
	}
}

// The set of decided cells must never shrink from one round to the next.
func TestPropagateMonotonePerRound(t *testing.T) {
	p, _ := puzzleFromPicture(t, []string{
		"#####",
		"#...#",
		"#.#.#",
		"#...#",
		"#####",
	})
	e := NewEngine()
	r := newRun(e.cache, p)
	g := domain.NewGrid(p.Size)

	prev := g.Unknowns()
	for i := 0; i < p.Size*p.Size; i++ {
		changed, ok := r.round(g)
		if !ok {
			t.Fatalf("round %d: unexpected contradiction", i)
		}
		now := g.Unknowns()
		if now > prev {
			t.Fatalf("round %d: decided cells shrank, %d unknowns -> %d", i, prev, now)
		}
		if !changed {
			if now != prev {
				t.Fatalf("round %d reported no change but unknowns went %d -> %d", i, prev, now)
			}
			break
		}
		prev = now
	}
	if !validator.Solved(p, g) {
		t.Fatal("fixed point is not the solution for a propagation-only puzzle")
	}
}
