package ports

import (
	"context"
	"time"

	"github.com/gabrielcarioca/nanogram-solver/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int // line patterns enumerated
	Rounds   int // propagation rounds executed
	Guesses  int // search branches tried
	Duration time.Duration
}

// Solver produces a complete grid for a puzzle, or reports it unsolvable.
// It never returns a partially decided grid.
type Solver interface {
	Solve(ctx context.Context, p *domain.Puzzle) (*domain.Grid, Stats, error)
}

// Validator checks grids against clues. Validate reports fully-known lines
// that fail their clue; lines with Unknown cells are not counted as failures.
type Validator interface {
	Validate(ctx context.Context, p *domain.Puzzle, g *domain.Grid) (ok bool, conflicts []domain.LineRef, err error)
	Solved(p *domain.Puzzle, g *domain.Grid) bool
}

// Hinter returns the next cell forced by line deduction on the current grid.
type Hinter interface {
	Hint(ctx context.Context, p *domain.Puzzle, g *domain.Grid) (domain.Hint, bool, error)
}

// Renderer turns a grid into display text; it carries no solving logic.
type Renderer interface {
	Render(g *domain.Grid) string
}

// Storage persists and retrieves puzzle definitions as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.SavedPuzzle) error
	Load(ctx context.Context, id string) (*domain.SavedPuzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
