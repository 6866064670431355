package domain

import (
	"errors"
	"fmt"
)

// MaxSize bounds the grid edge; line patterns are 64-bit masks.
const MaxSize = 64

// ErrInvalidPuzzle reports a malformed puzzle definition, as opposed to a
// well-formed puzzle that merely has no solution.
var ErrInvalidPuzzle = errors.New("invalid puzzle definition")

// Puzzle holds a square nonogram: the grid size and one ordered clue
// (list of run lengths) per row and per column. Treat it as read-only
// after construction; it is shared across search branches without copying.
type Puzzle struct {
	Size int     `json:"size"`
	Rows [][]int `json:"rows"`
	Cols [][]int `json:"cols"`
}

// NewPuzzle validates the definition and returns it. Validation covers
// malformed input only (sizes, counts, non-positive runs); a clue that
// cannot fit its line is left for the solver to report as unsolvable.
func NewPuzzle(size int, rows, cols [][]int) (*Puzzle, error) {
	p := &Puzzle{Size: size, Rows: rows, Cols: cols}
	if err := p.Check(); err != nil {
		return nil, err
	}
	return p, nil
}

// Check verifies the structural invariants of the definition.
func (p *Puzzle) Check() error {
	if p.Size < 1 || p.Size > MaxSize {
		return fmt.Errorf("%w: size %d out of range [1,%d]", ErrInvalidPuzzle, p.Size, MaxSize)
	}
	if len(p.Rows) != p.Size || len(p.Cols) != p.Size {
		return fmt.Errorf("%w: got %d row clues and %d column clues for size %d",
			ErrInvalidPuzzle, len(p.Rows), len(p.Cols), p.Size)
	}
	for i, runs := range p.Rows {
		for _, r := range runs {
			if r < 1 {
				return fmt.Errorf("%w: row %d has run length %d", ErrInvalidPuzzle, i, r)
			}
		}
	}
	for i, runs := range p.Cols {
		for _, r := range runs {
			if r < 1 {
				return fmt.Errorf("%w: col %d has run length %d", ErrInvalidPuzzle, i, r)
			}
		}
	}
	return nil
}

// CellCoord identifies a cell on the grid.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// LineRef identifies one row or column.
type LineRef struct {
	Axis  Axis `json:"axis"`
	Index int  `json:"index"`
}

// Hint describes a deduced next step for the UI.
type Hint struct {
	Message string      `json:"message,omitempty"`
	Cells   []CellCoord `json:"cells,omitempty"`
	Value   Cell        `json:"value,omitempty"`
}

// SavedPuzzle is a persisted puzzle definition with metadata.
type SavedPuzzle struct {
	ID        string `json:"id,omitempty"`
	Puzzle    Puzzle `json:"puzzle"`
	CreatedAt int64  `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Size      int    `json:"size"`
	CreatedAt int64  `json:"createdAt"`
}
