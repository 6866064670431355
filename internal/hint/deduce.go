package hint

import (
	"context"
	"fmt"

	"github.com/gabrielcarioca/nanogram-solver/internal/domain"
	"github.com/gabrielcarioca/nanogram-solver/internal/line"
)

// Deduction implements a minimal Hinter: it reports the first cell that
// line deduction forces on the current grid.
type Deduction struct {
	cache *line.Cache
}

func NewDeduction() *Deduction { return &Deduction{cache: line.NewCache()} }

// Hint scans rows then columns for a forced cell. It returns false when no
// single-line deduction applies, meaning progress requires guessing.
func (h *Deduction) Hint(ctx context.Context, p *domain.Puzzle, g *domain.Grid) (domain.Hint, bool, error) {
	if err := p.Check(); err != nil {
		return domain.Hint{}, false, err
	}
	buf := make([]domain.Cell, p.Size)
	for _, axis := range [2]domain.Axis{domain.AxisRow, domain.AxisCol} {
		clues := p.Rows
		if axis == domain.AxisCol {
			clues = p.Cols
		}
		for i := 0; i < p.Size; i++ {
			ref := domain.LineRef{Axis: axis, Index: i}
			g.Line(ref, buf)
			filled, empty := line.Masks(buf)
			mustFill, mustEmpty, n := h.cache.Deduce(p.Size, clues[i], filled, empty)
			if n == 0 {
				continue // contradicted line; nothing sensible to suggest
			}
			for j := 0; j < p.Size; j++ {
				if buf[j] != domain.Unknown {
					continue
				}
				bit := line.Pattern(1) << uint(j)
				var v domain.Cell
				switch {
				case mustFill&bit != 0:
					v = domain.Filled
				case mustEmpty&bit != 0:
					v = domain.Empty
				default:
					continue
				}
				cell := domain.CellCoord{Row: i, Col: j}
				if axis == domain.AxisCol {
					cell = domain.CellCoord{Row: j, Col: i}
				}
				msg := fmt.Sprintf("%s %d: cell %d must be %s", axis, i, j, v)
				return domain.Hint{Message: msg, Cells: []domain.CellCoord{cell}, Value: v}, true, nil
			}
		}
	}
	return domain.Hint{}, false, nil
}
