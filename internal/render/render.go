// Package render turns grids into display text. It carries no solving
// logic; in-progress grids render their Unknown cells too.
package render

import (
	"strings"

	"github.com/gabrielcarioca/nanogram-solver/internal/domain"
)

// Symbols maps the three cell states to display runes.
type Symbols struct {
	Filled  rune
	Empty   rune
	Unknown rune
}

// DefaultSymbols matches the traditional terminal rendering.
var DefaultSymbols = Symbols{Filled: '█', Empty: ' ', Unknown: '·'}

// Text renders one rune per cell, one text line per grid row.
type Text struct {
	Symbols Symbols
}

func New() *Text { return &Text{Symbols: DefaultSymbols} }

func NewWithSymbols(s Symbols) *Text { return &Text{Symbols: s} }

func (t *Text) Render(g *domain.Grid) string {
	var b strings.Builder
	b.Grow(g.Size * (g.Size + 1))
	for r := 0; r < g.Size; r++ {
		for c := 0; c < g.Size; c++ {
			switch g.At(r, c) {
			case domain.Filled:
				b.WriteRune(t.Symbols.Filled)
			case domain.Empty:
				b.WriteRune(t.Symbols.Empty)
			default:
				b.WriteRune(t.Symbols.Unknown)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
