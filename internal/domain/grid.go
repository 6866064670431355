package domain

// Grid is a mutable size×size working state. Each solve (and each search
// branch) owns exactly one Grid; branches clone before mutating, so no
// Grid is ever shared between two logical branches.
type Grid struct {
	Size  int    `json:"size"`
	Cells []Cell `json:"cells"` // row-major, len == Size*Size
}

// NewGrid returns an all-Unknown grid.
func NewGrid(size int) *Grid {
	return &Grid{Size: size, Cells: make([]Cell, size*size)}
}

func (g *Grid) At(r, c int) Cell     { return g.Cells[r*g.Size+c] }
func (g *Grid) Set(r, c int, v Cell) { g.Cells[r*g.Size+c] = v }

// Clone returns an independent copy for a search branch.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{Size: g.Size, Cells: cells}
}

// Row copies row r into dst, which must have length Size.
func (g *Grid) Row(r int, dst []Cell) {
	copy(dst, g.Cells[r*g.Size:(r+1)*g.Size])
}

// Col copies column c into dst, which must have length Size.
func (g *Grid) Col(c int, dst []Cell) {
	for r := 0; r < g.Size; r++ {
		dst[r] = g.Cells[r*g.Size+c]
	}
}

// Line copies the referenced row or column into dst.
func (g *Grid) Line(ref LineRef, dst []Cell) {
	if ref.Axis == AxisCol {
		g.Col(ref.Index, dst)
	} else {
		g.Row(ref.Index, dst)
	}
}

// LineAt reads the cell at offset i of the referenced line.
func (g *Grid) LineAt(ref LineRef, i int) Cell {
	if ref.Axis == AxisCol {
		return g.At(i, ref.Index)
	}
	return g.At(ref.Index, i)
}

// SetLine writes value v at offset i of the referenced line.
func (g *Grid) SetLine(ref LineRef, i int, v Cell) {
	if ref.Axis == AxisCol {
		g.Set(i, ref.Index, v)
	} else {
		g.Set(ref.Index, i, v)
	}
}

// Unknowns counts undecided cells.
func (g *Grid) Unknowns() int {
	n := 0
	for _, c := range g.Cells {
		if c == Unknown {
			n++
		}
	}
	return n
}
