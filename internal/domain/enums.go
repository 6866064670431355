package domain

// Cell is the tri-state value of one grid cell.
type Cell int8

const (
	Unknown Cell = iota // not yet decided
	Empty               // decided empty
	Filled              // decided filled
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Filled:
		return "filled"
	default:
		return "unknown"
	}
}

// Axis distinguishes row lines from column lines.
type Axis int8

const (
	AxisRow Axis = iota
	AxisCol
)

func (a Axis) String() string {
	if a == AxisCol {
		return "col"
	}
	return "row"
}
