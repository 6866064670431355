package line

// Generate enumerates every legal Pattern for a line of the given length:
// the runs appear in order, separated by at least one empty cell, no run
// covers a known-empty cell, and every known-filled cell is covered.
// An empty runs slice describes a fully empty line. A nil result means the
// line has no legal filling under the given knowledge.
//
// Placement walks runs left to right over an explicit frame stack rather
// than recursing, so stack depth is bounded by the run count regardless of
// line length.
func Generate(length int, runs []int, filled, empty Pattern) []Pattern {
	if len(runs) == 0 {
		if filled != 0 {
			return nil
		}
		return []Pattern{0}
	}

	// tail[i] = minimum span of runs[i:] including one-cell gaps.
	tail := make([]int, len(runs)+1)
	for i := len(runs) - 1; i >= 0; i-- {
		tail[i] = tail[i+1] + runs[i]
		if i < len(runs)-1 {
			tail[i]++
		}
	}
	if tail[0] > length {
		return nil
	}

	type frame struct {
		run int     // run being placed
		pos int     // candidate start offset for this run
		acc Pattern // cells covered by runs already placed
	}

	var out []Pattern
	stack := make([]frame, 1, len(runs)+length)
	stack[0] = frame{run: 0, pos: 0}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.pos > length-tail[f.run] {
			continue
		}
		// Sliding this run right would leave cell f.pos permanently empty,
		// so stop sliding once f.pos is known filled.
		if filled&(Pattern(1)<<uint(f.pos)) == 0 {
			stack = append(stack, frame{run: f.run, pos: f.pos + 1, acc: f.acc})
		}

		r := runs[f.run]
		block := (Pattern(1)<<uint(r) - 1) << uint(f.pos)
		if block&empty != 0 {
			continue
		}
		acc := f.acc | block
		end := f.pos + r // first cell after the block

		if f.run == len(runs)-1 {
			// All cells right of the last run stay empty.
			if filled&^acc == 0 {
				out = append(out, acc)
			}
			continue
		}
		// The separator cell and any cell already left behind must not be
		// required filled.
		if filled&^acc&(Pattern(1)<<uint(end+1)-1) != 0 {
			continue
		}
		stack = append(stack, frame{run: f.run + 1, pos: end + 1, acc: acc})
	}
	return out
}

// Deduce intersects the possibility space of a line: mustFill holds the
// cells set in every legal pattern, mustEmpty the cells set in none, and
// count the size of the possibility set. count == 0 signals that the line
// has no legal filling and the caller must treat it as a contradiction.
func Deduce(length int, runs []int, filled, empty Pattern) (mustFill, mustEmpty Pattern, count int) {
	patterns := Generate(length, runs, filled, empty)
	if len(patterns) == 0 {
		return 0, 0, 0
	}
	and := Mask(length)
	or := Pattern(0)
	for _, p := range patterns {
		and &= p
		or |= p
	}
	return and, ^or & Mask(length), len(patterns)
}
