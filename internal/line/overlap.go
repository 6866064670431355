package line

// Overlap computes the cells forced filled by clue slack arithmetic alone,
// ignoring any current cell knowledge. With req = sum(runs)+len(runs)-1 and
// slack = length-req, run i is pinned over the span between its latest
// start and its earliest end whenever runs[i] > slack. The result is a
// sound under-approximation of the possibility-based mustFill set and
// never names forced-empty cells.
//
// ok is false when the clue cannot fit the line at all (negative slack);
// the caller must treat that as a structural contradiction.
func Overlap(length int, runs []int) (forced Pattern, ok bool) {
	if len(runs) == 0 {
		return 0, true
	}
	k := len(runs)
	pref := make([]int, k+1)
	for i, r := range runs {
		pref[i+1] = pref[i] + r
	}
	slack := length - (pref[k] + k - 1)
	if slack < 0 {
		return 0, false
	}
	for i, r := range runs {
		if r <= slack {
			continue
		}
		earliest := pref[i] + i                              // packed left
		latest := length - ((pref[k] - pref[i]) + (k - 1 - i)) // packed right
		for j := latest; j <= earliest+r-1; j++ {
			forced |= Pattern(1) << uint(j)
		}
	}
	return forced, true
}
