package line

import (
	"encoding/binary"
	"sync"
)

// Deduce results are a pure function of (length, runs, filled, empty), so
// they are memoized across propagation rounds and search branches. The
// cache is shared by concurrent per-line deduction goroutines.
type Cache struct {
	mu sync.Mutex
	m  map[cacheKey]cacheVal
}

type cacheKey struct {
	length int
	runs   string // run lengths packed as uvarints
	filled Pattern
	empty  Pattern
}

type cacheVal struct {
	mustFill  Pattern
	mustEmpty Pattern
	count     int
}

func NewCache() *Cache {
	return &Cache{m: make(map[cacheKey]cacheVal)}
}

// Deduce is Deduce with memoization.
func (c *Cache) Deduce(length int, runs []int, filled, empty Pattern) (mustFill, mustEmpty Pattern, count int) {
	k := cacheKey{length: length, runs: packRuns(runs), filled: filled, empty: empty}
	c.mu.Lock()
	v, hit := c.m[k]
	c.mu.Unlock()
	if hit {
		return v.mustFill, v.mustEmpty, v.count
	}
	mustFill, mustEmpty, count = Deduce(length, runs, filled, empty)
	c.mu.Lock()
	c.m[k] = cacheVal{mustFill: mustFill, mustEmpty: mustEmpty, count: count}
	c.mu.Unlock()
	return mustFill, mustEmpty, count
}

// Len reports the number of memoized line states.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.m)
}

// packRuns encodes the clue self-delimitingly so that no two distinct
// clues share a key, whatever their run lengths.
func packRuns(runs []int) string {
	b := make([]byte, 0, len(runs)*2)
	for _, r := range runs {
		b = binary.AppendUvarint(b, uint64(r))
	}
	return string(b)
}
