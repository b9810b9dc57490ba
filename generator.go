package wirecc

import (
	"math/rand"
	"slices"
)

// CombinationGenerator lazily yields every k-element combination of a
// fixed pool, one per call to Next. The sequence is finite and can be
// restarted with Reset. It walks lexicographic permutations of a
// selection bitmap over the pool, so each combination preserves pool
// order internally.
type CombinationGenerator[T any] struct {
	pool []T
	k    int
	bmap []bool
	more bool
}

// NewCombinationGenerator creates a generator over pool yielding
// combinations of k elements.
func NewCombinationGenerator[T any](pool []T, k int) *CombinationGenerator[T] {
	return &CombinationGenerator[T]{pool: pool, k: k}
}

// HasNext reports whether another combination is available. A pool
// smaller than k yields nothing.
func (g *CombinationGenerator[T]) HasNext() bool {
	return g.more || (g.bmap == nil && g.k >= 0 && len(g.pool) >= g.k)
}

// Next returns the next combination, or nil when the sequence is
// exhausted.
func (g *CombinationGenerator[T]) Next() []T {
	if !g.HasNext() {
		return nil
	}

	// The first selection picks the trailing k pool slots; that bitmap
	// is the lexicographically smallest arrangement, so every later
	// permutation is reachable from it.
	if g.bmap == nil {
		g.bmap = make([]bool, len(g.pool))
		for i := len(g.pool) - g.k; i < len(g.pool); i++ {
			g.bmap[i] = true
		}
	}

	ret := make([]T, 0, g.k)
	for i, selected := range g.bmap {
		if selected {
			ret = append(ret, g.pool[i])
		}
	}

	g.more = nextPermutation(g.bmap)
	return ret
}

// Reset restarts the sequence from the first combination.
func (g *CombinationGenerator[T]) Reset() {
	g.bmap = nil
	g.more = false
}

// nextPermutation rearranges s into its next lexicographic permutation
// (false ordering before true), reporting false when s was already the
// last one.
func nextPermutation(s []bool) bool {
	i := len(s) - 2
	for i >= 0 && (s[i] || !s[i+1]) {
		i--
	}
	if i < 0 {
		slices.Reverse(s)
		return false
	}

	j := len(s) - 1
	for !s[j] {
		j--
	}
	s[i], s[j] = s[j], s[i]
	slices.Reverse(s[i+1:])
	return true
}

// RandomGenerator draws keys uniformly at random from a fixed pool
// without replacement. Once a full pass over the pool is exhausted the
// next draw starts a fresh pass.
type RandomGenerator[K comparable, V any] struct {
	pool  map[K]V
	elems []K
}

// NewRandomGenerator creates a generator drawing keys from pool.
func NewRandomGenerator[K comparable, V any](pool map[K]V) *RandomGenerator[K, V] {
	return &RandomGenerator[K, V]{pool: pool}
}

// Reset discards the in-progress pass; the next call to Next draws
// from the full pool again.
func (g *RandomGenerator[K, V]) Reset() {
	g.elems = nil
}

// Next draws a key not yet returned in the current pass. It reports
// false only when the pool is empty.
func (g *RandomGenerator[K, V]) Next() (K, bool) {
	if len(g.elems) == 0 {
		if len(g.pool) == 0 {
			var zero K
			return zero, false
		}
		g.elems = make([]K, 0, len(g.pool))
		for k := range g.pool {
			g.elems = append(g.elems, k)
		}
	}

	i := rand.Intn(len(g.elems))
	key := g.elems[i]
	g.elems[i] = g.elems[len(g.elems)-1]
	g.elems = g.elems[:len(g.elems)-1]
	return key, true
}
