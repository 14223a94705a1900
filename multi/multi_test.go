package multi_test

import (
	"cmp"
	"iter"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidvella/mergeset/set"
)

func collect[E any](seq iter.Seq[E]) []E {
	out := []E{}
	for e := range seq {
		out = append(out, e)
	}
	return out
}

func operands(elems ...[]int) []set.Set[int] {
	out := make([]set.Set[int], len(elems))
	for i, e := range elems {
		out[i] = set.NewUnchecked(e)
	}
	return out
}

func compare(a, b int) int { return cmp.Compare(a, b) }

// span returns the integers in [lo, hi).
func span(lo, hi int) []int {
	out := make([]int, 0, hi-lo)
	for v := lo; v < hi; v++ {
		out = append(out, v)
	}
	return out
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(3, 5))
}

// randomOperands builds up to k sorted, deduplicated operands with random
// contents.
func randomOperands(r *rand.Rand, k int) []set.Set[int] {
	sets := make([]set.Set[int], r.IntN(k+1))
	for i := range sets {
		var elems []int
		next := r.IntN(5)
		for range r.IntN(30) {
			elems = append(elems, next)
			next += 1 + r.IntN(3)
		}
		sets[i] = set.NewUnchecked(elems)
	}
	return sets
}

func requireValid(t *testing.T, got []int) {
	t.Helper()
	require.NoError(t, set.Validate(got, compare))
}
