package duo_test

import (
	"cmp"
	"iter"

	"github.com/davidvella/mergeset/set"
)

// collect drains a lazy iterator into a non-nil slice.
func collect[E any](seq iter.Seq[E]) []E {
	out := []E{}
	for e := range seq {
		out = append(out, e)
	}
	return out
}

func ints(elems ...int) set.Set[int] {
	return set.NewUnchecked(elems)
}

func compare(a, b int) int { return cmp.Compare(a, b) }
