package duo

import (
	"iter"

	"github.com/davidvella/mergeset/cursor"
	"github.com/davidvella/mergeset/set"
)

// Intersection is the intersection of two sorted operands: every element
// present in both.
type Intersection[E any] struct {
	a, b []E
	cmp  func(E, E) int
}

// NewIntersection prepares the intersection of a and b. Both operands must
// be ordered by cmp.
func NewIntersection[E any](a, b set.Set[E], cmp func(E, E) int) Intersection[E] {
	return Intersection[E]{a: a.Slice(), b: b.Slice(), cmp: cmp}
}

// All returns a lazy iterator over the intersection in ascending order.
// Mismatching stretches are skipped with a galloping seek rather than one
// element at a time.
func (i Intersection[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		ca, cb := cursor.New(i.a), cursor.New(i.b)
		for {
			av, aok := ca.Peek()
			bv, bok := cb.Peek()
			if !aok || !bok {
				return
			}
			switch c := i.cmp(av, bv); {
			case c < 0:
				ca.SeekGE(bv, i.cmp)
			case c > 0:
				cb.SeekGE(av, i.cmp)
			default:
				if !yield(av) {
					return
				}
				ca.Advance()
				cb.Advance()
			}
		}
	}
}

// AppendTo appends the intersection to dst in one pass and returns the
// extended slice.
func (i Intersection[E]) AppendTo(dst []E) []E {
	for e := range i.All() {
		dst = append(dst, e)
	}
	return dst
}

// Set materializes the intersection as a set.
func (i Intersection[E]) Set() set.Set[E] {
	b := set.NewBuilder(i.cmp, min(len(i.a), len(i.b)))
	for e := range i.All() {
		b.Emit(e)
	}
	return b.Set()
}
