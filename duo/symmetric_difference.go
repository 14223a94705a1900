package duo

import (
	"iter"

	"github.com/davidvella/mergeset/cursor"
	"github.com/davidvella/mergeset/set"
)

// SymmetricDifference is the symmetric difference of two sorted operands:
// every element present in exactly one of the two.
type SymmetricDifference[E any] struct {
	a, b []E
	cmp  func(E, E) int
}

// NewSymmetricDifference prepares the symmetric difference of a and b. Both
// operands must be ordered by cmp.
func NewSymmetricDifference[E any](a, b set.Set[E], cmp func(E, E) int) SymmetricDifference[E] {
	return SymmetricDifference[E]{a: a.Slice(), b: b.Slice(), cmp: cmp}
}

// All returns a lazy iterator over the symmetric difference in ascending
// order.
func (s SymmetricDifference[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		ca, cb := cursor.New(s.a), cursor.New(s.b)
		for {
			av, aok := ca.Peek()
			bv, bok := cb.Peek()
			switch {
			case !aok && !bok:
				return
			case !aok:
				if !yield(bv) {
					return
				}
				cb.Advance()
			case !bok:
				if !yield(av) {
					return
				}
				ca.Advance()
			default:
				switch c := s.cmp(av, bv); {
				case c < 0:
					if !yield(av) {
						return
					}
					ca.Advance()
				case c > 0:
					if !yield(bv) {
						return
					}
					cb.Advance()
				default:
					ca.Advance()
					cb.Advance()
				}
			}
		}
	}
}

// AppendTo appends the symmetric difference to dst in one pass and returns
// the extended slice.
func (s SymmetricDifference[E]) AppendTo(dst []E) []E {
	ca, cb := cursor.New(s.a), cursor.New(s.b)
	for !ca.Exhausted() && !cb.Exhausted() {
		av, _ := ca.Peek()
		bv, _ := cb.Peek()
		switch c := s.cmp(av, bv); {
		case c < 0:
			dst = append(dst, av)
			ca.Advance()
		case c > 0:
			dst = append(dst, bv)
			cb.Advance()
		default:
			ca.Advance()
			cb.Advance()
		}
	}
	dst = append(dst, ca.Rest()...)
	return append(dst, cb.Rest()...)
}

// Set materializes the symmetric difference as a set.
func (s SymmetricDifference[E]) Set() set.Set[E] {
	b := set.NewBuilder(s.cmp, len(s.a)+len(s.b))
	for e := range s.All() {
		b.Emit(e)
	}
	return b.Set()
}
