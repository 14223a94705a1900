package duo

import (
	"iter"

	"github.com/davidvella/mergeset/cursor"
)

// IntersectionByKey is the intersection of two operands of different
// element types, correlated through extracted keys: every element of the
// first operand whose key is present among the second operand's keys. Both
// operands must be sorted and deduplicated by their extracted key under
// cmp.
type IntersectionByKey[T, U, K any] struct {
	a    []T
	b    []U
	akey func(T) K
	bkey func(U) K
	cmp  func(K, K) int
}

// NewIntersectionByKey prepares the intersection of a and b in the key
// space defined by akey, bkey and cmp.
func NewIntersectionByKey[T, U, K any](a []T, b []U, akey func(T) K, bkey func(U) K, cmp func(K, K) int) IntersectionByKey[T, U, K] {
	return IntersectionByKey[T, U, K]{a: a, b: b, akey: akey, bkey: bkey, cmp: cmp}
}

// All returns a lazy iterator over the retained elements of the first
// operand, in key order.
func (i IntersectionByKey[T, U, K]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		ca, cb := cursor.New(i.a), cursor.New(i.b)
		for {
			av, aok := ca.Peek()
			bv, bok := cb.Peek()
			if !aok || !bok {
				return
			}
			switch c := i.cmp(i.akey(av), i.bkey(bv)); {
			case c < 0:
				ca.Advance()
			case c > 0:
				cb.Advance()
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

// AppendTo appends the retained elements of the first operand to dst and
// returns the extended slice.
func (i IntersectionByKey[T, U, K]) AppendTo(dst []T) []T {
	for e := range i.All() {
		dst = append(dst, e)
	}
	return dst
}
