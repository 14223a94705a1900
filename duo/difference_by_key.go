package duo

import (
	"iter"

	"github.com/davidvella/mergeset/cursor"
)

// DifferenceByKey is the difference of two operands of different element
// types, correlated through extracted keys: every element of the first
// operand whose key is not present among the second operand's keys. Both
// operands must be sorted and deduplicated by their extracted key under
// cmp.
type DifferenceByKey[T, U, K any] struct {
	a    []T
	b    []U
	akey func(T) K
	bkey func(U) K
	cmp  func(K, K) int
}

// NewDifferenceByKey prepares the difference of a minus b in the key space
// defined by akey, bkey and cmp. The operands are plain slices because the
// sorted-deduplicated invariant here concerns keys, not elements; the
// caller must guarantee it.
func NewDifferenceByKey[T, U, K any](a []T, b []U, akey func(T) K, bkey func(U) K, cmp func(K, K) int) DifferenceByKey[T, U, K] {
	return DifferenceByKey[T, U, K]{a: a, b: b, akey: akey, bkey: bkey, cmp: cmp}
}

// All returns a lazy iterator over the retained elements of the first
// operand, in key order.
func (d DifferenceByKey[T, U, K]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		ca, cb := cursor.New(d.a), cursor.New(d.b)
		for {
			av, aok := ca.Peek()
			if !aok {
				return
			}
			bv, bok := cb.Peek()
			if !bok {
				if !yield(av) {
					return
				}
				ca.Advance()
				continue
			}
			switch c := d.cmp(d.akey(av), d.bkey(bv)); {
			case c < 0:
				if !yield(av) {
					return
				}
				ca.Advance()
			case c > 0:
				cb.Advance()
			default:
				ca.Advance()
				cb.Advance()
			}
		}
	}
}

// AppendTo appends the retained elements of the first operand to dst and
// returns the extended slice.
func (d DifferenceByKey[T, U, K]) AppendTo(dst []T) []T {
	for e := range d.All() {
		dst = append(dst, e)
	}
	return dst
}
