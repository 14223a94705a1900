package duo

import (
	"iter"

	"github.com/davidvella/mergeset/cursor"
	"github.com/davidvella/mergeset/set"
)

// Difference is the difference of two sorted operands: every element of the
// first operand that is not present in the second.
type Difference[E any] struct {
	a, b []E
	cmp  func(E, E) int
}

// NewDifference prepares the difference a minus b. Both operands must be
// ordered by cmp.
func NewDifference[E any](a, b set.Set[E], cmp func(E, E) int) Difference[E] {
	return Difference[E]{a: a.Slice(), b: b.Slice(), cmp: cmp}
}

// All returns a lazy iterator over the difference in ascending order.
func (d Difference[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
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
			switch c := d.cmp(av, bv); {
			case c < 0:
				if !yield(av) {
					return
				}
				ca.Advance()
			case c > 0:
				cb.SeekGE(av, d.cmp)
			default:
				ca.Advance()
				cb.Advance()
			}
		}
	}
}

// AppendTo appends the difference to dst in one pass and returns the
// extended slice.
func (d Difference[E]) AppendTo(dst []E) []E {
	ca, cb := cursor.New(d.a), cursor.New(d.b)
	for !ca.Exhausted() && !cb.Exhausted() {
		av, _ := ca.Peek()
		bv, _ := cb.Peek()
		switch c := d.cmp(av, bv); {
		case c < 0:
			dst = append(dst, av)
			ca.Advance()
		case c > 0:
			cb.SeekGE(av, d.cmp)
		default:
			ca.Advance()
			cb.Advance()
		}
	}
	return append(dst, ca.Rest()...)
}

// Set materializes the difference as a set.
func (d Difference[E]) Set() set.Set[E] {
	b := set.NewBuilder(d.cmp, len(d.a))
	for e := range d.All() {
		b.Emit(e)
	}
	return b.Set()
}
