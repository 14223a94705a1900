package duo

import (
	"iter"

	"github.com/davidvella/mergeset/cursor"
	"github.com/davidvella/mergeset/set"
)

// Union is the union of two sorted operands: every element present in
// either operand, each emitted once.
type Union[E any] struct {
	a, b []E
	cmp  func(E, E) int
}

// NewUnion prepares the union of a and b. Both operands must be ordered by
// cmp.
func NewUnion[E any](a, b set.Set[E], cmp func(E, E) int) Union[E] {
	return Union[E]{a: a.Slice(), b: b.Slice(), cmp: cmp}
}

// All returns a lazy iterator over the union in ascending order.
func (u Union[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		ca, cb := cursor.New(u.a), cursor.New(u.b)
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
				switch c := u.cmp(av, bv); {
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
					if !yield(av) {
						return
					}
					ca.Advance()
					cb.Advance()
				}
			}
		}
	}
}

// AppendTo appends the union to dst in one pass and returns the extended
// slice.
func (u Union[E]) AppendTo(dst []E) []E {
	ca, cb := cursor.New(u.a), cursor.New(u.b)
	for !ca.Exhausted() && !cb.Exhausted() {
		av, _ := ca.Peek()
		bv, _ := cb.Peek()
		switch c := u.cmp(av, bv); {
		case c < 0:
			dst = append(dst, av)
			ca.Advance()
		case c > 0:
			dst = append(dst, bv)
			cb.Advance()
		default:
			dst = append(dst, av)
			ca.Advance()
			cb.Advance()
		}
	}
	dst = append(dst, ca.Rest()...)
	return append(dst, cb.Rest()...)
}

// Set materializes the union as a set.
func (u Union[E]) Set() set.Set[E] {
	b := set.NewBuilder(u.cmp, len(u.a)+len(u.b))
	for e := range u.All() {
		b.Emit(e)
	}
	return b.Set()
}
