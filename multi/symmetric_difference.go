package multi

import (
	"iter"

	"github.com/davidvella/mergeset/set"
)

// SymmetricDifference is the generalized symmetric difference of any number
// of sorted operands: every element present in an odd number of them. For
// two operands this is the familiar "in exactly one" definition, and the
// generalization is what repeated pairwise application produces.
type SymmetricDifference[E any] struct {
	sets [][]E
	cmp  func(E, E) int
	opts options
}

// NewSymmetricDifference prepares the symmetric difference of sets. All
// operands must be ordered by cmp.
func NewSymmetricDifference[E any](cmp func(E, E) int, sets []set.Set[E], opts ...Option) SymmetricDifference[E] {
	return SymmetricDifference[E]{sets: slicesOf(sets), cmp: cmp, opts: newOptions(opts)}
}

// All returns a lazy iterator over the symmetric difference in ascending
// order.
func (s SymmetricDifference[E]) All() iter.Seq[E] {
	if s.opts.tree {
		return s.allTree()
	}
	return s.allScan()
}

func (s SymmetricDifference[E]) allScan() iter.Seq[E] {
	return func(yield func(E) bool) {
		cs := newCursors(s.sets)
		for {
			m := twoMinimums(cs, s.cmp)
			switch m.n {
			case 0:
				return
			case 1:
				for _, e := range cs[m.i].Rest() {
					if !yield(e) {
						return
					}
				}
				return
			default:
				if s.cmp(m.min, m.next) != 0 {
					// A run unique to one operand has parity one; emit it
					// whole.
					c := &cs[m.i]
					for {
						v, ok := c.Peek()
						if !ok || s.cmp(v, m.next) >= 0 {
							break
						}
						if !yield(v) {
							return
						}
						c.Advance()
					}
					continue
				}
				var count int
				for j := range cs {
					if v, ok := cs[j].Peek(); ok && s.cmp(v, m.min) == 0 {
						count++
						cs[j].Advance()
					}
				}
				if count%2 != 0 {
					if !yield(m.min) {
						return
					}
				}
			}
		}
	}
}

func (s SymmetricDifference[E]) allTree() iter.Seq[E] {
	return func(yield func(E) bool) {
		foldRuns(s.cmp, s.sets, func(elem E, count int, _ bool) bool {
			if count%2 != 0 {
				return yield(elem)
			}
			return true
		})
	}
}

// AppendTo appends the symmetric difference to dst and returns the
// extended slice.
func (s SymmetricDifference[E]) AppendTo(dst []E) []E {
	for e := range s.All() {
		dst = append(dst, e)
	}
	return dst
}

// Set materializes the symmetric difference as a set.
func (s SymmetricDifference[E]) Set() set.Set[E] {
	b := set.NewBuilder(s.cmp, sumLen(s.sets))
	for e := range s.All() {
		b.Emit(e)
	}
	return b.Set()
}
