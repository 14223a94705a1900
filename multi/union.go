package multi

import (
	"iter"

	"github.com/davidvella/mergeset/set"
)

// Union is the union of any number of sorted operands: every element
// present in at least one, each emitted once.
type Union[E any] struct {
	sets [][]E
	cmp  func(E, E) int
	opts options
}

// NewUnion prepares the union of sets. All operands must be ordered by
// cmp.
func NewUnion[E any](cmp func(E, E) int, sets []set.Set[E], opts ...Option) Union[E] {
	return Union[E]{sets: slicesOf(sets), cmp: cmp, opts: newOptions(opts)}
}

// All returns a lazy iterator over the union in ascending order.
func (u Union[E]) All() iter.Seq[E] {
	if u.opts.tree {
		return u.allTree()
	}
	return u.allScan()
}

func (u Union[E]) allScan() iter.Seq[E] {
	return func(yield func(E) bool) {
		cs := newCursors(u.sets)
		for {
			m := twoMinimums(cs, u.cmp)
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
				if u.cmp(m.min, m.next) != 0 {
					// Everything below the second minimum lives only in
					// the minimum operand; drain it without re-scanning.
					c := &cs[m.i]
					for {
						v, ok := c.Peek()
						if !ok || u.cmp(v, m.next) >= 0 {
							break
						}
						if !yield(v) {
							return
						}
						c.Advance()
					}
				}
				if !yield(m.next) {
					return
				}
				for j := range cs {
					if v, ok := cs[j].Peek(); ok && u.cmp(v, m.next) == 0 {
						cs[j].Advance()
					}
				}
			}
		}
	}
}

func (u Union[E]) allTree() iter.Seq[E] {
	return func(yield func(E) bool) {
		foldRuns(u.cmp, u.sets, func(elem E, _ int, _ bool) bool {
			return yield(elem)
		})
	}
}

// AppendTo appends the union to dst and returns the extended slice.
func (u Union[E]) AppendTo(dst []E) []E {
	for e := range u.All() {
		dst = append(dst, e)
	}
	return dst
}

// Set materializes the union as a set.
func (u Union[E]) Set() set.Set[E] {
	b := set.NewBuilder(u.cmp, sumLen(u.sets))
	for e := range u.All() {
		b.Emit(e)
	}
	return b.Set()
}
