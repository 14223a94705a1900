package multi

import (
	"iter"

	"github.com/davidvella/mergeset/set"
)

// Intersection is the intersection of any number of sorted operands: every
// element present in all of them. With zero operands the result is empty.
type Intersection[E any] struct {
	sets [][]E
	cmp  func(E, E) int
	opts options
}

// NewIntersection prepares the intersection of sets. All operands must be
// ordered by cmp.
func NewIntersection[E any](cmp func(E, E) int, sets []set.Set[E], opts ...Option) Intersection[E] {
	return Intersection[E]{sets: slicesOf(sets), cmp: cmp, opts: newOptions(opts)}
}

// All returns a lazy iterator over the intersection in ascending order.
// Once any operand is exhausted no further element can be common to all, so
// iteration stops immediately.
func (i Intersection[E]) All() iter.Seq[E] {
	if i.opts.tree {
		return i.allTree()
	}
	return i.allScan()
}

func (i Intersection[E]) allScan() iter.Seq[E] {
	return func(yield func(E) bool) {
		if len(i.sets) == 0 {
			return
		}
		cs := newCursors(i.sets)
		for j := range cs {
			if cs[j].Exhausted() {
				return
			}
		}
		for {
			// One pass over the heads: the maximum, and whether all heads
			// are equal to it.
			maxv, _ := cs[0].Peek()
			equal := true
			for j := 1; j < len(cs); j++ {
				v, _ := cs[j].Peek()
				switch c := i.cmp(v, maxv); {
				case c > 0:
					maxv = v
					equal = false
				case c < 0:
					equal = false
				}
			}
			if equal {
				if !yield(maxv) {
					return
				}
				for j := range cs {
					cs[j].Advance()
					if cs[j].Exhausted() {
						return
					}
				}
				continue
			}
			for j := range cs {
				cs[j].SeekGE(maxv, i.cmp)
				if cs[j].Exhausted() {
					return
				}
			}
		}
	}
}

func (i Intersection[E]) allTree() iter.Seq[E] {
	k := len(i.sets)
	return func(yield func(E) bool) {
		if k == 0 {
			return
		}
		foldRuns(i.cmp, i.sets, func(elem E, count int, _ bool) bool {
			if count == k {
				return yield(elem)
			}
			return true
		})
	}
}

// AppendTo appends the intersection to dst and returns the extended slice.
func (i Intersection[E]) AppendTo(dst []E) []E {
	for e := range i.All() {
		dst = append(dst, e)
	}
	return dst
}

// Set materializes the intersection as a set.
func (i Intersection[E]) Set() set.Set[E] {
	hint := 0
	for j, s := range i.sets {
		if j == 0 || len(s) < hint {
			hint = len(s)
		}
	}
	b := set.NewBuilder(i.cmp, hint)
	for e := range i.All() {
		b.Emit(e)
	}
	return b.Set()
}
