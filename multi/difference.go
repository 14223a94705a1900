package multi

import (
	"iter"

	"github.com/davidvella/mergeset/cursor"
	"github.com/davidvella/mergeset/set"
)

// Difference is the difference of any number of sorted operands: every
// element of the first operand that appears in none of the others. With
// zero operands the result is empty; the root package's selector rejects
// that case before it reaches here, since a difference without a first
// operand is a caller error.
type Difference[E any] struct {
	sets [][]E
	cmp  func(E, E) int
	opts options
}

// NewDifference prepares the difference of the first set minus the union of
// the rest. All operands must be ordered by cmp.
func NewDifference[E any](cmp func(E, E) int, sets []set.Set[E], opts ...Option) Difference[E] {
	return Difference[E]{sets: slicesOf(sets), cmp: cmp, opts: newOptions(opts)}
}

// All returns a lazy iterator over the difference in ascending order.
// Iteration stops as soon as the first operand is exhausted; the others are
// irrelevant past that point.
func (d Difference[E]) All() iter.Seq[E] {
	if d.opts.tree {
		return d.allTree()
	}
	return d.allScan()
}

func (d Difference[E]) allScan() iter.Seq[E] {
	return func(yield func(E) bool) {
		if len(d.sets) == 0 {
			return
		}
		base := cursor.New(d.sets[0])
		others := newCursors(d.sets[1:])
		for {
			first, ok := base.Peek()
			if !ok {
				return
			}
			// Gallop every other operand to the base head, dropping the
			// exhausted ones, and remember the smallest head seen.
			var minv E
			have := false
			for j := 0; j < len(others); {
				others[j].SeekGE(first, d.cmp)
				v, ok := others[j].Peek()
				if !ok {
					others[j] = others[len(others)-1]
					others = others[:len(others)-1]
					continue
				}
				if !have || d.cmp(v, minv) < 0 {
					minv, have = v, true
				}
				j++
			}
			if !have {
				for _, e := range base.Rest() {
					if !yield(e) {
						return
					}
				}
				return
			}
			if d.cmp(minv, first) == 0 {
				base.Advance()
				continue
			}
			// minv is past the base head: everything below it is in no
			// other operand.
			for {
				v, ok := base.Peek()
				if !ok || d.cmp(v, minv) >= 0 {
					break
				}
				if !yield(v) {
					return
				}
				base.Advance()
			}
		}
	}
}

func (d Difference[E]) allTree() iter.Seq[E] {
	return func(yield func(E) bool) {
		foldRuns(d.cmp, d.sets, func(elem E, count int, hasFirst bool) bool {
			if hasFirst && count == 1 {
				return yield(elem)
			}
			return true
		})
	}
}

// AppendTo appends the difference to dst and returns the extended slice.
func (d Difference[E]) AppendTo(dst []E) []E {
	for e := range d.All() {
		dst = append(dst, e)
	}
	return dst
}

// Set materializes the difference as a set.
func (d Difference[E]) Set() set.Set[E] {
	hint := 0
	if len(d.sets) > 0 {
		hint = len(d.sets[0])
	}
	b := set.NewBuilder(d.cmp, hint)
	for e := range d.All() {
		b.Emit(e)
	}
	return b.Set()
}
