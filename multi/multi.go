package multi

import (
	"github.com/davidvella/mergeset/cursor"
	"github.com/davidvella/mergeset/set"
)

// options configures how an operation runs.
type options struct {
	tree bool
}

// Option is a function that configures an operation.
type Option func(*options)

// WithTree selects the tournament-tree algorithm instead of the default
// linear scan. The output is identical; the tree needs fewer comparisons
// per element when the operand count is large.
func WithTree() Option {
	return func(o *options) {
		o.tree = true
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func slicesOf[E any](sets []set.Set[E]) [][]E {
	out := make([][]E, len(sets))
	for i, s := range sets {
		out[i] = s.Slice()
	}
	return out
}

func newCursors[E any](sets [][]E) []cursor.Cursor[E] {
	cs := make([]cursor.Cursor[E], len(sets))
	for i, s := range sets {
		cs[i] = cursor.New(s)
	}
	return cs
}

func sumLen[E any](sets [][]E) int {
	var n int
	for _, s := range sets {
		n += len(s)
	}
	return n
}

// minimums is the outcome of one scan across all cursor heads: the index
// and value of the smallest head, and the value of the second-smallest
// (which may compare equal to the smallest when two operands share it).
type minimums[E any] struct {
	i         int
	min, next E
	n         int // how many heads were found: 0, 1 or 2
}

func twoMinimums[E any](cs []cursor.Cursor[E], cmp func(E, E) int) minimums[E] {
	var m minimums[E]
	for i := range cs {
		v, ok := cs[i].Peek()
		if !ok {
			continue
		}
		switch {
		case m.n == 0:
			m.i, m.min, m.n = i, v, 1
		case cmp(v, m.min) < 0:
			m.next = m.min
			m.i, m.min = i, v
			m.n = 2
		case m.n == 1 || cmp(v, m.next) < 0:
			m.next = v
			m.n = 2
		}
	}
	return m
}
