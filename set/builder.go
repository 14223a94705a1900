package set

import "fmt"

// Builder accumulates elements emitted in ascending order and produces a
// Set. Every Emit checks the new element against the last one emitted, so a
// finished builder always holds a valid set; an out-of-order or duplicate
// emission is a bug in the emitting code and panics.
type Builder[E any] struct {
	cmp   func(E, E) int
	elems []E
}

// NewBuilder returns a builder ordered by cmp with room for capacity
// elements before reallocating.
func NewBuilder[E any](cmp func(E, E) int, capacity int) *Builder[E] {
	return &Builder[E]{
		cmp:   cmp,
		elems: make([]E, 0, capacity),
	}
}

// Emit appends e to the result. It panics unless e compares strictly
// greater than the previously emitted element.
func (b *Builder[E]) Emit(e E) {
	if n := len(b.elems); n > 0 {
		if c := b.cmp(b.elems[n-1], e); c >= 0 {
			panic(fmt.Sprintf("set: builder emission out of order at index %d", n))
		}
	}
	b.elems = append(b.elems, e)
}

// Extend emits every element of elems in order. The same ordering check
// applies to each element.
func (b *Builder[E]) Extend(elems []E) {
	for _, e := range elems {
		b.Emit(e)
	}
}

// Len returns the number of elements emitted so far.
func (b *Builder[E]) Len() int {
	return len(b.elems)
}

// Set finishes the builder and returns the accumulated set. The builder
// must not be used afterwards.
func (b *Builder[E]) Set() Set[E] {
	elems := b.elems
	b.elems = nil
	return Set[E]{elems: elems}
}
