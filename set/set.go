package set

import (
	"cmp"
	"errors"
	"iter"
	"slices"
)

// Common errors returned when validating a slice.
var (
	ErrNotSorted       = errors.New("set: slice is not sorted")
	ErrNotDeduplicated = errors.New("set: slice is not deduplicated")
)

// Set is a read-only view over a slice that is sorted in ascending order and
// contains no duplicate elements under a fixed comparator. The zero value is
// an empty set.
type Set[E any] struct {
	elems []E
}

// New wraps elems as a Set after verifying that it is sorted and free of
// duplicates under cmp. It returns ErrNotSorted or ErrNotDeduplicated when
// the invariant does not hold. The slice is not copied; the caller must not
// mutate it while the set is in use.
func New[E any](elems []E, cmp func(E, E) int) (Set[E], error) {
	if err := Validate(elems, cmp); err != nil {
		return Set[E]{}, err
	}
	return Set[E]{elems: elems}, nil
}

// NewUnchecked wraps elems as a Set without validating it. Callers are
// responsible for the sorted-deduplicated invariant; operations on an
// invalid set produce incorrect output.
func NewUnchecked[E any](elems []E) Set[E] {
	return Set[E]{elems: elems}
}

// NewOrdered wraps elems as a Set under the natural order of E. It is New
// with cmp.Compare as the comparator.
func NewOrdered[E cmp.Ordered](elems []E) (Set[E], error) {
	return New(elems, cmp.Compare[E])
}

// Empty returns a set with no elements.
func Empty[E any]() Set[E] {
	return Set[E]{}
}

// SortDedup sorts elems in place under cmp, removes duplicates and wraps the
// remainder as a Set. The returned set aliases the input slice.
func SortDedup[E any](elems []E, cmp func(E, E) int) Set[E] {
	slices.SortFunc(elems, cmp)
	elems = slices.CompactFunc(elems, func(a, b E) bool { return cmp(a, b) == 0 })
	return Set[E]{elems: elems}
}

// Validate reports whether elems is sorted in strictly ascending order
// under cmp. It returns nil when it is, ErrNotSorted when two adjacent
// elements are out of order and ErrNotDeduplicated when two adjacent
// elements are equal.
func Validate[E any](elems []E, cmp func(E, E) int) error {
	for i := 1; i < len(elems); i++ {
		switch c := cmp(elems[i-1], elems[i]); {
		case c == 0:
			return ErrNotDeduplicated
		case c > 0:
			return ErrNotSorted
		}
	}
	return nil
}

// Len returns the number of elements in the set.
func (s Set[E]) Len() int {
	return len(s.elems)
}

// Slice returns the underlying slice. It must be treated as read-only.
func (s Set[E]) Slice() []E {
	return s.elems
}

// All returns an iterator over the elements in ascending order.
func (s Set[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, e := range s.elems {
			if !yield(e) {
				return
			}
		}
	}
}
