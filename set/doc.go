// Package set provides the Set type, a read-only view over a slice whose
// elements are sorted in ascending order with no duplicates, and the Builder
// type used to produce such slices one element at a time.
//
// Every set is ordered by a single comparator, a function with the same
// convention as cmp.Compare: negative when a sorts before b, zero when they
// are equal, positive when a sorts after b. All sets taking part in one
// operation must have been ordered by the same comparator; the engines in the
// duo and multi packages never re-check this.
//
// There are two ways to obtain a Set:
//   - New validates the slice against the comparator and rejects unsorted or
//     duplicated input with ErrNotSorted or ErrNotDeduplicated.
//   - NewUnchecked trusts the caller and performs no validation. Feeding an
//     invalid slice to a set operation yields incorrect output, never a
//     crash.
//
// SortDedup bridges the gap for callers whose data is not yet canonical: it
// sorts a plain slice in place, removes duplicates and wraps the result.
//
// Basic usage:
//
//	s, err := set.New([]int{1, 2, 4, 6, 7}, cmp.Compare)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for v := range s.All() {
//	    fmt.Println(v)
//	}
package set
