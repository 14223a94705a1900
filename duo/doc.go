// Package duo implements the four set operations over exactly two sorted,
// deduplicated operands: union, intersection, difference and symmetric
// difference. With the operand count fixed at two, each step of the merge is
// a single comparison of the two heads, which makes these the fastest
// engines in the module; the multi package generalizes the same operations
// to any number of operands.
//
// Every operation follows the same shape:
//   - All returns a lazy iterator producing the result elements on demand;
//     stopping early costs nothing beyond the two cursors.
//   - AppendTo materializes the result into a slice in one pass, bulk
//     copying whichever tail remains once one operand is exhausted.
//   - Set collects the result into a set.Set through a set.Builder, which
//     asserts the sorted-deduplicated invariant on every element.
//
// Operands must be sorted and deduplicated under the comparator passed to
// the constructor; this precondition is the caller's responsibility (see
// set.New) and is not re-checked here. Both operands must use the same
// comparator.
//
//	a := set.NewUnchecked([]int{1, 2, 4, 6, 7})
//	b := set.NewUnchecked([]int{2, 3, 4, 5, 6, 7})
//
//	res := duo.NewUnion(a, b, cmp.Compare).Set()
//	fmt.Println(res.Slice()) // [1 2 3 4 5 6 7]
//
// DifferenceByKey and IntersectionByKey correlate two operands of different
// element types through key-extraction functions; both operands must be
// sorted by the extracted key under the key comparator.
package duo
