package multi

import "github.com/davidvella/mergeset/mergetree"

// foldRuns merges all operands through a tournament tree and groups the
// stream into runs of equal elements. emit is called once per distinct
// element with the number of operands whose head matched it and whether the
// first operand was among them; returning false stops the fold. Because
// operands are deduplicated, the run length is exactly the number of
// operands containing the element, which is all any of the four operations
// needs to decide an emission.
func foldRuns[E any](cmp func(E, E) int, sets [][]E, emit func(elem E, count int, hasFirst bool) bool) {
	var (
		cur      E
		count    int
		hasFirst bool
	)
	for h := range mergetree.New(cmp, sets...).All() {
		if count > 0 && cmp(cur, h.Elem) == 0 {
			count++
			hasFirst = hasFirst || h.Source == 0
			continue
		}
		if count > 0 && !emit(cur, count, hasFirst) {
			return
		}
		cur, count, hasFirst = h.Elem, 1, h.Source == 0
	}
	if count > 0 {
		emit(cur, count, hasFirst)
	}
}
