// Package mergetree implements a tournament tree (loser tree) that merges
// any number of sorted operands into one ascending stream. Each internal
// node holds the loser of the contest between its children and the root
// holds the overall winner, so producing the next element costs O(log k)
// comparisons for k operands instead of the O(k) scan of a plain k-way
// merge. The layout follows the classic array form described by Bryan
// Boreham (https://github.com/bboreham/go-loser).
//
// The merged stream is not deduplicated: equal elements from different
// operands come out consecutively, each tagged with the index of the
// operand that produced it. The multi package folds these runs of equal
// elements into the four set operations; the tagging is what lets the
// difference operation tell the first operand apart from the rest.
//
//	t := mergetree.New(cmp.Compare, []int{1, 3}, []int{2, 3})
//	for h := range t.All() {
//	    fmt.Printf("%d from operand %d\n", h.Elem, h.Source)
//	}
//
// A tree is single-use: All may be ranged over once.
package mergetree
