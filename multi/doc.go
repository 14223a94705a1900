// Package multi implements the four set operations over any number of
// sorted, deduplicated operands: union, intersection, difference and
// symmetric difference. The operand count is a runtime value; for exactly
// two operands the duo package is the cheaper choice.
//
// Semantics over k operands:
//   - Union: elements present in at least one operand.
//   - Intersection: elements present in every operand.
//   - Difference: elements of the first operand present in no other.
//   - SymmetricDifference: elements present in an odd number of operands.
//
// Zero operands yield an empty result for every operation, and a single
// operand passes through unchanged (for Difference, "all of the first
// operand" and for Intersection, "elements present in the one operand"
// coincide with pass-through). Note that the caller-facing selector in the
// root package additionally rejects Difference over zero operands, since
// there is no first operand to subtract from.
//
// Two interchangeable algorithms back every operation:
//   - The default linear scan walks all k cursors per step, refined with
//     the two-minimums trick: tracking the smallest and second-smallest
//     heads lets a run of elements unique to one operand be drained
//     without re-scanning the others. O(k·N) worst case, cache friendly,
//     fastest for small k.
//   - WithTree switches to a tournament tree (package mergetree), which
//     finds the minimum in O(log k) comparisons per element. Worth it for
//     large operand counts.
//
// Both algorithms produce identical output for every operation on every
// input; the scan is the default because small k dominates in practice.
//
// As everywhere in this module, operands must be sorted and deduplicated
// under the one comparator shared by the whole call; that precondition is
// not re-checked here.
package multi
