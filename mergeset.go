// Package mergeset computes union, intersection, difference and symmetric
// difference over collections that are already sorted in ascending order
// and already deduplicated. Because the inputs are canonical, every
// operation is a single merge pass: no hashing, no tree building, no
// allocation beyond the output.
//
// This package is the dispatch surface. It validates the request, routes
// two-operand calls to the specialized engines in the duo package and
// everything else to the generalized engines in the multi package, and
// materializes the result through a set.Builder. Callers wanting lazy
// consumption use Stream; callers wanting an eager result use Apply or the
// per-operation wrappers.
//
//	a := set.NewUnchecked([]int{1, 2, 3})
//	b := set.NewUnchecked([]int{2, 3, 4})
//
//	u := mergeset.Union(cmp.Compare, a, b)
//	fmt.Println(u.Slice()) // [1 2 3 4]
//
// The sorted-deduplicated precondition belongs to the caller; build
// operands with set.New to have it checked, or set.NewUnchecked to skip
// the check. Feeding invalid operands produces incorrect output, never a
// crash. All operands of one call must share one comparator.
package mergeset

import (
	"errors"
	"iter"

	"github.com/davidvella/mergeset/duo"
	"github.com/davidvella/mergeset/multi"
	"github.com/davidvella/mergeset/set"
)

// Op identifies one of the four set operations.
type Op uint8

// The supported operations. Difference and SymmetricDifference are
// positional: the first operand is the one the others subtract from, and
// parity is counted across the operand list as given.
const (
	OpUnion Op = iota + 1
	OpIntersection
	OpDifference
	OpSymmetricDifference
)

// String returns the operation name as used in error messages and by the
// command line tool.
func (op Op) String() string {
	switch op {
	case OpUnion:
		return "union"
	case OpIntersection:
		return "intersection"
	case OpDifference:
		return "difference"
	case OpSymmetricDifference:
		return "symmetric_difference"
	default:
		return "unknown"
	}
}

// Errors returned by the selector before any merge work begins.
var (
	ErrUnknownOp  = errors.New("mergeset: unknown operation")
	ErrNoOperands = errors.New("mergeset: difference requires at least one operand")
)

// Apply runs op over the operands and materializes the result. Two-operand
// calls use the duo engines, all others the multi engines. The only
// failure modes are an unknown op and a difference over zero operands;
// both are reported before any cursor moves.
func Apply[E any](op Op, cmp func(E, E) int, operands []set.Set[E], opts ...Option) (set.Set[E], error) {
	seq, err := Stream(op, cmp, operands, opts...)
	if err != nil {
		return set.Empty[E](), err
	}
	o := newOptions(opts)
	hint := o.capacity
	if hint == 0 {
		hint = capacityHint(op, operands)
	}
	b := set.NewBuilder(cmp, hint)
	for e := range seq {
		b.Emit(e)
	}
	return b.Set(), nil
}

// Stream is the lazy form of Apply: it returns an iterator producing the
// result elements on demand. Stopping early abandons the underlying
// cursors with no further work; the iterator is finite and single-use.
func Stream[E any](op Op, cmp func(E, E) int, operands []set.Set[E], opts ...Option) (iter.Seq[E], error) {
	switch op {
	case OpUnion, OpIntersection, OpDifference, OpSymmetricDifference:
	default:
		return nil, ErrUnknownOp
	}
	if op == OpDifference && len(operands) == 0 {
		return nil, ErrNoOperands
	}

	if len(operands) == 2 {
		a, b := operands[0], operands[1]
		switch op {
		case OpUnion:
			return duo.NewUnion(a, b, cmp).All(), nil
		case OpIntersection:
			return duo.NewIntersection(a, b, cmp).All(), nil
		case OpDifference:
			return duo.NewDifference(a, b, cmp).All(), nil
		default:
			return duo.NewSymmetricDifference(a, b, cmp).All(), nil
		}
	}

	mo := newOptions(opts).multi()
	switch op {
	case OpUnion:
		return multi.NewUnion(cmp, operands, mo...).All(), nil
	case OpIntersection:
		return multi.NewIntersection(cmp, operands, mo...).All(), nil
	case OpDifference:
		return multi.NewDifference(cmp, operands, mo...).All(), nil
	default:
		return multi.NewSymmetricDifference(cmp, operands, mo...).All(), nil
	}
}

// Union returns the union of the operands.
func Union[E any](cmp func(E, E) int, operands ...set.Set[E]) set.Set[E] {
	s, _ := Apply(OpUnion, cmp, operands)
	return s
}

// Intersection returns the intersection of the operands. With zero
// operands the result is empty.
func Intersection[E any](cmp func(E, E) int, operands ...set.Set[E]) set.Set[E] {
	s, _ := Apply(OpIntersection, cmp, operands)
	return s
}

// Difference returns the first operand minus the union of the rest. It
// fails with ErrNoOperands when called without operands.
func Difference[E any](cmp func(E, E) int, operands ...set.Set[E]) (set.Set[E], error) {
	return Apply(OpDifference, cmp, operands)
}

// SymmetricDifference returns the elements present in an odd number of
// operands.
func SymmetricDifference[E any](cmp func(E, E) int, operands ...set.Set[E]) set.Set[E] {
	s, _ := Apply(OpSymmetricDifference, cmp, operands)
	return s
}

// capacityHint sizes the output buffer from the operand lengths: the sum
// for the emitting operations, the smallest operand for intersection, the
// first operand for difference. An over-estimate trades memory for zero
// reallocation.
func capacityHint[E any](op Op, operands []set.Set[E]) int {
	switch op {
	case OpIntersection:
		hint := 0
		for i, s := range operands {
			if i == 0 || s.Len() < hint {
				hint = s.Len()
			}
		}
		return hint
	case OpDifference:
		if len(operands) > 0 {
			return operands[0].Len()
		}
		return 0
	default:
		var hint int
		for _, s := range operands {
			hint += s.Len()
		}
		return hint
	}
}
