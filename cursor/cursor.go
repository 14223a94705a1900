package cursor

import "sort"

// Cursor tracks a position within one sorted slice during a merge. The zero
// value is an exhausted cursor over no elements.
type Cursor[E any] struct {
	elems []E
	pos   int
}

// New returns a cursor positioned at the first element of elems. The slice
// is borrowed, not copied.
func New[E any](elems []E) Cursor[E] {
	return Cursor[E]{elems: elems}
}

// Peek returns the head element, or false when the cursor is exhausted.
func (c *Cursor[E]) Peek() (E, bool) {
	if c.pos >= len(c.elems) {
		var zero E
		return zero, false
	}
	return c.elems[c.pos], true
}

// Advance moves the cursor past the head element. Advancing an exhausted
// cursor has no effect.
func (c *Cursor[E]) Advance() {
	if c.pos < len(c.elems) {
		c.pos++
	}
}

// Exhausted reports whether no elements remain.
func (c *Cursor[E]) Exhausted() bool {
	return c.pos >= len(c.elems)
}

// Remaining returns the number of elements left, head included.
func (c *Cursor[E]) Remaining() int {
	return len(c.elems) - c.pos
}

// Rest returns the remaining elements as a slice, head included. The slice
// is shared with the cursor's backing slice.
func (c *Cursor[E]) Rest() []E {
	return c.elems[c.pos:]
}

// SeekGE advances the cursor to the first element that compares greater
// than or equal to target under cmp. It gallops: the probe distance doubles
// until an element at or past the target is found, then a binary search
// settles the exact position within the last doubling. Elements before the
// current position are never revisited.
func (c *Cursor[E]) SeekGE(target E, cmp func(E, E) int) {
	rest := c.elems[c.pos:]
	if len(rest) == 0 || cmp(rest[0], target) >= 0 {
		return
	}

	bound := 1
	for bound < len(rest) && cmp(rest[bound], target) < 0 {
		bound *= 2
	}

	lo := bound / 2
	hi := min(bound+1, len(rest))
	off := lo + sort.Search(hi-lo, func(i int) bool {
		return cmp(rest[lo+i], target) >= 0
	})
	c.pos += off
}
