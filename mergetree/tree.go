package mergetree

import (
	"iter"

	"github.com/davidvella/mergeset/cursor"
)

// Head is one element drawn from one operand during a merge.
type Head[E any] struct {
	Elem   E
	Source int
}

// Tree merges k sorted operands ordered by one comparator. Nodes N and N+1
// have parent N/2: with k operands, leaves live at positions k..2k-1,
// internal nodes at 1..k-1, and node 0 holds the current winner.
type Tree[E any] struct {
	cmp     func(E, E) int
	nodes   []node[E]
	cursors []cursor.Cursor[E]
}

type node[E any] struct {
	index int  // leaf position of the loser, or of the winner for node 0
	value E    // value copied from that leaf
	ok    bool // false once the leaf's operand is exhausted
}

// New returns a tree over the given operands. Every operand must be sorted
// in ascending order under cmp; deduplication is not required here, the
// tree merges whatever it is given.
func New[E any](cmp func(E, E) int, operands ...[]E) *Tree[E] {
	t := &Tree[E]{
		cmp:     cmp,
		nodes:   make([]node[E], len(operands)*2),
		cursors: make([]cursor.Cursor[E], len(operands)),
	}
	for i, op := range operands {
		t.cursors[i] = cursor.New(op)
	}
	return t
}

// All returns an iterator over the merged stream in ascending order, equal
// elements adjacent, each tagged with its operand index. It may be ranged
// over once.
func (t *Tree[E]) All() iter.Seq[Head[E]] {
	return func(yield func(Head[E]) bool) {
		k := len(t.cursors)
		if k == 0 {
			return
		}
		for i := range t.cursors {
			t.moveNext(k + i)
		}
		t.initialize()
		for t.nodes[0].ok {
			if !yield(Head[E]{Elem: t.nodes[0].value, Source: t.nodes[0].index - k}) {
				return
			}
			leaf := t.nodes[0].index
			t.moveNext(leaf)
			t.replayGames(leaf)
		}
	}
}

// moveNext reloads the leaf at pos from its cursor, marking it exhausted
// when the cursor runs out.
func (t *Tree[E]) moveNext(pos int) {
	n := &t.nodes[pos]
	c := &t.cursors[pos-len(t.cursors)]
	if v, ok := c.Peek(); ok {
		c.Advance()
		n.value, n.ok = v, true
		return
	}
	var zero E
	n.value, n.ok = zero, false
}

func (t *Tree[E]) initialize() {
	winner := t.playGame(1)
	t.nodes[0] = node[E]{
		index: winner,
		value: t.nodes[winner].value,
		ok:    t.nodes[winner].ok,
	}
}

// playGame finds the winning leaf below pos, storing the loser at each
// internal node on the way up.
func (t *Tree[E]) playGame(pos int) int {
	if pos >= len(t.nodes)/2 {
		return pos
	}
	left := t.playGame(pos * 2)
	right := t.playGame(pos*2 + 1)
	var winner, loser int
	if t.less(&t.nodes[left], &t.nodes[right]) {
		winner, loser = left, right
	} else {
		winner, loser = right, left
	}
	t.nodes[pos].index = loser
	t.nodes[pos].value = t.nodes[loser].value
	t.nodes[pos].ok = t.nodes[loser].ok
	return winner
}

// replayGames re-runs the contests from leaf pos up to the root after that
// leaf received a new value.
func (t *Tree[E]) replayGames(pos int) {
	incoming := node[E]{index: pos, value: t.nodes[pos].value, ok: t.nodes[pos].ok}
	for p := parent(pos); p != 0; p = parent(p) {
		n := &t.nodes[p]
		if t.less(n, &incoming) {
			// The stored loser beats the incoming winner; swap them.
			n.index, incoming.index = incoming.index, n.index
			n.value, incoming.value = incoming.value, n.value
			n.ok, incoming.ok = incoming.ok, n.ok
		}
	}
	t.nodes[0] = incoming
}

// less orders live values by cmp and ranks an exhausted leaf after
// everything else.
func (t *Tree[E]) less(a, b *node[E]) bool {
	switch {
	case !a.ok:
		return false
	case !b.ok:
		return true
	default:
		return t.cmp(a.value, b.value) < 0
	}
}

func parent(i int) int { return i >> 1 }
