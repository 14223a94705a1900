package cursor_test

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/davidvella/mergeset/cursor"
)

func TestPeekAndAdvance(t *testing.T) {
	c := cursor.New([]int{1, 2, 3})

	v, ok := c.Peek()
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	// Peek does not move the cursor.
	v, ok = c.Peek()
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	c.Advance()
	v, ok = c.Peek()
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 2, c.Remaining())
	assert.Equal(t, []int{2, 3}, c.Rest())

	c.Advance()
	c.Advance()
	assert.True(t, c.Exhausted())
	_, ok = c.Peek()
	assert.False(t, ok)

	// Advancing past exhaustion is a no-op.
	c.Advance()
	assert.True(t, c.Exhausted())
	assert.Equal(t, 0, c.Remaining())
	assert.Empty(t, c.Rest())
}

func TestZeroValue(t *testing.T) {
	var c cursor.Cursor[string]
	assert.True(t, c.Exhausted())
	_, ok := c.Peek()
	assert.False(t, ok)
	c.Advance()
	assert.True(t, c.Exhausted())
}

func TestSeekGE(t *testing.T) {
	tests := []struct {
		name   string
		elems  []int
		target int
		want   []int
	}{
		{
			name:   "target present",
			elems:  []int{1, 3, 5, 7, 9},
			target: 5,
			want:   []int{5, 7, 9},
		},
		{
			name:   "target absent lands on next greater",
			elems:  []int{1, 3, 5, 7, 9},
			target: 4,
			want:   []int{5, 7, 9},
		},
		{
			name:   "target below head does nothing",
			elems:  []int{5, 6, 7},
			target: 2,
			want:   []int{5, 6, 7},
		},
		{
			name:   "target equal to head does nothing",
			elems:  []int{5, 6, 7},
			target: 5,
			want:   []int{5, 6, 7},
		},
		{
			name:   "target past the end exhausts",
			elems:  []int{1, 2, 3},
			target: 10,
			want:   []int{},
		},
		{
			name:   "last element",
			elems:  []int{1, 2, 3},
			target: 3,
			want:   []int{3},
		},
		{
			name:   "long run exercises the galloping probes",
			elems:  []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
			target: 13,
			want:   []int{13, 14, 15, 16},
		},
		{
			name:   "empty",
			elems:  []int{},
			target: 1,
			want:   []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cursor.New(tt.elems)
			c.SeekGE(tt.target, cmp.Compare)
			if len(tt.want) == 0 {
				assert.True(t, c.Exhausted())
				return
			}
			assert.Equal(t, tt.want, c.Rest())
		})
	}
}

func TestSeekGEAfterAdvance(t *testing.T) {
	c := cursor.New([]int{1, 2, 3, 4, 5, 6, 7, 8})
	c.Advance()
	c.Advance()
	c.SeekGE(6, cmp.Compare)
	assert.Equal(t, []int{6, 7, 8}, c.Rest())
}
