package duo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/davidvella/mergeset/duo"
	"github.com/davidvella/mergeset/set"
)

func TestDifference(t *testing.T) {
	tests := []struct {
		name string
		a, b set.Set[int]
		want []int
	}{
		{
			name: "overlapping",
			a:    ints(1, 2, 3),
			b:    ints(2, 3, 4),
			want: []int{1},
		},
		{
			name: "first empty",
			a:    ints(),
			b:    ints(1, 2),
			want: []int{},
		},
		{
			name: "second empty keeps everything",
			a:    ints(1, 2),
			b:    ints(),
			want: []int{1, 2},
		},
		{
			name: "equal singletons",
			a:    ints(5),
			b:    ints(5),
			want: []int{},
		},
		{
			name: "disjoint keeps everything",
			a:    ints(1, 3, 5),
			b:    ints(2, 4, 6),
			want: []int{1, 3, 5},
		},
		{
			name: "identical empties out",
			a:    ints(1, 2, 3),
			b:    ints(1, 2, 3),
			want: []int{},
		},
		{
			name: "subtrahend tail ignored",
			a:    ints(1, 2, 3),
			b:    ints(3, 4, 5, 6, 7),
			want: []int{1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := duo.NewDifference(tt.a, tt.b, compare)
			assert.Equal(t, tt.want, collect(d.All()))
			assert.Equal(t, tt.want, d.AppendTo([]int{}))
			assert.Equal(t, tt.want, d.Set().Slice())
		})
	}
}

func TestDifferenceNotCommutative(t *testing.T) {
	a := ints(1, 2, 3)
	b := ints(2, 3, 4)
	assert.Equal(t, []int{1}, duo.NewDifference(a, b, compare).Set().Slice())
	assert.Equal(t, []int{4}, duo.NewDifference(b, a, compare).Set().Slice())
}

// The difference in both directions plus the intersection partition the
// union.
func TestDifferencePartitionsUnion(t *testing.T) {
	a := ints(1, 2, 4, 6, 7)
	b := ints(2, 3, 4, 5, 8)

	ab := duo.NewDifference(a, b, compare).Set()
	ba := duo.NewDifference(b, a, compare).Set()
	inter := duo.NewIntersection(a, b, compare).Set()
	union := duo.NewUnion(a, b, compare).Set()

	rebuilt := duo.NewUnion(duo.NewUnion(ab, ba, compare).Set(), inter, compare).Set()
	assert.Equal(t, union.Slice(), rebuilt.Slice())
	assert.Equal(t, union.Len(), ab.Len()+ba.Len()+inter.Len())
}
