package duo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/davidvella/mergeset/duo"
	"github.com/davidvella/mergeset/set"
)

func TestUnion(t *testing.T) {
	tests := []struct {
		name string
		a, b set.Set[int]
		want []int
	}{
		{
			name: "overlapping",
			a:    ints(1, 2, 3),
			b:    ints(2, 3, 4),
			want: []int{1, 2, 3, 4},
		},
		{
			name: "first empty",
			a:    ints(),
			b:    ints(1, 2),
			want: []int{1, 2},
		},
		{
			name: "second empty",
			a:    ints(1, 2),
			b:    ints(),
			want: []int{1, 2},
		},
		{
			name: "both empty",
			a:    ints(),
			b:    ints(),
			want: []int{},
		},
		{
			name: "equal singletons",
			a:    ints(5),
			b:    ints(5),
			want: []int{5},
		},
		{
			name: "disjoint",
			a:    ints(1, 3, 5),
			b:    ints(2, 4, 6),
			want: []int{1, 2, 3, 4, 5, 6},
		},
		{
			name: "identical",
			a:    ints(1, 2, 3),
			b:    ints(1, 2, 3),
			want: []int{1, 2, 3},
		},
		{
			name: "interleaved tails",
			a:    ints(1, 2, 3, 4),
			b:    ints(4, 5, 6),
			want: []int{1, 2, 3, 4, 5, 6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := duo.NewUnion(tt.a, tt.b, compare)
			assert.Equal(t, tt.want, collect(u.All()))
			assert.Equal(t, tt.want, u.AppendTo([]int{}))
			assert.Equal(t, tt.want, u.Set().Slice())
		})
	}
}

func TestUnionIdempotent(t *testing.T) {
	a := ints(1, 2, 3)
	assert.Equal(t, a.Slice(), duo.NewUnion(a, a, compare).Set().Slice())
}

func TestUnionSizeBound(t *testing.T) {
	a := ints(1, 2, 3)
	b := ints(4, 5)
	// Disjoint operands meet the bound with equality.
	assert.Equal(t, a.Len()+b.Len(), duo.NewUnion(a, b, compare).Set().Len())

	c := ints(3, 4)
	assert.Less(t, duo.NewUnion(a, c, compare).Set().Len(), a.Len()+c.Len())
}

func TestUnionEarlyStop(t *testing.T) {
	u := duo.NewUnion(ints(1, 3, 5), ints(2, 4, 6), compare)
	var got []int
	for v := range u.All() {
		got = append(got, v)
		if len(got) == 3 {
			break
		}
	}
	assert.Equal(t, []int{1, 2, 3}, got)
}
