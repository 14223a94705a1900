package multi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidvella/mergeset/multi"
	"github.com/davidvella/mergeset/set"
)

func TestIntersection(t *testing.T) {
	tests := []struct {
		name string
		sets []set.Set[int]
		want []int
	}{
		{
			name: "no operands",
			sets: operands(),
			want: []int{},
		},
		{
			name: "one operand passes through",
			sets: operands([]int{1, 2, 3}),
			want: []int{1, 2, 3},
		},
		{
			name: "one empty operand empties everything",
			sets: operands([]int{1, 2}, []int{}, []int{1, 2}),
			want: []int{},
		},
		{
			name: "two overlapping operands",
			sets: operands([]int{1, 2, 3}, []int{2, 3, 4}),
			want: []int{2, 3},
		},
		{
			name: "three operands with common core",
			sets: operands([]int{1, 2, 4}, []int{2, 3, 4, 5, 7}, []int{2, 4, 6, 7}),
			want: []int{2, 4},
		},
		{
			name: "overlapping ranges keep the common overlap",
			sets: operands(span(0, 100), span(1, 101), span(2, 102)),
			want: span(2, 100),
		},
		{
			name: "disjoint operands",
			sets: operands([]int{1, 3}, []int{2, 4}),
			want: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scan := multi.NewIntersection(compare, tt.sets)
			tree := multi.NewIntersection(compare, tt.sets, multi.WithTree())

			assert.Equal(t, tt.want, collect(scan.All()))
			assert.Equal(t, tt.want, collect(tree.All()))
			assert.Equal(t, tt.want, scan.AppendTo([]int{}))
			assert.Equal(t, tt.want, scan.Set().Slice())
			assert.Equal(t, tt.want, tree.Set().Slice())
		})
	}
}

func TestIntersectionScanTreeEquivalence(t *testing.T) {
	r := newRand()

	for range 100 {
		sets := randomOperands(r, 6)
		scan := collect(multi.NewIntersection(compare, sets).All())
		tree := collect(multi.NewIntersection(compare, sets, multi.WithTree()).All())
		require.Equal(t, scan, tree)
		requireValid(t, scan)
	}
}
