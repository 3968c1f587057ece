package sortidx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuild_DescendingWithIndexTieBreak(t *testing.T) {
	elev := []int32{5, 1, 5, 2, 4}
	order := Build(elev)
	require.Equal(t, []int{0, 2, 4, 3, 1}, order)
}

func TestBuild_NonIncreasingElevation(t *testing.T) {
	elev := []int32{3, 1, 4, 1, 5, 9, 2, 6}
	order := Build(elev)
	for k := 1; k < len(order); k++ {
		require.LessOrEqual(t, elev[order[k]], elev[order[k-1]], "order not non-increasing at k=%d", k)
	}
}

func TestBuild_Empty(t *testing.T) {
	require.Empty(t, Build(nil))
}
