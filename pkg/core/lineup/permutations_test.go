package lineup

import (
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermutationCount(t *testing.T) {
	assert.Equal(t, 1, PermutationCount(0, 0))
	assert.Equal(t, 1, PermutationCount(1, 1))
	assert.Equal(t, 6, PermutationCount(3, 3))
	assert.Equal(t, 40320, PermutationCount(8, 8))
	assert.Equal(t, 20, PermutationCount(5, 2))
	assert.Equal(t, 0, PermutationCount(2, 3))
	assert.Equal(t, 0, PermutationCount(-1, 0))
}

func collect(t *testing.T, p *permuter) [][]int {
	t.Helper()
	var perms [][]int
	err := p.each(context.Background(), func(perm []int) {
		perms = append(perms, slices.Clone(perm))
	})
	require.NoError(t, err)
	return perms
}

func TestPermuter_LexicographicOrder(t *testing.T) {
	perms := collect(t, &permuter{n: 3, k: 3, first: -1})
	assert.Equal(t, [][]int{
		{0, 1, 2}, {0, 2, 1},
		{1, 0, 2}, {1, 2, 0},
		{2, 0, 1}, {2, 1, 0},
	}, perms)
}

func TestPermuter_FixedFirst(t *testing.T) {
	perms := collect(t, &permuter{n: 3, k: 3, first: 1})
	assert.Equal(t, [][]int{{1, 0, 2}, {1, 2, 0}}, perms)
}

func TestPermuter_PartialSelection(t *testing.T) {
	perms := collect(t, &permuter{n: 3, k: 2, first: -1})
	assert.Len(t, perms, PermutationCount(3, 2))
	assert.Equal(t, []int{0, 1}, perms[0])
	assert.Equal(t, []int{2, 1}, perms[len(perms)-1])
}

func TestPermuter_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &permuter{n: 3, k: 3, first: -1}
	err := p.each(ctx, func([]int) {})
	assert.ErrorIs(t, err, context.Canceled)
}
