package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/broccoli/tree"
)

func TestHeightHeuristicTargetsElementsPerLeaf(t *testing.T) {
	tr, err := tree.BuildWith[int, box](randomBoxes(1000, 11), tree.WithElementsPerLeaf(50))
	require.NoError(t, err)
	assert.Equal(t, 1000, tr.Len())
	assert.GreaterOrEqual(t, tr.Height(), 1)
	assert.Equal(t, (1<<uint(tr.Height()))-1, tr.NumNodes())
}

func TestWithElementsPerLeafIgnoresNonPositive(t *testing.T) {
	a, err := tree.BuildWith[int, box](randomBoxes(200, 12), tree.WithElementsPerLeaf(0))
	require.NoError(t, err)
	b, err := tree.BuildWith[int, box](randomBoxes(200, 12), tree.WithElementsPerLeaf(-5))
	require.NoError(t, err)
	assert.Equal(t, a.Height(), b.Height(), "non-positive elements-per-leaf should fall back to the default, not change behavior")
}
