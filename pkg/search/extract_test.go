package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundprediction/ramify/pkg/types"
)

func pathLabels(path []*types.TreeNode) []string {
	labels := make([]string, 0, len(path))
	for _, node := range path {
		labels = append(labels, node.State.Label)
	}
	return labels
}

func TestExtractFollowsBestChild(t *testing.T) {
	tr := seedTree(t, "AI")
	root := tr.Roots()[0]
	mlID, err := tr.Insert(root.ID, types.Entity{Label: "ML"}, 0.6)
	require.NoError(t, err)
	_, err = tr.Insert(root.ID, types.Entity{Label: "NLP"}, 0.4)
	require.NoError(t, err)
	_, err = tr.Insert(mlID, types.Entity{Label: "deep learning"}, 0.7)
	require.NoError(t, err)

	paths := Extract(tr, 3)
	require.Len(t, paths, 1)
	assert.Equal(t, []string{"AI", "ML", "deep learning"}, pathLabels(paths[0]))
}

func TestExtractTieBreaksOnChildOrder(t *testing.T) {
	tr := seedTree(t, "root")
	root := tr.Roots()[0]
	_, err := tr.Insert(root.ID, types.Entity{Label: "first"}, 0.5)
	require.NoError(t, err)
	_, err = tr.Insert(root.ID, types.Entity{Label: "second"}, 0.5)
	require.NoError(t, err)

	paths := Extract(tr, 1)
	require.Len(t, paths, 1)
	assert.Equal(t, []string{"root", "first"}, pathLabels(paths[0]))
}

func TestExtractDiscardsLonePaths(t *testing.T) {
	tr := seedTree(t, "isolated")
	assert.Empty(t, Extract(tr, 3))
}

func TestExtractOrdersByMeanScore(t *testing.T) {
	tr := seedTree(t, "weak", "strong")
	roots := tr.Roots()
	roots[0].Score = 0.2
	roots[1].Score = 0.9
	_, err := tr.Insert(roots[0].ID, types.Entity{Label: "weak child"}, 0.3)
	require.NoError(t, err)
	_, err = tr.Insert(roots[1].ID, types.Entity{Label: "strong child"}, 0.8)
	require.NoError(t, err)

	paths := Extract(tr, 3)
	require.Len(t, paths, 2)
	assert.Equal(t, "strong", paths[0][0].State.Label)
	assert.Equal(t, "weak", paths[1][0].State.Label)
}

func TestExtractCapsAtTopK(t *testing.T) {
	tr := seedTree(t, "a", "b", "c")
	for _, root := range tr.Roots() {
		_, err := tr.Insert(root.ID, types.Entity{Label: root.State.Label + " child"}, 0.5)
		require.NoError(t, err)
	}

	paths := Extract(tr, 2)
	assert.Len(t, paths, 2)
}

func TestExtractZeroTopK(t *testing.T) {
	tr := seedTree(t, "root")
	assert.Nil(t, Extract(tr, 0))
}

func TestExtractSharedVisited(t *testing.T) {
	// The first root claims its whole chain; the second root's walk stops
	// immediately because it has no unvisited children, so its length-one
	// path is dropped.
	tr := seedTree(t, "primary", "bare")
	primary := tr.Roots()[0]
	childID, err := tr.Insert(primary.ID, types.Entity{Label: "branch"}, 0.6)
	require.NoError(t, err)
	_, err = tr.Insert(childID, types.Entity{Label: "tip"}, 0.7)
	require.NoError(t, err)

	paths := Extract(tr, 5)
	require.Len(t, paths, 1)
	assert.Equal(t, []string{"primary", "branch", "tip"}, pathLabels(paths[0]))
}
