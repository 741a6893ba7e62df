package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundprediction/ramify/pkg/tree"
	"github.com/soundprediction/ramify/pkg/types"
)

func seedTree(t *testing.T, labels ...string) *tree.SearchTree {
	t.Helper()
	entities := make([]types.Entity, 0, len(labels))
	for _, label := range labels {
		entities = append(entities, types.Entity{Label: label})
	}
	tr, err := tree.Seed(entities, 0.5)
	require.NoError(t, err)
	return tr
}

func TestSelectPrefersHigherScore(t *testing.T) {
	tr := seedTree(t, "low", "high")
	roots := tr.Roots()
	roots[0].Score = 0.2
	roots[1].Score = 0.9

	strategy := types.DefaultStrategy()
	id, ok := Select(tr, strategy)
	require.True(t, ok)
	assert.Equal(t, roots[1].ID, id)
}

func TestSelectTieBreaksOnCreationOrder(t *testing.T) {
	tr := seedTree(t, "first", "second", "third")

	id, ok := Select(tr, types.DefaultStrategy())
	require.True(t, ok)
	assert.Equal(t, tr.Roots()[0].ID, id)
}

func TestSelectPrefersUnvisited(t *testing.T) {
	// Equal scores, but the heavily visited node has a smaller exploration
	// bonus, so the fresh node wins despite coming later in creation order.
	tr := seedTree(t, "stale", "fresh")
	roots := tr.Roots()
	roots[0].Visits = 10
	roots[0].Score = 0.5
	roots[1].Visits = 1
	roots[1].Score = 0.5

	id, ok := Select(tr, types.DefaultStrategy())
	require.True(t, ok)
	assert.Equal(t, roots[1].ID, id)
}

func TestSelectSkipsExpanded(t *testing.T) {
	tr := seedTree(t, "done", "open")
	roots := tr.Roots()
	roots[0].Expanded = true

	id, ok := Select(tr, types.DefaultStrategy())
	require.True(t, ok)
	assert.Equal(t, roots[1].ID, id)
}

func TestSelectRespectsDepthBound(t *testing.T) {
	tr := seedTree(t, "root")
	root := tr.Roots()[0]
	childID, err := tr.Insert(root.ID, types.Entity{Label: "child"}, 0.9)
	require.NoError(t, err)
	root.Expanded = true

	strategy := types.DefaultStrategy()
	strategy.MaxDepth = 1

	// The child sits at the depth bound and cannot be expanded.
	_, ok := Select(tr, strategy)
	assert.False(t, ok)

	strategy.MaxDepth = 2
	id, ok := Select(tr, strategy)
	require.True(t, ok)
	assert.Equal(t, childID, id)
}

func TestSelectExhausted(t *testing.T) {
	tr := seedTree(t, "a", "b")
	for _, root := range tr.Roots() {
		root.Expanded = true
	}

	id, ok := Select(tr, types.DefaultStrategy())
	assert.False(t, ok)
	assert.Empty(t, id)
}
