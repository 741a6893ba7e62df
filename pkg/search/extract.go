package search

import (
	"sort"

	"github.com/soundprediction/ramify/pkg/tree"
	"github.com/soundprediction/ramify/pkg/types"
)

// Extract walks the tree greedily from every root and returns up to topK
// root-to-leaf paths, best first. At each step the walk moves to the
// highest-scoring child not yet placed into a path during this call (ties go
// to the earlier child in ChildIDs order). The visited set is shared across
// roots, so a subtree already claimed by one path is not re-walked by
// another. Paths of length one are discarded; the survivors are ordered by
// mean node score, descending.
func Extract(t *tree.SearchTree, topK int) [][]*types.TreeNode {
	if topK <= 0 {
		return nil
	}

	visited := make(map[string]bool)
	var paths [][]*types.TreeNode

	for _, root := range t.Roots() {
		if visited[root.ID] {
			continue
		}
		visited[root.ID] = true

		path := []*types.TreeNode{root}
		current := root
		for {
			var next *types.TreeNode
			for _, childID := range current.ChildIDs {
				child, err := t.Lookup(childID)
				if err != nil || visited[child.ID] {
					continue
				}
				if next == nil || child.Score > next.Score {
					next = child
				}
			}
			if next == nil {
				break
			}
			visited[next.ID] = true
			path = append(path, next)
			current = next
		}

		if len(path) < 2 {
			continue
		}
		paths = append(paths, path)
	}

	sort.SliceStable(paths, func(i, j int) bool {
		return meanScore(paths[i]) > meanScore(paths[j])
	})
	if len(paths) > topK {
		paths = paths[:topK]
	}
	return paths
}

func meanScore(path []*types.TreeNode) float64 {
	if len(path) == 0 {
		return 0
	}
	sum := 0.0
	for _, node := range path {
		sum += node.Score
	}
	return sum / float64(len(path))
}
