package search

import (
	"math"

	"github.com/soundprediction/ramify/pkg/tree"
	"github.com/soundprediction/ramify/pkg/types"
)

// Select picks the next frontier node to expand using the upper-confidence-
// bound rule. It scans all nodes that are not yet expanded and sit above the
// depth bound, computes
//
//	value = score/max(visits,1) + c * sqrt(ln(totalVisits) / visits)
//
// and returns the id of the node with the strictly greatest value. Ties go
// to the first node encountered in creation order, so selection is
// deterministic. The second return value is false when no eligible node
// remains, which ends the run before the iteration budget is spent.
func Select(t *tree.SearchTree, strategy types.SearchStrategy) (string, bool) {
	totalVisits := t.TotalVisits()

	bestID := ""
	bestValue := math.Inf(-1)
	for _, node := range t.Nodes() {
		if node.Expanded || node.Depth >= strategy.MaxDepth {
			continue
		}
		value := ucbValue(node, totalVisits, strategy.ExplorationConstant)
		if value > bestValue {
			bestID = node.ID
			bestValue = value
		}
	}
	return bestID, bestID != ""
}

func ucbValue(node *types.TreeNode, totalVisits int, explorationConstant float64) float64 {
	visits := node.Visits
	if visits < 1 {
		visits = 1
	}
	exploitation := node.Exploitation()
	exploration := explorationConstant * math.Sqrt(math.Log(float64(totalVisits))/float64(visits))
	return exploitation + exploration
}
