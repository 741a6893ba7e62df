package search

import (
	"github.com/soundprediction/ramify/pkg/tree"
)

// Propagate pushes the outcome of an expansion up the ancestor chain,
// starting at the expanded node and walking parent links to a root. At each
// level the visit count is incremented; when childScores is non-empty the
// score moves halfway toward the mean of the new children:
//
//	score = (score + mean(childScores)) / 2
//
// The same flat childScores list is applied at every level; attenuation
// comes only from the repeated averaging. An empty childScores list (failed
// or empty expansion) still increments visits.
//
// The walk is iterative, and because parent links are assigned once at
// creation in an append-only arena, it cannot cycle.
func Propagate(t *tree.SearchTree, nodeID string, childScores []float64) error {
	outcome := 0.0
	if len(childScores) > 0 {
		outcome = mean(childScores)
	}

	id := nodeID
	for id != "" {
		node, err := t.Lookup(id)
		if err != nil {
			return err
		}
		node.Visits++
		if len(childScores) > 0 {
			node.Score = (node.Score + outcome) / 2
		}
		id = node.ParentID
	}
	return nil
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
