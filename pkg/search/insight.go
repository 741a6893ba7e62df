package search

import (
	"fmt"
	"sort"
	"strings"

	"github.com/soundprediction/ramify/pkg/types"
)

// NoPathsMessage is returned by Synthesize when extraction yielded nothing.
const NoPathsMessage = "No promising exploration paths were found."

// Synthesize is a pure function of the extracted paths. It reports how many
// paths were found, their mean length, and the three most frequently
// recurring concept labels across all path nodes (ties broken by first-seen
// order). It always returns at least one string and never fails.
func Synthesize(paths [][]*types.TreeNode) []string {
	if len(paths) == 0 {
		return []string{NoPathsMessage}
	}

	insights := make([]string, 0, 3)
	insights = append(insights, fmt.Sprintf("Found %d promising exploration path(s).", len(paths)))

	totalNodes := 0
	for _, path := range paths {
		totalNodes += len(path)
	}
	meanLength := float64(totalNodes) / float64(len(paths))
	insights = append(insights, fmt.Sprintf("Average path length: %.1f concepts.", meanLength))

	if top := topLabels(paths, 3); len(top) > 0 {
		insights = append(insights, fmt.Sprintf("Recurring concepts: %s.", strings.Join(top, ", ")))
	}
	return insights
}

func topLabels(paths [][]*types.TreeNode, limit int) []string {
	counts := make(map[string]int)
	var firstSeen []string
	for _, path := range paths {
		for _, node := range path {
			label := node.State.Label
			if label == "" {
				continue
			}
			if counts[label] == 0 {
				firstSeen = append(firstSeen, label)
			}
			counts[label]++
		}
	}

	// Stable sort over first-seen order keeps ties deterministic.
	sort.SliceStable(firstSeen, func(i, j int) bool {
		return counts[firstSeen[i]] > counts[firstSeen[j]]
	})
	if len(firstSeen) > limit {
		firstSeen = firstSeen[:limit]
	}
	return firstSeen
}
