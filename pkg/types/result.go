package types

// SearchResult is the outcome of one exploration run, read-only once
// produced.
type SearchResult struct {
	// BestPaths holds the top-ranked root-to-leaf paths, best first.
	BestPaths [][]*TreeNode `json:"best_paths"`

	// Insights are short human-readable findings synthesized from the paths.
	Insights []string `json:"insights"`

	// Nodes is the full node set of the tree, in creation order, for
	// inspection by the caller.
	Nodes []*TreeNode `json:"nodes"`

	// IterationsRun counts the expansion cycles actually performed.
	IterationsRun int `json:"iterations_run"`

	// NodeCount is the total number of nodes in the tree.
	NodeCount int `json:"node_count"`
}

// PathNode is the wire representation of a node inside a best path.
type PathNode struct {
	ID      string  `json:"id"`
	Label   string  `json:"label"`
	Content string  `json:"content,omitempty"`
	Score   float64 `json:"score"`
	Depth   int     `json:"depth"`
}

// PathToWire converts a path of tree nodes to its wire representation.
func PathToWire(path []*TreeNode) []PathNode {
	wire := make([]PathNode, len(path))
	for i, n := range path {
		wire[i] = PathNode{
			ID:      n.ID,
			Label:   n.State.Label,
			Content: n.State.Content,
			Score:   n.Score,
			Depth:   n.Depth,
		}
	}
	return wire
}
