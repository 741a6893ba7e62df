package tree

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/soundprediction/ramify/pkg/types"
)

// SearchTree is the exclusive owner of all tree nodes for one exploration
// run. It is an append-only arena: nodes are keyed by id, parent and child
// references are ids into the same arena, and no node is ever removed.
// A stable insertion-order index keeps selection and extraction
// deterministic.
//
// Thread Safety: not safe for concurrent use. One run owns one tree;
// independent runs own independent trees.
type SearchTree struct {
	nodes map[string]*types.TreeNode
	order []string
	roots []string
}

// Seed creates a tree with one root node per entity, in the order given.
// Roots start at depth 0 with one visit and the given initial score.
func Seed(entities []types.Entity, initialScore float64) (*SearchTree, error) {
	if len(entities) == 0 {
		return nil, types.ErrEmptySeed
	}

	t := &SearchTree{
		nodes: make(map[string]*types.TreeNode, len(entities)),
	}
	for _, entity := range entities {
		if err := entity.Validate(); err != nil {
			return nil, fmt.Errorf("invalid seed entity: %w", err)
		}
		root := &types.TreeNode{
			ID:     uuid.New().String(),
			State:  entity,
			Score:  clampScore(initialScore),
			Visits: 1,
		}
		t.nodes[root.ID] = root
		t.order = append(t.order, root.ID)
		t.roots = append(t.roots, root.ID)
	}
	return t, nil
}

// Insert creates a child node under parentID and returns its id. The child
// is created at depth parent+1 with one visit, and its id is appended to the
// parent's ChildIDs. Fails with types.ErrUnknownParent if the parent is not
// in the tree.
func (t *SearchTree) Insert(parentID string, entity types.Entity, score float64) (string, error) {
	parent, ok := t.nodes[parentID]
	if !ok {
		return "", fmt.Errorf("%w: %s", types.ErrUnknownParent, parentID)
	}

	child := &types.TreeNode{
		ID:       uuid.New().String(),
		State:    entity,
		Score:    clampScore(score),
		Visits:   1,
		ParentID: parentID,
		Depth:    parent.Depth + 1,
	}
	t.nodes[child.ID] = child
	t.order = append(t.order, child.ID)
	parent.ChildIDs = append(parent.ChildIDs, child.ID)
	return child.ID, nil
}

// Lookup returns the node with the given id.
func (t *SearchTree) Lookup(id string) (*types.TreeNode, error) {
	node, ok := t.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", types.ErrNodeNotFound, id)
	}
	return node, nil
}

// Nodes returns all nodes in creation order.
func (t *SearchTree) Nodes() []*types.TreeNode {
	nodes := make([]*types.TreeNode, 0, len(t.order))
	for _, id := range t.order {
		nodes = append(nodes, t.nodes[id])
	}
	return nodes
}

// Roots returns the root nodes in seed order.
func (t *SearchTree) Roots() []*types.TreeNode {
	roots := make([]*types.TreeNode, 0, len(t.roots))
	for _, id := range t.roots {
		roots = append(roots, t.nodes[id])
	}
	return roots
}

// TotalVisits sums the visit counts across the whole tree.
func (t *SearchTree) TotalVisits() int {
	total := 0
	for _, id := range t.order {
		total += t.nodes[id].Visits
	}
	return total
}

// Len returns the number of nodes in the tree.
func (t *SearchTree) Len() int {
	return len(t.order)
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
