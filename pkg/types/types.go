package types

import "errors"

// Validation errors
var (
	ErrEmptySeed       = errors.New("at least one seed entity is required")
	ErrEmptyLabel      = errors.New("label cannot be empty")
	ErrUnknownParent   = errors.New("parent node not found in tree")
	ErrNodeNotFound    = errors.New("node not found")
	ErrInvalidStrategy = errors.New("invalid search strategy")
)

// Entity is the opaque payload carried by a tree node: a concept drawn from
// (or proposed for) the surrounding knowledge graph. Immutable once attached
// to a node.
type Entity struct {
	Label    string `json:"label" mapstructure:"label" yaml:"label"`
	Content  string `json:"content,omitempty" mapstructure:"content" yaml:"content"`
	SourceID string `json:"source_id,omitempty" mapstructure:"source_id" yaml:"source_id"`
}

// Validate checks if the Entity has all required fields set.
func (e *Entity) Validate() error {
	if e.Label == "" {
		return ErrEmptyLabel
	}
	return nil
}

// TreeNode is a node in the exploration tree. ID, State, ParentID and Depth
// are fixed at creation; Score, Visits, ChildIDs and Expanded are updated as
// the search progresses.
type TreeNode struct {
	ID       string   `json:"id"`
	State    Entity   `json:"state"`
	Score    float64  `json:"score"`
	Visits   int      `json:"visits"`
	ParentID string   `json:"parent_id,omitempty"`
	ChildIDs []string `json:"child_ids,omitempty"`
	Expanded bool     `json:"expanded"`
	Depth    int      `json:"depth"`
}

// IsRoot returns true if this node has no parent.
func (n *TreeNode) IsRoot() bool {
	return n.ParentID == ""
}

// IsLeaf returns true if this node has no children.
func (n *TreeNode) IsLeaf() bool {
	return len(n.ChildIDs) == 0
}

// Exploitation returns the node's average quality estimate, score per visit.
func (n *TreeNode) Exploitation() float64 {
	visits := n.Visits
	if visits < 1 {
		visits = 1
	}
	return n.Score / float64(visits)
}
