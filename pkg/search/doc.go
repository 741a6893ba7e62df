// Package search implements the tree-exploration primitives: UCB frontier
// selection, backpropagation of expansion outcomes, greedy best-path
// extraction, insight synthesis, and optional embedding-based novelty
// rescoring of candidates.
package search
