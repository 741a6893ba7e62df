// Package tree implements the append-only search tree arena that owns all
// nodes for a single exploration run.
package tree
