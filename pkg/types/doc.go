// Package types defines the shared data model for the ramify exploration
// engine: entities, tree nodes, search strategies, results, and the sentinel
// errors used across packages.
package types
