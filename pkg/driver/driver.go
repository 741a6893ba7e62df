// Package driver connects the exploration engine to the surrounding concept
// graph: it loads seed entities from the graph and writes accepted
// exploration results back as nodes and edges.
package driver

import (
	"context"

	"github.com/soundprediction/ramify/pkg/types"
)

// GraphStore is the boundary to the surrounding application's concept graph.
// The engine itself never touches the graph; only the seed entities flow in
// and extracted paths flow out.
type GraphStore interface {
	// FetchSeeds loads the entities with the given ids, in the order given.
	FetchSeeds(ctx context.Context, ids []string) ([]types.Entity, error)

	// SaveResult persists the best paths of a finished run as concept nodes
	// and EXPLORED_TO edges, tagged with the run id.
	SaveResult(ctx context.Context, runID string, result *types.SearchResult) error

	// Close releases the underlying connection.
	Close(ctx context.Context) error
}
