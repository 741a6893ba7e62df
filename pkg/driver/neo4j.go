package driver

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/soundprediction/ramify/pkg/types"
)

// Neo4jStore implements GraphStore against a Neo4j database. Concepts are
// stored as (:Concept {uuid, name, content}) nodes.
type Neo4jStore struct {
	client   neo4j.DriverWithContext
	database string
}

// NewNeo4jStore creates a new Neo4j-backed graph store.
func NewNeo4jStore(uri, username, password, database string) (*Neo4jStore, error) {
	client, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, fmt.Errorf("failed to create neo4j driver: %w", err)
	}

	if database == "" {
		database = "neo4j"
	}

	return &Neo4jStore{
		client:   client,
		database: database,
	}, nil
}

// FetchSeeds loads concept entities by uuid, preserving the requested order.
func (s *Neo4jStore) FetchSeeds(ctx context.Context, ids []string) ([]types.Entity, error) {
	session := s.client.NewSession(ctx, neo4j.SessionConfig{DatabaseName: s.database})
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		query := `
			MATCH (n:Concept)
			WHERE n.uuid IN $ids
			RETURN n.uuid AS uuid, n.name AS name, n.content AS content
		`
		res, err := tx.Run(ctx, query, map[string]any{"ids": ids})
		if err != nil {
			return nil, err
		}

		byID := make(map[string]types.Entity)
		for res.Next(ctx) {
			record := res.Record()
			entity := types.Entity{}
			if uuid, ok := record.Get("uuid"); ok {
				entity.SourceID, _ = uuid.(string)
			}
			if name, ok := record.Get("name"); ok {
				entity.Label, _ = name.(string)
			}
			if content, ok := record.Get("content"); ok {
				entity.Content, _ = content.(string)
			}
			byID[entity.SourceID] = entity
		}
		return byID, res.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch seeds: %w", err)
	}

	byID := result.(map[string]types.Entity)
	entities := make([]types.Entity, 0, len(ids))
	for _, id := range ids {
		entity, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: concept %s", types.ErrNodeNotFound, id)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

// SaveResult writes each best path back to the graph: concept nodes are
// merged by label and consecutive path nodes are linked with EXPLORED_TO
// edges carrying the run id and the child's score.
func (s *Neo4jStore) SaveResult(ctx context.Context, runID string, result *types.SearchResult) error {
	session := s.client.NewSession(ctx, neo4j.SessionConfig{DatabaseName: s.database})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		for _, path := range result.BestPaths {
			for i := 1; i < len(path); i++ {
				parent, child := path[i-1], path[i]
				query := `
					MERGE (a:Concept {name: $parentName})
					ON CREATE SET a.uuid = $parentID, a.content = $parentContent
					MERGE (b:Concept {name: $childName})
					ON CREATE SET b.uuid = $childID, b.content = $childContent
					MERGE (a)-[r:EXPLORED_TO {run_id: $runID}]->(b)
					SET r.score = $score, r.depth = $depth
				`
				_, err := tx.Run(ctx, query, map[string]any{
					"parentName":    parent.State.Label,
					"parentID":      parent.ID,
					"parentContent": parent.State.Content,
					"childName":     child.State.Label,
					"childID":       child.ID,
					"childContent":  child.State.Content,
					"runID":         runID,
					"score":         child.Score,
					"depth":         child.Depth,
				})
				if err != nil {
					return nil, err
				}
			}
		}
		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("failed to save exploration result: %w", err)
	}
	return nil
}

// Close implements GraphStore.
func (s *Neo4jStore) Close(ctx context.Context) error {
	return s.client.Close(ctx)
}
