package driver

import (
	"context"
	"fmt"
	"sync"

	"github.com/soundprediction/ramify/pkg/types"
)

// MemoryStore is an in-memory GraphStore used by tests and examples.
type MemoryStore struct {
	mu       sync.RWMutex
	entities map[string]types.Entity
	results  map[string]*types.SearchResult
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entities: make(map[string]types.Entity),
		results:  make(map[string]*types.SearchResult),
	}
}

// AddEntity registers an entity under its SourceID.
func (s *MemoryStore) AddEntity(entity types.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entities[entity.SourceID] = entity
}

// FetchSeeds implements GraphStore.
func (s *MemoryStore) FetchSeeds(ctx context.Context, ids []string) ([]types.Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entities := make([]types.Entity, 0, len(ids))
	for _, id := range ids {
		entity, ok := s.entities[id]
		if !ok {
			return nil, fmt.Errorf("%w: concept %s", types.ErrNodeNotFound, id)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

// SaveResult implements GraphStore.
func (s *MemoryStore) SaveResult(ctx context.Context, runID string, result *types.SearchResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[runID] = result
	return nil
}

// Result returns a previously saved result, if any.
func (s *MemoryStore) Result(runID string) (*types.SearchResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result, ok := s.results[runID]
	return result, ok
}

// Close implements GraphStore.
func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}
