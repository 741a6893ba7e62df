package generator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/soundprediction/ramify/pkg/types"
)

// DefaultCacheTTL is how long a cached generation stays valid.
const DefaultCacheTTL = 24 * time.Hour

// CachedGenerator memoizes responses of the wrapped Generator in a local
// badger store, keyed by the parent label and the requested count. The cache
// sits at the collaborator boundary only; the search tree itself is never
// persisted.
type CachedGenerator struct {
	inner  Generator
	db     *badger.DB
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedGenerator opens (or creates) a badger store at path and wraps
// inner with it. A ttl of zero uses DefaultCacheTTL.
func NewCachedGenerator(path string, inner Generator, ttl time.Duration) (*CachedGenerator, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open generation cache: %w", err)
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	return &CachedGenerator{
		inner:  inner,
		db:     db,
		ttl:    ttl,
		logger: slog.Default(),
	}, nil
}

// Generate implements Generator. Cache read or write failures fall through
// to the wrapped generator; a failing cache never fails an expansion.
func (c *CachedGenerator) Generate(ctx context.Context, parent types.Entity, count int) ([]Candidate, error) {
	key := cacheKey(parent, count)

	if candidates, ok := c.get(key); ok {
		c.logger.Debug("generation cache hit", "parent", parent.Label, "count", count)
		return candidates, nil
	}

	candidates, err := c.inner.Generate(ctx, parent, count)
	if err != nil {
		return nil, err
	}
	c.put(key, candidates)
	return candidates, nil
}

// Close closes the cache store and the wrapped generator.
func (c *CachedGenerator) Close() error {
	innerErr := c.inner.Close()
	if err := c.db.Close(); err != nil {
		return err
	}
	return innerErr
}

func (c *CachedGenerator) get(key []byte) ([]Candidate, bool) {
	var candidates []Candidate
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &candidates)
		})
	})
	if err != nil {
		if !errors.Is(err, badger.ErrKeyNotFound) {
			c.logger.Warn("generation cache read failed", "error", err)
		}
		return nil, false
	}
	return candidates, true
}

func (c *CachedGenerator) put(key []byte, candidates []Candidate) {
	data, err := json.Marshal(candidates)
	if err != nil {
		c.logger.Warn("generation cache encode failed", "error", err)
		return
	}
	err = c.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry(key, data).WithTTL(c.ttl)
		return txn.SetEntry(entry)
	})
	if err != nil {
		c.logger.Warn("generation cache write failed", "error", err)
	}
}

func cacheKey(parent types.Entity, count int) []byte {
	return []byte(fmt.Sprintf("gen|%s|%s|%d", parent.Label, parent.SourceID, count))
}
