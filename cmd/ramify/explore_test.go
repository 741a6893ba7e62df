package ramify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundprediction/ramify/pkg/config"
	"github.com/soundprediction/ramify/pkg/driver"
	"github.com/soundprediction/ramify/pkg/types"
)

func TestOpenGraphStore(t *testing.T) {
	store, err := openGraphStore(&config.Config{Graph: config.GraphConfig{Driver: "memory"}})
	require.NoError(t, err)
	assert.IsType(t, &driver.MemoryStore{}, store)

	store, err = openGraphStore(&config.Config{})
	require.NoError(t, err)
	assert.IsType(t, &driver.MemoryStore{}, store)

	_, err = openGraphStore(&config.Config{Graph: config.GraphConfig{Driver: "bolt"}})
	assert.ErrorContains(t, err, "unknown graph driver")
}

func TestCollectSeedsFromGraphStore(t *testing.T) {
	store := driver.NewMemoryStore()
	store.AddEntity(types.Entity{Label: "AI", SourceID: "c1"})
	store.AddEntity(types.Entity{Label: "biology", SourceID: "c2"})

	seedIDs = []string{"c2", "c1"}
	seedLabels = []string{"chemistry"}
	t.Cleanup(func() {
		seedIDs = nil
		seedLabels = nil
	})

	seeds, err := collectSeeds(context.Background(), store)
	require.NoError(t, err)
	require.Len(t, seeds, 3)

	// Graph seeds come first in requested-id order, then flag seeds.
	assert.Equal(t, "biology", seeds[0].Label)
	assert.Equal(t, "AI", seeds[1].Label)
	assert.Equal(t, "chemistry", seeds[2].Label)
}

func TestCollectSeedsFromGraphStoreMissing(t *testing.T) {
	store := driver.NewMemoryStore()

	seedIDs = []string{"nope"}
	t.Cleanup(func() { seedIDs = nil })

	_, err := collectSeeds(context.Background(), store)
	assert.ErrorIs(t, err, types.ErrNodeNotFound)
}

func TestCollectSeedsEmpty(t *testing.T) {
	_, err := collectSeeds(context.Background(), nil)
	assert.ErrorIs(t, err, types.ErrEmptySeed)
}
