package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundprediction/ramify/pkg/generator"
	"github.com/soundprediction/ramify/pkg/types"
)

type stubEmbedder struct {
	vectors [][]float32
	err     error
}

func (s *stubEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.vectors, nil
}

func (s *stubEmbedder) EmbedSingle(ctx context.Context, text string) ([]float32, error) {
	vectors, err := s.Embed(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

func (s *stubEmbedder) Close() error { return nil }

func TestRescoreBlendsNovelty(t *testing.T) {
	// The first candidate is identical to the parent (novelty 0), the second
	// is orthogonal (novelty 1).
	stub := &stubEmbedder{vectors: [][]float32{
		{1, 0},
		{1, 0},
		{0, 1},
	}}
	scorer := NewNoveltyScorer(stub, 0.5)

	parent := types.Entity{Label: "AI"}
	candidates := []generator.Candidate{
		{Label: "duplicate", Score: 0.8},
		{Label: "orthogonal", Score: 0.8},
	}

	adjusted := scorer.Rescore(context.Background(), parent, candidates)
	require.Len(t, adjusted, 2)
	assert.InDelta(t, 0.4, adjusted[0].Score, 1e-9)
	assert.InDelta(t, 0.9, adjusted[1].Score, 1e-9)
}

func TestRescoreEmbedFailure(t *testing.T) {
	scorer := NewNoveltyScorer(&stubEmbedder{err: errors.New("backend down")}, 0.3)

	candidates := []generator.Candidate{{Label: "a", Score: 0.7}}
	adjusted := scorer.Rescore(context.Background(), types.Entity{Label: "AI"}, candidates)

	require.Len(t, adjusted, 1)
	assert.InDelta(t, 0.7, adjusted[0].Score, 1e-9)
}

func TestRescoreEmptyCandidates(t *testing.T) {
	scorer := NewNoveltyScorer(&stubEmbedder{}, 0.3)
	assert.Empty(t, scorer.Rescore(context.Background(), types.Entity{Label: "AI"}, nil))
}

func TestNewNoveltyScorerWeightFallback(t *testing.T) {
	scorer := NewNoveltyScorer(&stubEmbedder{}, 0)
	assert.InDelta(t, 0.3, scorer.weight, 1e-9)

	scorer = NewNoveltyScorer(&stubEmbedder{}, 1.5)
	assert.InDelta(t, 0.3, scorer.weight, 1e-9)
}
