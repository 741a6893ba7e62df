package search

import (
	"context"
	"log/slog"

	"github.com/soundprediction/ramify/pkg/embedder"
	"github.com/soundprediction/ramify/pkg/generator"
	"github.com/soundprediction/ramify/pkg/types"
)

// NoveltyScorer adjusts candidate scores by how far each proposal sits from
// its parent in embedding space, so near-duplicate proposals rank lower than
// genuinely new directions. The adjusted score blends the generator's own
// estimate with the cosine distance:
//
//	adjusted = (1-weight)*score + weight*(1 - cosine(parent, candidate))
//
// Embedding failures leave the original scores untouched; novelty scoring
// never fails an expansion.
type NoveltyScorer struct {
	embedder embedder.Client
	weight   float64
	logger   *slog.Logger
}

// NewNoveltyScorer creates a scorer blending with the given weight in (0,1].
func NewNoveltyScorer(client embedder.Client, weight float64) *NoveltyScorer {
	if weight <= 0 || weight > 1 {
		weight = 0.3
	}
	return &NoveltyScorer{
		embedder: client,
		weight:   weight,
		logger:   slog.Default(),
	}
}

// Rescore returns the candidates with novelty-adjusted scores.
func (s *NoveltyScorer) Rescore(ctx context.Context, parent types.Entity, candidates []generator.Candidate) []generator.Candidate {
	if len(candidates) == 0 {
		return candidates
	}

	texts := make([]string, 0, len(candidates)+1)
	texts = append(texts, embedText(parent.Label, parent.Content))
	for _, c := range candidates {
		texts = append(texts, embedText(c.Label, c.Content))
	}

	vectors, err := s.embedder.Embed(ctx, texts)
	if err != nil || len(vectors) != len(texts) {
		s.logger.Warn("novelty scoring skipped", "parent", parent.Label, "error", err)
		return candidates
	}

	parentVec := vectors[0]
	adjusted := make([]generator.Candidate, len(candidates))
	for i, c := range candidates {
		similarity := embedder.CosineSimilarity(parentVec, vectors[i+1])
		novelty := 1 - similarity
		c.Score = generator.ClampScore((1-s.weight)*c.Score + s.weight*novelty)
		adjusted[i] = c
	}
	return adjusted
}

func embedText(label, content string) string {
	if content == "" {
		return label
	}
	return label + ": " + content
}
