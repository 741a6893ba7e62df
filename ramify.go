package ramify

import (
	"context"
	"log/slog"
	"time"

	"github.com/soundprediction/ramify/pkg/generator"
	"github.com/soundprediction/ramify/pkg/search"
	"github.com/soundprediction/ramify/pkg/tree"
	"github.com/soundprediction/ramify/pkg/types"
)

// Explorer is the interface for running concept explorations. It is
// satisfied by *Engine and by test doubles.
type Explorer interface {
	// Explore grows a search tree from the seed entities and returns the
	// best paths and synthesized insights.
	Explore(ctx context.Context, seeds []types.Entity, strategy types.SearchStrategy) (*types.SearchResult, error)
}

// Engine runs best-first explorations. An Engine is stateless across runs:
// every Explore call builds its own tree, so one Engine may serve concurrent
// runs as long as the underlying Generator allows it.
type Engine struct {
	generator generator.Generator
	novelty   *search.NoveltyScorer
	logger    *slog.Logger
	timeout   time.Duration
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithNoveltyScorer enables embedding-based rescoring of candidates.
func WithNoveltyScorer(scorer *search.NoveltyScorer) Option {
	return func(e *Engine) {
		e.novelty = scorer
	}
}

// WithTimeout bounds each Explore call with a context deadline.
func WithTimeout(timeout time.Duration) Option {
	return func(e *Engine) {
		e.timeout = timeout
	}
}

// NewEngine creates an exploration engine around a content generator.
func NewEngine(gen generator.Generator, opts ...Option) *Engine {
	e := &Engine{
		generator: gen,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Explore runs one exploration: seed, then iterate select → expand →
// insert → backpropagate until the iteration budget or the frontier is
// exhausted, then extract the best paths and synthesize insights.
//
// The only hard failures are invalid input (no seeds, bad strategy) and a
// broken tree invariant. Generator failures degrade to empty expansions: the
// selected node is still marked expanded so it is never reselected, and the
// run continues. Cancellation is checked before each iteration; a cancelled
// run returns the result built from the tree as it stands.
func (e *Engine) Explore(ctx context.Context, seeds []types.Entity, strategy types.SearchStrategy) (*types.SearchResult, error) {
	if len(seeds) == 0 {
		return nil, types.ErrEmptySeed
	}
	strategy.Normalize()
	if err := strategy.Validate(); err != nil {
		return nil, err
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	t, err := tree.Seed(seeds, strategy.InitialScore)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	iterations := 0
	for i := 0; i < strategy.MaxIterations; i++ {
		if ctx.Err() != nil {
			e.logger.Info("exploration cancelled",
				"iterations", iterations,
				"nodes", t.Len())
			break
		}

		nodeID, ok := search.Select(t, strategy)
		if !ok {
			e.logger.Debug("frontier exhausted", "iterations", iterations)
			break
		}
		node, err := t.Lookup(nodeID)
		if err != nil {
			return nil, err
		}

		candidates := e.expand(ctx, node, strategy)
		node.Expanded = true

		childScores := make([]float64, 0, len(candidates))
		for _, c := range candidates {
			entity := types.Entity{
				Label:    c.Label,
				Content:  c.Content,
				SourceID: node.State.SourceID,
			}
			if _, err := t.Insert(nodeID, entity, c.Score); err != nil {
				// UnknownParent here means a broken invariant; do not
				// swallow it.
				return nil, err
			}
			childScores = append(childScores, c.Score)
		}

		if err := search.Propagate(t, nodeID, childScores); err != nil {
			return nil, err
		}
		iterations++
	}

	paths := search.Extract(t, strategy.TopPaths)
	result := &types.SearchResult{
		BestPaths:     paths,
		Insights:      search.Synthesize(paths),
		Nodes:         t.Nodes(),
		IterationsRun: iterations,
		NodeCount:     t.Len(),
	}

	e.logger.Info("exploration complete",
		"iterations", iterations,
		"nodes", result.NodeCount,
		"paths", len(paths),
		"duration", time.Since(start))
	return result, nil
}

// expand asks the generator for candidates and applies novelty rescoring.
// A generator failure yields zero candidates for this cycle; the caller
// still marks the node expanded.
func (e *Engine) expand(ctx context.Context, node *types.TreeNode, strategy types.SearchStrategy) []generator.Candidate {
	candidates, err := e.generator.Generate(ctx, node.State, strategy.FanOut)
	if err != nil {
		e.logger.Warn("expansion failed, node marked expanded without children",
			"node_id", node.ID,
			"label", node.State.Label,
			"error", err)
		return nil
	}
	if len(candidates) > strategy.FanOut {
		candidates = candidates[:strategy.FanOut]
	}
	for i := range candidates {
		candidates[i].Score = generator.ClampScore(candidates[i].Score)
	}
	if e.novelty != nil {
		candidates = e.novelty.Rescore(ctx, node.State, candidates)
	}
	return candidates
}
