package dto

import (
	"errors"
	"strings"

	"github.com/soundprediction/ramify/pkg/types"
)

// Validation errors
var (
	ErrEmptySeeds     = errors.New("seeds cannot be empty")
	ErrEmptySeedLabel = errors.New("seed label cannot be empty")
	ErrTooManySeeds   = errors.New("seeds exceed maximum count")
)

// MaxSeedCount bounds one request to keep runs tractable.
const MaxSeedCount = 50

// Seed is one seed entity in an exploration request.
type Seed struct {
	Label    string `json:"label" binding:"required"`
	Content  string `json:"content,omitempty"`
	SourceID string `json:"source_id,omitempty"`
}

// ExploreRequest represents a request to run one exploration.
type ExploreRequest struct {
	Seeds               []Seed  `json:"seeds" binding:"required,dive"`
	ExplorationConstant float64 `json:"exploration_constant,omitempty"`
	MaxIterations       int     `json:"max_iterations,omitempty"`
	MaxDepth            int     `json:"max_depth,omitempty"`
	FanOut              int     `json:"fan_out,omitempty"`
	TopPaths            int     `json:"top_paths,omitempty"`
}

// Validate performs validation on ExploreRequest.
func (r *ExploreRequest) Validate() error {
	if len(r.Seeds) == 0 {
		return ErrEmptySeeds
	}
	if len(r.Seeds) > MaxSeedCount {
		return ErrTooManySeeds
	}
	for _, seed := range r.Seeds {
		if strings.TrimSpace(seed.Label) == "" {
			return ErrEmptySeedLabel
		}
	}
	return nil
}

// Entities converts the request seeds to engine entities.
func (r *ExploreRequest) Entities() []types.Entity {
	entities := make([]types.Entity, len(r.Seeds))
	for i, seed := range r.Seeds {
		entities[i] = types.Entity{
			Label:    seed.Label,
			Content:  seed.Content,
			SourceID: seed.SourceID,
		}
	}
	return entities
}

// Strategy builds a search strategy from the request, falling back to the
// given defaults for omitted fields.
func (r *ExploreRequest) Strategy(defaults types.SearchStrategy) types.SearchStrategy {
	strategy := defaults
	if r.ExplorationConstant > 0 {
		strategy.ExplorationConstant = r.ExplorationConstant
	}
	if r.MaxIterations > 0 {
		strategy.MaxIterations = r.MaxIterations
	}
	if r.MaxDepth > 0 {
		strategy.MaxDepth = r.MaxDepth
	}
	if r.FanOut > 0 {
		strategy.FanOut = r.FanOut
	}
	if r.TopPaths > 0 {
		strategy.TopPaths = r.TopPaths
	}
	return strategy
}

// ExploreResponse represents the outcome of one exploration run.
type ExploreResponse struct {
	BestPaths          [][]types.PathNode `json:"best_paths"`
	Insights           []string           `json:"insights"`
	TotalIterationsRun int                `json:"total_iterations_run"`
	ExploredNodeCount  int                `json:"explored_node_count"`
}

// FromResult converts an engine result to the wire response.
func FromResult(result *types.SearchResult) ExploreResponse {
	paths := make([][]types.PathNode, len(result.BestPaths))
	for i, path := range result.BestPaths {
		paths[i] = types.PathToWire(path)
	}
	return ExploreResponse{
		BestPaths:          paths,
		Insights:           result.Insights,
		TotalIterationsRun: result.IterationsRun,
		ExploredNodeCount:  result.NodeCount,
	}
}

// ErrorResponse is the shared error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
