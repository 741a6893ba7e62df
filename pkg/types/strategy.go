package types

import "fmt"

// Default strategy values applied by Normalize.
const (
	DefaultExplorationConstant = 1.4
	DefaultMaxIterations       = 20
	DefaultMaxDepth            = 5
	DefaultFanOut              = 3
	DefaultTopPaths            = 3
	DefaultInitialScore        = 0.5
)

// SearchStrategy configures one exploration run. Immutable once the run
// starts.
type SearchStrategy struct {
	// ExplorationConstant weights the exploration term of the selection
	// rule; higher values favor under-visited nodes.
	ExplorationConstant float64 `json:"exploration_constant" mapstructure:"exploration_constant" yaml:"exploration_constant"`

	// MaxIterations bounds the number of expansion cycles.
	MaxIterations int `json:"max_iterations" mapstructure:"max_iterations" yaml:"max_iterations"`

	// MaxDepth is the depth at which nodes become ineligible for expansion.
	MaxDepth int `json:"max_depth" mapstructure:"max_depth" yaml:"max_depth"`

	// FanOut is the number of candidate children requested per expansion.
	FanOut int `json:"fan_out" mapstructure:"fan_out" yaml:"fan_out"`

	// TopPaths is the number of best paths extracted at the end of the run.
	TopPaths int `json:"top_paths" mapstructure:"top_paths" yaml:"top_paths"`

	// InitialScore seeds the score of root nodes.
	InitialScore float64 `json:"initial_score" mapstructure:"initial_score" yaml:"initial_score"`
}

// DefaultStrategy returns a strategy with all defaults applied.
func DefaultStrategy() SearchStrategy {
	return SearchStrategy{
		ExplorationConstant: DefaultExplorationConstant,
		MaxIterations:       DefaultMaxIterations,
		MaxDepth:            DefaultMaxDepth,
		FanOut:              DefaultFanOut,
		TopPaths:            DefaultTopPaths,
		InitialScore:        DefaultInitialScore,
	}
}

// Normalize fills the optional fields a caller may leave zero.
func (s *SearchStrategy) Normalize() {
	if s.TopPaths <= 0 {
		s.TopPaths = DefaultTopPaths
	}
	if s.InitialScore <= 0 || s.InitialScore > 1 {
		s.InitialScore = DefaultInitialScore
	}
}

// Validate checks the hard constraints on a strategy.
func (s SearchStrategy) Validate() error {
	if s.ExplorationConstant < 0 {
		return fmt.Errorf("%w: exploration constant must be >= 0, got %g", ErrInvalidStrategy, s.ExplorationConstant)
	}
	if s.MaxIterations <= 0 {
		return fmt.Errorf("%w: max iterations must be > 0, got %d", ErrInvalidStrategy, s.MaxIterations)
	}
	if s.MaxDepth < 0 {
		return fmt.Errorf("%w: max depth must be >= 0, got %d", ErrInvalidStrategy, s.MaxDepth)
	}
	if s.FanOut < 1 {
		return fmt.Errorf("%w: fan-out must be >= 1, got %d", ErrInvalidStrategy, s.FanOut)
	}
	return nil
}
