package generator

import (
	"context"

	"github.com/soundprediction/ramify/pkg/types"
)

// Candidate is a proposed child concept with a provisional quality score in
// [0,1].
type Candidate struct {
	Label   string  `json:"label"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

// Generator defines the content-generation collaborator: given a parent
// concept it proposes up to count new related concepts. Implementations may
// fail transiently; the engine tolerates failure by treating the node as
// emptily expanded.
type Generator interface {
	// Generate proposes up to count candidate concepts related to parent.
	Generate(ctx context.Context, parent types.Entity, count int) ([]Candidate, error)

	// Close cleans up any resources.
	Close() error
}

const (
	// RoleSystem represents a system message.
	RoleSystem types.Role = "system"
	// RoleUser represents a user message.
	RoleUser types.Role = "user"
	// RoleAssistant represents an assistant message.
	RoleAssistant types.Role = "assistant"
)

// ClampScore forces a candidate score into [0,1].
func ClampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// StaticGenerator returns the same fixed candidates for every parent. It is
// the deterministic stand-in for a real language model, used by examples and
// tests.
type StaticGenerator struct {
	Candidates []Candidate

	// Calls counts Generate invocations.
	Calls int
}

// Generate returns up to count of the fixed candidates.
func (g *StaticGenerator) Generate(ctx context.Context, parent types.Entity, count int) ([]Candidate, error) {
	g.Calls++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	candidates := g.Candidates
	if len(candidates) > count {
		candidates = candidates[:count]
	}
	out := make([]Candidate, len(candidates))
	copy(out, candidates)
	return out, nil
}

// Close implements Generator.
func (g *StaticGenerator) Close() error { return nil }
