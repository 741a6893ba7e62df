package generator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundprediction/ramify/pkg/types"
)

// flakyGenerator fails the first failures calls, then succeeds.
type flakyGenerator struct {
	failures int
	calls    int
	err      error
}

func (g *flakyGenerator) Generate(ctx context.Context, parent types.Entity, count int) ([]Candidate, error) {
	g.calls++
	if g.calls <= g.failures {
		if g.err != nil {
			return nil, g.err
		}
		return nil, NewGenerationError("transient failure", nil)
	}
	return []Candidate{{Label: "ok", Score: 0.5}}, nil
}

func (g *flakyGenerator) Close() error { return nil }

func TestStaticGenerator(t *testing.T) {
	gen := &StaticGenerator{Candidates: []Candidate{
		{Label: "a", Score: 0.6},
		{Label: "b", Score: 0.5},
		{Label: "c", Score: 0.4},
	}}

	candidates, err := gen.Generate(context.Background(), types.Entity{Label: "parent"}, 2)
	require.NoError(t, err)
	assert.Len(t, candidates, 2)
	assert.Equal(t, "a", candidates[0].Label)
	assert.Equal(t, 1, gen.Calls)
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 0.0, ClampScore(-0.1))
	assert.Equal(t, 1.0, ClampScore(1.1))
	assert.Equal(t, 0.5, ClampScore(0.5))
}

func TestRetryGeneratorRecovers(t *testing.T) {
	inner := &flakyGenerator{failures: 2}
	retry := NewRetryGenerator(inner, &RetryConfig{
		MaxRetries:        3,
		InitialDelay:      time.Millisecond,
		MaxDelay:          5 * time.Millisecond,
		BackoffMultiplier: 2.0,
	})

	candidates, err := retry.Generate(context.Background(), types.Entity{Label: "AI"}, 3)
	require.NoError(t, err)
	assert.Len(t, candidates, 1)
	assert.Equal(t, 3, inner.calls)
}

func TestRetryGeneratorExhausted(t *testing.T) {
	inner := &flakyGenerator{failures: 10}
	retry := NewRetryGenerator(inner, &RetryConfig{
		MaxRetries:        2,
		InitialDelay:      time.Millisecond,
		MaxDelay:          5 * time.Millisecond,
		BackoffMultiplier: 2.0,
	})

	_, err := retry.Generate(context.Background(), types.Entity{Label: "AI"}, 3)
	require.Error(t, err)
	var genErr *GenerationError
	assert.ErrorAs(t, err, &genErr)
	assert.Equal(t, 3, inner.calls)
}

func TestRetryGeneratorNoRetryOnCancellation(t *testing.T) {
	inner := &flakyGenerator{failures: 10, err: context.Canceled}
	retry := NewRetryGenerator(inner, &RetryConfig{
		MaxRetries:        3,
		InitialDelay:      time.Millisecond,
		MaxDelay:          5 * time.Millisecond,
		BackoffMultiplier: 2.0,
	})

	_, err := retry.Generate(context.Background(), types.Entity{Label: "AI"}, 3)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, inner.calls)
}

func TestGenerationError(t *testing.T) {
	cause := errors.New("timed out")
	err := NewGenerationError("chat completion failed", cause)

	assert.Equal(t, "chat completion failed: timed out", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, &GenerationError{})
}

func TestParseCandidates(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
		wantErr bool
	}{
		{
			name:    "plain array",
			content: `[{"label": "ML", "content": "machine learning", "score": 0.6}]`,
			want:    1,
		},
		{
			name: "fenced array",
			content: "```json\n" +
				`[{"label": "ML", "score": 0.6}, {"label": "NLP", "score": 0.4}]` +
				"\n```",
			want: 2,
		},
		{
			name:    "repairable trailing comma",
			content: `[{"label": "ML", "score": 0.6},]`,
			want:    1,
		},
		{
			name:    "empty array",
			content: `[]`,
			wantErr: true,
		},
		{
			name:    "garbage",
			content: `the model refuses to answer`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidates, err := parseCandidates(tt.content)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, candidates, tt.want)
		})
	}
}

func TestCachedGenerator(t *testing.T) {
	inner := &StaticGenerator{Candidates: []Candidate{
		{Label: "ML", Score: 0.6},
	}}
	cached, err := NewCachedGenerator(t.TempDir(), inner, time.Hour)
	require.NoError(t, err)
	defer cached.Close()

	parent := types.Entity{Label: "AI"}
	first, err := cached.Generate(context.Background(), parent, 3)
	require.NoError(t, err)
	second, err := cached.Generate(context.Background(), parent, 3)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.Calls)

	// A different count is a different cache entry.
	_, err = cached.Generate(context.Background(), parent, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, inner.Calls)
}

func TestCachedGeneratorPropagatesFailure(t *testing.T) {
	inner := &flakyGenerator{failures: 1}
	cached, err := NewCachedGenerator(t.TempDir(), inner, time.Hour)
	require.NoError(t, err)
	defer cached.Close()

	_, err = cached.Generate(context.Background(), types.Entity{Label: "AI"}, 3)
	require.Error(t, err)

	// Failures are not cached; the next call reaches the inner generator.
	candidates, err := cached.Generate(context.Background(), types.Entity{Label: "AI"}, 3)
	require.NoError(t, err)
	assert.Len(t, candidates, 1)
	assert.Equal(t, 2, inner.calls)
}
