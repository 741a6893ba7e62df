package generator

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/soundprediction/ramify/pkg/types"
)

// RetryConfig holds configuration for retry behavior
type RetryConfig struct {
	// MaxRetries is the maximum number of retry attempts (default: 3)
	MaxRetries int
	// InitialDelay is the initial delay before the first retry (default: 1 second)
	InitialDelay time.Duration
	// MaxDelay is the maximum delay between retries (default: 30 seconds)
	MaxDelay time.Duration
	// BackoffMultiplier is the multiplier for exponential backoff (default: 2.0)
	BackoffMultiplier float64
}

// DefaultRetryConfig returns the default retry configuration
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxRetries:        3,
		InitialDelay:      1 * time.Second,
		MaxDelay:          30 * time.Second,
		BackoffMultiplier: 2.0,
	}
}

// RetryGenerator wraps a Generator and adds retry logic with exponential
// backoff. Context cancellation is never retried.
type RetryGenerator struct {
	inner  Generator
	config *RetryConfig
	logger *slog.Logger
}

// NewRetryGenerator creates a new retry wrapper.
func NewRetryGenerator(inner Generator, config *RetryConfig) *RetryGenerator {
	if config == nil {
		config = DefaultRetryConfig()
	}
	if config.MaxRetries < 0 {
		config.MaxRetries = 3
	}
	if config.InitialDelay <= 0 {
		config.InitialDelay = 1 * time.Second
	}
	if config.MaxDelay <= 0 {
		config.MaxDelay = 30 * time.Second
	}
	if config.BackoffMultiplier <= 0 {
		config.BackoffMultiplier = 2.0
	}

	return &RetryGenerator{
		inner:  inner,
		config: config,
		logger: slog.Default(),
	}
}

// Generate implements Generator with retries.
func (r *RetryGenerator) Generate(ctx context.Context, parent types.Entity, count int) ([]Candidate, error) {
	var lastErr error
	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := r.delayFor(attempt)
			r.logger.Debug("retrying generation",
				"attempt", attempt,
				"delay", delay,
				"parent", parent.Label)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		candidates, err := r.inner.Generate(ctx, parent, count)
		if err == nil {
			return candidates, nil
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

// Close implements Generator.
func (r *RetryGenerator) Close() error {
	return r.inner.Close()
}

func (r *RetryGenerator) delayFor(attempt int) time.Duration {
	delay := float64(r.config.InitialDelay) * math.Pow(r.config.BackoffMultiplier, float64(attempt-1))
	if delay > float64(r.config.MaxDelay) {
		delay = float64(r.config.MaxDelay)
	}
	return time.Duration(delay)
}
