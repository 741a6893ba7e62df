package generator

import (
	"context"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
	"github.com/soundprediction/ramify/pkg/types"
)

// BreakerConfig holds configuration for circuit breaking around the
// generation collaborator.
type BreakerConfig struct {
	Enabled          bool    `json:"enabled" mapstructure:"enabled"`
	MaxRequests      uint32  `json:"max_requests" mapstructure:"max_requests"`
	Interval         int     `json:"interval" mapstructure:"interval"` // in seconds
	Timeout          int     `json:"timeout" mapstructure:"timeout"`   // in seconds
	ReadyToTripRatio float64 `json:"ready_to_trip_ratio" mapstructure:"ready_to_trip_ratio"`
}

// DefaultBreakerConfig returns the default circuit breaker configuration.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Enabled:          true,
		MaxRequests:      1,
		Interval:         60,
		Timeout:          30,
		ReadyToTripRatio: 0.6,
	}
}

// BreakerGenerator wraps a Generator with circuit breaking so a repeatedly
// failing collaborator is cut off instead of hammered on every expansion.
// When the config disables breaking, calls pass straight through.
type BreakerGenerator struct {
	inner  Generator
	cb     *gobreaker.CircuitBreaker
	logger *slog.Logger
}

// NewBreakerGenerator creates a new circuit-breaking wrapper.
func NewBreakerGenerator(inner Generator, cfg BreakerConfig, name string) *BreakerGenerator {
	logger := slog.Default()

	if !cfg.Enabled {
		return &BreakerGenerator{
			inner:  inner,
			logger: logger,
		}
	}

	st := gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    time.Duration(cfg.Interval) * time.Second,
		Timeout:     time.Duration(cfg.Timeout) * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= cfg.ReadyToTripRatio
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("generator circuit breaker state change",
				"name", name,
				"from", from.String(),
				"to", to.String())
		},
	}

	return &BreakerGenerator{
		inner:  inner,
		cb:     gobreaker.NewCircuitBreaker(st),
		logger: logger,
	}
}

// Generate implements Generator.
func (b *BreakerGenerator) Generate(ctx context.Context, parent types.Entity, count int) ([]Candidate, error) {
	if b.cb == nil {
		return b.inner.Generate(ctx, parent, count)
	}
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.inner.Generate(ctx, parent, count)
	})
	if err != nil {
		return nil, err
	}
	return result.([]Candidate), nil
}

// Close implements Generator.
func (b *BreakerGenerator) Close() error {
	return b.inner.Close()
}
