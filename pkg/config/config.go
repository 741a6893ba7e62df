package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	// Log configuration
	Log LogConfig `mapstructure:"log"`

	// Server configuration
	Server ServerConfig `mapstructure:"server"`

	// Generator configuration
	Generator GeneratorConfig `mapstructure:"generator"`

	// Embedding configuration
	Embedding EmbeddingConfig `mapstructure:"embedding"`

	// Graph configuration
	Graph GraphConfig `mapstructure:"graph"`

	// Cache configuration
	Cache CacheConfig `mapstructure:"cache"`

	// CircuitBreaker configuration
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`

	// Search holds default strategy values for runs that omit them
	Search SearchConfig `mapstructure:"search"`

	// Export configuration
	Export ExportConfig `mapstructure:"export"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // gin mode: debug, release, test
}

// GeneratorConfig holds content-generation configuration
type GeneratorConfig struct {
	Provider    string  `mapstructure:"provider"` // openai or an OpenAI-compatible service
	Model       string  `mapstructure:"model"`
	APIKey      string  `mapstructure:"api_key"`
	BaseURL     string  `mapstructure:"base_url"`
	Temperature float32 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	MaxRetries  int     `mapstructure:"max_retries"`
}

// EmbeddingConfig holds embedding configuration for novelty scoring
type EmbeddingConfig struct {
	Enabled    bool    `mapstructure:"enabled"`
	Model      string  `mapstructure:"model"`
	Dimensions int     `mapstructure:"dimensions"`
	Weight     float64 `mapstructure:"weight"`
}

// GraphConfig holds the concept graph store configuration
type GraphConfig struct {
	Driver   string `mapstructure:"driver"` // neo4j or memory
	URI      string `mapstructure:"uri"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
}

// CacheConfig holds generation cache configuration
type CacheConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
	TTL     int    `mapstructure:"ttl"` // in seconds
}

// CircuitBreakerConfig holds configuration for circuit breaking
type CircuitBreakerConfig struct {
	Enabled          bool    `mapstructure:"enabled"`
	MaxRequests      uint32  `mapstructure:"max_requests"`
	Interval         int     `mapstructure:"interval"` // in seconds
	Timeout          int     `mapstructure:"timeout"`  // in seconds
	ReadyToTripRatio float64 `mapstructure:"ready_to_trip_ratio"`
}

// SearchConfig holds default exploration strategy values
type SearchConfig struct {
	ExplorationConstant float64 `mapstructure:"exploration_constant"`
	MaxIterations       int     `mapstructure:"max_iterations"`
	MaxDepth            int     `mapstructure:"max_depth"`
	FanOut              int     `mapstructure:"fan_out"`
	TopPaths            int     `mapstructure:"top_paths"`
}

// ExportConfig holds run-record export configuration
type ExportConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	ParquetPath string `mapstructure:"parquet_path"`
}

// Load reads configuration from the given file (optional), the working
// directory, and environment variables.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".ramify")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	setDefaults(v)
	v.SetEnvPrefix("RAMIFY")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")

	v.SetDefault("generator.provider", "openai")
	v.SetDefault("generator.model", "gpt-4o-mini")
	v.SetDefault("generator.temperature", 0.7)
	v.SetDefault("generator.max_retries", 3)

	v.SetDefault("embedding.enabled", false)
	v.SetDefault("embedding.weight", 0.3)

	v.SetDefault("graph.driver", "memory")
	v.SetDefault("graph.database", "neo4j")

	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.path", ".ramify-cache")
	v.SetDefault("cache.ttl", 86400)

	v.SetDefault("circuit_breaker.enabled", true)
	v.SetDefault("circuit_breaker.max_requests", 1)
	v.SetDefault("circuit_breaker.interval", 60)
	v.SetDefault("circuit_breaker.timeout", 30)
	v.SetDefault("circuit_breaker.ready_to_trip_ratio", 0.6)

	v.SetDefault("search.exploration_constant", 1.4)
	v.SetDefault("search.max_iterations", 20)
	v.SetDefault("search.max_depth", 5)
	v.SetDefault("search.fan_out", 3)
	v.SetDefault("search.top_paths", 3)

	v.SetDefault("export.enabled", false)
	v.SetDefault("export.parquet_path", "ramify-runs")
}
