package ramify

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	engine "github.com/soundprediction/ramify"
	"github.com/soundprediction/ramify/pkg/config"
	"github.com/soundprediction/ramify/pkg/embedder"
	"github.com/soundprediction/ramify/pkg/generator"
	"github.com/soundprediction/ramify/pkg/logger"
	"github.com/soundprediction/ramify/pkg/search"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "ramify",
		Short: "Ramify: best-first concept exploration for knowledge graphs",
		Long: `Ramify grows a scored search tree of related concepts from one or more
seed entities, using a UCB selection rule and a content-generation model,
and surfaces the most promising exploration paths.

Complete documentation is available at https://github.com/soundprediction/ramify`,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.ramify.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	// Bind flags to viper
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".ramify")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig loads full application config honoring the --config flag.
func loadConfig() (*config.Config, error) {
	return config.Load(cfgFile)
}

// buildEngine wires a configured exploration engine: the OpenAI generator
// wrapped with circuit breaking, retries, and the optional badger cache,
// plus optional embedding-based novelty scoring.
func buildEngine(cfg *config.Config, log *slog.Logger) (*engine.Engine, generator.Generator, error) {
	var gen generator.Generator = generator.NewOpenAIGenerator(generator.Config{
		APIKey:      cfg.Generator.APIKey,
		Model:       cfg.Generator.Model,
		BaseURL:     cfg.Generator.BaseURL,
		Temperature: cfg.Generator.Temperature,
		MaxTokens:   cfg.Generator.MaxTokens,
	})

	gen = generator.NewBreakerGenerator(gen, generator.BreakerConfig{
		Enabled:          cfg.CircuitBreaker.Enabled,
		MaxRequests:      cfg.CircuitBreaker.MaxRequests,
		Interval:         cfg.CircuitBreaker.Interval,
		Timeout:          cfg.CircuitBreaker.Timeout,
		ReadyToTripRatio: cfg.CircuitBreaker.ReadyToTripRatio,
	}, cfg.Generator.Provider)
	gen = generator.NewRetryGenerator(gen, &generator.RetryConfig{
		MaxRetries: cfg.Generator.MaxRetries,
	})
	if cfg.Cache.Enabled {
		cached, err := generator.NewCachedGenerator(cfg.Cache.Path, gen, time.Duration(cfg.Cache.TTL)*time.Second)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open generation cache: %w", err)
		}
		gen = cached
	}

	opts := []engine.Option{engine.WithLogger(log)}
	if cfg.Embedding.Enabled {
		embClient, err := embedder.NewEmbedEverythingClient(&embedder.Config{
			Model:      cfg.Embedding.Model,
			Dimensions: cfg.Embedding.Dimensions,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create embedder: %w", err)
		}
		opts = append(opts, engine.WithNoveltyScorer(search.NewNoveltyScorer(embClient, cfg.Embedding.Weight)))
	}

	return engine.NewEngine(gen, opts...), gen, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	return logger.NewDefaultLogger(logger.ParseLevel(cfg.Log.Level))
}
