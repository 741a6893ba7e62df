package ramify

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/soundprediction/ramify/pkg/config"
	"github.com/soundprediction/ramify/pkg/driver"
	"github.com/soundprediction/ramify/pkg/telemetry"
	"github.com/soundprediction/ramify/pkg/types"
)

var (
	seedLabels []string
	seedIDs    []string
	seedsFile  string

	exploreCmd = &cobra.Command{
		Use:   "explore",
		Short: "Run one exploration from seed concepts",
		Long: `Run a best-first exploration starting from the given seed concepts.
Seeds come from --seed flags, from a YAML file, or by id from the
configured concept graph:

    seeds:
      - label: machine learning
        content: statistical learning from data
      - label: graph theory

With --seed-id the seed entities are loaded from the graph store named
by graph.driver in the config, and the accepted paths are written back
to it after the run.`,
		RunE: runExplore,
	}
)

// seedsDocument is the YAML seeds file format.
type seedsDocument struct {
	Seeds []types.Entity `yaml:"seeds"`
}

func init() {
	exploreCmd.Flags().StringArrayVar(&seedLabels, "seed", nil, "seed concept label (repeatable)")
	exploreCmd.Flags().StringArrayVar(&seedIDs, "seed-id", nil, "seed concept id in the concept graph (repeatable)")
	exploreCmd.Flags().StringVar(&seedsFile, "seeds-file", "", "YAML file with seed entities")
	exploreCmd.Flags().Float64("exploration-constant", 0, "exploration weight in selection")
	exploreCmd.Flags().Int("max-iterations", 0, "maximum expansion cycles")
	exploreCmd.Flags().Int("max-depth", 0, "depth bound for expansion")
	exploreCmd.Flags().Int("fan-out", 0, "children generated per expansion")
	exploreCmd.Flags().Int("top-paths", 0, "number of best paths to report")

	rootCmd.AddCommand(exploreCmd)
}

func runExplore(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)
	ctx := cmd.Context()

	// The graph store is opened when seeds are loaded by id, or when a
	// persistent graph is configured so results can be written back.
	var store driver.GraphStore
	if len(seedIDs) > 0 || cfg.Graph.Driver == "neo4j" {
		store, err = openGraphStore(cfg)
		if err != nil {
			return err
		}
		defer store.Close(ctx)
	}

	seeds, err := collectSeeds(ctx, store)
	if err != nil {
		return err
	}

	eng, gen, err := buildEngine(cfg, log)
	if err != nil {
		return err
	}
	defer gen.Close()

	strategy := strategyFromFlags(cmd, cfg)
	result, err := eng.Explore(ctx, seeds, strategy)
	if err != nil {
		return err
	}

	printResult(result)

	runID := uuid.New().String()
	if store != nil {
		if err := store.SaveResult(ctx, runID, result); err != nil {
			return fmt.Errorf("failed to write result to concept graph: %w", err)
		}
		log.Info("result written to concept graph", "run_id", runID, "driver", cfg.Graph.Driver)
	}

	if cfg.Export.Enabled {
		writer, err := telemetry.NewParquetRunWriter(cfg.Export.ParquetPath)
		if err != nil {
			return err
		}
		if err := writer.WriteResult(runID, result); err != nil {
			return err
		}
		log.Info("run exported", "run_id", runID, "path", cfg.Export.ParquetPath)
	}
	return nil
}

// openGraphStore builds the concept graph store named by graph.driver.
func openGraphStore(cfg *config.Config) (driver.GraphStore, error) {
	switch cfg.Graph.Driver {
	case "neo4j":
		return driver.NewNeo4jStore(cfg.Graph.URI, cfg.Graph.Username, cfg.Graph.Password, cfg.Graph.Database)
	case "memory", "":
		return driver.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown graph driver: %s", cfg.Graph.Driver)
	}
}

func collectSeeds(ctx context.Context, store driver.GraphStore) ([]types.Entity, error) {
	var seeds []types.Entity
	if len(seedIDs) > 0 {
		fetched, err := store.FetchSeeds(ctx, seedIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load seeds from concept graph: %w", err)
		}
		seeds = append(seeds, fetched...)
	}
	if seedsFile != "" {
		data, err := os.ReadFile(seedsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read seeds file: %w", err)
		}
		var doc seedsDocument
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse seeds file: %w", err)
		}
		seeds = append(seeds, doc.Seeds...)
	}
	for _, label := range seedLabels {
		seeds = append(seeds, types.Entity{Label: label})
	}
	if len(seeds) == 0 {
		return nil, types.ErrEmptySeed
	}
	return seeds, nil
}

func strategyFromFlags(cmd *cobra.Command, cfg *config.Config) types.SearchStrategy {
	strategy := types.SearchStrategy{
		ExplorationConstant: cfg.Search.ExplorationConstant,
		MaxIterations:       cfg.Search.MaxIterations,
		MaxDepth:            cfg.Search.MaxDepth,
		FanOut:              cfg.Search.FanOut,
		TopPaths:            cfg.Search.TopPaths,
	}
	if v, _ := cmd.Flags().GetFloat64("exploration-constant"); v > 0 {
		strategy.ExplorationConstant = v
	}
	if v, _ := cmd.Flags().GetInt("max-iterations"); v > 0 {
		strategy.MaxIterations = v
	}
	if v, _ := cmd.Flags().GetInt("max-depth"); v > 0 {
		strategy.MaxDepth = v
	}
	if v, _ := cmd.Flags().GetInt("fan-out"); v > 0 {
		strategy.FanOut = v
	}
	if v, _ := cmd.Flags().GetInt("top-paths"); v > 0 {
		strategy.TopPaths = v
	}
	return strategy
}

func printResult(result *types.SearchResult) {
	fmt.Printf("Explored %d nodes in %d iterations.\n\n", result.NodeCount, result.IterationsRun)
	for i, path := range result.BestPaths {
		fmt.Printf("Path %d:\n", i+1)
		for _, node := range path {
			fmt.Printf("  %*s%s (%.2f)\n", node.Depth*2, "", node.State.Label, node.Score)
		}
	}
	fmt.Println()
	for _, insight := range result.Insights {
		fmt.Println(insight)
	}
}
