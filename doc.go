// Package ramify provides a best-first concept-exploration engine for
// knowledge graphs.
//
// Starting from one or more seed entities, the engine grows a scored search
// tree of candidate related concepts. Each iteration selects the most
// promising frontier node with an upper-confidence-bound rule, asks an
// external content-generation collaborator for new related concepts, inserts
// them as children, and backpropagates the outcome up the ancestor chain.
// When the iteration budget is spent (or the frontier is exhausted) the best
// root-to-leaf paths are extracted and summarized into short insights.
//
// # Basic Usage
//
// Create an engine with a content generator and run an exploration:
//
//	gen := generator.NewOpenAIGenerator(generator.Config{
//		APIKey: "your-api-key",
//		Model:  "gpt-4o-mini",
//	})
//	engine := ramify.NewEngine(gen)
//
//	seeds := []types.Entity{{Label: "machine learning"}}
//	result, err := engine.Explore(ctx, seeds, types.DefaultStrategy())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	for _, insight := range result.Insights {
//		fmt.Println(insight)
//	}
//
// # Composing Generators
//
// Retry, circuit-breaking, and caching wrappers all satisfy the same
// Generator interface and stack in any order:
//
//	gen := generator.NewRetryGenerator(
//		generator.NewBreakerGenerator(base, generator.DefaultBreakerConfig(), "openai"),
//		nil,
//	)
//
// Each call to Explore builds a fresh tree; nothing is shared between runs,
// so independent runs may execute in parallel.
package ramify
