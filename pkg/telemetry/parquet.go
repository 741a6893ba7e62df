// Package telemetry exports finished exploration runs as Parquet files for
// offline analysis.
package telemetry

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/soundprediction/ramify/pkg/types"
)

// ParquetRunWriter writes one file per run under baseDir.
type ParquetRunWriter struct {
	baseDir string
}

// NewParquetRunWriter creates a writer rooted at baseDir.
func NewParquetRunWriter(baseDir string) (*ParquetRunWriter, error) {
	dirs := []string{"runs", "path_nodes"}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(baseDir, d), 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", d, err)
		}
	}
	return &ParquetRunWriter{baseDir: baseDir}, nil
}

// ParquetRun is the per-run summary row.
type ParquetRun struct {
	RunID         string `parquet:"run_id"`
	IterationsRun int32  `parquet:"iterations_run"`
	NodeCount     int32  `parquet:"node_count"`
	PathCount     int32  `parquet:"path_count"`
	CompletedAt   int64  `parquet:"completed_at"` // Unix milliseconds UTC
}

// ParquetPathNode is one node of one extracted path.
type ParquetPathNode struct {
	RunID     string  `parquet:"run_id"`
	PathIndex int32   `parquet:"path_index"`
	Position  int32   `parquet:"position"`
	NodeID    string  `parquet:"node_id"`
	Label     string  `parquet:"label"`
	Content   string  `parquet:"content"`
	Score     float64 `parquet:"score"`
	Depth     int32   `parquet:"depth"`
}

// WriteResult writes the run summary and all path nodes.
func (w *ParquetRunWriter) WriteResult(runID string, result *types.SearchResult) error {
	run := ParquetRun{
		RunID:         runID,
		IterationsRun: int32(result.IterationsRun),
		NodeCount:     int32(result.NodeCount),
		PathCount:     int32(len(result.BestPaths)),
		CompletedAt:   time.Now().UnixMilli(),
	}
	runPath := filepath.Join(w.baseDir, "runs", fmt.Sprintf("run_%s.parquet", runID))
	if err := parquet.WriteFile(runPath, []ParquetRun{run}); err != nil {
		return fmt.Errorf("failed to write run summary: %w", err)
	}

	var rows []ParquetPathNode
	for pathIndex, path := range result.BestPaths {
		for position, node := range path {
			rows = append(rows, ParquetPathNode{
				RunID:     runID,
				PathIndex: int32(pathIndex),
				Position:  int32(position),
				NodeID:    node.ID,
				Label:     node.State.Label,
				Content:   node.State.Content,
				Score:     node.Score,
				Depth:     int32(node.Depth),
			})
		}
	}
	if len(rows) == 0 {
		return nil
	}
	nodesPath := filepath.Join(w.baseDir, "path_nodes", fmt.Sprintf("run_%s.parquet", runID))
	if err := parquet.WriteFile(nodesPath, rows); err != nil {
		return fmt.Errorf("failed to write path nodes: %w", err)
	}
	return nil
}
