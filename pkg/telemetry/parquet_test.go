package telemetry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundprediction/ramify/pkg/types"
)

func TestWriteResult(t *testing.T) {
	dir := t.TempDir()
	writer, err := NewParquetRunWriter(dir)
	require.NoError(t, err)

	path := []*types.TreeNode{
		{ID: "n1", State: types.Entity{Label: "AI"}, Score: 0.6, Depth: 0},
		{ID: "n2", State: types.Entity{Label: "ML", Content: "machine learning"}, Score: 0.7, Depth: 1},
	}
	result := &types.SearchResult{
		BestPaths:     [][]*types.TreeNode{path},
		IterationsRun: 4,
		NodeCount:     9,
	}

	require.NoError(t, writer.WriteResult("run-1", result))

	runs, err := parquet.ReadFile[ParquetRun](filepath.Join(dir, "runs", "run_run-1.parquet"))
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "run-1", runs[0].RunID)
	assert.Equal(t, int32(4), runs[0].IterationsRun)
	assert.Equal(t, int32(9), runs[0].NodeCount)
	assert.Equal(t, int32(1), runs[0].PathCount)

	rows, err := parquet.ReadFile[ParquetPathNode](filepath.Join(dir, "path_nodes", "run_run-1.parquet"))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int32(0), rows[0].Position)
	assert.Equal(t, "ML", rows[1].Label)
	assert.Equal(t, int32(1), rows[1].Depth)
}

func TestWriteResultNoPaths(t *testing.T) {
	dir := t.TempDir()
	writer, err := NewParquetRunWriter(dir)
	require.NoError(t, err)

	result := &types.SearchResult{IterationsRun: 1, NodeCount: 1}
	require.NoError(t, writer.WriteResult("run-2", result))

	// The summary is always written; the node file is skipped for empty runs.
	_, err = os.Stat(filepath.Join(dir, "runs", "run_run-2.parquet"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "path_nodes", "run_run-2.parquet"))
	assert.True(t, os.IsNotExist(err))
}
