package scoring

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAccumulator verifies the additive outcome bookkeeping and the
// zero-attempted contract.
func TestAccumulator(t *testing.T) {
	var acc Accumulator
	assert.Equal(t, 0.0, acc.Accuracy(), "zero attempted must yield 0.0, not NaN")

	acc.Record(true)
	acc.Record(false)
	acc.Record(true)
	acc.Record(false)

	assert.Equal(t, 4, acc.Attempted)
	assert.Equal(t, 2, acc.Matched)
	assert.Equal(t, []bool{true, false, true, false}, acc.Outcomes)
	assert.InDelta(t, 50.0, acc.Accuracy(), 1e-9)
}

// TestBuildAccuracyResult verifies the across-level mean, with absent
// levels contributing exactly 0.0.
func TestBuildAccuracyResult(t *testing.T) {
	result := BuildAccuracyResult(map[int]float64{1: 90.0, 3: 30.0})

	require.Len(t, result.AccuracyPerLevel, 3)
	assert.Equal(t, []float64{90.0}, result.AccuracyPerLevel[1])
	assert.Equal(t, []float64{0.0}, result.AccuracyPerLevel[2])
	assert.Equal(t, []float64{30.0}, result.AccuracyPerLevel[3])
	assert.InDelta(t, 40.0, result.AverageAccuracy, 1e-9)
}

// TestResultPath verifies result-file naming next to the input file.
func TestResultPath(t *testing.T) {
	assert.Equal(t, "out/preds_results.json", ResultPath("out/preds.json"))
	assert.Equal(t, "preds_results.json", ResultPath("preds"))
	// A dot in a directory name is not an extension.
	assert.Equal(t, "runs.v2/preds_results.json", ResultPath("runs.v2/preds"))
	assert.Equal(t, "runs.v2/preds_results.json", ResultPath("runs.v2/preds.json"))
}

// TestWriteResult round-trips an accuracy result through the result
// file and checks the serialized key layout.
func TestWriteResult(t *testing.T) {
	result := BuildAccuracyResult(map[int]float64{1: 100.0})
	path := filepath.Join(t.TempDir(), "spatial_results.json")
	require.NoError(t, WriteResult(path, result))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded struct {
		AccuracyPerLevel map[string][]float64 `json:"accuracy_per_level"`
		AverageAccuracy  float64              `json:"average_accuracy"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, []float64{100.0}, decoded.AccuracyPerLevel["1"])
	assert.InDelta(t, 100.0/3.0, decoded.AverageAccuracy, 1e-9)
}
