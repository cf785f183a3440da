package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thisisWooyeol/HRSBench/scoring"
)

// TestRecordAssertion verifies the flat-column to canonical-assertion
// conversion for the relational layout.
func TestRecordAssertion(t *testing.T) {
	rec := Record{
		Prompt:       "a horse below a car.",
		ExpectedObj1: "horse",
		ExpectedObj2: "car",
		Relation1:    "below",
		Level:        1,
	}
	a := rec.Assertion()
	assert.Equal(t, []string{"horse", "car"}, a.Objects)
	assert.Equal(t, []string{"below"}, a.Relations)
	assert.Empty(t, a.Colors)
	assert.Empty(t, a.Counts)
	assert.Equal(t, 1, a.Level)
}

// TestRecordAssertionCounting verifies the counting columns, including
// the empty second class.
func TestRecordAssertionCounting(t *testing.T) {
	rec := Record{
		Prompt:       "two cups on a table.",
		ExpectedObj1: "cup",
		ExpectedN1:   2,
		Level:        1,
	}
	a := rec.Assertion()
	assert.Equal(t, []scoring.ClassCount{{Class: "cup", Expected: 2}}, a.Counts)

	rec.ExpectedObj2 = "table"
	rec.ExpectedN2 = 1
	a = rec.Assertion()
	require.Len(t, a.Counts, 2)
	assert.Equal(t, scoring.ClassCount{Class: "table", Expected: 1}, a.Counts[1])
}

// TestRecordAssertionColors verifies the parallel color columns and
// whitespace trimming.
func TestRecordAssertionColors(t *testing.T) {
	rec := Record{
		ExpectedObj1: "car",
		ExpectedObj2: "bench",
		ExpectedObj3: " ",
		Color1:       "red",
		Color2:       "blue",
		Level:        1,
	}
	a := rec.Assertion()
	assert.Equal(t, []string{"car", "bench"}, a.Objects)
	assert.Equal(t, []string{"red", "blue"}, a.Colors)
}

// TestGroundTruthRoundTrip writes records as JSONL and reads them back
// as assertions.
func TestGroundTruthRoundTrip(t *testing.T) {
	records := []Record{
		{
			Prompt:       "a airplane and a car, the airplane is bigger than the car.",
			ExpectedObj1: "airplane",
			ExpectedObj2: "car",
			Relation1:    "bigger",
			Level:        1,
		},
		{
			Prompt:       "a cat between a dog and a bird.",
			ExpectedObj1: "cat",
			ExpectedObj2: "dog",
			ExpectedObj3: "bird",
			Relation1:    "between",
			Level:        2,
		},
	}

	path := filepath.Join(t.TempDir(), "size.jsonl")
	require.NoError(t, WriteGroundTruth(path, records))

	gts, err := LoadGroundTruth(path)
	require.NoError(t, err)
	require.Len(t, gts, 2)
	assert.Equal(t, []string{"airplane", "car"}, gts[0].Objects)
	assert.Equal(t, []string{"cat", "dog", "bird"}, gts[1].Objects)
	assert.Equal(t, 2, gts[1].Level)
}

// TestLoadGroundTruthErrors covers the unreadable-file and bad-line
// paths.
func TestLoadGroundTruthErrors(t *testing.T) {
	_, err := LoadGroundTruth(filepath.Join(t.TempDir(), "missing.jsonl"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("{\"level\": 1}\nnot json\n"), 0o644))
	_, err = LoadGroundTruth(path)
	assert.ErrorContains(t, err, "line 2")
}

// TestLoadPredictions verifies the raw prediction schema: image id to
// slot id to candidate tuples with numeric-string coordinates.
func TestLoadPredictions(t *testing.T) {
	payload := `{
		"0": {
			"0": [["44.324688", "79.604744", "438.88803", "287.82706", "airplane"]],
			"1": [["179.65254", "248.52257", "331.5779", "375.03128", "car"]]
		}
	}`
	path := filepath.Join(t.TempDir(), "preds.json")
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	raw, err := LoadPredictions(path)
	require.NoError(t, err)
	require.Contains(t, raw, "0")

	dets := scoring.Normalize(raw["0"])
	require.Len(t, dets, 2)
	assert.Equal(t, "airplane", dets["0"].Label)
	assert.InDelta(t, 44.324688, dets["0"].Box.X1, 1e-6)
}
