package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCompareCounts verifies the per-image tally arithmetic.
func TestCompareCounts(t *testing.T) {
	tests := []struct {
		name     string
		expected int
		detected int
		tally    CountTally
	}{
		{
			name:     "over-detection",
			expected: 3,
			detected: 5,
			tally:    CountTally{TruePos: 3, FalsePos: 2, FalseNeg: 0},
		},
		{
			name:     "under-detection",
			expected: 3,
			detected: 1,
			tally:    CountTally{TruePos: 1, FalsePos: 0, FalseNeg: 2},
		},
		{
			name:     "exact match",
			expected: 2,
			detected: 2,
			tally:    CountTally{TruePos: 2},
		},
		{
			name:     "nothing detected",
			expected: 4,
			detected: 0,
			tally:    CountTally{FalseNeg: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dets := make(DetectionSet)
			for i := 0; i < tt.detected; i++ {
				dets[string(rune('a'+i))] = Detection{Label: "cup"}
			}
			counts := []ClassCount{{Class: "cup", Expected: tt.expected}}
			assert.Equal(t, tt.tally, CompareCounts(counts, dets))
		})
	}
}

// TestCompareCountsTwoClasses verifies that per-class tallies add up
// independently of geometry.
func TestCompareCountsTwoClasses(t *testing.T) {
	dets := DetectionSet{
		"0": {Label: "cup"},
		"1": {Label: "cup"},
		"2": {Label: "bowl"},
		"3": {Label: "fork"},
	}
	counts := []ClassCount{
		{Class: "cup", Expected: 1},
		{Class: "bowl", Expected: 2},
	}
	tally := CompareCounts(counts, dets)
	// cup: TP 1, FP 1; bowl: TP 1, FN 1. The fork is nobody's problem.
	assert.Equal(t, CountTally{TruePos: 2, FalsePos: 1, FalseNeg: 1}, tally)
}

// TestCompareCountsDuplicateClass verifies that detections are
// attributed once when two count entries name the same class: the
// first entry consumes them, the duplicate scores as pure misses.
func TestCompareCountsDuplicateClass(t *testing.T) {
	dets := DetectionSet{
		"0": {Label: "cup"},
		"1": {Label: "cup"},
		"2": {Label: "cup"},
	}
	counts := []ClassCount{
		{Class: "cup", Expected: 2},
		{Class: "cup", Expected: 2},
	}
	tally := CompareCounts(counts, dets)
	// First entry: TP 2, FP 1. Second entry sees no detections: FN 2.
	assert.Equal(t, CountTally{TruePos: 2, FalsePos: 1, FalseNeg: 2}, tally)
}

// TestCountTallyRates verifies the zero-denominator contract of
// precision and recall.
func TestCountTallyRates(t *testing.T) {
	assert.Equal(t, 0.0, CountTally{}.Precision())
	assert.Equal(t, 0.0, CountTally{}.Recall())

	tally := CountTally{TruePos: 2, FalsePos: 1, FalseNeg: 0}
	assert.InDelta(t, 2.0/3.0, tally.Precision(), 1e-9)
	assert.InDelta(t, 1.0, tally.Recall(), 1e-9)
}

// TestPercentPRF verifies percentage scaling and the F1 harmonic mean,
// including the all-zero case.
func TestPercentPRF(t *testing.T) {
	p, r, f1 := PercentPRF(CountTally{TruePos: 2, FalsePos: 1})
	assert.InDelta(t, 200.0/3.0, p, 1e-9)
	assert.InDelta(t, 100.0, r, 1e-9)
	assert.InDelta(t, 80.0, f1, 1e-9)

	p, r, f1 = PercentPRF(CountTally{})
	assert.Equal(t, 0.0, p)
	assert.Equal(t, 0.0, r)
	assert.Equal(t, 0.0, f1)
}

// TestCountingEvaluate runs the counting task end to end: a cup
// assertion expecting 2 with 3 detected cups yields precision 2/3 and
// full recall, and an image missing from the predictions is dropped
// from the tally rather than counted as a failed attempt.
func TestCountingEvaluate(t *testing.T) {
	scorer := NewCountingScorer(nil)

	gts := []Assertion{
		{Counts: []ClassCount{{Class: "cup", Expected: 2}}, Level: 1},
		{Counts: []ClassCount{{Class: "cup", Expected: 5}}, Level: 1},
	}
	preds := map[string]DetectionSet{
		"0": {
			"0": {Label: "cup"},
			"1": {Label: "cup"},
			"2": {Label: "cup"},
		},
		// image 1 missing: skipped entirely, so its 5 expected cups
		// never become false negatives.
	}

	result := scorer.Evaluate(gts, preds)
	require.NotNil(t, result)

	require.Len(t, result.PrecisionsPerLevel[1], 1)
	assert.InDelta(t, 200.0/3.0, result.PrecisionsPerLevel[1][0], 1e-9)
	assert.InDelta(t, 100.0, result.RecallsPerLevel[1][0], 1e-9)
	assert.InDelta(t, 80.0, result.F1PerLevel[1][0], 1e-9)

	// Untouched levels carry zeros into the averages.
	assert.InDelta(t, 0.0, result.F1PerLevel[2][0], 1e-9)
	assert.InDelta(t, (200.0/3.0)/3.0, result.Average.Precision, 1e-9)
	assert.InDelta(t, 100.0/3.0, result.Average.Recall, 1e-9)
	assert.InDelta(t, 80.0/3.0, result.Average.F1, 1e-9)
}
