package scoring

import (
	"strconv"

	"go.uber.org/zap"
)

// CountTally accumulates true/false positive/negative counts across
// images.
type CountTally struct {
	TruePos  int
	FalsePos int
	FalseNeg int
}

// Add folds another tally into the receiver.
func (t *CountTally) Add(other CountTally) {
	t.TruePos += other.TruePos
	t.FalsePos += other.FalsePos
	t.FalseNeg += other.FalseNeg
}

// Precision returns TP/(TP+FP) as a fraction, 0.0 on a zero
// denominator.
func (t CountTally) Precision() float64 {
	if t.TruePos+t.FalsePos == 0 {
		return 0.0
	}
	return float64(t.TruePos) / float64(t.TruePos+t.FalsePos)
}

// Recall returns TP/(TP+FN) as a fraction, 0.0 on a zero denominator.
func (t CountTally) Recall() float64 {
	if t.TruePos+t.FalseNeg == 0 {
		return 0.0
	}
	return float64(t.TruePos) / float64(t.TruePos+t.FalseNeg)
}

// CompareCounts scores one image's detections against the expected
// per-class counts. For each expected class, detections up to the
// expected count are true positives, surplus detections are false
// positives, and the shortfall is false negatives. Geometry plays no
// part here. Each detection is attributed exactly once: if two count
// entries name the same class, the first consumes all of that class's
// detections and the rest tally as pure misses.
func CompareCounts(counts []ClassCount, dets DetectionSet) CountTally {
	var tally CountTally
	seen := make(map[string]bool, len(counts))
	for _, c := range counts {
		detected := 0
		if !seen[c.Class] {
			detected = dets.CountLabel(c.Class)
			seen[c.Class] = true
		}
		tally.TruePos += min(c.Expected, detected)
		tally.FalsePos += max(0, detected-c.Expected)
		tally.FalseNeg += max(0, c.Expected-detected)
	}
	return tally
}

// CountingScorer computes count-based precision/recall/F1 per level.
//
// Denominator policy: an image with no prediction record is logged and
// dropped from the tally entirely, unlike relation scoring where it
// stays as a failed attempt. The two policies are intentionally
// distinct.
type CountingScorer struct {
	log *zap.Logger
}

// NewCountingScorer creates a counting scorer.
func NewCountingScorer(log *zap.Logger) *CountingScorer {
	if log == nil {
		log = zap.NewNop()
	}
	return &CountingScorer{log: log}
}

// Evaluate tallies every counting assertion of the ground truth and
// aggregates per-level precision, recall, and F1.
func (s *CountingScorer) Evaluate(gts []Assertion, preds map[string]DetectionSet) *CountingResult {
	res := NewCountingResult()
	for level := 1; level <= NumLevels; level++ {
		var tally CountTally
		for idx, gt := range gts {
			if gt.Level != level {
				continue
			}
			imageID := strconv.Itoa(idx)
			dets, ok := preds[imageID]
			if !ok {
				s.log.Warn("image id not found in predictions",
					zap.String("image", imageID))
				continue
			}
			tally.Add(CompareCounts(gt.Counts, dets))
		}
		precision, recall, f1 := PercentPRF(tally)
		res.SetLevel(level, precision, recall, f1)
		s.log.Info("level scored",
			zap.String("level", LevelNames[level]),
			zap.Float64("precision", precision),
			zap.Float64("recall", recall),
			zap.Float64("f1", f1))
	}
	res.Finalize()
	return res
}

// PercentPRF converts a tally into percentage-scaled precision,
// recall, and F1. F1 is the harmonic mean of the percentage values,
// 0.0 when both are zero.
func PercentPRF(tally CountTally) (precision, recall, f1 float64) {
	precision = 100 * tally.Precision()
	recall = 100 * tally.Recall()
	if precision+recall > 0 {
		f1 = 2 * precision * recall / (precision + recall)
	}
	return precision, recall, f1
}

// CountingAverage is the across-level mean of the counting metrics.
type CountingAverage struct {
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
}

// CountingResult is the serialized result of the counting task.
type CountingResult struct {
	PrecisionsPerLevel map[int][]float64 `json:"precisions_per_level"`
	RecallsPerLevel    map[int][]float64 `json:"recalls_per_level"`
	F1PerLevel         map[int][]float64 `json:"f1_per_level"`
	Average            CountingAverage   `json:"average"`
}

// NewCountingResult creates an empty counting result.
func NewCountingResult() *CountingResult {
	return &CountingResult{
		PrecisionsPerLevel: make(map[int][]float64, NumLevels),
		RecallsPerLevel:    make(map[int][]float64, NumLevels),
		F1PerLevel:         make(map[int][]float64, NumLevels),
	}
}

// SetLevel records the metrics of one level.
func (r *CountingResult) SetLevel(level int, precision, recall, f1 float64) {
	r.PrecisionsPerLevel[level] = []float64{precision}
	r.RecallsPerLevel[level] = []float64{recall}
	r.F1PerLevel[level] = []float64{f1}
}

// Finalize computes the across-level averages. Levels never set
// contribute 0.0 to each mean.
func (r *CountingResult) Finalize() {
	var p, rec, f1 float64
	for level := 1; level <= NumLevels; level++ {
		p += first(r.PrecisionsPerLevel[level])
		rec += first(r.RecallsPerLevel[level])
		f1 += first(r.F1PerLevel[level])
	}
	r.Average = CountingAverage{
		Precision: p / NumLevels,
		Recall:    rec / NumLevels,
		F1:        f1 / NumLevels,
	}
}

func first(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}
	return values[0]
}
