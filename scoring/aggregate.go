package scoring

// Accumulator collects per-image outcomes for one difficulty level.
// It is purely additive: once an image's outcome is recorded it is
// never revisited.
type Accumulator struct {
	Outcomes  []bool
	Attempted int
	Matched   int
}

// Record appends one image outcome.
func (a *Accumulator) Record(ok bool) {
	a.Outcomes = append(a.Outcomes, ok)
	a.Attempted++
	if ok {
		a.Matched++
	}
}

// Accuracy returns the percentage of matched images, 0.0 when nothing
// was attempted.
func (a *Accumulator) Accuracy() float64 {
	if a.Attempted == 0 {
		return 0.0
	}
	return 100 * float64(a.Matched) / float64(a.Attempted)
}

// AccuracyResult is the serialized result of an accuracy-style task
// (relations, colors): one accuracy per level plus the arithmetic mean
// across levels.
type AccuracyResult struct {
	AccuracyPerLevel map[int][]float64 `json:"accuracy_per_level"`
	AverageAccuracy  float64           `json:"average_accuracy"`
}

// BuildAccuracyResult assembles the result object from per-level
// accuracies. The average is an arithmetic mean over the three levels,
// not a pool over images, so a level with zero attempted images still
// contributes 0.0.
func BuildAccuracyResult(perLevel map[int]float64) *AccuracyResult {
	res := &AccuracyResult{AccuracyPerLevel: make(map[int][]float64, NumLevels)}
	sum := 0.0
	for level := 1; level <= NumLevels; level++ {
		acc := perLevel[level]
		res.AccuracyPerLevel[level] = []float64{acc}
		sum += acc
	}
	res.AverageAccuracy = sum / NumLevels
	return res
}
