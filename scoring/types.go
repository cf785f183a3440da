// Package scoring - Assertion matching and relational scoring for
// generated images. A ground-truth assertion describes the objects,
// relations, counts, or colors a prompt asked for; the scorers here
// decide whether a detector's output for the generated image satisfies
// it and aggregate the outcomes into per-level metrics.
package scoring

import "github.com/thisisWooyeol/HRSBench/common"

// Difficulty levels. Level 1 covers two-object assertions and small
// counts, level 2 three objects and mid counts, level 3 four objects
// and large counts. Levels are assigned at ground-truth build time and
// never recomputed here.
const (
	NumLevels = 3
)

// LevelNames maps a level to its display name; index 0 is unused.
var LevelNames = []string{"", "Easy", "Medium", "Hard"}

// ClassCount is one expected-class/occurrence pair of a counting
// assertion. Kept as an ordered slice on the assertion so that scoring
// is deterministic.
type ClassCount struct {
	Class    string `json:"class"`
	Expected int    `json:"expected"`
}

// Assertion is one structured ground-truth statement about a generated
// image. The assertion's position in the ground-truth file is its
// image id.
type Assertion struct {
	// Prompt is the full generation prompt; the color task derives
	// image and mask filenames from it.
	Prompt string `json:"prompt"`
	// Objects holds 2-4 expected class names. Order is semantically
	// significant: the first object is the subject of each relation.
	Objects []string `json:"objects"`
	// Relations holds 0-2 free-form relation labels, e.g. "bigger" or
	// "on the right of". Empty for counting- and color-only assertions.
	Relations []string `json:"relations"`
	// Colors parallels the colored subset of Objects, same ordering.
	Colors []string `json:"colors"`
	// Counts holds up to two expected per-class occurrence counts for
	// counting assertions.
	Counts []ClassCount `json:"counts"`
	// Level is the difficulty tier, 1-3.
	Level int `json:"level"`
}

// Detection is one recognized object: a class label and its box.
type Detection struct {
	Label string
	Box   common.Box
}

// DetectionSet is one image's normalized detector output, keyed by the
// opaque slot id under which the detector reported each instance.
type DetectionSet map[string]Detection

// Labels returns every detected class label in the set. Duplicates are
// kept; the relation scorer only tests membership.
func (d DetectionSet) Labels() []string {
	labels := make([]string, 0, len(d))
	for _, det := range d {
		labels = append(labels, det.Label)
	}
	return labels
}

// CountLabel returns how many detections carry the given class label.
func (d DetectionSet) CountLabel(label string) int {
	n := 0
	for _, det := range d {
		if det.Label == label {
			n++
		}
	}
	return n
}

// RawImage is one image's raw detector output prior to normalization:
// slot id mapped to a list of candidate detections, each a tuple of
// four numeric-string coordinates (xmin, ymin, xmax, ymax) followed by
// the class label.
type RawImage map[string][][]string
