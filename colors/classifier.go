// Package colors - Hue-based color scoring of generated images against
// per-class segmentation masks.
package colors

// HueBin maps a right-open hue interval to a color name. Bins are
// ordered; a hue falls into the first bin whose UpTo bound exceeds it.
type HueBin struct {
	UpTo  float64 `yaml:"upTo"`
	Color string  `yaml:"color"`
}

// HueBreakpoints bins an average hue, expressed in the OpenCV 0-180
// convention, into a named color. The breakpoints are explicit data
// passed into the scorer rather than hidden constants.
type HueBreakpoints struct {
	Bins []HueBin `yaml:"bins"`
	// Fallback covers hues past the last bin. Hue wraps at 180, so
	// with the default bins both the low and the high end of the range
	// map to red.
	Fallback string `yaml:"fallback"`
}

// DefaultHueBreakpoints returns the breakpoints the benchmark scores
// with: <15 red, <22 orange, <39 yellow, <78 green, <131 blue, and red
// again past that.
func DefaultHueBreakpoints() HueBreakpoints {
	return HueBreakpoints{
		Bins: []HueBin{
			{UpTo: 15, Color: "red"},
			{UpTo: 22, Color: "orange"},
			{UpTo: 39, Color: "yellow"},
			{UpTo: 78, Color: "green"},
			{UpTo: 131, Color: "blue"},
		},
		Fallback: "red",
	}
}

// Classify bins a scalar hue into a color name.
func (b HueBreakpoints) Classify(hue float64) string {
	for _, bin := range b.Bins {
		if hue < bin.UpTo {
			return bin.Color
		}
	}
	return b.Fallback
}
