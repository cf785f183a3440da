package scoring

import (
	"sort"
	"strconv"
)

// rawTupleLen is the wire layout of one detection: four coordinates
// plus the class label.
const rawTupleLen = 5

// Normalize collapses a raw per-image detector record into one
// representative detection per slot. The upstream detector may assign
// several candidate detections to a slot; the first candidate wins and
// the rest are discarded as duplicates. Slots with an empty candidate
// list, or whose coordinates fail to parse, are dropped silently.
func Normalize(raw RawImage) DetectionSet {
	out := make(DetectionSet, len(raw))
	for slot, candidates := range raw {
		if len(candidates) == 0 {
			continue
		}
		det, ok := parseTuple(candidates[0])
		if !ok {
			continue
		}
		out[slot] = det
	}
	return out
}

// NormalizeAll normalizes every image record of a prediction file.
func NormalizeAll(raw map[string]RawImage) map[string]DetectionSet {
	out := make(map[string]DetectionSet, len(raw))
	for imageID, img := range raw {
		out[imageID] = Normalize(img)
	}
	return out
}

func parseTuple(tuple []string) (Detection, bool) {
	if len(tuple) != rawTupleLen {
		return Detection{}, false
	}
	coords := make([]float64, 4)
	for i := 0; i < 4; i++ {
		v, err := strconv.ParseFloat(tuple[i], 64)
		if err != nil {
			return Detection{}, false
		}
		coords[i] = v
	}
	det := Detection{Label: tuple[4]}
	det.Box.X1, det.Box.Y1, det.Box.X2, det.Box.Y2 = coords[0], coords[1], coords[2], coords[3]
	return det, true
}

// sortedSlots returns the detection slots in ascending order, numeric
// ids first. Matching visits slots in this order so results do not
// depend on map traversal.
func sortedSlots(dets DetectionSet) []string {
	slots := make([]string, 0, len(dets))
	for slot := range dets {
		slots = append(slots, slot)
	}
	sort.Slice(slots, func(i, j int) bool {
		a, errA := strconv.Atoi(slots[i])
		b, errB := strconv.Atoi(slots[j])
		if errA == nil && errB == nil {
			return a < b
		}
		if errA == nil {
			return true
		}
		if errB == nil {
			return false
		}
		return slots[i] < slots[j]
	})
	return slots
}
