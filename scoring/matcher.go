package scoring

// MatchByClass aligns a normalized detection set to the ground-truth
// object ordering. Each slot whose class label appears among the
// ground-truth objects is assigned to the earliest ground-truth index
// carrying that class name.
//
// Slots are visited in ascending slot-id order and the first matching
// detection claims an index; later detections of the same class do not
// displace it. This makes the duplicate-class behavior deterministic
// instead of depending on map traversal order.
//
// The returned assignment is partial: an object index is present only
// if at least one detection carries its exact class label.
func MatchByClass(dets DetectionSet, objects []string) map[int]Detection {
	assigned := make(map[int]Detection)
	for _, slot := range sortedSlots(dets) {
		det := dets[slot]
		idx := indexOf(objects, det.Label)
		if idx < 0 {
			continue
		}
		if _, taken := assigned[idx]; taken {
			continue
		}
		assigned[idx] = det
	}
	return assigned
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}
