package common

// COCOClasses lists the 80 COCO detection classes in canonical order.
// The slice index of a name is its class id, so "person" is 0 and
// "toothbrush" is 79. Segmentation masks embed these ids in their
// filenames.
var COCOClasses = []string{
	"person", "bicycle", "car", "motorcycle", "airplane", "bus", "train", "truck", "boat",
	"traffic light", "fire hydrant", "stop sign", "parking meter", "bench", "bird", "cat", "dog", "horse",
	"sheep", "cow", "elephant", "bear", "zebra", "giraffe", "backpack", "umbrella", "handbag", "tie",
	"suitcase", "frisbee", "skis", "snowboard", "sports ball", "kite", "baseball bat", "baseball glove",
	"skateboard", "surfboard", "tennis racket", "bottle", "wine glass", "cup", "fork", "knife", "spoon",
	"bowl", "banana", "apple", "sandwich", "orange", "broccoli", "carrot", "hot dog", "pizza", "donut",
	"cake", "chair", "couch", "potted plant", "bed", "dining table", "toilet", "tv", "laptop", "mouse",
	"remote", "keyboard", "cell phone", "microwave", "oven", "toaster", "sink", "refrigerator", "book",
	"clock", "vase", "scissors", "teddy bear", "hair drier", "toothbrush",
}

var cocoNameToID map[string]int

func init() {
	cocoNameToID = make(map[string]int, len(COCOClasses))
	for idx, name := range COCOClasses {
		cocoNameToID[name] = idx
	}
}

// ClassID looks up the numeric id of a COCO class name. The second
// return value is false for names outside the closed vocabulary.
func ClassID(name string) (int, bool) {
	id, ok := cocoNameToID[name]
	return id, ok
}

// ClassName returns the COCO class name for a numeric id, or "" when
// the id is out of range.
func ClassName(id int) string {
	if id < 0 || id >= len(COCOClasses) {
		return ""
	}
	return COCOClasses[id]
}
