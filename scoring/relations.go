package scoring

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/thisisWooyeol/HRSBench/common"
)

// RelationScorer evaluates relational assertions (spatial and size)
// against per-image detection sets. Scoring walks a fixed pipeline per
// image: class check, class-conditioned matching, then arity dispatch
// over one or two chained relations.
//
// Denominator policy: an image stays in the denominator as a failed
// attempt whenever its prediction record is missing, a ground-truth
// class was not detected, or a gate relation fails. This differs from
// the counting scorer, which drops such images entirely; the two
// policies are intentionally distinct.
type RelationScorer struct {
	vocab RelationVocab
	log   *zap.Logger
}

// NewRelationScorer creates a scorer with the given relation
// vocabulary.
func NewRelationScorer(vocab RelationVocab, log *zap.Logger) *RelationScorer {
	if log == nil {
		log = zap.NewNop()
	}
	return &RelationScorer{vocab: vocab, log: log}
}

// Evaluate scores every assertion of the ground truth against its
// prediction record and aggregates per-level accuracies. Predictions
// are keyed by image id, the decimal index of the assertion in the
// ground-truth ordering.
func (s *RelationScorer) Evaluate(gts []Assertion, preds map[string]DetectionSet) *AccuracyResult {
	perLevel := make(map[int]float64, NumLevels)
	for level := 1; level <= NumLevels; level++ {
		acc := &Accumulator{}
		for idx, gt := range gts {
			if gt.Level != level {
				continue
			}
			imageID := strconv.Itoa(idx)
			dets, ok := preds[imageID]
			if !ok {
				s.log.Warn("missing prediction record", zap.String("image", imageID))
				acc.Record(false)
				continue
			}
			acc.Record(s.ScoreImage(imageID, gt, dets))
		}
		perLevel[level] = acc.Accuracy()
		s.log.Info("level scored",
			zap.String("level", LevelNames[level]),
			zap.Int("attempted", acc.Attempted),
			zap.Int("matched", acc.Matched),
			zap.Float64("accuracy", perLevel[level]))
	}
	return BuildAccuracyResult(perLevel)
}

// ScoreImage decides whether one image satisfies its relational
// assertion.
func (s *RelationScorer) ScoreImage(imageID string, a Assertion, dets DetectionSet) bool {
	// Every ground-truth class must appear somewhere among the
	// predicted classes before any geometry is consulted.
	labels := dets.Labels()
	for _, obj := range a.Objects {
		if !contains(labels, obj) {
			return false
		}
	}

	assigned := MatchByClass(dets, a.Objects)

	switch len(a.Objects) {
	case 2:
		return s.scorePair(imageID, a, assigned)
	case 3:
		return s.scoreTriple(imageID, a, assigned)
	case 4:
		return s.scoreQuad(imageID, a, assigned)
	}
	s.log.Warn("unexpected number of objects",
		zap.String("image", imageID), zap.Int("objects", len(a.Objects)))
	return false
}

// scorePair handles the easy level: a single relation between the
// subject and one anchor.
func (s *RelationScorer) scorePair(imageID string, a Assertion, assigned map[int]Detection) bool {
	if len(a.Relations) == 0 {
		s.log.Warn("assertion without relations", zap.String("image", imageID))
		return false
	}
	boxes, ok := boxesAt(assigned, 0, 1)
	if !ok {
		return false
	}
	kind := s.kindOf(imageID, a.Relations[0])
	return holds(kind, boxes[0], boxes[1])
}

// scoreTriple handles the medium level. With two relations the first
// gates the second: objects[0] vs objects[1] must hold before
// objects[0] vs objects[2] decides the outcome. With fewer relations
// the assertion is a "between" statement across the two anchors.
func (s *RelationScorer) scoreTriple(imageID string, a Assertion, assigned map[int]Detection) bool {
	boxes, ok := boxesAt(assigned, 0, 1, 2)
	if !ok {
		return false
	}
	if len(a.Relations) < 2 {
		return boxes[0].Between(boxes[1], boxes[2])
	}
	gate := s.kindOf(imageID, a.Relations[0])
	if !holds(gate, boxes[0], boxes[1]) {
		return false
	}
	second := s.kindOf(imageID, a.Relations[1])
	return holds(second, boxes[0], boxes[2])
}

// scoreQuad handles the hard level. Both leading objects must satisfy
// each relation against the shared anchor simultaneously: relation[0]
// over anchor objects[2] gates relation[1] over anchor objects[3].
// Without a second relation, both leading objects must lie between the
// two anchors.
func (s *RelationScorer) scoreQuad(imageID string, a Assertion, assigned map[int]Detection) bool {
	boxes, ok := boxesAt(assigned, 0, 1, 2, 3)
	if !ok {
		return false
	}
	if len(a.Relations) < 2 {
		return boxes[0].Between(boxes[2], boxes[3]) && boxes[1].Between(boxes[2], boxes[3])
	}
	gate := s.kindOf(imageID, a.Relations[0])
	if !(holds(gate, boxes[0], boxes[2]) && holds(gate, boxes[1], boxes[2])) {
		return false
	}
	second := s.kindOf(imageID, a.Relations[1])
	return holds(second, boxes[0], boxes[3]) && holds(second, boxes[1], boxes[3])
}

// kindOf resolves a relation label, warning once per unrecognized
// label occurrence. Unknown kinds never hold, so the image still
// counts as attempted but cannot score true.
func (s *RelationScorer) kindOf(imageID, label string) RelationKind {
	kind := s.vocab.Kind(label)
	if kind == RelationUnknown {
		s.log.Warn("unrecognized relation label",
			zap.String("image", imageID), zap.String("relation", label))
	}
	return kind
}

// boxesAt collects the assigned boxes for the given ground-truth
// indices. Any absent index (possible when ground-truth objects share
// a class name) fails the lookup and the image scores as a miss.
func boxesAt(assigned map[int]Detection, indices ...int) ([]common.Box, bool) {
	boxes := make([]common.Box, len(indices))
	for i, idx := range indices {
		det, ok := assigned[idx]
		if !ok {
			return nil, false
		}
		boxes[i] = det.Box
	}
	return boxes, true
}
