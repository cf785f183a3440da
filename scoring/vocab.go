package scoring

import "github.com/thisisWooyeol/HRSBench/common"

// RelationKind identifies the geometric predicate a relation label
// resolves to.
type RelationKind int

// Relation kinds.
const (
	RelationUnknown RelationKind = iota
	RelationBigger
	RelationSmaller
	RelationRight
	RelationLeft
	RelationAbove
	RelationBelow
)

func (k RelationKind) String() string {
	switch k {
	case RelationBigger:
		return "bigger"
	case RelationSmaller:
		return "smaller"
	case RelationRight:
		return "right"
	case RelationLeft:
		return "left"
	case RelationAbove:
		return "above"
	case RelationBelow:
		return "below"
	}
	return "unknown"
}

// RelationVocab maps free-form relation labels from prompts onto
// relation kinds. Membership is case-sensitive. The vocabulary is
// explicit data passed into the scorer rather than a hidden constant,
// so callers can extend the synonym sets without touching the engine.
type RelationVocab struct {
	Bigger  []string `yaml:"bigger"`
	Smaller []string `yaml:"smaller"`
	Right   []string `yaml:"right"`
	Left    []string `yaml:"left"`
	Above   []string `yaml:"above"`
	Below   []string `yaml:"below"`
}

// DefaultRelationVocab returns the synonym sets the benchmark prompts
// are written with.
func DefaultRelationVocab() RelationVocab {
	return RelationVocab{
		Bigger:  []string{"larger", "bigger"},
		Smaller: []string{"smaller"},
		Right:   []string{"on the right of", "right"},
		Left:    []string{"on the left of", "left"},
		Above:   []string{"on", "above", "over", "top"},
		Below:   []string{"below", "beneath", "under", "underneath"},
	}
}

// Kind resolves a relation label to its kind, RelationUnknown when the
// label is outside every synonym set.
func (v RelationVocab) Kind(label string) RelationKind {
	switch {
	case contains(v.Bigger, label):
		return RelationBigger
	case contains(v.Smaller, label):
		return RelationSmaller
	case contains(v.Right, label):
		return RelationRight
	case contains(v.Left, label):
		return RelationLeft
	case contains(v.Above, label):
		return RelationAbove
	case contains(v.Below, label):
		return RelationBelow
	}
	return RelationUnknown
}

// holds evaluates the predicate named by kind with a as subject and b
// as anchor. RelationUnknown never holds.
func holds(kind RelationKind, a, b common.Box) bool {
	switch kind {
	case RelationBigger:
		return a.Larger(b)
	case RelationSmaller:
		return a.Smaller(b)
	case RelationRight:
		return a.RightOf(b)
	case RelationLeft:
		return a.LeftOf(b)
	case RelationAbove:
		return a.Above(b)
	case RelationBelow:
		return a.Below(b)
	}
	return false
}

func contains(set []string, label string) bool {
	for _, s := range set {
		if s == label {
			return true
		}
	}
	return false
}
