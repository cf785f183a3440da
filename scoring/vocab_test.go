package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRelationVocabKind verifies case-sensitive synonym-set
// membership.
func TestRelationVocabKind(t *testing.T) {
	vocab := DefaultRelationVocab()

	tests := []struct {
		label string
		kind  RelationKind
	}{
		{"bigger", RelationBigger},
		{"larger", RelationBigger},
		{"smaller", RelationSmaller},
		{"on the right of", RelationRight},
		{"right", RelationRight},
		{"on the left of", RelationLeft},
		{"above", RelationAbove},
		{"on", RelationAbove},
		{"top", RelationAbove},
		{"underneath", RelationBelow},
		{"Bigger", RelationUnknown}, // matching is case-sensitive
		{"next to", RelationUnknown},
		{"", RelationUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.kind, vocab.Kind(tt.label), "label %q", tt.label)
	}
}
