package dataset

import (
	"sort"
	"strings"

	"go.uber.org/zap"
)

// LayoutEntry is one raw layout-generator output keyed by prompt: the
// object phrases it placed and their boxes in layout coordinates.
type LayoutEntry struct {
	Phrases []string    `json:"phrases"`
	Boxes   [][]float64 `json:"boxes"`
}

// layoutExtent is the coordinate range of the layout generator; boxes
// are normalized to [0, 1] by this before they land in ground truth.
const layoutExtent = 512.0

// CountingLevel derives the difficulty level of a counting assertion
// from its two expected counts: one count absent is easy, both small
// is medium, both large is hard. The second return value is false for
// count combinations outside the benchmark's tiers.
func CountingLevel(n1, n2 int) (int, bool) {
	switch {
	case n1 == 0 || n2 == 0:
		return 1, true
	case n1 < 4 && n2 < 4:
		return 2, true
	case n1 >= 4 && n2 >= 4:
		return 3, true
	}
	return 0, false
}

// ArityLevel derives the difficulty level of a relational or color
// assertion from its object arity: 2 objects is easy, 3 medium, 4
// hard.
func ArityLevel(numObjects int) (int, bool) {
	if numObjects < 2 || numObjects > 4 {
		return 0, false
	}
	return numObjects - 1, true
}

// BuildCountingRecords cross-references raw layout output against the
// counting prompt table to produce ground-truth records. Prompts
// missing from the table and count combinations without a level are
// logged and skipped; prompts are visited in sorted order so the
// output is deterministic.
func BuildCountingRecords(layouts map[string]LayoutEntry, prompts map[string]CountingPrompt, log *zap.Logger) []Record {
	if log == nil {
		log = zap.NewNop()
	}
	var records []Record
	for _, prompt := range sortedKeys(layouts) {
		entry := layouts[prompt]
		row, ok := prompts[prompt]
		if !ok {
			log.Warn("prompt not found in table", zap.String("prompt", prompt))
			continue
		}
		level, ok := CountingLevel(row.N1, row.N2)
		if !ok {
			log.Warn("uncategorized count combination",
				zap.String("prompt", prompt), zap.Int("n1", row.N1), zap.Int("n2", row.N2))
			continue
		}
		if len(entry.Phrases) != len(entry.Boxes) {
			log.Warn("objects and boxes disagree",
				zap.String("prompt", prompt),
				zap.Int("objects", len(entry.Phrases)), zap.Int("boxes", len(entry.Boxes)))
		}
		var expected []string
		for i := 0; i < row.N1; i++ {
			expected = append(expected, row.Obj1)
		}
		for i := 0; i < row.N2; i++ {
			expected = append(expected, row.Obj2)
		}
		checkExpectedPhrases(prompt, expected, entry.Phrases, log)
		records = append(records, Record{
			Prompt:        prompt,
			Phrases:       entry.Phrases,
			BoundingBoxes: normalizeBoxes(entry.Boxes),
			NumObjects:    len(entry.Phrases),
			NumBboxes:     len(entry.Boxes),
			VanillaPrompt: row.VanillaPrompt,
			ExpectedN1:    row.N1,
			ExpectedObj1:  row.Obj1,
			ExpectedN2:    row.N2,
			ExpectedObj2:  row.Obj2,
			Level:         level,
		})
	}
	return records
}

// BuildSizeRecords cross-references raw layout output against the
// size prompt table. The level follows the assertion's object arity.
func BuildSizeRecords(layouts map[string]LayoutEntry, prompts map[string]SizePrompt, log *zap.Logger) []Record {
	if log == nil {
		log = zap.NewNop()
	}
	var records []Record
	for _, prompt := range sortedKeys(layouts) {
		entry := layouts[prompt]
		row, ok := prompts[prompt]
		if !ok {
			log.Warn("prompt not found in table", zap.String("prompt", prompt))
			continue
		}
		level, ok := ArityLevel(countNonEmpty(row.Objects[:]))
		if !ok {
			log.Warn("uncategorized object arity",
				zap.String("prompt", prompt), zap.Int("objects", countNonEmpty(row.Objects[:])))
			continue
		}
		checkExpectedPhrases(prompt, row.Objects[:], entry.Phrases, log)
		records = append(records, Record{
			Prompt:          prompt,
			Phrases:         entry.Phrases,
			BoundingBoxes:   normalizeBoxes(entry.Boxes),
			NumObjects:      len(entry.Phrases),
			NumBboxes:       len(entry.Boxes),
			SyntheticPrompt: row.SyntheticPrompt,
			ExpectedObj1:    row.Objects[0],
			ExpectedObj2:    row.Objects[1],
			ExpectedObj3:    row.Objects[2],
			ExpectedObj4:    row.Objects[3],
			Relation1:       row.Rel1,
			Relation2:       row.Rel2,
			Level:           level,
		})
	}
	return records
}

// BuildColorRecords cross-references raw layout output against the
// color prompt table. The level follows the assertion's object arity.
func BuildColorRecords(layouts map[string]LayoutEntry, prompts map[string]ColorPrompt, log *zap.Logger) []Record {
	if log == nil {
		log = zap.NewNop()
	}
	var records []Record
	for _, prompt := range sortedKeys(layouts) {
		entry := layouts[prompt]
		row, ok := prompts[prompt]
		if !ok {
			log.Warn("prompt not found in table", zap.String("prompt", prompt))
			continue
		}
		level, ok := ArityLevel(countNonEmpty(row.Objects[:]))
		if !ok {
			log.Warn("uncategorized object arity",
				zap.String("prompt", prompt), zap.Int("objects", countNonEmpty(row.Objects[:])))
			continue
		}
		checkExpectedPhrases(prompt, row.Objects[:], entry.Phrases, log)
		records = append(records, Record{
			Prompt:          prompt,
			Phrases:         entry.Phrases,
			BoundingBoxes:   normalizeBoxes(entry.Boxes),
			NumObjects:      len(entry.Phrases),
			NumBboxes:       len(entry.Boxes),
			SyntheticPrompt: row.SyntheticPrompt,
			ExpectedObj1:    row.Objects[0],
			ExpectedObj2:    row.Objects[1],
			ExpectedObj3:    row.Objects[2],
			ExpectedObj4:    row.Objects[3],
			Color1:          row.Colors[0],
			Color2:          row.Colors[1],
			Color3:          row.Colors[2],
			Color4:          row.Colors[3],
			Level:           level,
		})
	}
	return records
}

// checkExpectedPhrases warns when the layout placed fewer instances of
// an expected class than the prompt table promised. Both sides are
// normalized before counting, and a phrase matches an expected class
// when either contains the other ("small dog" still covers "dog").
func checkExpectedPhrases(prompt string, expected, phrases []string, log *zap.Logger) {
	placed := make(map[string]int, len(phrases))
	for _, phrase := range phrases {
		placed[NormalizeClassName(phrase)]++
	}
	wanted := make(map[string]int, len(expected))
	for _, obj := range expected {
		if obj = strings.TrimSpace(obj); obj != "" {
			wanted[NormalizeClassName(obj)]++
		}
	}
	for obj, want := range wanted {
		found := 0
		for phrase, n := range placed {
			if strings.Contains(phrase, obj) || strings.Contains(obj, phrase) {
				found += n
			}
		}
		if found < want {
			log.Warn("expected object missing from layout",
				zap.String("prompt", prompt), zap.String("object", obj),
				zap.Int("expected", want), zap.Int("placed", found))
		}
	}
}

func countNonEmpty(objects []string) int {
	n := 0
	for _, obj := range objects {
		if strings.TrimSpace(obj) != "" {
			n++
		}
	}
	return n
}

func normalizeBoxes(boxes [][]float64) [][]float64 {
	out := make([][]float64, len(boxes))
	for i, box := range boxes {
		normalized := make([]float64, len(box))
		for j, coord := range box {
			normalized[j] = coord / layoutExtent
		}
		out[i] = normalized
	}
	return out
}

func sortedKeys(layouts map[string]LayoutEntry) []string {
	keys := make([]string, 0, len(layouts))
	for key := range layouts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
