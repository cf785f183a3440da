package dataset

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// CountingPrompt is one row of the counting prompt table: up to two
// expected classes with their occurrence counts.
type CountingPrompt struct {
	N1            int
	Obj1          string
	N2            int
	Obj2          string
	VanillaPrompt string
}

// ColorPrompt is one row of the color-composition prompt table: up to
// four objects with their expected colors.
type ColorPrompt struct {
	Objects         [4]string
	Colors          [4]string
	SyntheticPrompt string
}

// SizePrompt is one row of the size-composition prompt table: up to
// four objects with one or two size relations chaining them.
type SizePrompt struct {
	Objects         [4]string
	Rel1            string
	Rel2            string
	SyntheticPrompt string
}

// LoadCountingPrompts reads the counting prompt CSV keyed by its
// synthetic prompt.
func LoadCountingPrompts(path string) (map[string]CountingPrompt, error) {
	rows, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	prompts := make(map[string]CountingPrompt, len(rows))
	for i, row := range rows {
		key := strings.TrimSpace(cell(row, header, "synthetic_prompt"))
		n1, err := cellInt(row, header, "n1")
		if err != nil {
			return nil, errors.Wrapf(err, "%s row %d", path, i+2)
		}
		n2, err := cellInt(row, header, "n2")
		if err != nil {
			return nil, errors.Wrapf(err, "%s row %d", path, i+2)
		}
		prompts[key] = CountingPrompt{
			N1:            n1,
			Obj1:          strings.TrimSpace(cell(row, header, "obj1")),
			N2:            n2,
			Obj2:          strings.TrimSpace(cell(row, header, "obj2")),
			VanillaPrompt: strings.TrimSpace(cell(row, header, "vanilla_prompt")),
		}
	}
	return prompts, nil
}

// LoadColorPrompts reads the color prompt CSV keyed by its meta
// prompt.
func LoadColorPrompts(path string) (map[string]ColorPrompt, error) {
	rows, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	prompts := make(map[string]ColorPrompt, len(rows))
	for _, row := range rows {
		key := strings.TrimSpace(cell(row, header, "meta_prompt"))
		p := ColorPrompt{
			SyntheticPrompt: strings.TrimSpace(cell(row, header, "synthetic_prompt")),
		}
		for i := 0; i < 4; i++ {
			suffix := strconv.Itoa(i + 1)
			p.Objects[i] = strings.TrimSpace(cell(row, header, "obj"+suffix))
			p.Colors[i] = strings.TrimSpace(cell(row, header, "color"+suffix))
		}
		prompts[key] = p
	}
	return prompts, nil
}

// LoadSizePrompts reads the size prompt CSV keyed by its meta prompt.
func LoadSizePrompts(path string) (map[string]SizePrompt, error) {
	rows, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	prompts := make(map[string]SizePrompt, len(rows))
	for _, row := range rows {
		key := strings.TrimSpace(cell(row, header, "meta_prompt"))
		p := SizePrompt{
			Rel1:            strings.TrimSpace(cell(row, header, "rel1")),
			Rel2:            strings.TrimSpace(cell(row, header, "rel2")),
			SyntheticPrompt: strings.TrimSpace(cell(row, header, "synthetic_prompt")),
		}
		for i := 0; i < 4; i++ {
			p.Objects[i] = strings.TrimSpace(cell(row, header, "obj"+strconv.Itoa(i+1)))
		}
		prompts[key] = p
	}
	return prompts, nil
}

// classNameAliases folds generator-side phrasings onto detector class
// names.
var classNameAliases = map[string]string{
	"flat-screen tv": "tv",
	"flat screen tv": "tv",
	"person sitting": "person",
}

// NormalizeClassName canonicalizes a generator-side object phrase for
// comparison against detector class names: underscores become spaces,
// casing is lowered, and known aliases are folded.
func NormalizeClassName(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(strings.ReplaceAll(name, "_", " ")))
	if alias, ok := classNameAliases[normalized]; ok {
		return alias
	}
	return normalized
}

func readCSV(path string) ([][]string, map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "open prompt table %s", path)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, errors.Wrapf(err, "parse prompt table %s", path)
	}
	if len(rows) == 0 {
		return nil, nil, errors.Errorf("prompt table %s is empty", path)
	}
	header := make(map[string]int, len(rows[0]))
	for idx, name := range rows[0] {
		header[strings.TrimSpace(name)] = idx
	}
	return rows[1:], header, nil
}

func cell(row []string, header map[string]int, name string) string {
	idx, ok := header[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func cellInt(row []string, header map[string]int, name string) (int, error) {
	raw := strings.TrimSpace(cell(row, header, name))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Wrapf(err, "column %s", name)
	}
	return n, nil
}
