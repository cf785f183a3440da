package dataset

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/thisisWooyeol/HRSBench/scoring"
)

// maxLineBytes bounds a single JSONL line; prompts are short but the
// layout box lists can get long.
const maxLineBytes = 1 << 20

// LoadRecords reads a ground-truth JSONL file line by line. Blank
// lines are skipped.
func LoadRecords(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open ground truth %s", path)
	}
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	line := 0
	for scanner.Scan() {
		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}
		var rec Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, errors.Wrapf(err, "parse %s line %d", path, line)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read ground truth %s", path)
	}
	return records, nil
}

// LoadGroundTruth reads a ground-truth JSONL file into assertions,
// ordered by image index.
func LoadGroundTruth(path string) ([]scoring.Assertion, error) {
	records, err := LoadRecords(path)
	if err != nil {
		return nil, err
	}
	assertions := make([]scoring.Assertion, len(records))
	for i, rec := range records {
		assertions[i] = rec.Assertion()
	}
	return assertions, nil
}

// WriteGroundTruth writes records as JSONL, one record per line.
func WriteGroundTruth(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create ground truth %s", path)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for i, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return errors.Wrapf(err, "encode record %d", i)
		}
	}
	if err := w.Flush(); err != nil {
		return errors.Wrapf(err, "flush ground truth %s", path)
	}
	return nil
}

// LoadLayouts reads a raw layout-generator output file: prompt to the
// phrases the generator placed and their boxes in layout coordinates.
func LoadLayouts(path string) (map[string]LayoutEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read layouts %s", path)
	}
	var layouts map[string]LayoutEntry
	if err := json.Unmarshal(data, &layouts); err != nil {
		return nil, errors.Wrapf(err, "parse layouts %s", path)
	}
	return layouts, nil
}

// LoadPredictions reads a per-image detector output file. The layout
// is image id to slot id to candidate detections, each candidate a
// tuple of four numeric-string coordinates plus the class label:
//
//	{"0": {"0": [["44.3", "79.6", "438.9", "287.8", "airplane"]]}}
func LoadPredictions(path string) (map[string]scoring.RawImage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read predictions %s", path)
	}
	var preds map[string]scoring.RawImage
	if err := json.Unmarshal(data, &preds); err != nil {
		return nil, errors.Wrapf(err, "parse predictions %s", path)
	}
	return preds, nil
}
