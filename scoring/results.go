package scoring

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// ResultPath derives the result-file path from an input prediction
// path by replacing its extension with "_results.json". Only the base
// name's extension counts; dots in directory names are left alone.
func ResultPath(inputPath string) string {
	ext := filepath.Ext(filepath.Base(inputPath))
	return strings.TrimSuffix(inputPath, ext) + "_results.json"
}

// WriteResult serializes a result object as indented JSON. Map keys
// come out sorted, matching the flat key-sorted structure consumers
// expect.
func WriteResult(path string, result any) error {
	data, err := json.MarshalIndent(result, "", "    ")
	if err != nil {
		return errors.Wrap(err, "marshal result")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write result file %s", path)
	}
	return nil
}
