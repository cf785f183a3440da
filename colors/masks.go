package colors

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/thisisWooyeol/HRSBench/scoring"
)

// ImageName builds the canonical stem under which a generated image
// and its masks are stored: "{index}_{level}_{prompt}" with the prompt
// spaces replaced by underscores.
func ImageName(index, level int, prompt string) string {
	return strconv.Itoa(index) + "_" + strconv.Itoa(level) + "_" + strings.ReplaceAll(prompt, " ", "_")
}

// MaskClassID extracts the detected class id a mask file is tagged
// with: the trailing "_{classId}" segment before the extension.
func MaskClassID(name string) (int, error) {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	idx := strings.LastIndex(stem, "_")
	if idx < 0 {
		return 0, errors.Errorf("mask name %q carries no class id suffix", name)
	}
	id, err := strconv.Atoi(stem[idx+1:])
	if err != nil {
		return 0, errors.Wrapf(err, "parse class id from mask name %q", name)
	}
	return id, nil
}

// ListMaskNames reads the file names of a mask directory,
// subdirectories excluded.
func ListMaskNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "read mask directory %s", dir)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// BuildMaskIndex groups predicted mask files by the image they belong
// to. A mask belongs to an image when its filename contains the
// image's canonical stem.
func BuildMaskIndex(maskNames []string, gts []scoring.Assertion) map[string][]string {
	index := make(map[string][]string, len(gts))
	for idx, gt := range gts {
		stem := ImageName(idx, gt.Level, gt.Prompt)
		var matches []string
		for _, name := range maskNames {
			if strings.Contains(name, stem) {
				matches = append(matches, name)
			}
		}
		index[stem] = matches
	}
	return index
}
