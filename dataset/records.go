// Package dataset - Ground-truth and prediction records for the
// scoring engine: JSONL assertion files, raw detector output, and the
// prompt tables the ground truth is assembled from.
package dataset

import (
	"strings"

	"github.com/thisisWooyeol/HRSBench/scoring"
)

// Record is one line of a ground-truth JSONL file. The flat
// expected_obj1..4 / relation1..2 / color1..4 columns mirror the
// prompt-template layout; Assertion folds them into the canonical
// form the scorers consume.
type Record struct {
	Prompt        string      `json:"prompt"`
	Phrases       []string    `json:"phrases,omitempty"`
	BoundingBoxes [][]float64 `json:"bounding_boxes,omitempty"`
	NumObjects    int         `json:"num_objects,omitempty"`
	NumBboxes     int         `json:"num_bboxes,omitempty"`

	VanillaPrompt   string `json:"vanilla_prompt,omitempty"`
	SyntheticPrompt string `json:"synthetic_prompt,omitempty"`

	ExpectedObj1 string `json:"expected_obj1,omitempty"`
	ExpectedObj2 string `json:"expected_obj2,omitempty"`
	ExpectedObj3 string `json:"expected_obj3,omitempty"`
	ExpectedObj4 string `json:"expected_obj4,omitempty"`

	Relation1 string `json:"relation1,omitempty"`
	Relation2 string `json:"relation2,omitempty"`

	Color1 string `json:"color1,omitempty"`
	Color2 string `json:"color2,omitempty"`
	Color3 string `json:"color3,omitempty"`
	Color4 string `json:"color4,omitempty"`

	ExpectedN1 int `json:"expected_n1,omitempty"`
	ExpectedN2 int `json:"expected_n2,omitempty"`

	Level int `json:"level"`
}

// Assertion converts the record into the canonical assertion form,
// dropping empty columns while preserving order.
func (r Record) Assertion() scoring.Assertion {
	a := scoring.Assertion{
		Prompt: r.Prompt,
		Level:  r.Level,
	}
	for _, obj := range []string{r.ExpectedObj1, r.ExpectedObj2, r.ExpectedObj3, r.ExpectedObj4} {
		if obj = strings.TrimSpace(obj); obj != "" {
			a.Objects = append(a.Objects, obj)
		}
	}
	for _, rel := range []string{r.Relation1, r.Relation2} {
		if rel = strings.TrimSpace(rel); rel != "" {
			a.Relations = append(a.Relations, rel)
		}
	}
	for _, color := range []string{r.Color1, r.Color2, r.Color3, r.Color4} {
		if color = strings.TrimSpace(color); color != "" {
			a.Colors = append(a.Colors, color)
		}
	}
	if r.ExpectedObj1 != "" && r.ExpectedN1 > 0 {
		a.Counts = append(a.Counts, scoring.ClassCount{Class: r.ExpectedObj1, Expected: r.ExpectedN1})
	}
	if r.ExpectedObj2 != "" && r.ExpectedN2 > 0 {
		a.Counts = append(a.Counts, scoring.ClassCount{Class: r.ExpectedObj2, Expected: r.ExpectedN2})
	}
	return a
}
