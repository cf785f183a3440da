package colors

import (
	"image"
	"path/filepath"

	"go.uber.org/zap"
	"gocv.io/x/gocv"

	"github.com/thisisWooyeol/HRSBench/common"
	"github.com/thisisWooyeol/HRSBench/scoring"
)

// imageExt is the extension the generation pipeline writes images
// under.
const imageExt = ".jpg"

// Scorer checks, object by object, whether a generated image gave each
// expected object its expected color. For every ground-truth
// (object, color) pair it selects the segmentation masks tagged with
// the object's class id, computes the mean hue of the image restricted
// to each mask's foreground, bins the hue, and declares a match as
// soon as one mask's color equals the expectation.
//
// The accuracy denominator is the total number of ground-truth objects
// at a level, so an unreadable image or a missing mask leaves its
// objects counted as misses rather than shrinking the denominator.
type Scorer struct {
	breakpoints HueBreakpoints
	log         *zap.Logger
}

// NewScorer creates a color scorer with the given hue breakpoints.
func NewScorer(breakpoints HueBreakpoints, log *zap.Logger) *Scorer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scorer{breakpoints: breakpoints, log: log}
}

// Evaluate scores every color assertion and aggregates per-level
// accuracies. maskIndex groups mask filenames by image stem (see
// BuildMaskIndex); imageDir and maskDir locate the pixel data.
func (s *Scorer) Evaluate(gts []scoring.Assertion, maskIndex map[string][]string, imageDir, maskDir string) *scoring.AccuracyResult {
	perLevel := make(map[int]float64, scoring.NumLevels)
	for level := 1; level <= scoring.NumLevels; level++ {
		perLevel[level] = s.scoreLevel(gts, maskIndex, imageDir, maskDir, level)
		s.log.Info("level scored",
			zap.String("level", scoring.LevelNames[level]),
			zap.Float64("accuracy", perLevel[level]))
	}
	return scoring.BuildAccuracyResult(perLevel)
}

func (s *Scorer) scoreLevel(gts []scoring.Assertion, maskIndex map[string][]string, imageDir, maskDir string, level int) float64 {
	trueCount := 0
	totalObjects := 0

	for idx, gt := range gts {
		if gt.Level != level {
			continue
		}
		totalObjects += len(gt.Objects)

		stem := ImageName(idx, gt.Level, gt.Prompt)
		maskNames := maskIndex[stem]
		if len(maskNames) == 0 {
			s.log.Warn("no masks found for image", zap.String("image", stem))
			continue
		}

		hue, ok := s.loadHueChannel(filepath.Join(imageDir, stem+imageExt))
		if !ok {
			continue
		}
		trueCount += s.scoreObjects(gt, maskNames, maskDir, hue)
		hue.Close()
	}

	if totalObjects == 0 {
		return 0.0
	}
	return 100 * float64(trueCount) / float64(totalObjects)
}

// scoreObjects counts how many of the assertion's objects carry their
// expected color somewhere in the image.
func (s *Scorer) scoreObjects(gt scoring.Assertion, maskNames []string, maskDir string, hue *gocv.Mat) int {
	matched := 0
	for objIdx, obj := range gt.Objects {
		if objIdx >= len(gt.Colors) {
			break
		}
		classID, ok := common.ClassID(obj)
		if !ok {
			s.log.Warn("object class outside vocabulary", zap.String("class", obj))
			continue
		}
		for _, maskName := range maskNames {
			id, err := MaskClassID(maskName)
			if err != nil {
				s.log.Warn("could not parse mask class id",
					zap.String("mask", maskName), zap.Error(err))
				continue
			}
			if id != classID {
				continue
			}
			avg, ok := s.maskedAverageHue(hue, filepath.Join(maskDir, maskName))
			if !ok {
				continue
			}
			if s.breakpoints.Classify(avg) == gt.Colors[objIdx] {
				matched++
				break
			}
		}
	}
	return matched
}

// loadHueChannel reads a generated image and isolates the hue plane of
// its HSV representation.
func (s *Scorer) loadHueChannel(path string) (*gocv.Mat, bool) {
	img := gocv.IMRead(path, gocv.IMReadColor)
	if img.Empty() {
		s.log.Warn("could not load generated image", zap.String("path", path))
		return nil, false
	}
	defer img.Close()

	hsv := gocv.NewMat()
	defer hsv.Close()
	gocv.CvtColor(img, &hsv, gocv.ColorBGRToHSV)

	channels := gocv.Split(hsv)
	for i := 1; i < len(channels); i++ {
		channels[i].Close()
	}
	return &channels[0], true
}

// maskedAverageHue computes the mean hue over the mask's foreground
// pixels. The second return value is false when the mask is unreadable
// or selects no pixels with a nonzero hue.
func (s *Scorer) maskedAverageHue(hue *gocv.Mat, maskPath string) (float64, bool) {
	mask := gocv.IMRead(maskPath, gocv.IMReadGrayScale)
	if mask.Empty() {
		s.log.Warn("could not load mask", zap.String("path", maskPath))
		return 0, false
	}
	defer mask.Close()

	if mask.Rows() != hue.Rows() || mask.Cols() != hue.Cols() {
		gocv.Resize(mask, &mask, image.Pt(hue.Cols(), hue.Rows()), 0, 0, gocv.InterpolationNearestNeighbor)
	}

	// Reduce the mask to 0/1 and zero out background hues; the
	// denominator then counts foreground pixels with a nonzero hue.
	bin := gocv.NewMat()
	defer bin.Close()
	gocv.Threshold(mask, &bin, 254, 1, gocv.ThresholdBinary)

	masked := gocv.NewMat()
	defer masked.Close()
	gocv.Multiply(*hue, bin, &masked)

	nonzero := gocv.CountNonZero(masked)
	if nonzero == 0 {
		return 0, false
	}
	return masked.Sum().Val1 / float64(nonzero), true
}
