package layout

import (
	"math"

	"github.com/pressoir/galley/model"
)

// FigureConfig holds configuration for grouping image fragments into figures.
type FigureConfig struct {
	// GapTolerance is the maximum vertical distance, in layout units,
	// between one image fragment's bottom and the next fragment's top for
	// the two to belong to the same figure.
	// Default: 2.0, calibrated against ft:pedia's typesetting.
	GapTolerance float64

	// BorderlineMargin is the distance from GapTolerance within which a
	// gap counts as a borderline join-or-split call worth flagging.
	// Default: 0.5
	BorderlineMargin float64
}

// DefaultFigureConfig returns the grouping tolerance calibrated for
// ft:pedia issues.
func DefaultFigureConfig() FigureConfig {
	return FigureConfig{
		GapTolerance:     2.0,
		BorderlineMargin: 0.5,
	}
}

// FigureGrouper groups adjacent image fragments into multi-part figures.
//
// Many illustrations arrive from the PDF layer as several stacked tiles. Two
// consecutive image fragments belong to the same figure when nothing
// intervenes and their vertical extents are contiguous within the
// tolerance. A text fragment, a page change, or a larger gap closes the open
// group: the gap signals a new, unrelated figure immediately following. The
// tolerance is a heuristic; a misjudged gap yields an over- or under-grouped
// but structurally valid figure list, never an error.
type FigureGrouper struct {
	config FigureConfig
}

// NewFigureGrouper creates a figure grouper with default configuration.
func NewFigureGrouper() *FigureGrouper {
	return &FigureGrouper{config: DefaultFigureConfig()}
}

// NewFigureGrouperWithConfig creates a figure grouper with custom configuration.
func NewFigureGrouperWithConfig(config FigureConfig) *FigureGrouper {
	return &FigureGrouper{config: config}
}

// Group walks the ordered fragment stream and groups image fragments into
// figures. Image fragments are numbered 1..N in stream order; every image
// fragment belongs to exactly one figure, member order follows stream order,
// and figure numbers are assigned sequentially in closing order.
func (g *FigureGrouper) Group(fragments []model.Fragment) []model.Figure {
	var figures []model.Figure
	var open []int

	prevWasImage := false
	prevPage := 0
	prevBottom := 0.0
	imageIndex := 0

	flush := func() {
		if len(open) == 0 {
			return
		}
		figures = append(figures, model.Figure{
			Number:  len(figures) + 1,
			Members: open,
		})
		open = nil
	}

	for _, frag := range fragments {
		img, ok := frag.(model.ImageFragment)
		if !ok {
			flush()
			prevWasImage = false
			continue
		}

		imageIndex++
		if prevWasImage {
			if img.Page != prevPage || math.Abs(img.Top-prevBottom) > g.config.GapTolerance {
				flush()
			}
		}
		open = append(open, imageIndex)
		prevWasImage = true
		prevPage = img.Page
		prevBottom = img.Bottom
	}
	flush()

	return figures
}

// BorderlineGapCount returns the number of consecutive same-page image pairs
// whose vertical gap fell within BorderlineMargin of GapTolerance. Each such
// pair marks a join-or-split decision that could have gone either way; the
// caller surfaces them for review.
func (g *FigureGrouper) BorderlineGapCount(fragments []model.Fragment) int {
	count := 0
	prevWasImage := false
	prevPage := 0
	prevBottom := 0.0

	for _, frag := range fragments {
		img, ok := frag.(model.ImageFragment)
		if !ok {
			prevWasImage = false
			continue
		}

		if prevWasImage && img.Page == prevPage {
			gap := math.Abs(img.Top - prevBottom)
			if math.Abs(gap-g.config.GapTolerance) <= g.config.BorderlineMargin {
				count++
			}
		}
		prevWasImage = true
		prevPage = img.Page
		prevBottom = img.Bottom
	}
	return count
}
