package galley

import (
	"fmt"

	"github.com/pressoir/galley/langid"
	"github.com/pressoir/galley/layout"
	"github.com/pressoir/galley/model"
	"github.com/pressoir/galley/source"
)

// Extractor provides a fluent interface for reconstructing an article from
// an external fragment provider. Each configuration method returns a new
// Extractor instance, making chains safe to share and reuse.
type Extractor struct {
	provider source.Provider
	options  ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		provider: e.provider,
		options:  e.options.clone(),
		err:      e.err,
	}
}

// Pages bounds the article within its source issue. The page numbers are
// the printed issue page numbers; they delimit the standalone page-number
// lines that end each page's body capture.
func (e *Extractor) Pages(first, last int) *Extractor {
	newExt := e.clone()
	if first < 1 {
		newExt.err = fmt.Errorf("first page must be at least 1, got %d", first)
		return newExt
	}
	if last < first {
		newExt.err = fmt.Errorf("last page %d precedes first page %d", last, first)
		return newExt
	}
	newExt.options.firstPage = first
	newExt.options.lastPage = last
	return newExt
}

// HeaderMarker overrides the magazine marker that opens running header
// lines. Default: "ft:pedia".
func (e *Extractor) HeaderMarker(marker string) *Extractor {
	newExt := e.clone()
	newExt.options.headerMarker = marker
	return newExt
}

// FooterMarker overrides the issue marker that opens running footer lines.
// Default: "Heft".
func (e *Extractor) FooterMarker(marker string) *Extractor {
	newExt := e.clone()
	newExt.options.footerMarker = marker
	return newExt
}

// ColumnConfig overrides the column splitting calibration.
func (e *Extractor) ColumnConfig(config layout.ColumnConfig) *Extractor {
	newExt := e.clone()
	newExt.options.columns = config
	return newExt
}

// FrontMatterConfig overrides the front matter classification calibration.
func (e *Extractor) FrontMatterConfig(config layout.FrontMatterConfig) *Extractor {
	newExt := e.clone()
	newExt.options.frontMatter = config
	return newExt
}

// FigureConfig overrides the figure grouping calibration.
func (e *Extractor) FigureConfig(config layout.FigureConfig) *Extractor {
	newExt := e.clone()
	newExt.options.figures = config
	return newExt
}

// KeepEmptyParagraphs keeps the empty paragraphs the reflow emits at
// degenerate boundaries instead of dropping them from the article body.
func (e *Extractor) KeepEmptyParagraphs() *Extractor {
	newExt := e.clone()
	newExt.options.keepEmptyParagraphs = true
	return newExt
}

// DetectLanguage enables language identification on the reconstructed body
// text. Detection builds statistical language models on first use, so it is
// off by default.
func (e *Extractor) DetectLanguage() *Extractor {
	newExt := e.clone()
	newExt.options.detectLanguage = true
	return newExt
}

// FrontMatter classifies the article's first-page fragments and returns the
// front matter. Missing fields come back empty with a warning each.
func (e *Extractor) FrontMatter() (model.FrontMatter, []Warning, error) {
	if e.err != nil {
		return model.FrontMatter{}, nil, e.err
	}

	fragments, err := e.provider.FirstPageFragments()
	if err != nil {
		return model.FrontMatter{}, nil, fmt.Errorf("loading first page fragments: %w", err)
	}

	classifier := layout.NewFrontMatterClassifierWithConfig(e.options.frontMatter)
	fm := classifier.Classify(fragments)
	return fm, frontMatterWarnings(fm), nil
}

// BodyParagraphs runs the column, noise, and reflow pipeline and returns the
// article's body paragraphs in reading order. The category is needed to
// match running header lines; pass the classified category, or an empty
// string to leave headers unmatched.
func (e *Extractor) BodyParagraphs(category string) ([]model.Paragraph, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	pages, err := e.provider.PageLines()
	if err != nil {
		return nil, nil, fmt.Errorf("loading page lines: %w", err)
	}

	splitter := layout.NewColumnSplitterWithConfig(e.options.columns)
	filter := layout.NewPageFilter(e.options.pageFilterConfig(category))
	reflower := layout.NewReflower()

	// Noise lines are matched on the raw page lines: running footers carry
	// the same wide space runs as column gaps and would not survive the
	// splitter intact.
	var body []string
	ambiguous := 0
	for _, page := range pages {
		filtered := filter.FilterPage(page)
		for _, line := range filtered {
			if splitter.Ambiguous(line) {
				ambiguous++
			}
		}
		body = append(body, splitter.ReadingOrder(filtered)...)
	}

	paragraphs := reflower.Reflow(body)
	if !e.options.keepEmptyParagraphs {
		paragraphs = dropEmptyParagraphs(paragraphs)
	}

	var warnings []Warning
	if ambiguous > 0 {
		warnings = append(warnings, Warning{WarnColumnAmbiguous,
			fmt.Sprintf("%d line(s) had several candidate column separators and were split on a best guess", ambiguous)})
	}
	if len(paragraphs) == 0 {
		warnings = append(warnings, Warning{WarnNoBodyText, "no body paragraphs were reconstructed"})
	}
	return paragraphs, warnings, nil
}

// Figures groups the article's image fragments into logical figures.
func (e *Extractor) Figures() ([]model.Figure, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	fragments, err := e.provider.Fragments()
	if err != nil {
		return nil, nil, fmt.Errorf("loading fragment stream: %w", err)
	}

	grouper := layout.NewFigureGrouperWithConfig(e.options.figures)
	figures := grouper.Group(fragments)

	var warnings []Warning
	if borderline := grouper.BorderlineGapCount(fragments); borderline > 0 {
		warnings = append(warnings, Warning{WarnFigureGap,
			fmt.Sprintf("%d image gap(s) fell within the borderline margin of the grouping tolerance", borderline)})
	}
	if len(figures) == 0 {
		warnings = append(warnings, Warning{WarnNoFigures, "the fragment stream contained no image fragments"})
	}
	return figures, warnings, nil
}

// Article runs the whole reconstruction: front matter classification, the
// column-order/noise/reflow body pipeline, and figure grouping. The returned
// warnings mark fields a reviewer should check; they never abort the run.
func (e *Extractor) Article() (*model.Article, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	fm, warnings, err := e.FrontMatter()
	if err != nil {
		return nil, warnings, err
	}

	paragraphs, bodyWarnings, err := e.BodyParagraphs(fm.Category)
	warnings = append(warnings, bodyWarnings...)
	if err != nil {
		return nil, warnings, err
	}

	figures, figureWarnings, err := e.Figures()
	warnings = append(warnings, figureWarnings...)
	if err != nil {
		return nil, warnings, err
	}

	art := &model.Article{
		FrontMatter: fm,
		Body:        paragraphs,
		Figures:     figures,
		FirstPage:   e.options.firstPage,
		LastPage:    e.options.lastPage,
	}

	if e.options.detectLanguage {
		if tag, ok := langid.New().Detect(art.BodyText()); ok {
			art.Language = tag.String()
		}
	}

	return art, warnings, nil
}

// BodyText is a convenience terminal that returns the reconstructed body as
// one blank-line-delimited text block.
func (e *Extractor) BodyText() (string, []Warning, error) {
	art, warnings, err := e.Article()
	if err != nil {
		return "", warnings, err
	}
	return art.BodyText(), warnings, nil
}

// frontMatterWarnings maps empty front matter fields to warnings.
func frontMatterWarnings(fm model.FrontMatter) []Warning {
	var warnings []Warning
	if fm.Category == "" {
		warnings = append(warnings, Warning{WarnCategoryMissing, "no fragment matched the category heuristic"})
	}
	if fm.Title == "" {
		warnings = append(warnings, Warning{WarnTitleMissing, "no title-sized line run was found"})
	}
	if fm.Author == "" {
		warnings = append(warnings, Warning{WarnAuthorMissing, "no author fragment in the expected container"})
	}
	if fm.Abstract == "" {
		warnings = append(warnings, Warning{WarnAbstractMissing, "no wide-container abstract lines were found"})
	}
	return warnings
}

// dropEmptyParagraphs removes the empty paragraphs the reflow emits at
// degenerate boundaries.
func dropEmptyParagraphs(paragraphs []model.Paragraph) []model.Paragraph {
	kept := paragraphs[:0]
	for _, p := range paragraphs {
		if p.IsEmpty() {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}
