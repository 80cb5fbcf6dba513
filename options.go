package galley

import "github.com/pressoir/galley/layout"

// ExtractOptions holds the configuration for an article reconstruction run.
// The layout constants are calibrated against ft:pedia's camera-ready
// typesetting; other publications need their own values.
type ExtractOptions struct {
	// Article page range within the source issue (bounds the page-number
	// sentinel lines).
	firstPage int
	lastPage  int

	// Noise markers
	headerMarker string
	footerMarker string

	// Component calibration
	columns     layout.ColumnConfig
	frontMatter layout.FrontMatterConfig
	figures     layout.FigureConfig

	// Processing options
	keepEmptyParagraphs bool
	detectLanguage      bool
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	noise := layout.DefaultPageFilterConfig()
	return ExtractOptions{
		headerMarker:        noise.HeaderMarker,
		footerMarker:        noise.FooterMarker,
		columns:             layout.DefaultColumnConfig(),
		frontMatter:         layout.DefaultFrontMatterConfig(),
		figures:             layout.DefaultFigureConfig(),
		keepEmptyParagraphs: false,
		detectLanguage:      false,
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := o

	// Deep copy the one slice-valued field.
	if o.frontMatter.RegularFontSuffixes != nil {
		suffixes := make([]string, len(o.frontMatter.RegularFontSuffixes))
		copy(suffixes, o.frontMatter.RegularFontSuffixes)
		newOpts.frontMatter.RegularFontSuffixes = suffixes
	}

	return newOpts
}

// pageFilterConfig assembles the noise filter configuration for a category.
func (o ExtractOptions) pageFilterConfig(category string) layout.PageFilterConfig {
	return layout.PageFilterConfig{
		HeaderMarker: o.headerMarker,
		FooterMarker: o.footerMarker,
		FirstPage:    o.firstPage,
		LastPage:     o.lastPage,
		Category:     category,
	}
}
