package layout

import (
	"strconv"
	"strings"
)

// PageFilterConfig holds configuration for stripping repeating page noise
// from a magazine article's line stream.
type PageFilterConfig struct {
	// HeaderMarker opens the running header line; the header closes with
	// the article's category.
	// Default: "ft:pedia"
	HeaderMarker string

	// FooterMarker opens the running footer line; the footer closes with
	// the HeaderMarker.
	// Default: "Heft"
	FooterMarker string

	// FirstPage and LastPage bound the standalone page-number tokens that
	// act as page-end sentinels.
	FirstPage int
	LastPage  int

	// Category is the article's category as it appears at the end of the
	// running header. An empty category disables header matching.
	Category string
}

// DefaultPageFilterConfig returns the marker configuration for ft:pedia
// issues. FirstPage, LastPage, and Category are article-specific and must be
// set by the caller.
func DefaultPageFilterConfig() PageFilterConfig {
	return PageFilterConfig{
		HeaderMarker: "ft:pedia",
		FooterMarker: "Heft",
	}
}

// PageFilter removes running headers, running footers, and page-number lines
// from a page's line stream. Matching is case-sensitive on trimmed lines;
// every other line passes through unchanged, including blank lines, which
// stay significant as paragraph boundaries.
type PageFilter struct {
	config PageFilterConfig
}

// NewPageFilter creates a page filter with the given configuration.
func NewPageFilter(config PageFilterConfig) *PageFilter {
	return &PageFilter{config: config}
}

// IsPageNumber reports whether a line is a standalone page-number token
// within the article's page range.
func (f *PageFilter) IsPageNumber(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return false
	}
	return n >= f.config.FirstPage && n <= f.config.LastPage
}

// isHeader reports whether a line is the running page header,
// "‹marker› … ‹category›".
func (f *PageFilter) isHeader(line string) bool {
	if f.config.Category == "" {
		return false
	}
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, f.config.HeaderMarker) &&
		strings.HasSuffix(trimmed, f.config.Category)
}

// isFooter reports whether a line is the running page footer,
// "‹issue marker› … ‹marker›".
func (f *PageFilter) isFooter(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, f.config.FooterMarker) &&
		strings.HasSuffix(trimmed, f.config.HeaderMarker)
}

// isNoise reports whether a line is any of the repeating page artifacts.
func (f *PageFilter) isNoise(line string) bool {
	return f.IsPageNumber(line) || f.isHeader(line) || f.isFooter(line)
}

// FilterPage removes noise lines from a page's line stream.
func (f *PageFilter) FilterPage(lines []string) []string {
	filtered := make([]string, 0, len(lines))
	for _, line := range lines {
		if f.isNoise(line) {
			continue
		}
		filtered = append(filtered, line)
	}
	return filtered
}

// SplitPages segments a flat body line stream into per-page line slices. A
// standalone page-number line ends the current page's body capture and is
// dropped; running headers and footers are dropped during capture. The final
// page is closed at end of input even without a trailing sentinel.
func (f *PageFilter) SplitPages(lines []string) [][]string {
	var pages [][]string
	var current []string

	for _, line := range lines {
		if f.IsPageNumber(line) {
			pages = append(pages, current)
			current = nil
			continue
		}
		if f.isHeader(line) || f.isFooter(line) {
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		pages = append(pages, current)
	}
	return pages
}
