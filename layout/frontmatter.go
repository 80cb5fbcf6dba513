package layout

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pressoir/galley/model"
)

// FrontMatterConfig holds the layout constants used to classify first-page
// fragments into front matter roles.
type FrontMatterConfig struct {
	// TitleFontSize is the rounded point size of title lines.
	// Default: 20
	TitleFontSize int

	// MetaFontSize is the rounded point size of the category and author
	// lines.
	// Default: 12
	MetaFontSize int

	// AuthorContainer is the container index holding the author line.
	// Default: 4
	AuthorContainer int

	// MinCategoryContainer is the lowest container index considered for
	// the category.
	// Default: 2
	MinCategoryContainer int

	// MinAbstractContainer is the lowest container index considered for
	// abstract lines.
	// Default: 3
	MinAbstractContainer int

	// WideContainerWidth is the minimum container width, in layout units,
	// for a container to count as full-width abstract text.
	// Default: 400, calibrated against ft:pedia's page geometry.
	WideContainerWidth float64

	// RegularFontSuffixes are the font name endings that mark a plain,
	// non-bold family member.
	RegularFontSuffixes []string
}

// DefaultFrontMatterConfig returns the configuration calibrated for
// ft:pedia's article template.
func DefaultFrontMatterConfig() FrontMatterConfig {
	return FrontMatterConfig{
		TitleFontSize:        20,
		MetaFontSize:         12,
		AuthorContainer:      4,
		MinCategoryContainer: 2,
		MinAbstractContainer: 3,
		WideContainerWidth:   400.0,
		RegularFontSuffixes:  []string{"-Regular", "-Roman", "-Book"},
	}
}

// FrontMatterClassifier labels first-page text fragments as category, title,
// author, and abstract. Classification is best-effort: a field that no
// fragment matches comes back as the empty string, and the caller decides
// whether that is acceptable.
type FrontMatterClassifier struct {
	config FrontMatterConfig
}

// NewFrontMatterClassifier creates a classifier with default configuration.
func NewFrontMatterClassifier() *FrontMatterClassifier {
	return &FrontMatterClassifier{config: DefaultFrontMatterConfig()}
}

// NewFrontMatterClassifierWithConfig creates a classifier with custom configuration.
func NewFrontMatterClassifierWithConfig(config FrontMatterConfig) *FrontMatterClassifier {
	return &FrontMatterClassifier{config: config}
}

// Classify extracts the front matter from the article's first-page fragments,
// given in layout order.
func (c *FrontMatterClassifier) Classify(fragments []model.TextFragment) model.FrontMatter {
	return model.FrontMatter{
		Category: c.category(fragments),
		Title:    c.title(fragments),
		Author:   c.author(fragments),
		Abstract: c.abstract(fragments),
	}
}

// category finds the first fragment in a container at or past
// MinCategoryContainer set in the plain meta font. The result is
// capitalized. Scanning stops when the stream advances past page one.
func (c *FrontMatterClassifier) category(fragments []model.TextFragment) string {
	for _, f := range fragments {
		if f.Page > 1 {
			break
		}
		if f.Container < c.config.MinCategoryContainer {
			continue
		}
		if f.FontSize != c.config.MetaFontSize || !c.isRegularFont(f.FontName) {
			continue
		}
		return Capitalize(strings.TrimSpace(f.Text))
	}
	return ""
}

// title collects the first run of consecutive title-sized lines past the
// header containers, joined with single spaces. The run ends at the first
// line without the title font size.
func (c *FrontMatterClassifier) title(fragments []model.TextFragment) string {
	var parts []string
	started := false

	for _, f := range fragments {
		if f.Page > 1 {
			break
		}
		if f.Container > 1 && f.FontSize == c.config.TitleFontSize {
			if trimmed := strings.TrimSpace(f.Text); trimmed != "" {
				parts = append(parts, trimmed)
			}
			started = true
			continue
		}
		if started {
			break
		}
	}
	return strings.Join(parts, " ")
}

// author returns the right-band meta-font fragment in the author container.
// The scan short-circuits as soon as a higher container index is reached:
// articles that deviate from the standard template lose the author field.
// That threshold is a known fragility of the calibrated template, kept
// deliberately until counter-examples justify changing it.
func (c *FrontMatterClassifier) author(fragments []model.TextFragment) string {
	for _, f := range fragments {
		if f.Page > 1 || f.Container > c.config.AuthorContainer {
			break
		}
		if f.Container == c.config.AuthorContainer &&
			f.Band == model.BandRight &&
			f.FontSize == c.config.MetaFontSize {
			return strings.TrimSpace(f.Text)
		}
	}
	return ""
}

// abstract joins all first-page lines from wide containers past the front
// matter header, in layout order.
func (c *FrontMatterClassifier) abstract(fragments []model.TextFragment) string {
	var parts []string
	for _, f := range fragments {
		if f.Page > 1 {
			break
		}
		if f.Container < c.config.MinAbstractContainer {
			continue
		}
		if f.Width < c.config.WideContainerWidth {
			continue
		}
		if trimmed := strings.TrimSpace(f.Text); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// isRegularFont reports whether a font name ends with a plain family marker.
func (c *FrontMatterClassifier) isRegularFont(name string) bool {
	for _, suffix := range c.config.RegularFontSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// Capitalize upper-cases the first code point of s and leaves the rest
// unchanged. The first rune is decoded and case-folded as a unit, so
// non-ASCII initials such as "ö" capitalize correctly.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
