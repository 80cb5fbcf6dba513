package model

// Band is the coarse horizontal classification of a text fragment on its
// page: left column, right column, or spanning the full page width.
type Band int

const (
	BandFull Band = iota
	BandLeft
	BandRight
)

func (b Band) String() string {
	switch b {
	case BandLeft:
		return "left"
	case BandRight:
		return "right"
	default:
		return "full"
	}
}

// FragmentKind discriminates the fragment variants.
type FragmentKind int

const (
	FragmentText FragmentKind = iota
	FragmentImage
)

func (k FragmentKind) String() string {
	if k == FragmentImage {
		return "image"
	}
	return "text"
}

// Fragment is one positioned unit of page content produced by the external
// PDF layout layer. The concrete variants are TextFragment and ImageFragment.
// Fragments are immutable once constructed; page numbers are monotonically
// non-decreasing across a fragment stream.
type Fragment interface {
	Kind() FragmentKind
	PageNumber() int
}

// TextFragment is a positioned run of text.
type TextFragment struct {
	// Page is the 1-based page number the fragment appears on.
	Page int

	// Container is the 0-based index of the layout container holding this
	// fragment, in top-to-bottom page order.
	Container int

	// Band is the horizontal classification derived from the fragment's
	// horizontal extent.
	Band Band

	// Width is the width of the fragment's container in layout units.
	Width float64

	// FontName is the PostScript name of the fragment's font.
	FontName string

	// FontSize is the font size in points, rounded to the nearest integer.
	FontSize int

	// Text is the fragment's text content.
	Text string
}

func (f TextFragment) Kind() FragmentKind { return FragmentText }
func (f TextFragment) PageNumber() int    { return f.Page }

// ImageFragment is a raster image placed on a page. Top and Bottom are the
// vertical extent in layout units, with values increasing down the page.
type ImageFragment struct {
	Page   int
	Top    float64
	Bottom float64
}

func (f ImageFragment) Kind() FragmentKind { return FragmentImage }
func (f ImageFragment) PageNumber() int    { return f.Page }

// Height returns the vertical extent of the image.
func (f ImageFragment) Height() float64 { return f.Bottom - f.Top }
