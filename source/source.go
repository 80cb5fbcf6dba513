// Package source defines the input boundary between the reconstruction
// engine and the external PDF layout layer, plus file-based providers for
// the two dump formats that layer emits: a layout-preserving plain-text
// rendering and a positioned fragment dump.
package source

import "github.com/pressoir/galley/model"

// Provider supplies the three views of an article's pages that the
// reconstruction pipeline consumes. All three are fully materialized before
// processing begins; the engine never streams.
//
// Page numbers in fragment streams are article-relative: the external layer
// slices the article's pages out of the issue first, so the article's first
// page is page 1 regardless of where it sat in the issue.
type Provider interface {
	// FirstPageFragments returns the positioned text fragments of the
	// article's first page, in layout order.
	FirstPageFragments() ([]model.TextFragment, error)

	// PageLines returns the layout-preserving text lines of each page,
	// one slice per page, in page order.
	PageLines() ([][]string, error)

	// Fragments returns the full positioned fragment stream for the
	// article's pages, text and image interleaved in layout order.
	Fragments() ([]model.Fragment, error)
}

// Memory is an in-memory Provider, useful for tests and for callers that
// already hold fragment data from their own PDF layer.
type Memory struct {
	FirstPage []model.TextFragment
	Lines     [][]string
	Stream    []model.Fragment
}

func (m *Memory) FirstPageFragments() ([]model.TextFragment, error) { return m.FirstPage, nil }
func (m *Memory) PageLines() ([][]string, error)                    { return m.Lines, nil }
func (m *Memory) Fragments() ([]model.Fragment, error)              { return m.Stream, nil }
