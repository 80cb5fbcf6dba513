// Package galley reconstructs the logical structure of a two-column,
// camera-ready magazine article from raw PDF page geometry: an ordered
// document with title, author, category, abstract, body paragraphs, and
// grouped figures.
//
// The package consumes positioned fragments and layout-preserving text from
// an external PDF layer (see the source package) and exposes a fluent API:
//
//	art, warnings, err := galley.Open("article.txt", "fragments.json").
//	    Pages(4, 9).
//	    Article()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", galley.FormatWarnings(warnings))
//	}
//
// Reconstruction is best-effort by design: a front matter field that no
// heuristic matches comes back empty with a warning attached, and ambiguous
// column boundaries are split on a best guess rather than aborting the
// extraction.
package galley

import "github.com/pressoir/galley/source"

// Open creates an Extractor over the two dump files written by the external
// PDF layer: a layout-preserving text rendering and a positioned fragment
// dump.
//
// Example:
//
//	art, warnings, err := galley.Open("article.txt", "fragments.json").Article()
func Open(layoutPath, fragmentsPath string) *Extractor {
	return FromProvider(source.NewFileProvider(layoutPath, fragmentsPath))
}

// FromProvider creates an Extractor from any source.Provider. This is the
// entry point for callers that hold fragment data from their own PDF layer.
func FromProvider(p source.Provider) *Extractor {
	return &Extractor{
		provider: p,
		options:  defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustExtract is a helper that wraps a terminal extraction call and panics
// if the error is non-nil. It discards warnings and returns just the value.
//
// Example:
//
//	art := galley.MustExtract(galley.Open("article.txt", "fragments.json").Article())
func MustExtract[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
