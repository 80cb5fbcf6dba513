// Package layout reconstructs the logical structure of a two-column,
// camera-ready magazine page from its raw geometry.
//
// The package is a pipeline of small, pure components, each configured with a
// named set of calibration constants:
//
//   - [FrontMatterClassifier] - labels first-page fragments as category,
//     title, author, and abstract
//   - [ColumnSplitter] - splits layout-preserved text lines into left and
//     right reading columns and restores two-column reading order
//   - [PageFilter] - strips running headers, footers, and page-number lines
//   - [Reflower] - joins wrapped and hyphen-broken lines back into paragraphs
//   - [FigureGrouper] - groups adjacent image fragments into logical figures
//
// All components degrade rather than fail: a classification miss yields an
// empty string, an ambiguous column boundary yields a best-guess split. The
// defaults are calibrated against ft:pedia's typesetting; each component
// accepts a custom configuration for other publications.
package layout
