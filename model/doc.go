// Package model provides the intermediate representation for reconstructed
// article content.
//
// This package defines the user-facing data structures produced by article
// reconstruction. All layout analysis ultimately yields these types, making
// them the primary API for consuming extracted content.
//
// # Fragments
//
// Page content arrives from the external PDF layout layer as a stream of
// positioned fragments. The [Fragment] interface is a tagged variant with two
// concrete types:
//
//   - [TextFragment] - a positioned run of text with font and container data
//   - [ImageFragment] - a raster image with its vertical extent
//
// Components dispatch on the variant rather than inspecting runtime types.
//
// # Article Structure
//
// The [Article] type is the root of a reconstructed document:
//
//   - [FrontMatter] - category, title, author, abstract
//   - [Paragraph] - one reflowed body paragraph
//   - [Figure] - a group of image fragments forming one logical illustration
package model
