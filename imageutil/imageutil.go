// Package imageutil assembles extracted figure tiles into single images.
//
// The external PDF layer dumps each raster strip of a page as its own file.
// A logical figure that spans several strips (large diagrams are stored as
// stacked slices in the PDF) therefore arrives as several tiles; this
// package stitches them back together vertically, in stream order, so the
// output directory holds one image per figure.
package imageutil

import (
	"fmt"
	"image"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"
)

// FigureFileName returns the output file name of a composited figure,
// following the magazine's Abbildung numbering.
func FigureFileName(number int) string {
	return fmt.Sprintf("abb%d.png", number)
}

// TileFileName returns the file name the external layer gives the n-th
// image tile of an article. Tiles are numbered from 1 in the fragment
// stream; the dump files are zero-based.
func TileFileName(prefix string, index int) string {
	return fmt.Sprintf("%s-%03d.png", prefix, index-1)
}

// LoadPNG reads a PNG image from path.
func LoadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening tile: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

// SavePNG writes img to path as a PNG file.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}

// CompositeVertical stitches tiles into a single image, top to bottom in
// slice order. Narrower tiles are scaled up to the width of the widest tile
// so slice boundaries do not show as steps; heights scale proportionally.
// An empty tile slice is an error, a single tile is returned unchanged.
func CompositeVertical(tiles []image.Image) (image.Image, error) {
	if len(tiles) == 0 {
		return nil, fmt.Errorf("no tiles to composite")
	}
	if len(tiles) == 1 {
		return tiles[0], nil
	}

	width := 0
	for _, tile := range tiles {
		if w := tile.Bounds().Dx(); w > width {
			width = w
		}
	}

	heights := make([]int, len(tiles))
	total := 0
	for i, tile := range tiles {
		b := tile.Bounds()
		h := b.Dy()
		if b.Dx() != width && b.Dx() > 0 {
			h = b.Dy() * width / b.Dx()
		}
		heights[i] = h
		total += h
	}

	out := image.NewRGBA(image.Rect(0, 0, width, total))
	y := 0
	for i, tile := range tiles {
		dst := image.Rect(0, y, width, y+heights[i])
		xdraw.CatmullRom.Scale(out, dst, tile, tile.Bounds(), xdraw.Src, nil)
		y += heights[i]
	}
	return out, nil
}
