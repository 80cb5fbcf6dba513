package main

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/pressoir/galley/imageutil"
	"github.com/pressoir/galley/model"
)

func writeTile(t *testing.T, dir, name string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.White)
		}
	}
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestWriteFigureImages(t *testing.T) {
	dir := t.TempDir()
	writeTile(t, dir, "img-000.png", 10, 4)
	writeTile(t, dir, "img-001.png", 10, 6)
	writeTile(t, dir, "img-002.png", 8, 5)

	art := &model.Article{
		Figures: []model.Figure{
			{Number: 1, Members: []int{1, 2}},
			{Number: 2, Members: []int{3}},
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	if err := writeFigureImages(logger, art, dir, "img", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	combined, err := imageutil.LoadPNG(filepath.Join(dir, "abb1.png"))
	if err != nil {
		t.Fatalf("expected abb1.png to be written: %v", err)
	}
	if b := combined.Bounds(); b.Dx() != 10 || b.Dy() != 10 {
		t.Errorf("expected a 10x10 composite, got %dx%d", b.Dx(), b.Dy())
	}

	if _, err := imageutil.LoadPNG(filepath.Join(dir, "abb2.png")); err != nil {
		t.Errorf("expected abb2.png to be written: %v", err)
	}
}

func TestWriteFigureImagesMissingTile(t *testing.T) {
	dir := t.TempDir()

	art := &model.Article{
		Figures: []model.Figure{
			{Number: 1, Members: []int{1}},
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	if err := writeFigureImages(logger, art, dir, "img", false); err == nil {
		t.Error("expected an error for a missing tile")
	}
}
