package main

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pressoir/galley/imageutil"
	"github.com/pressoir/galley/model"
	"github.com/pressoir/galley/ocr"
)

// writeFigureImages composites each figure's member tiles into a single
// abbN.png inside dir, which must hold the tiles the external layer
// extracted under the given prefix. With captions enabled it additionally
// runs caption recognition on each composited image and logs the suggestion
// for review; a build without the ocr tag logs once that recognition is
// unavailable and composites without it.
func writeFigureImages(logger *slog.Logger, art *model.Article, dir, prefix string, captions bool) error {
	var client *ocr.Client
	if captions {
		var err error
		client, err = ocr.New()
		if err != nil {
			if !errors.Is(err, ocr.ErrOCRNotEnabled) {
				return fmt.Errorf("starting caption recognition: %w", err)
			}
			logger.Info("caption recognition not compiled in, skipping suggestions")
		} else {
			defer client.Close()
		}
	}

	for _, fig := range art.Figures {
		tiles := make([]image.Image, 0, fig.MemberCount())
		for _, member := range fig.Members {
			tile, err := imageutil.LoadPNG(filepath.Join(dir, imageutil.TileFileName(prefix, member)))
			if err != nil {
				return fmt.Errorf("figure %d: %w", fig.Number, err)
			}
			tiles = append(tiles, tile)
		}

		combined, err := imageutil.CompositeVertical(tiles)
		if err != nil {
			return fmt.Errorf("figure %d: %w", fig.Number, err)
		}

		outPath := filepath.Join(dir, imageutil.FigureFileName(fig.Number))
		if err := imageutil.SavePNG(outPath, combined); err != nil {
			return fmt.Errorf("figure %d: %w", fig.Number, err)
		}
		logger.Info("figure composited", "figure", fig.Number, "tiles", fig.MemberCount(), "path", outPath)

		if client != nil {
			data, err := os.ReadFile(outPath)
			if err != nil {
				return fmt.Errorf("figure %d: %w", fig.Number, err)
			}
			caption, err := client.RecognizeCaption(data)
			if err != nil {
				logger.Warn("caption recognition failed", "figure", fig.Number, "error", err)
				continue
			}
			if caption != "" {
				logger.Info("caption suggestion", "figure", fig.Number, "caption", caption)
			}
		}
	}
	return nil
}
