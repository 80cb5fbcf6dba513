// Command galley reconstructs a magazine article from the dump files
// written by the external PDF layer and prints it as plain text.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pressoir/galley"
	"github.com/pressoir/galley/imageutil"
	"github.com/pressoir/galley/model"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "galley",
		Usage: "reconstruct a two-column magazine article from PDF page geometry",
		Commands: []*cli.Command{
			{
				Name:   "extract",
				Usage:  "rebuild an article from a layout text dump and a fragment dump",
				Action: ExtractAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "layout",
						Usage:    "path to the layout-preserving text dump",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "fragments",
						Usage:    "path to the positioned fragment dump (JSON)",
						Required: true,
					},
					&cli.IntFlag{
						Name:     "first",
						Usage:    "first issue page of the article",
						Required: true,
					},
					&cli.IntFlag{
						Name:     "last",
						Usage:    "last issue page of the article",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "YAML file overriding the layout calibration",
					},
					&cli.StringFlag{
						Name:  "out",
						Usage: "output file (default: stdout)",
					},
					&cli.BoolFlag{
						Name:  "detect-language",
						Usage: "identify the body text language",
					},
					&cli.StringFlag{
						Name:  "images-dir",
						Usage: "directory holding the extracted image tiles; composites each figure into abbN.png there",
					},
					&cli.StringFlag{
						Name:  "image-prefix",
						Usage: "file name prefix of the extracted image tiles",
						Value: "img",
					},
					&cli.BoolFlag{
						Name:  "captions",
						Usage: "suggest figure captions from the composited images (needs a build with -tags ocr)",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "log errors only",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func ExtractAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	ext := galley.Open(c.String("layout"), c.String("fragments")).
		Pages(c.Int("first"), c.Int("last"))

	if path := c.String("config"); path != "" {
		config, err := LoadConfig(path)
		if err != nil {
			logger.Error("failed to load config", "path", path, "error", err)
			os.Exit(2)
		}
		ext = config.Apply(ext)
		logger.Info("calibration loaded", "path", path)
	}

	if c.Bool("detect-language") {
		ext = ext.DetectLanguage()
	}

	art, warnings, err := ext.Article()
	if err != nil {
		logger.Error("extraction failed", "error", err)
		os.Exit(2)
	}
	for _, w := range warnings {
		logger.Warn("reconstruction warning", "code", w.Code.String(), "detail", w.Message)
	}
	logger.Info("article reconstructed",
		"title", art.Title,
		"paragraphs", art.ParagraphCount(),
		"figures", art.FigureCount(),
	)

	if dir := c.String("images-dir"); dir != "" {
		if err := writeFigureImages(logger, art, dir, c.String("image-prefix"), c.Bool("captions")); err != nil {
			logger.Error("figure image processing failed", "error", err)
			os.Exit(2)
		}
	}

	rendered := renderArticle(art)
	if out := c.String("out"); out != "" {
		if err := os.WriteFile(out, []byte(rendered), 0o644); err != nil {
			logger.Error("failed to write output", "path", out, "error", err)
			os.Exit(2)
		}
		logger.Info("article written", "path", out)
	} else {
		fmt.Print(rendered)
	}

	if len(warnings) > 0 {
		os.Exit(1)
	}
	return nil
}

// renderArticle formats an article as plain text: front matter header, body
// paragraphs separated by blank lines, and a trailing figure inventory
// naming each figure's output file.
func renderArticle(art *model.Article) string {
	var b strings.Builder

	if art.Category != "" {
		fmt.Fprintf(&b, "%s\n", art.Category)
	}
	if art.Title != "" {
		fmt.Fprintf(&b, "%s\n", art.Title)
	}
	if art.Author != "" {
		fmt.Fprintf(&b, "%s\n", art.Author)
	}
	if art.Language != "" {
		fmt.Fprintf(&b, "Sprache: %s\n", art.Language)
	}
	if art.Abstract != "" {
		fmt.Fprintf(&b, "\n%s\n", art.Abstract)
	}

	if body := art.BodyText(); body != "" {
		fmt.Fprintf(&b, "\n%s\n", body)
	}

	for _, fig := range art.Figures {
		fmt.Fprintf(&b, "\n[%s: %d Teilbild(er)]\n",
			imageutil.FigureFileName(fig.Number), fig.MemberCount())
	}

	return b.String()
}
