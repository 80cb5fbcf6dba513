package source

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pressoir/galley/model"
)

// fragmentRecord is the wire shape of one positioned fragment in a dump
// file. The external PDF layer emits a JSON array of these, in layout order.
type fragmentRecord struct {
	Type      string  `json:"type"` // "text" or "image"
	Page      int     `json:"page"`
	Container int     `json:"container,omitempty"`
	Band      string  `json:"band,omitempty"`
	Width     float64 `json:"width,omitempty"`
	Font      string  `json:"font,omitempty"`
	Size      int     `json:"size,omitempty"`
	Text      string  `json:"text,omitempty"`
	Top       float64 `json:"top,omitempty"`
	Bottom    float64 `json:"bottom,omitempty"`
}

// ParseFragments decodes a positioned fragment dump into the tagged fragment
// stream. Records keep their input order.
func ParseFragments(r io.Reader) ([]model.Fragment, error) {
	var records []fragmentRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding fragment dump: %w", err)
	}

	fragments := make([]model.Fragment, 0, len(records))
	for i, rec := range records {
		switch rec.Type {
		case "text":
			band, err := parseBand(rec.Band)
			if err != nil {
				return nil, fmt.Errorf("fragment %d: %w", i, err)
			}
			fragments = append(fragments, model.TextFragment{
				Page:      rec.Page,
				Container: rec.Container,
				Band:      band,
				Width:     rec.Width,
				FontName:  rec.Font,
				FontSize:  rec.Size,
				Text:      rec.Text,
			})
		case "image":
			fragments = append(fragments, model.ImageFragment{
				Page:   rec.Page,
				Top:    rec.Top,
				Bottom: rec.Bottom,
			})
		default:
			return nil, fmt.Errorf("fragment %d: unknown type %q", i, rec.Type)
		}
	}
	return fragments, nil
}

// parseBand maps a wire band name to the Band enum. An absent band means
// full width.
func parseBand(s string) (model.Band, error) {
	switch s {
	case "left":
		return model.BandLeft, nil
	case "right":
		return model.BandRight, nil
	case "full", "":
		return model.BandFull, nil
	default:
		return model.BandFull, fmt.Errorf("unknown band %q", s)
	}
}

// FileProvider is a Provider backed by the two dump files the external PDF
// layer writes: a layout-preserving text rendering and a positioned
// fragment dump. Files are read lazily and cached for the provider's
// lifetime.
type FileProvider struct {
	layoutPath    string
	fragmentsPath string

	pages     [][]string
	fragments []model.Fragment
}

// NewFileProvider creates a provider over a layout text file and a fragment
// dump file.
func NewFileProvider(layoutPath, fragmentsPath string) *FileProvider {
	return &FileProvider{
		layoutPath:    layoutPath,
		fragmentsPath: fragmentsPath,
	}
}

// PageLines returns the per-page lines of the layout text rendering.
func (p *FileProvider) PageLines() ([][]string, error) {
	if p.pages == nil {
		pages, err := LoadLayoutText(p.layoutPath)
		if err != nil {
			return nil, err
		}
		p.pages = pages
	}
	return p.pages, nil
}

// Fragments returns the full fragment stream from the dump file.
func (p *FileProvider) Fragments() ([]model.Fragment, error) {
	if p.fragments == nil {
		f, err := os.Open(p.fragmentsPath)
		if err != nil {
			return nil, fmt.Errorf("opening fragment dump: %w", err)
		}
		defer f.Close()

		fragments, err := ParseFragments(f)
		if err != nil {
			return nil, err
		}
		p.fragments = fragments
	}
	return p.fragments, nil
}

// FirstPageFragments returns the text fragments on the article's first page.
func (p *FileProvider) FirstPageFragments() ([]model.TextFragment, error) {
	fragments, err := p.Fragments()
	if err != nil {
		return nil, err
	}

	firstPage := 0
	var result []model.TextFragment
	for _, frag := range fragments {
		if firstPage == 0 {
			firstPage = frag.PageNumber()
		}
		if frag.PageNumber() != firstPage {
			break
		}
		if tf, ok := frag.(model.TextFragment); ok {
			result = append(result, tf)
		}
	}
	return result, nil
}
