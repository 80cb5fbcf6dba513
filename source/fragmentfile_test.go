package source

import (
	"strings"
	"testing"

	"github.com/pressoir/galley/model"
)

const sampleDump = `[
  {"type": "text", "page": 1, "container": 2, "band": "left", "width": 120, "font": "LiberationSans-Regular", "size": 12, "text": "elektronik"},
  {"type": "text", "page": 1, "container": 4, "band": "right", "width": 140, "font": "LiberationSans-Regular", "size": 12, "text": "Max Mustermann"},
  {"type": "image", "page": 1, "top": 320.0, "bottom": 410.5},
  {"type": "text", "page": 2, "container": 0, "band": "full", "width": 460, "font": "LiberationSans-Regular", "size": 10, "text": "Fließtext."}
]`

func TestParseFragments(t *testing.T) {
	fragments, err := ParseFragments(strings.NewReader(sampleDump))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fragments) != 4 {
		t.Fatalf("expected 4 fragments, got %d", len(fragments))
	}

	tf, ok := fragments[0].(model.TextFragment)
	if !ok {
		t.Fatalf("expected text fragment first, got %T", fragments[0])
	}
	if tf.Band != model.BandLeft || tf.FontSize != 12 || tf.Text != "elektronik" {
		t.Errorf("unexpected text fragment: %+v", tf)
	}

	img, ok := fragments[2].(model.ImageFragment)
	if !ok {
		t.Fatalf("expected image fragment third, got %T", fragments[2])
	}
	if img.Top != 320.0 || img.Bottom != 410.5 {
		t.Errorf("unexpected image extent: %+v", img)
	}
}

func TestParseFragments_UnknownType(t *testing.T) {
	_, err := ParseFragments(strings.NewReader(`[{"type": "vector", "page": 1}]`))
	if err == nil {
		t.Fatal("expected an error for an unknown fragment type")
	}
	if !strings.Contains(err.Error(), "unknown type") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseFragments_UnknownBand(t *testing.T) {
	_, err := ParseFragments(strings.NewReader(`[{"type": "text", "page": 1, "band": "middle"}]`))
	if err == nil {
		t.Fatal("expected an error for an unknown band")
	}
}

func TestParseBand_EmptyMeansFullWidth(t *testing.T) {
	band, err := parseBand("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if band != model.BandFull {
		t.Errorf("expected full band, got %v", band)
	}
}

func TestMemoryProvider(t *testing.T) {
	mem := &Memory{
		FirstPage: []model.TextFragment{{Page: 1, Text: "a"}},
		Lines:     [][]string{{"Zeile"}},
		Stream:    []model.Fragment{model.ImageFragment{Page: 1, Top: 1, Bottom: 2}},
	}

	var _ Provider = mem

	frags, err := mem.FirstPageFragments()
	if err != nil || len(frags) != 1 {
		t.Errorf("unexpected first page fragments: %v, %v", frags, err)
	}
	pages, err := mem.PageLines()
	if err != nil || len(pages) != 1 {
		t.Errorf("unexpected page lines: %v, %v", pages, err)
	}
	stream, err := mem.Fragments()
	if err != nil || len(stream) != 1 {
		t.Errorf("unexpected fragment stream: %v, %v", stream, err)
	}
}
