package source

import (
	"strings"
	"testing"
)

func TestParseLayoutText_SplitsPagesAtFormFeed(t *testing.T) {
	input := "Seite eins, Zeile eins\nSeite eins, Zeile zwei\n\fSeite zwei, Zeile eins\n"

	pages, err := ParseLayoutText(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(pages))
	}
	if len(pages[0]) != 2 || pages[0][0] != "Seite eins, Zeile eins" {
		t.Errorf("unexpected first page: %q", pages[0])
	}
	if len(pages[1]) != 1 || pages[1][0] != "Seite zwei, Zeile eins" {
		t.Errorf("unexpected second page: %q", pages[1])
	}
}

func TestParseLayoutText_PreservesInternalSpacing(t *testing.T) {
	input := "links      rechts\n"

	pages, err := ParseLayoutText(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pages[0][0] != "links      rechts" {
		t.Errorf("internal spacing was not preserved: %q", pages[0][0])
	}
}

func TestParseLayoutText_CRLF(t *testing.T) {
	input := "eins\r\nzwei\r\n\fdrei\r\n"

	pages, err := ParseLayoutText(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pages) != 2 || pages[0][1] != "zwei" || pages[1][0] != "drei" {
		t.Errorf("unexpected pages: %q", pages)
	}
}

func TestParseLayoutText_KeepsBlankLayoutRows(t *testing.T) {
	input := "eins\n\nzwei\n"

	pages, err := ParseLayoutText(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pages[0]) != 3 {
		t.Fatalf("expected blank row to survive, got %q", pages[0])
	}
	if pages[0][1] != "" {
		t.Errorf("expected blank middle row, got %q", pages[0][1])
	}
}
