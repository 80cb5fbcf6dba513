package source

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ParseLayoutText splits a layout-preserving plain-text rendering (the
// output of a renderer such as pdftotext -layout) into per-page line slices.
// Pages are separated by form feed characters; line endings may be LF or
// CRLF. Spacing within lines is preserved verbatim, since it encodes the
// column geometry.
func ParseLayoutText(r io.Reader) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading layout text: %w", err)
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	rawPages := strings.Split(text, "\f")

	pages := make([][]string, 0, len(rawPages))
	for _, rawPage := range rawPages {
		lines := strings.Split(rawPage, "\n")
		// A trailing newline before the page break leaves one empty
		// final entry; drop it, it is an artifact of the separator,
		// not a blank layout row.
		if len(lines) > 0 && lines[len(lines)-1] == "" {
			lines = lines[:len(lines)-1]
		}
		if len(lines) == 0 {
			continue
		}
		pages = append(pages, lines)
	}
	return pages, nil
}

// LoadLayoutText reads and parses a layout-preserving text file.
func LoadLayoutText(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening layout text: %w", err)
	}
	defer f.Close()
	return ParseLayoutText(f)
}
