package layout

import (
	"strings"

	"github.com/pressoir/galley/model"
)

// Reflower joins column-ordered body lines back into logical paragraphs.
//
// The reflow walks the line stream with a single accumulator. A blank line
// emits the accumulated paragraph, even an empty one, so the caller keeps
// control over dropping empties; the reflow itself never merges text across
// a paragraph boundary. A line ending in a hyphen continues its last word on
// the next line, so the hyphen is stripped and no separator is added.
type Reflower struct{}

// NewReflower creates a reflower.
func NewReflower() *Reflower {
	return &Reflower{}
}

// Reflow collapses a noise-filtered, column-ordered line stream into
// paragraphs. Runs of two or more blank input lines collapse to a single
// boundary first, so a boundary is never duplicated as a spurious empty
// paragraph. End of input flushes a non-empty accumulator.
func (r *Reflower) Reflow(lines []string) []model.Paragraph {
	lines = CollapseBlankRuns(lines)

	var paragraphs []model.Paragraph
	var sb strings.Builder

	flush := func() {
		paragraphs = append(paragraphs, model.Paragraph{Text: strings.TrimSpace(sb.String())})
		sb.Reset()
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			flush()
			continue
		}
		if strings.HasSuffix(trimmed, "-") {
			sb.WriteString(strings.TrimSuffix(trimmed, "-"))
		} else {
			sb.WriteString(trimmed)
			sb.WriteString(" ")
		}
	}
	if strings.TrimSpace(sb.String()) != "" {
		flush()
	}

	return paragraphs
}

// CollapseBlankRuns collapses every run of two or more consecutive blank
// lines into a single blank line, leaving all other lines untouched.
func CollapseBlankRuns(lines []string) []string {
	collapsed := make([]string, 0, len(lines))
	prevBlank := false

	for _, line := range lines {
		blank := strings.TrimSpace(line) == ""
		if blank && prevBlank {
			continue
		}
		prevBlank = blank
		collapsed = append(collapsed, line)
	}
	return collapsed
}
