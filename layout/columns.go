package layout

import "strings"

// ColumnConfig holds configuration for splitting layout-preserved text lines
// into reading columns.
type ColumnConfig struct {
	// RightColumnIndent is the number of leading spaces that marks a line
	// as belonging entirely to the right column.
	// Default: 45
	RightColumnIndent int

	// GapRun is the length of the internal space run treated as the column
	// separator after sanitization.
	// Default: 3
	GapRun int
}

// DefaultColumnConfig returns the configuration calibrated for ft:pedia's
// two-column page geometry as rendered by a layout-preserving text renderer.
func DefaultColumnConfig() ColumnConfig {
	return ColumnConfig{
		RightColumnIndent: 45,
		GapRun:            3,
	}
}

// ColumnSplitter splits the physical lines of a two-column page into left and
// right reading columns.
//
// The heuristic assumes exactly two columns with a left margin boundary near
// the configured indent. A line that legitimately contains an internal run of
// three or more spaces without being two-column text (tabular data, for
// example) will be mis-split; the splitter proceeds with its best guess
// rather than failing, since a false positive is more useful than aborting a
// whole-article extraction.
type ColumnSplitter struct {
	config ColumnConfig
}

// NewColumnSplitter creates a column splitter with default configuration.
func NewColumnSplitter() *ColumnSplitter {
	return &ColumnSplitter{config: DefaultColumnConfig()}
}

// NewColumnSplitterWithConfig creates a column splitter with custom configuration.
func NewColumnSplitterWithConfig(config ColumnConfig) *ColumnSplitter {
	return &ColumnSplitter{config: config}
}

// SplitLine splits one physical line into its left-column and right-column
// parts. Exactly one of three rules applies:
//
//  1. A line starting with at least RightColumnIndent spaces is entirely
//     right-column text.
//  2. A line with no internal run of GapRun spaces is entirely left-column
//     text.
//  3. Otherwise the line's space runs are sanitized to leave a single
//     GapRun-wide separator, and the line is split once at that separator.
func (s *ColumnSplitter) SplitLine(line string) (left, right string) {
	gap := strings.Repeat(" ", s.config.GapRun)
	trimmed := strings.TrimSpace(line)

	if leadingSpaces(line) >= s.config.RightColumnIndent {
		return "", trimmed
	}
	if !strings.Contains(trimmed, gap) {
		return trimmed, ""
	}

	work := line
	if strings.Count(trimmed, gap) > 1 {
		work = s.sanitizeSpaces(line)
	}
	parts := strings.SplitN(strings.TrimLeft(work, " "), gap, 2)
	if len(parts) < 2 {
		return strings.TrimSpace(parts[0]), ""
	}
	return strings.TrimRight(parts[0], " "), strings.TrimSpace(parts[1])
}

// SplitPage splits a page's physical lines into its left and right columns.
// Each input line contributes exactly one entry to each side, so blank
// entries mark rows where a column had no text. Those blanks are significant:
// they become paragraph boundaries after reflow.
func (s *ColumnSplitter) SplitPage(lines []string) (left, right []string) {
	left = make([]string, 0, len(lines))
	right = make([]string, 0, len(lines))
	for _, line := range lines {
		l, r := s.SplitLine(line)
		left = append(left, l)
		right = append(right, r)
	}
	return left, right
}

// ReadingOrder returns a page's lines in two-column reading order: the whole
// left column top to bottom, then the whole right column top to bottom.
func (s *ColumnSplitter) ReadingOrder(lines []string) []string {
	left, right := s.SplitPage(lines)
	ordered := make([]string, 0, len(left)+len(right))
	ordered = append(ordered, left...)
	ordered = append(ordered, right...)
	return ordered
}

// Ambiguous reports whether a line carries more than one candidate column
// separator, so that SplitLine has to sanitize the space runs and split on a
// best guess. Deep-indented right-column lines are never ambiguous.
func (s *ColumnSplitter) Ambiguous(line string) bool {
	if leadingSpaces(line) >= s.config.RightColumnIndent {
		return false
	}
	gap := strings.Repeat(" ", s.config.GapRun)
	return strings.Count(strings.TrimSpace(line), gap) > 1
}

// sanitizeSpaces normalizes a line's internal space runs to a fixed point:
// any run longer than GapRun shrinks to GapRun, then all but the last
// GapRun-wide run collapses to a single space. The surviving run is the
// column separator.
func (s *ColumnSplitter) sanitizeSpaces(line string) string {
	gap := strings.Repeat(" ", s.config.GapRun)
	wide := gap + " "

	for strings.Contains(line, wide) {
		line = strings.ReplaceAll(line, wide, gap)
	}
	for strings.Count(line, gap) > 1 {
		line = strings.Replace(line, gap, " ", strings.Count(line, gap)-1)
	}
	return line
}

// leadingSpaces counts the spaces at the start of a line.
func leadingSpaces(line string) int {
	n := 0
	for n < len(line) && line[n] == ' ' {
		n++
	}
	return n
}
