package model

import "strings"

// Paragraph is one reflowed body paragraph: wrapped and hyphen-broken source
// lines joined back into a single run of text.
type Paragraph struct {
	Text string
}

// IsEmpty returns true if the paragraph contains no text.
func (p Paragraph) IsEmpty() bool {
	return strings.TrimSpace(p.Text) == ""
}

// WordCount returns an approximate word count for the paragraph.
func (p Paragraph) WordCount() int {
	return len(strings.Fields(p.Text))
}

// Figure groups one or more originally-separate image fragments that together
// form one logical illustration, such as a multi-tile diagram.
type Figure struct {
	// Number is the 1-based figure number, assigned in grouping order.
	Number int

	// Members are the 1-based indices of the image fragments belonging to
	// this figure, in their original stream order.
	Members []int
}

// MemberCount returns the number of image fragments in the figure.
func (f Figure) MemberCount() int { return len(f.Members) }

// FrontMatter is the structured header preceding an article's body.
// A field that could not be classified is the empty string; callers must
// check for emptiness before using a field downstream.
type FrontMatter struct {
	Category string
	Title    string
	Author   string
	Abstract string
}

// Complete returns true if every front matter field was found.
func (fm FrontMatter) Complete() bool {
	return fm.Category != "" && fm.Title != "" && fm.Author != "" && fm.Abstract != ""
}

// Article is a reconstructed magazine article: front matter, body paragraphs
// in reading order, and grouped figures. It is assembled once per extraction
// run and not mutated afterwards.
type Article struct {
	FrontMatter

	// Body holds the article's paragraphs in reading order.
	Body []Paragraph

	// Figures holds the grouped illustrations in stream order.
	Figures []Figure

	// Language is the BCP 47 tag of the detected body language, or empty
	// when detection was not performed or was inconclusive.
	Language string

	// FirstPage and LastPage bound the article within its source issue.
	FirstPage int
	LastPage  int
}

// ParagraphCount returns the number of body paragraphs.
func (a *Article) ParagraphCount() int {
	if a == nil {
		return 0
	}
	return len(a.Body)
}

// FigureCount returns the number of grouped figures.
func (a *Article) FigureCount() int {
	if a == nil {
		return 0
	}
	return len(a.Figures)
}

// BodyText returns the body paragraphs as a single blank-line-delimited
// text block.
func (a *Article) BodyText() string {
	if a == nil || len(a.Body) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, para := range a.Body {
		sb.WriteString(para.Text)
		if i < len(a.Body)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}
