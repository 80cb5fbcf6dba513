package galley

import "strings"

// WarningCode identifies a class of non-fatal reconstruction problem.
type WarningCode int

const (
	// WarnCategoryMissing: no first-page fragment matched the category
	// heuristic.
	WarnCategoryMissing WarningCode = iota

	// WarnTitleMissing: no title-sized line run was found.
	WarnTitleMissing

	// WarnAuthorMissing: the author container scan short-circuited or
	// found no right-band fragment.
	WarnAuthorMissing

	// WarnAbstractMissing: no wide-container lines were found.
	WarnAbstractMissing

	// WarnNoBodyText: the column and noise pipeline produced no
	// paragraphs.
	WarnNoBodyText

	// WarnNoFigures: the fragment stream contained no image fragments.
	WarnNoFigures

	// WarnColumnAmbiguous: one or more body lines carried several
	// candidate column separators and were split on a best guess.
	WarnColumnAmbiguous

	// WarnFigureGap: one or more image gaps fell close enough to the
	// grouping tolerance that the join-or-split call could have gone
	// either way.
	WarnFigureGap
)

func (c WarningCode) String() string {
	switch c {
	case WarnCategoryMissing:
		return "category-missing"
	case WarnTitleMissing:
		return "title-missing"
	case WarnAuthorMissing:
		return "author-missing"
	case WarnAbstractMissing:
		return "abstract-missing"
	case WarnNoBodyText:
		return "no-body-text"
	case WarnNoFigures:
		return "no-figures"
	case WarnColumnAmbiguous:
		return "column-ambiguous"
	case WarnFigureGap:
		return "figure-gap"
	default:
		return "unknown"
	}
}

// Warning describes a non-fatal problem encountered during reconstruction.
// Warnings never abort an extraction; they mark fields a human reviewer
// should check before the output is used.
type Warning struct {
	Code    WarningCode
	Message string
}

func (w Warning) String() string {
	return w.Code.String() + ": " + w.Message
}

// FormatWarnings joins warnings into a single human-readable string.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
