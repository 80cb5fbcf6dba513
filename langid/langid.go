// Package langid identifies the language of reconstructed article text.
//
// ft:pedia publishes in German with occasional English translations, so the
// default detector is restricted to the languages the magazine actually
// prints. Restricting the candidate set makes detection on short abstracts
// far more reliable than an open-world classifier.
package langid

import (
	"strings"

	"github.com/pemistahl/lingua-go"
	"golang.org/x/text/language"
)

// Detector identifies the language of a text among a fixed candidate set.
type Detector struct {
	inner lingua.LanguageDetector
}

// New returns a Detector restricted to the magazine's publication languages:
// German, English, and French.
func New() *Detector {
	return NewWithLanguages(lingua.German, lingua.English, lingua.French)
}

// NewWithLanguages returns a Detector restricted to the given candidate set.
// At least two languages are required by the underlying classifier.
func NewWithLanguages(candidates ...lingua.Language) *Detector {
	return &Detector{
		inner: lingua.NewLanguageDetectorBuilder().
			FromLanguages(candidates...).
			Build(),
	}
}

// Detect returns the BCP 47 tag of the most likely language of text. The
// second return value is false when the text carries too little signal to
// decide (empty input, bare numbers, single symbols).
func (d *Detector) Detect(text string) (language.Tag, bool) {
	detected, ok := d.inner.DetectLanguageOf(text)
	if !ok {
		return language.Und, false
	}
	tag, err := language.Parse(strings.ToLower(detected.IsoCode639_1().String()))
	if err != nil {
		return language.Und, false
	}
	return tag, true
}
