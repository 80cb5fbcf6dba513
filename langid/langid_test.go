package langid

import (
	"testing"

	"golang.org/x/text/language"
)

func TestDetectGerman(t *testing.T) {
	d := New()
	text := "Der ferngesteuerte Kran wird über zwei Motoren angetrieben und " +
		"lässt sich mit der Fernbedienung präzise steuern."

	tag, ok := d.Detect(text)
	if !ok {
		t.Fatal("expected a detection result for German text")
	}
	if tag != language.German {
		t.Errorf("expected German, got %v", tag)
	}
}

func TestDetectEnglish(t *testing.T) {
	d := New()
	text := "The remote controlled crane is driven by two motors and can be " +
		"operated precisely with the transmitter."

	tag, ok := d.Detect(text)
	if !ok {
		t.Fatal("expected a detection result for English text")
	}
	if tag != language.English {
		t.Errorf("expected English, got %v", tag)
	}
}

func TestDetectEmptyText(t *testing.T) {
	d := New()

	if _, ok := d.Detect(""); ok {
		t.Error("expected no detection result for empty text")
	}
}
