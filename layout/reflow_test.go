package layout

import (
	"testing"

	"github.com/pressoir/galley/model"
)

func paragraphTexts(paragraphs []model.Paragraph) []string {
	texts := make([]string, len(paragraphs))
	for i, p := range paragraphs {
		texts[i] = p.Text
	}
	return texts
}

func TestReflow_Dehyphenation(t *testing.T) {
	reflower := NewReflower()

	paragraphs := reflower.Reflow([]string{"inter-", "national", ""})
	if len(paragraphs) != 1 {
		t.Fatalf("expected 1 paragraph, got %d", len(paragraphs))
	}
	if paragraphs[0].Text != "international" {
		t.Errorf("expected %q, got %q", "international", paragraphs[0].Text)
	}
}

func TestReflow_DehyphenationKeepsWordBoundaries(t *testing.T) {
	reflower := NewReflower()

	paragraphs := reflower.Reflow([]string{
		"Die inter-",
		"nationale Messe beginnt",
		"im März.",
	})
	if len(paragraphs) != 1 {
		t.Fatalf("expected 1 paragraph, got %d", len(paragraphs))
	}
	want := "Die internationale Messe beginnt im März."
	if paragraphs[0].Text != want {
		t.Errorf("expected %q, got %q", want, paragraphs[0].Text)
	}
}

func TestReflow_BlankLineTerminatesParagraph(t *testing.T) {
	reflower := NewReflower()

	paragraphs := reflower.Reflow([]string{
		"Erster Absatz, Zeile eins",
		"und Zeile zwei.",
		"",
		"Zweiter Absatz.",
	})

	got := paragraphTexts(paragraphs)
	want := []string{"Erster Absatz, Zeile eins und Zeile zwei.", "Zweiter Absatz."}
	if len(got) != len(want) {
		t.Fatalf("expected %d paragraphs, got %d: %q", len(want), len(got), got)
	}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("paragraph %d: expected %q, got %q", i, w, got[i])
		}
	}
}

func TestReflow_IdempotentOnReflowedInput(t *testing.T) {
	reflower := NewReflower()

	input := []string{"Erster Absatz.", "", "Zweiter Absatz.", "", "Dritter Absatz."}
	first := reflower.Reflow(input)

	// Re-reflow the output as a line stream.
	var lines []string
	for i, p := range first {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, p.Text)
	}
	second := reflower.Reflow(lines)

	if len(first) != len(second) {
		t.Fatalf("reflow not idempotent: %d vs %d paragraphs", len(first), len(second))
	}
	for i := range first {
		if first[i].Text != second[i].Text {
			t.Errorf("paragraph %d changed: %q vs %q", i, first[i].Text, second[i].Text)
		}
	}
}

func TestReflow_ConsecutiveBlanksCollapse(t *testing.T) {
	reflower := NewReflower()

	paragraphs := reflower.Reflow([]string{"Eins.", "", "", "", "Zwei."})
	got := paragraphTexts(paragraphs)
	want := []string{"Eins.", "Zwei."}
	if len(got) != len(want) {
		t.Fatalf("expected %d paragraphs, got %d: %q", len(want), len(got), got)
	}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("paragraph %d: expected %q, got %q", i, w, got[i])
		}
	}
}

func TestReflow_LeadingBlankEmitsEmptyParagraph(t *testing.T) {
	reflower := NewReflower()

	// The engine emits the empty paragraph; dropping it is the caller's
	// decision.
	paragraphs := reflower.Reflow([]string{"", "Text."})
	if len(paragraphs) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(paragraphs))
	}
	if !paragraphs[0].IsEmpty() {
		t.Errorf("expected empty first paragraph, got %q", paragraphs[0].Text)
	}
	if paragraphs[1].Text != "Text." {
		t.Errorf("expected %q, got %q", "Text.", paragraphs[1].Text)
	}
}

func TestCollapseBlankRuns(t *testing.T) {
	got := CollapseBlankRuns([]string{"a", "", "", "b", "", "c", "", ""})
	want := []string{"a", "", "b", "", "c", ""}
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(got), got)
	}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("line %d: expected %q, got %q", i, w, got[i])
		}
	}
}
