package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "galley.yaml")
	data := []byte("right_column_indent: 40\nfigure_gap_tolerance: 3.5\nheader_marker: \"ft:pedia\"\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if config.RightColumnIndent == nil || *config.RightColumnIndent != 40 {
		t.Errorf("unexpected right_column_indent: %v", config.RightColumnIndent)
	}
	if config.FigureGapTolerance == nil || *config.FigureGapTolerance != 3.5 {
		t.Errorf("unexpected figure_gap_tolerance: %v", config.FigureGapTolerance)
	}
	if config.ColumnGapRun != nil {
		t.Error("expected column_gap_run to stay unset")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing config file")
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("right_column_indent: [not a number"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("expected an error for invalid YAML")
	}
}
