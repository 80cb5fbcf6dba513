package main

import (
	"fmt"
	"os"

	"github.com/pressoir/galley"
	"github.com/pressoir/galley/layout"
	"gopkg.in/yaml.v3"
)

// Config holds the layout calibration overrides loadable from a YAML file.
// Every field is optional; unset fields keep the ft:pedia defaults. Pointer
// fields distinguish "absent" from a deliberate zero.
type Config struct {
	RightColumnIndent  *int     `yaml:"right_column_indent"`
	ColumnGapRun       *int     `yaml:"column_gap_run"`
	WideContainerWidth *float64 `yaml:"wide_container_width"`
	FigureGapTolerance *float64 `yaml:"figure_gap_tolerance"`
	TitleFontSize      *int     `yaml:"title_font_size"`
	MetaFontSize       *int     `yaml:"meta_font_size"`
	AuthorContainer    *int     `yaml:"author_container"`
	HeaderMarker       *string  `yaml:"header_marker"`
	FooterMarker       *string  `yaml:"footer_marker"`
}

// LoadConfig reads and parses a calibration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &config, nil
}

// Apply overlays the set fields onto an extractor chain and returns the
// configured extractor.
func (c *Config) Apply(ext *galley.Extractor) *galley.Extractor {
	columns := layout.DefaultColumnConfig()
	if c.RightColumnIndent != nil {
		columns.RightColumnIndent = *c.RightColumnIndent
	}
	if c.ColumnGapRun != nil {
		columns.GapRun = *c.ColumnGapRun
	}
	ext = ext.ColumnConfig(columns)

	frontMatter := layout.DefaultFrontMatterConfig()
	if c.WideContainerWidth != nil {
		frontMatter.WideContainerWidth = *c.WideContainerWidth
	}
	if c.TitleFontSize != nil {
		frontMatter.TitleFontSize = *c.TitleFontSize
	}
	if c.MetaFontSize != nil {
		frontMatter.MetaFontSize = *c.MetaFontSize
	}
	if c.AuthorContainer != nil {
		frontMatter.AuthorContainer = *c.AuthorContainer
	}
	ext = ext.FrontMatterConfig(frontMatter)

	if c.FigureGapTolerance != nil {
		figures := layout.DefaultFigureConfig()
		figures.GapTolerance = *c.FigureGapTolerance
		ext = ext.FigureConfig(figures)
	}

	if c.HeaderMarker != nil {
		ext = ext.HeaderMarker(*c.HeaderMarker)
	}
	if c.FooterMarker != nil {
		ext = ext.FooterMarker(*c.FooterMarker)
	}
	return ext
}
