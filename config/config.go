package config

import (
	"fmt"
)

// Config holds the full tsviz configuration.
type Config struct {
	ResultsDir string      `yaml:"results_dir" env:"TSVIZ_RESULTS_DIR"`
	LogFile    string      `yaml:"log_file" env:"TSVIZ_LOG_FILE"`
	Mode       string      `yaml:"mode" env:"TSVIZ_MODE"`
	Chart      ChartConfig `yaml:"chart"`
	RMS        RMSConfig   `yaml:"rms"`
}

// ChartConfig controls figure dimensions and line weights. Dimensions are in
// inches; line widths are in points, matching the weights the charts were
// tuned with (raw 0.5, diff 0.08, rms 1.0).
type ChartConfig struct {
	WidthInches   float64 `yaml:"width_in" env:"TSVIZ_CHART_WIDTH"`
	HeightInches  float64 `yaml:"height_in" env:"TSVIZ_CHART_HEIGHT"`
	RawLineWidth  float64 `yaml:"raw_line_width"`
	DiffLineWidth float64 `yaml:"diff_line_width"`
	RMSLineWidth  float64 `yaml:"rms_line_width"`
}

// RMSConfig controls the rolling RMS window. The window is the series length
// divided by SampleDivisor, clamped to at least one sample.
type RMSConfig struct {
	SampleDivisor int `yaml:"sample_divisor" env:"TSVIZ_RMS_DIVISOR"`
}

func (c *Config) applyDefaults() {
	if c.ResultsDir == "" {
		c.ResultsDir = "results"
	}
	if c.LogFile == "" {
		c.LogFile = "tsviz.log"
	}
	if c.Mode == "" {
		c.Mode = "development"
	}
	if c.Chart.WidthInches == 0 {
		c.Chart.WidthInches = 8
	}
	if c.Chart.HeightInches == 0 {
		c.Chart.HeightInches = 6
	}
	if c.Chart.RawLineWidth == 0 {
		c.Chart.RawLineWidth = 0.5
	}
	if c.Chart.DiffLineWidth == 0 {
		c.Chart.DiffLineWidth = 0.08
	}
	if c.Chart.RMSLineWidth == 0 {
		c.Chart.RMSLineWidth = 1.0
	}
	if c.RMS.SampleDivisor == 0 {
		c.RMS.SampleDivisor = 30
	}
}

// Validate checks the configuration for values the charts cannot work with.
func (c *Config) Validate() error {
	if c.Mode != "release" && c.Mode != "development" {
		return fmt.Errorf("unknown mode %q (want release or development)", c.Mode)
	}
	if c.Chart.WidthInches <= 0 || c.Chart.HeightInches <= 0 {
		return fmt.Errorf("chart dimensions must be positive, got %gx%g",
			c.Chart.WidthInches, c.Chart.HeightInches)
	}
	if c.Chart.RawLineWidth <= 0 || c.Chart.DiffLineWidth <= 0 || c.Chart.RMSLineWidth <= 0 {
		return fmt.Errorf("line widths must be positive")
	}
	if c.RMS.SampleDivisor < 1 {
		return fmt.Errorf("rms sample divisor must be at least 1, got %d", c.RMS.SampleDivisor)
	}
	return nil
}
