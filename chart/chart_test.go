package chart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sartorproj/tsviz/config"
	"github.com/sartorproj/tsviz/timeseries"
)

func testChartConfig() config.ChartConfig {
	return config.ChartConfig{
		WidthInches:   4,
		HeightInches:  3,
		RawLineWidth:  0.5,
		DiffLineWidth: 0.08,
		RMSLineWidth:  1.0,
	}
}

func testSeries() *timeseries.Series {
	s := timeseries.New([]float64{3.7, 3.71, 3.69, 3.72, 3.7, 3.68, 3.73, 3.7})
	s.Name = "Pack_Volt_Data"
	s.XLabel = "Time (s)"
	return s
}

func assertFileWritten(t *testing.T, path string, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	info, statErr := os.Stat(path)
	if statErr != nil {
		t.Fatalf("Expected chart file at %s: %v", path, statErr)
	}
	if info.Size() == 0 {
		t.Errorf("Chart file %s is empty", path)
	}
}

func TestRawLine(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(dir, testChartConfig(), nil)

	path, err := r.RawLine(testSeries(), false)
	assertFileWritten(t, path, err)

	if filepath.Base(path) != "Pack_Volt_Data_linegraph_raw.png" {
		t.Errorf("Unexpected file name %s", filepath.Base(path))
	}
}

func TestDiffLine(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(dir, testChartConfig(), nil)

	path, err := r.DiffLine(testSeries(), false)
	assertFileWritten(t, path, err)

	if filepath.Base(path) != "Pack_Volt_Data_linegraph_raw_diff.png" {
		t.Errorf("Unexpected file name %s", filepath.Base(path))
	}
}

func TestRMSLine(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(dir, testChartConfig(), nil)

	path, err := r.RMSLine(testSeries(), 3, false)
	assertFileWritten(t, path, err)

	if filepath.Base(path) != "Pack_Volt_Data_linegraph_rms.png" {
		t.Errorf("Unexpected file name %s", filepath.Base(path))
	}
}

func TestHistogram(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(dir, testChartConfig(), nil)

	path, err := r.Histogram(testSeries(), false)
	assertFileWritten(t, path, err)

	if filepath.Base(path) != "Pack_Volt_Data_histogram.png" {
		t.Errorf("Unexpected file name %s", filepath.Base(path))
	}
}

func TestRendererCreatesResultsDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "results", "nested")
	r := NewRenderer(dir, testChartConfig(), nil)

	path, err := r.RawLine(testSeries(), false)
	assertFileWritten(t, path, err)
}

func TestUnnamedSeriesGetsPlaceholder(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(dir, testChartConfig(), nil)

	s := timeseries.New([]float64{1, 2, 3})
	path, err := r.RawLine(s, false)
	assertFileWritten(t, path, err)

	if filepath.Base(path) != "series_linegraph_raw.png" {
		t.Errorf("Unexpected file name %s", filepath.Base(path))
	}
}

func TestUnitLabels(t *testing.T) {
	tests := []struct {
		name     string
		expected unit
	}{
		{"Pack_Volt_Data", unitVoltage},
		{"current_trace", unitCurrent},
		{"CURRENT_DATA", unitCurrent},
		{"mystery", unitUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := unitOf(tt.name); got != tt.expected {
				t.Errorf("unitOf(%q) = %d, want %d", tt.name, got, tt.expected)
			}
		})
	}
}
