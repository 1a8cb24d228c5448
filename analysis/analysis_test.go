package analysis

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sartorproj/tsviz/config"
)

func writeTestCSV(t *testing.T, name string, rows int) string {
	t.Helper()

	var b strings.Builder
	b.WriteString("Time (s),Voltage (V)\n")
	for i := 0; i < rows; i++ {
		v := 3.7 + 0.05*math.Sin(float64(i)/4)
		fmt.Fprintf(&b, "%.1f,%.4f\n", float64(i)*0.1, v)
	}

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.ResultsDir = t.TempDir()
	cfg.Chart.WidthInches = 4
	cfg.Chart.HeightInches = 3
	return cfg
}

func TestNewComputesConstants(t *testing.T) {
	path := writeTestCSV(t, "Pack_Volt_Data.csv", 90)
	cfg := testConfig(t)

	a, err := New(path, cfg, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if a.Series.Len() != 90 {
		t.Errorf("Expected 90 rows, got %d", a.Series.Len())
	}
	if a.Summary.Rows != 90 {
		t.Errorf("Expected summary over 90 rows, got %d", a.Summary.Rows)
	}
	if a.Summary.Min > a.Summary.Mean || a.Summary.Mean > a.Summary.Max {
		t.Errorf("Summary out of order: %+v", a.Summary)
	}
	if len(a.Edges) != 11 {
		t.Errorf("Expected 11 bin edges, got %d", len(a.Edges))
	}
	if a.Window() != 3 { // 90 samples / divisor 30
		t.Errorf("Expected rms window 3, got %d", a.Window())
	}
}

func TestWindowClampedForShortSeries(t *testing.T) {
	path := writeTestCSV(t, "short.csv", 5)
	cfg := testConfig(t)

	a, err := New(path, cfg, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if a.Window() != 1 {
		t.Errorf("Expected window clamped to 1, got %d", a.Window())
	}
}

func TestAllWritesEveryChart(t *testing.T) {
	path := writeTestCSV(t, "Pack_Volt_Data.csv", 60)
	cfg := testConfig(t)

	a, err := New(path, cfg, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := a.All(false); err != nil {
		t.Fatalf("All failed: %v", err)
	}

	expected := []string{
		"Pack_Volt_Data_histogram.png",
		"Pack_Volt_Data_linegraph_raw.png",
		"Pack_Volt_Data_linegraph_raw_diff.png",
		"Pack_Volt_Data_linegraph_rms.png",
	}
	for _, name := range expected {
		info, err := os.Stat(filepath.Join(cfg.ResultsDir, name))
		if err != nil {
			t.Errorf("Expected chart %s: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("Chart %s is empty", name)
		}
	}
}

func TestSingleChartReturnsPath(t *testing.T) {
	path := writeTestCSV(t, "Current_Data.csv", 40)
	cfg := testConfig(t)

	a, err := New(path, cfg, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	out, err := a.LineRMS(false)
	if err != nil {
		t.Fatalf("LineRMS failed: %v", err)
	}
	if filepath.Base(out) != "Current_Data_linegraph_rms.png" {
		t.Errorf("Unexpected output path %s", out)
	}
}

func TestNewMissingFile(t *testing.T) {
	cfg := testConfig(t)
	if _, err := New(filepath.Join(t.TempDir(), "nope.csv"), cfg, nil); err == nil {
		t.Error("Expected error for missing file")
	}
}
