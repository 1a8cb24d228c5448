package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ResultsDir != "results" {
		t.Errorf("Expected results dir 'results', got %q", cfg.ResultsDir)
	}
	if cfg.Mode != "development" {
		t.Errorf("Expected mode development, got %q", cfg.Mode)
	}
	if cfg.RMS.SampleDivisor != 30 {
		t.Errorf("Expected sample divisor 30, got %d", cfg.RMS.SampleDivisor)
	}
	if cfg.Chart.RawLineWidth != 0.5 || cfg.Chart.DiffLineWidth != 0.08 {
		t.Errorf("Unexpected line widths: %+v", cfg.Chart)
	}
}

func TestLoadYAML(t *testing.T) {
	data := `
results_dir: out
mode: release
chart:
  width_in: 12
  height_in: 9
rms:
  sample_divisor: 10
`
	path := filepath.Join(t.TempDir(), "tsviz.yaml")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ResultsDir != "out" {
		t.Errorf("Expected results dir 'out', got %q", cfg.ResultsDir)
	}
	if cfg.Mode != "release" {
		t.Errorf("Expected mode release, got %q", cfg.Mode)
	}
	if cfg.Chart.WidthInches != 12 || cfg.Chart.HeightInches != 9 {
		t.Errorf("Unexpected chart dimensions: %+v", cfg.Chart)
	}
	if cfg.RMS.SampleDivisor != 10 {
		t.Errorf("Expected sample divisor 10, got %d", cfg.RMS.SampleDivisor)
	}
	// Unset fields still get defaults.
	if cfg.Chart.RMSLineWidth != 1.0 {
		t.Errorf("Expected default rms line width, got %f", cfg.Chart.RMSLineWidth)
	}
}

func TestLoadEnvExpansion(t *testing.T) {
	t.Setenv("TSVIZ_TEST_DIR", "expanded")

	data := "results_dir: ${TSVIZ_TEST_DIR}\n"
	path := filepath.Join(t.TempDir(), "tsviz.yaml")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ResultsDir != "expanded" {
		t.Errorf("Expected expanded results dir, got %q", cfg.ResultsDir)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("TSVIZ_RESULTS_DIR", "from-env")
	t.Setenv("TSVIZ_RMS_DIVISOR", "5")

	data := "results_dir: from-yaml\n"
	path := filepath.Join(t.TempDir(), "tsviz.yaml")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ResultsDir != "from-env" {
		t.Errorf("Expected env to override yaml, got %q", cfg.ResultsDir)
	}
	if cfg.RMS.SampleDivisor != 5 {
		t.Errorf("Expected sample divisor 5, got %d", cfg.RMS.SampleDivisor)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad mode", "mode: verbose\n"},
		{"negative divisor", "rms:\n  sample_divisor: -1\n"},
		{"negative width", "chart:\n  width_in: -3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tsviz.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing config file")
	}
}
