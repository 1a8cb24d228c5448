// Package chart renders time series charts to PNG files with gonum/plot.
package chart

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/sartorproj/tsviz/config"
	"github.com/sartorproj/tsviz/timeseries"
)

// Renderer writes charts for a series into a results directory. There is no
// interactive plot backend, so "showing" a chart saves it and opens the file
// with the platform image viewer.
type Renderer struct {
	dir    string
	width  vg.Length
	height vg.Length
	cfg    config.ChartConfig
	log    *zap.Logger
}

// NewRenderer creates a renderer that writes into dir. A nil logger is
// replaced with a no-op logger.
func NewRenderer(dir string, cfg config.ChartConfig, log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{
		dir:    dir,
		width:  vg.Length(cfg.WidthInches) * vg.Inch,
		height: vg.Length(cfg.HeightInches) * vg.Inch,
		cfg:    cfg,
		log:    log,
	}
}

// save writes the plot under the results directory, creating it if needed,
// and optionally opens the result.
func (r *Renderer) save(p *plot.Plot, filename string, show bool) (string, error) {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("create results dir: %w", err)
	}

	path := filepath.Join(r.dir, filename)
	if err := p.Save(r.width, r.height, path); err != nil {
		return "", fmt.Errorf("save chart: %w", err)
	}

	if show {
		if err := openImage(path); err != nil {
			// The chart is already on disk; a missing viewer is not fatal.
			r.log.Warn("could not open chart for display",
				zap.String("path", path), zap.Error(err))
		}
	}
	return path, nil
}

// newPlot builds a plot with the shared title and axis styling.
func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(15)
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())
	return p
}

// line builds a styled line plotter from the series points.
func line(s *timeseries.Series, width float64) (*plotter.Line, error) {
	pts := make(plotter.XYs, s.Len())
	for i, v := range s.Values {
		x := float64(i)
		if i < len(s.X) {
			x = s.X[i]
		}
		pts[i].X = x
		pts[i].Y = v
	}

	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("build line: %w", err)
	}
	l.LineStyle.Width = vg.Points(width)
	return l, nil
}

// openImage opens the written chart with the platform image viewer.
func openImage(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	return cmd.Start()
}

// datasetName returns the series name, or a placeholder for unnamed series.
func datasetName(s *timeseries.Series) string {
	if s.Name != "" {
		return s.Name
	}
	return "series"
}

// xAxisLabel returns the X axis label, defaulting to seconds as most captures
// are time-based.
func xAxisLabel(s *timeseries.Series) string {
	if s.XLabel != "" {
		return s.XLabel
	}
	return "Time (s)"
}

// unit describes the measured quantity, inferred from the dataset name.
type unit int

const (
	unitUnknown unit = iota
	unitVoltage
	unitCurrent
)

func unitOf(name string) unit {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "volt"):
		return unitVoltage
	case strings.Contains(lower, "current"):
		return unitCurrent
	default:
		return unitUnknown
	}
}
