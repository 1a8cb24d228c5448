// Package analysis ties loading, statistics, and chart rendering together.
package analysis

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sartorproj/tsviz/chart"
	"github.com/sartorproj/tsviz/config"
	"github.com/sartorproj/tsviz/stats"
	"github.com/sartorproj/tsviz/timeseries"
)

// Analyzer loads a two-column CSV once and generates charts from it. On
// construction it logs the dataset header, the summary constants, and the
// histogram bin list, each with the time taken, so a run leaves a full
// record in the log file.
type Analyzer struct {
	Series  *timeseries.Series
	Summary stats.Summary
	Edges   []float64

	window   int
	renderer *chart.Renderer
	log      *zap.Logger
}

// New loads the CSV at path and prepares an analyzer using cfg for the
// results directory, chart styling, and RMS window. A nil logger is replaced
// with a no-op logger.
func New(path string, cfg *config.Config, log *zap.Logger) (*Analyzer, error) {
	if log == nil {
		log = zap.NewNop()
	}

	series, err := timeseries.LoadCSV(path, nil)
	if err != nil {
		return nil, err
	}

	if series.SourceColumns != 2 {
		log.Warn("source does not have exactly two columns; using the first two",
			zap.String("file", path),
			zap.Int("columns", series.SourceColumns))
	}

	divisor := cfg.RMS.SampleDivisor
	if divisor < 1 {
		divisor = 1
	}
	a := &Analyzer{
		Series:   series,
		window:   series.Len() / divisor,
		renderer: chart.NewRenderer(cfg.ResultsDir, cfg.Chart, log),
		log:      log,
	}
	if a.window < 1 {
		a.window = 1
	}

	log.Info("dataset loaded",
		zap.String("file", path),
		zap.String("name", series.Name),
		zap.String("x_column", series.XLabel),
		zap.String("y_column", series.YLabel),
		zap.Int("rows", series.Len()))

	start := time.Now()
	a.Summary = stats.Summarize(series)
	log.Info("constants calculated",
		zap.Float64("y_min", a.Summary.Min),
		zap.Float64("y_max", a.Summary.Max),
		zap.Float64("mean", a.Summary.Mean),
		zap.Float64("median", a.Summary.Median),
		zap.Float64("mode", a.Summary.Mode),
		zap.Duration("elapsed", time.Since(start)))

	start = time.Now()
	a.Edges = stats.FixedBins(a.Summary.Min, a.Summary.Max, stats.HistogramBinCount)
	log.Info("bins calculated",
		zap.Float64s("edges", a.Edges),
		zap.Float64("bin_range", stats.BinWidth(a.Edges)),
		zap.Duration("elapsed", time.Since(start)))

	return a, nil
}

// Window returns the rolling RMS window the analyzer uses.
func (a *Analyzer) Window() int {
	return a.window
}

// LineRaw generates the raw line chart and returns the written path.
func (a *Analyzer) LineRaw(show bool) (string, error) {
	return a.timed("raw line graph", func() (string, error) {
		return a.renderer.RawLine(a.Series, show)
	})
}

// LineDiff generates the change-in-Y line chart and returns the written path.
func (a *Analyzer) LineDiff(show bool) (string, error) {
	return a.timed("line graph of difference in y", func() (string, error) {
		return a.renderer.DiffLine(a.Series, show)
	})
}

// LineRMS generates the rolling RMS line chart and returns the written path.
func (a *Analyzer) LineRMS(show bool) (string, error) {
	return a.timed("rms line graph", func() (string, error) {
		return a.renderer.RMSLine(a.Series, a.window, show)
	})
}

// Histogram generates the fixed-bin histogram and returns the written path.
func (a *Analyzer) Histogram(show bool) (string, error) {
	return a.timed("histogram", func() (string, error) {
		return a.renderer.Histogram(a.Series, show)
	})
}

// All generates every chart, stopping at the first failure.
func (a *Analyzer) All(show bool) error {
	charts := []func(bool) (string, error){
		a.Histogram,
		a.LineRaw,
		a.LineDiff,
		a.LineRMS,
	}
	for _, generate := range charts {
		if _, err := generate(show); err != nil {
			return err
		}
	}
	return nil
}

// timed runs a chart generator and logs how long it took and where the
// output landed.
func (a *Analyzer) timed(what string, generate func() (string, error)) (string, error) {
	start := time.Now()
	path, err := generate()
	if err != nil {
		return "", fmt.Errorf("%s: %w", what, err)
	}
	a.log.Info(what+" created",
		zap.String("path", path),
		zap.Duration("elapsed", time.Since(start)))
	return path, nil
}
