package chart

import (
	"fmt"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/sartorproj/tsviz/stats"
	"github.com/sartorproj/tsviz/timeseries"
)

// Histogram renders the series values binned into the fixed [0-10] bin set
// over the series range. The frequency axis is linear: bar charts anchor at
// zero, which a log scale cannot represent.
// It returns the path of the written PNG.
func (r *Renderer) Histogram(s *timeseries.Series, show bool) (string, error) {
	name := datasetName(s)

	edges := stats.FixedBins(s.Min(), s.Max(), stats.HistogramBinCount)
	counts := stats.Histogram(s.Values, edges)
	binRange := stats.BinWidth(edges)

	var xLabel string
	switch unitOf(name) {
	case unitVoltage:
		xLabel = fmt.Sprintf("Voltage (V) by Bins [0-10] - Bin Range %g", binRange)
	case unitCurrent:
		xLabel = fmt.Sprintf("Current (A) by Bins [0-10] - Bin Range %g", binRange)
	default:
		xLabel = fmt.Sprintf("Unknown Unit by Bins [0-10] - Bin Range %g", binRange)
	}

	p := newPlot(fmt.Sprintf("Histogram for: %s", name), xLabel, "Frequency")

	values := make(plotter.Values, len(counts))
	for i, c := range counts {
		values[i] = float64(c)
	}

	bars, err := plotter.NewBarChart(values, r.width/vg.Length(2*len(counts)))
	if err != nil {
		return "", fmt.Errorf("build histogram bars: %w", err)
	}
	bars.LineStyle.Width = vg.Points(1) // black bin edges
	p.Add(bars)

	labels := make([]string, len(counts))
	for i := range labels {
		labels[i] = fmt.Sprintf("%.4g", edges[i])
	}
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = 0.785 // roughly 45 degrees
	p.X.Tick.Label.Font.Size = vg.Points(8)

	return r.save(p, name+"_histogram.png", show)
}
