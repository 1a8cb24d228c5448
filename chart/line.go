package chart

import (
	"fmt"

	"github.com/sartorproj/tsviz/timeseries"
)

// RawLine renders the series values against the time column, unmodified.
// It returns the path of the written PNG.
func (r *Renderer) RawLine(s *timeseries.Series, show bool) (string, error) {
	name := datasetName(s)

	var yLabel string
	switch unitOf(name) {
	case unitVoltage:
		yLabel = "Volts (V)"
	case unitCurrent:
		yLabel = "Current (Amps)"
	default:
		yLabel = "Y-Value (unit unknown)"
	}

	p := newPlot(fmt.Sprintf("Raw Line Graph for: %s", name), xAxisLabel(s), yLabel)

	l, err := line(s, r.cfg.RawLineWidth)
	if err != nil {
		return "", err
	}
	p.Add(l)

	return r.save(p, name+"_linegraph_raw.png", show)
}

// DiffLine renders the change in Y between consecutive samples as a line.
// It returns the path of the written PNG.
func (r *Renderer) DiffLine(s *timeseries.Series, show bool) (string, error) {
	name := datasetName(s)

	var yLabel string
	switch unitOf(name) {
	case unitVoltage:
		yLabel = "Change in Volts (V)"
	case unitCurrent:
		yLabel = "Change in Current (Amps)"
	default:
		yLabel = "Change in Y-Value (unit unknown)"
	}

	p := newPlot(fmt.Sprintf("Change in Y for: %s", name), xAxisLabel(s), yLabel)

	l, err := line(s.Diff(), r.cfg.DiffLineWidth)
	if err != nil {
		return "", err
	}
	p.Add(l)

	return r.save(p, name+"_linegraph_raw_diff.png", show)
}

// RMSLine renders a trailing-window root mean square of the series as a line.
// It returns the path of the written PNG.
func (r *Renderer) RMSLine(s *timeseries.Series, window int, show bool) (string, error) {
	name := datasetName(s)

	var yLabel string
	switch unitOf(name) {
	case unitVoltage:
		yLabel = "V_RMS (V)"
	case unitCurrent:
		yLabel = "I_RMS (A)"
	default:
		yLabel = "RMS in Y-Value (unit unknown)"
	}

	p := newPlot(fmt.Sprintf("Root Mean Square Line Graph for: %s", name), xAxisLabel(s), yLabel)

	l, err := line(s.RollingRMS(window), r.cfg.RMSLineWidth)
	if err != nil {
		return "", err
	}
	p.Add(l)

	return r.save(p, name+"_linegraph_rms.png", show)
}
