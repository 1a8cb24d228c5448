// Package chart renders the four tsviz chart kinds as PNG files.
//
// A Renderer owns the results directory and the figure styling, and exposes
// one operation per chart:
//
//	r := chart.NewRenderer("results", cfg.Chart, log)
//	path, err := r.RawLine(series, false)
//	path, err = r.DiffLine(series, false)
//	path, err = r.RMSLine(series, series.Len()/30, false)
//	path, err = r.Histogram(series, false)
//
// Passing show=true opens the written file with the platform image viewer
// after saving; there is no interactive backend, so the file is always
// written first and a missing viewer is only logged.
package chart
