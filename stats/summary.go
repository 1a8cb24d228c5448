// Package stats provides summary statistics and histogram binning for time series.
package stats

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/tsviz/timeseries"
)

// Summary holds the per-dataset constants computed when a series is loaded.
type Summary struct {
	Rows   int
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	Mode   float64
	Std    float64
}

// Summarize computes summary statistics for the series.
func Summarize(s *timeseries.Series) Summary {
	if s.Len() == 0 {
		return Summary{}
	}

	sorted := make([]float64, s.Len())
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	return Summary{
		Rows:   s.Len(),
		Min:    floats.Min(sorted),
		Max:    floats.Max(sorted),
		Mean:   stat.Mean(sorted, nil),
		Median: s.Median(), // interpolates even-length series, unlike the empirical quantile
		Mode:   Mode(s.Values),
		Std:    stat.StdDev(sorted, nil),
	}
}

// Mode returns the most frequent value in the slice. Ties are broken by the
// smallest value. An empty slice returns 0.
func Mode(values []float64) float64 {
	counts := make(map[float64]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	var mode float64
	best := 0
	for v, n := range counts {
		if n > best || (n == best && v < mode) {
			mode = v
			best = n
		}
	}
	return mode
}
