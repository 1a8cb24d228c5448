// Package stats provides summary statistics and histogram binning for time series.
//
// # Summary Statistics
//
// Compute the constants logged for every loaded dataset:
//
//	summary := stats.Summarize(series)
//	fmt.Printf("rows=%d mean=%.4f median=%.4f mode=%.4f\n",
//	    summary.Rows, summary.Mean, summary.Median, summary.Mode)
//
// # Histogram Binning
//
// Build the fixed "[0-10]" bin set over the series range and count samples
// into it:
//
//	edges := stats.FixedBins(series.Min(), series.Max(), stats.HistogramBinCount)
//	counts := stats.Histogram(series.Values, edges)
//
// The counts sum to the number of samples; the last bin is closed on the
// right so the maximum value is always counted.
package stats
