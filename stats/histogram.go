package stats

// HistogramBinCount is the fixed number of bins used by the histogram chart.
const HistogramBinCount = 10

// FixedBins returns n+1 monotone edges dividing [min, max] into n equal-width
// bins. When min equals max the edges collapse to a single point and every
// bin has zero width.
func FixedBins(min, max float64, n int) []float64 {
	if n < 1 {
		n = 1
	}

	edges := make([]float64, n+1)
	width := (max - min) / float64(n)
	floor := min
	for i := range edges {
		edges[i] = floor
		floor += width
	}
	// Pin the last edge so max always lands inside the final bin.
	edges[n] = max
	return edges
}

// BinWidth returns the width of the bins described by the edges.
func BinWidth(edges []float64) float64 {
	if len(edges) < 2 {
		return 0
	}
	return (edges[len(edges)-1] - edges[0]) / float64(len(edges)-1)
}

// Histogram counts values into the bins described by edges. Each bin is
// half-open [lo, hi) except the last, which is closed so the maximum value is
// counted. Values outside the edges are ignored. With edges from FixedBins
// over the series min and max, the counts sum to the number of samples.
func Histogram(values []float64, edges []float64) []int {
	if len(edges) < 2 {
		return nil
	}

	n := len(edges) - 1
	counts := make([]int, n)
	lo, hi := edges[0], edges[n]
	width := BinWidth(edges)

	for _, v := range values {
		if v < lo || v > hi {
			continue
		}
		if width == 0 {
			// Degenerate bins: every in-range value is the single point.
			counts[0]++
			continue
		}
		idx := int((v - lo) / width)
		if idx >= n {
			idx = n - 1
		}
		counts[idx]++
	}

	return counts
}
