// Package timeseries provides the core time series data structure and transformations.
package timeseries

import (
	"errors"
	"math"
	"sort"
)

// Series represents an ordered sequence of numeric samples loaded from a
// two-column source: a time (or index) column and a value column.
type Series struct {
	X      []float64 // time or sample index, one entry per value
	Values []float64
	XLabel string // title of the first source column, if any
	YLabel string // title of the second source column, if any
	Name   string // dataset name, usually derived from the source filename

	// SourceColumns is the number of columns seen in the source the series
	// was loaded from. Zero for series built in memory.
	SourceColumns int
}

// New creates a series from values, indexed 0..n-1.
func New(values []float64) *Series {
	x := make([]float64, len(values))
	for i := range x {
		x[i] = float64(i)
	}
	return &Series{X: x, Values: values}
}

// FromColumns creates a series from explicit time and value columns.
func FromColumns(x, values []float64) (*Series, error) {
	if len(x) != len(values) {
		return nil, errors.New("time and value columns must have the same length")
	}
	return &Series{X: x, Values: values}, nil
}

// Len returns the number of samples in the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// Mean calculates the arithmetic mean of the series values.
func (s *Series) Mean() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range s.Values {
		sum += v
	}
	return sum / float64(len(s.Values))
}

// Variance calculates the sample variance of the series values.
func (s *Series) Variance() float64 {
	if len(s.Values) < 2 {
		return 0
	}
	mean := s.Mean()
	sumSq := 0.0
	for _, v := range s.Values {
		diff := v - mean
		sumSq += diff * diff
	}
	return sumSq / float64(len(s.Values)-1)
}

// Std calculates the standard deviation of the series values.
func (s *Series) Std() float64 {
	return math.Sqrt(s.Variance())
}

// Min returns the minimum value in the series.
func (s *Series) Min() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	min := s.Values[0]
	for _, v := range s.Values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the maximum value in the series.
func (s *Series) Max() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	max := s.Values[0]
	for _, v := range s.Values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Median returns the median value of the series.
func (s *Series) Median() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Diff calculates the first difference of the series: out[i] = y[i+1] - y[i].
// The result has one fewer sample than the input; each difference keeps the
// X of the later of the two samples it was computed from.
func (s *Series) Diff() *Series {
	if len(s.Values) <= 1 {
		return &Series{
			X:      []float64{},
			Values: []float64{},
			XLabel: s.XLabel,
			YLabel: s.YLabel,
			Name:   s.Name,
		}
	}

	result := make([]float64, len(s.Values)-1)
	for i := 1; i < len(s.Values); i++ {
		result[i-1] = s.Values[i] - s.Values[i-1]
	}

	x := make([]float64, len(result))
	if len(s.X) == len(s.Values) {
		copy(x, s.X[1:])
	} else {
		for i := range x {
			x[i] = float64(i)
		}
	}

	return &Series{
		X:      x,
		Values: result,
		XLabel: s.XLabel,
		YLabel: s.YLabel,
		Name:   s.Name,
	}
}

// RollingRMS calculates a trailing-window root mean square of the series:
// out[i] = sqrt(mean(y[j]^2)) over the window samples ending at i. Windows
// at the start of the series use however many samples are available, so the
// result has the same length as the input. A window below 1 is treated as 1.
func (s *Series) RollingRMS(window int) *Series {
	if window < 1 {
		window = 1
	}

	result := make([]float64, len(s.Values))
	sumSq := 0.0
	for i, v := range s.Values {
		sumSq += v * v
		if i >= window {
			old := s.Values[i-window]
			sumSq -= old * old
		}
		n := i + 1
		if n > window {
			n = window
		}
		mean := sumSq / float64(n)
		if mean < 0 {
			mean = 0 // float cancellation can leave a tiny negative
		}
		result[i] = math.Sqrt(mean)
	}

	x := make([]float64, len(result))
	copy(x, s.X)

	return &Series{
		X:      x,
		Values: result,
		XLabel: s.XLabel,
		YLabel: s.YLabel,
		Name:   s.Name,
	}
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	x := make([]float64, len(s.X))
	copy(x, s.X)

	values := make([]float64, len(s.Values))
	copy(values, s.Values)

	return &Series{
		X:             x,
		Values:        values,
		XLabel:        s.XLabel,
		YLabel:        s.YLabel,
		Name:          s.Name,
		SourceColumns: s.SourceColumns,
	}
}
