// Package timeseries provides time series data structures and utilities.
//
// This package includes the Series type for representing sampled data loaded
// from a two-column source (time/index, value), along with loading and the
// transformations the charting layer consumes.
//
// # Creating a Series
//
// Create a time series from a slice:
//
//	values := []float64{100, 102, 105, 103, 108, 110}
//	series := timeseries.New(values)
//
// # Loading from CSV
//
// Load a series from a two-column CSV file. The header row supplies the axis
// labels and the file name becomes the series name:
//
//	series, err := timeseries.LoadCSV("Pack_Volt_Data.csv", nil)
//
// # Basic Statistics
//
// Calculate summary statistics:
//
//	mean := series.Mean()
//	std := series.Std()
//	min := series.Min()
//	max := series.Max()
//	median := series.Median()
//
// # Transformations
//
// Transform the time series:
//
//	// Change in Y between consecutive samples (length n-1)
//	diff := series.Diff()
//
//	// Trailing-window root mean square (same length as the input)
//	rms := series.RollingRMS(series.Len() / 30)
//
// # CSV Options
//
// Customize CSV loading:
//
//	opts := &timeseries.CSVOptions{
//	    HasHeader: true,
//	    Delimiter: ';',
//	}
//	series, err := timeseries.LoadCSVFromReader(reader, opts)
package timeseries
