// Package tsviz provides time series visualization from two-column CSV data.
//
// tsviz loads an ordered sequence of numeric samples from a CSV file (time or
// index in the first column, values in the second) and renders four charts:
// a raw line chart, a change-in-Y (first difference) chart, a rolling root
// mean square chart, and a histogram over a fixed set of ten bins. Charts are
// written to a results directory as PNG files and can optionally be opened in
// the platform image viewer.
//
// # Quick Start
//
// Visualize a dataset from the command line:
//
//	tsviz -f Pack_Volt_Data.csv
//	tsviz -f Current_Data.csv --charts rms --show
//
// Or drive the analyzer from code:
//
//	cfg, _ := config.Load("")
//	a, err := analysis.New("Pack_Volt_Data.csv", cfg, log)
//	if err != nil {
//	    return err
//	}
//	err = a.All(false)
//
// # Packages
//
// The module is organized into the following packages:
//
//   - timeseries: the Series type, CSV loading, and transformations
//   - stats: summary statistics and fixed-bin histogram counting
//   - chart: PNG rendering of the four chart kinds with gonum/plot
//   - analysis: one-dataset orchestration with timing logs
//   - config: YAML configuration with environment overrides
//   - logger: zap logging to console and a rotated file
package tsviz
