// Package analysis orchestrates a full visualization run over one dataset.
//
// An Analyzer loads the CSV once, logs the dataset constants, and then
// generates any of the four charts on demand:
//
//	cfg, _ := config.Load("")
//	a, err := analysis.New("Pack_Volt_Data.csv", cfg, log)
//	if err != nil {
//	    return err
//	}
//	err = a.All(false) // histogram, raw, diff, and rms charts
//
// Individual charts can be generated too, with show opening the saved file:
//
//	path, err := a.LineRMS(true)
package analysis
