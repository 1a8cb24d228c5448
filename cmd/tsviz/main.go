// Command tsviz loads a two-column CSV time series and renders a raw line
// chart, a change-in-Y chart, a rolling RMS chart, and a fixed-bin histogram
// into a results directory.
package main

import (
	"fmt"
	"os"

	"github.com/akamensky/argparse"
	"go.uber.org/zap"

	"github.com/sartorproj/tsviz/analysis"
	"github.com/sartorproj/tsviz/config"
	"github.com/sartorproj/tsviz/logger"
)

func main() {
	parser := argparse.NewParser("tsviz",
		"Visualize a two-column CSV time series: raw, change-in-Y, and RMS line charts plus a fixed-bin histogram")

	file := parser.String("f", "file", &argparse.Options{
		Required: true,
		Help:     "two-column CSV file to visualize",
	})
	configPath := parser.String("c", "config", &argparse.Options{
		Help: "YAML config file",
	})
	resultsDir := parser.String("r", "results-dir", &argparse.Options{
		Help: "directory charts are written to (overrides config)",
	})
	logFile := parser.String("l", "log-file", &argparse.Options{
		Help: "log file path (overrides config)",
	})
	mode := parser.Selector("m", "mode", []string{"release", "development"}, &argparse.Options{
		Help: "logging mode (overrides config)",
	})
	show := parser.Flag("s", "show", &argparse.Options{
		Help: "open each chart with the platform image viewer after saving",
	})
	charts := parser.StringList("", "charts", &argparse.Options{
		Help:    "charts to generate: all, raw, diff, rms, hist",
		Default: []string{"all"},
	})

	if err := parser.Parse(os.Args); err != nil {
		fmt.Fprint(os.Stderr, parser.Usage(err))
		os.Exit(2)
	}

	if err := run(*file, *configPath, *resultsDir, *logFile, *mode, *charts, *show); err != nil {
		fmt.Fprintf(os.Stderr, "tsviz: %v\n", err)
		os.Exit(1)
	}
}

func run(file, configPath, resultsDir, logFile, mode string, charts []string, show bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// Flags win over config file and environment.
	if resultsDir != "" {
		cfg.ResultsDir = resultsDir
	}
	if logFile != "" {
		cfg.LogFile = logFile
	}
	if mode != "" {
		cfg.Mode = mode
	}

	log, err := logger.Setup(cfg.LogFile, cfg.Mode)
	if err != nil {
		return fmt.Errorf("set up logger: %w", err)
	}
	defer log.Sync()

	log.Info("starting run",
		zap.String("file", file),
		zap.String("results_dir", cfg.ResultsDir),
		zap.Strings("charts", charts),
		zap.Bool("show", show))

	a, err := analysis.New(file, cfg, log)
	if err != nil {
		return err
	}

	generators := map[string]func(bool) (string, error){
		"hist": a.Histogram,
		"raw":  a.LineRaw,
		"diff": a.LineDiff,
		"rms":  a.LineRMS,
	}

	for _, name := range charts {
		if name == "all" {
			return a.All(show)
		}
		generate, ok := generators[name]
		if !ok {
			return fmt.Errorf("unknown chart %q (want all, raw, diff, rms, or hist)", name)
		}
		if _, err := generate(show); err != nil {
			return err
		}
	}
	return nil
}
