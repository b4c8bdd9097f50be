// Command wavegen is a command-line tool for resolving a single
// regular-wave scenario and stepping its boundary-generation driver
// across a simulated run, writing the resulting time trace to JSON.
//
// Usage:
//
//	go run cmd/wavegen/main.go -config path/to/scenario.yaml
//
// Or using the compiled binary:
//
//	./bin/wavegen -config path/to/scenario.yaml
//
// Required flags:
//
//	-config string
//	 	Path to the YAML scenario file describing wave, boundary, and
//	 	simulation parameters.
//
// For a complete example configuration file, see:
//
//	./internal/config/testdata/sample_scenario.yaml
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"

	"github.com/antoinelb/waveflume/internal/batch"
	"github.com/antoinelb/waveflume/internal/config"
)

func init() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	))
}

func main() {
	configPath := flag.String("config", "", "Path to scenario YAML file (required)")
	flag.Parse()

	if *configPath == "" {
		slog.Error("missing required -config flag")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load scenario config", "error", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid scenario config", "error", err)
		os.Exit(1)
	}

	slog.Info("resolving wave scenario",
		"height", cfg.Wave.Height, "period", cfg.Wave.Period, "depth", cfg.Wave.Depth)

	trace, err := batch.RunScenario(cfg)
	if err != nil {
		slog.Error("scenario run failed", "error", err)
		os.Exit(1)
	}

	slog.Info("wave resolved",
		"regime", trace.Regime, "wave_number", trace.WaveNumber, "phase_speed", trace.PhaseSpeed)

	if err := batch.WriteTraceFile(trace, cfg.Output.FileName); err != nil {
		slog.Error("failed to write trace", "error", err)
		os.Exit(1)
	}

	slog.Info("results written", "file", cfg.Output.FileName, "samples", len(trace.Times))
}
