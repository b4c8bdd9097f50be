// Command waveflume-batch is a batch-processing tool for resolving
// many wave-generation scenarios in parallel. It walks a directory for
// YAML scenario files and runs internal/batch.Run across them with a
// configurable worker pool.
//
// Usage:
//
//	go run cmd/waveflume-batch/main.go -dir path/to/scenarios -workers 4
//
// Or using the compiled binary:
//
//	./bin/waveflume-batch -dir path/to/scenarios -workers 4
//
// Flags:
//
//	-dir string
//	 	Required. Directory containing YAML scenario files.
//	-workers int
//	 	Optional. Number of parallel workers (default: number of logical CPUs).
package main

import (
	"flag"
	"log/slog"
	"os"
	"runtime"

	"github.com/lmittmann/tint"

	"github.com/antoinelb/waveflume/internal/batch"
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
	dirPtr := flag.String("dir", "", "Directory containing YAML scenario files (required)")
	workersPtr := flag.Int("workers", runtime.NumCPU(), "Number of worker goroutines")
	flag.Parse()

	if *dirPtr == "" {
		slog.Error("missing required -dir flag")
		os.Exit(1)
	}

	slog.Info("starting batch run", "dir", *dirPtr, "workers", *workersPtr)

	if err := batch.Run(*dirPtr, *workersPtr); err != nil {
		slog.Error("batch run failed", "error", err)
		os.Exit(1)
	}

	slog.Info("batch run complete")
}
