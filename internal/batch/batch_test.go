package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/antoinelb/waveflume/internal/config"
)

func scenarioYAML(outFile string) string {
	return `
wave:
  height: 0.3
  period: 4.0
  depth: 2.0
boundary:
  generation_position: 0.0
  ramp_duration: 1.0
simulation:
  duration: 2.0
  time_step: 0.0
  grid_cells: 50
output:
  file_name: ` + outFile + "\n"
}

func TestRunScenarioProducesConsistentTrace(t *testing.T) {
	var cfg config.Config
	cfg.Wave.Height = 0.3
	cfg.Wave.Period = 4.0
	cfg.Wave.Depth = 2.0
	cfg.Boundary.RampDuration = 1.0
	cfg.Simulation.Duration = 2.0
	cfg.Simulation.GridCells = 50

	trace, err := RunScenario(cfg)
	if err != nil {
		t.Fatalf("RunScenario: %v", err)
	}

	if len(trace.Times) == 0 {
		t.Fatal("trace has no samples")
	}
	if len(trace.Times) != len(trace.BoundaryVelocity) || len(trace.Times) != len(trace.BoundaryElevation) {
		t.Fatalf("trace slices have mismatched lengths: times=%d, velocity=%d, elevation=%d",
			len(trace.Times), len(trace.BoundaryVelocity), len(trace.BoundaryElevation))
	}
	if trace.Times[0] != 0 {
		t.Errorf("trace.Times[0] = %v, want 0", trace.Times[0])
	}
	// Ramped elevation at t=0 should be zero, since RampUpFactor(0) = 0.
	if trace.BoundaryElevation[0] != 0 {
		t.Errorf("trace.BoundaryElevation[0] = %v, want 0 under ramping", trace.BoundaryElevation[0])
	}

	if len(trace.GridPositions) != cfg.Simulation.GridCells {
		t.Fatalf("len(trace.GridPositions) = %d, want %d (cfg.Simulation.GridCells)", len(trace.GridPositions), cfg.Simulation.GridCells)
	}
	if len(trace.InitialVelocityField) != cfg.Simulation.GridCells || len(trace.InitialElevationField) != cfg.Simulation.GridCells {
		t.Fatalf("initial field lengths = %d/%d, want %d", len(trace.InitialVelocityField), len(trace.InitialElevationField), cfg.Simulation.GridCells)
	}
	if trace.GridPositions[0] != cfg.Boundary.GenerationPosition {
		t.Errorf("trace.GridPositions[0] = %v, want %v (generation position)", trace.GridPositions[0], cfg.Boundary.GenerationPosition)
	}
}

func TestWriteTraceFileCreatesDirectoryAndRoundTrips(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "nested", "trace.json")

	trace := Trace{Height: 0.3, Period: 4.0, Depth: 2.0, Times: []float64{0, 1}, BoundaryVelocity: []float64{0, 1}, BoundaryElevation: []float64{0, 1}}
	if err := WriteTraceFile(trace, outPath); err != nil {
		t.Fatalf("WriteTraceFile: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading written trace: %v", err)
	}

	var roundTripped Trace
	if err := json.Unmarshal(data, &roundTripped); err != nil {
		t.Fatalf("unmarshal written trace: %v", err)
	}
	if roundTripped.Height != trace.Height {
		t.Errorf("roundTripped.Height = %v, want %v", roundTripped.Height, trace.Height)
	}
}

func TestRunWithNoConfigs(t *testing.T) {
	dir := t.TempDir()
	err := Run(dir, 2)

	expectedMsg := "no YAML scenario files found in directory"
	if err == nil || !strings.Contains(err.Error(), expectedMsg) {
		t.Fatalf("Run on empty dir: got %v, want error containing %q", err, expectedMsg)
	}
}

func TestRunProcessesScenariosAndWritesTraces(t *testing.T) {
	configDir := t.TempDir()
	outputDir := t.TempDir()

	for i := 0; i < 3; i++ {
		outFile := filepath.Join(outputDir, "trace_"+string(rune('a'+i))+".json")
		cfgPath := filepath.Join(configDir, "scenario_"+string(rune('a'+i))+".yaml")
		if err := os.WriteFile(cfgPath, []byte(scenarioYAML(outFile)), 0644); err != nil {
			t.Fatalf("writing scenario config: %v", err)
		}
	}

	if err := Run(configDir, 2); err != nil {
		t.Fatalf("Run: %v", err)
	}

	for i := 0; i < 3; i++ {
		outFile := filepath.Join(outputDir, "trace_"+string(rune('a'+i))+".json")
		data, err := os.ReadFile(outFile)
		if err != nil {
			t.Fatalf("expected output file %s: %v", outFile, err)
		}

		var results map[string]any
		if err := json.Unmarshal(data, &results); err != nil {
			t.Fatalf("failed to parse JSON output %s: %v", outFile, err)
		}

		for _, key := range []string{"height", "period", "depth", "wave_number", "phase_speed", "wavelength", "times", "boundary_velocity", "boundary_elevation", "grid_positions", "initial_velocity_field", "initial_elevation_field"} {
			if _, exists := results[key]; !exists {
				t.Errorf("%s: expected key %s not found in results", outFile, key)
			}
		}
	}
}
