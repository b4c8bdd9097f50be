package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate when a scenario file fails
// its consistency checks.
var ErrInvalidConfig = errors.New("config: invalid scenario configuration")

// Config is one wave-generation scenario: the wave parameters to
// resolve, the boundary forcing setup, the simulation window to drive
// it over, and where to write the resulting trace.
type Config struct {
	Wave struct {
		Height float64 `yaml:"height"` // wave height H [m]
		Period float64 `yaml:"period"` // wave period T [s]
		Depth  float64 `yaml:"depth"`  // still-water depth d [m]
	} `yaml:"wave"`

	Boundary struct {
		GenerationPosition float64 `yaml:"generation_position"` // x0 [m]
		RampDuration       float64 `yaml:"ramp_duration"`       // τ [s]
	} `yaml:"boundary"`

	Simulation struct {
		Duration  float64 `yaml:"duration"`   // T_sim [s]
		TimeStep  float64 `yaml:"time_step"`  // dt [s]; 0 means use Kinematics.RecommendedTimeStep()
		GridCells int     `yaml:"grid_cells"` // number of host grid cells
	} `yaml:"simulation"`

	Output struct {
		FileName string `yaml:"file_name"` // path of the JSON trace to write
	} `yaml:"output"`
}

// Load reads and parses a YAML scenario file at path.
func Load(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that a Config carries the minimum data needed to
// drive a scenario: positive wave inputs, a nonnegative ramp duration,
// a positive simulation duration, at least two grid cells, and a
// nonempty output file name.
func (c Config) Validate() error {
	if c.Wave.Height <= 0 {
		return fmt.Errorf("%w: wave.height must be positive, got %g", ErrInvalidConfig, c.Wave.Height)
	}
	if c.Wave.Period <= 0 {
		return fmt.Errorf("%w: wave.period must be positive, got %g", ErrInvalidConfig, c.Wave.Period)
	}
	if c.Wave.Depth <= 0 {
		return fmt.Errorf("%w: wave.depth must be positive, got %g", ErrInvalidConfig, c.Wave.Depth)
	}
	if c.Boundary.RampDuration < 0 {
		return fmt.Errorf("%w: boundary.ramp_duration must be nonnegative, got %g", ErrInvalidConfig, c.Boundary.RampDuration)
	}
	if c.Simulation.Duration <= 0 {
		return fmt.Errorf("%w: simulation.duration must be positive, got %g", ErrInvalidConfig, c.Simulation.Duration)
	}
	if c.Simulation.TimeStep < 0 {
		return fmt.Errorf("%w: simulation.time_step must be nonnegative, got %g", ErrInvalidConfig, c.Simulation.TimeStep)
	}
	if c.Simulation.GridCells < 2 {
		return fmt.Errorf("%w: simulation.grid_cells must be at least 2, got %d", ErrInvalidConfig, c.Simulation.GridCells)
	}
	if c.Output.FileName == "" {
		return fmt.Errorf("%w: output.file_name must not be empty", ErrInvalidConfig)
	}
	return nil
}
